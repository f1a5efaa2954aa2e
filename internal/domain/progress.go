package domain

// ComputeProgress returns the completion percentage for a current/target
// pair. Defined only for target > 0; creation-time validation rejects a
// zero target before this is ever reached. The result is not rounded.
func ComputeProgress(current, target float64) float64 {
	return (current / target) * 100
}

// ClampCurrent clamps v into [0, target]. Out-of-range updates are
// silently clamped, never rejected.
func ClampCurrent(v, target float64) float64 {
	if v < 0 {
		return 0
	}
	if v > target {
		return target
	}
	return v
}
