package domain

// Milestone thresholds, highest first. Crossing is one-directional:
// only upward transitions past a threshold fire, and a single update
// that jumps several thresholds fires the highest one only. Dropping
// below a threshold and climbing back re-fires it.
var milestoneThresholds = []float64{100, 75, 50}

// CrossedMilestone compares a goal's previous progress value to the
// newly computed one and returns the highest threshold crossed upward,
// if any.
func CrossedMilestone(prev, next float64) (float64, bool) {
	for _, t := range milestoneThresholds {
		if next >= t && prev < t {
			return t, true
		}
	}
	return 0, false
}
