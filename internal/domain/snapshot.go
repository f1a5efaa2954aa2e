package domain

import "time"

// ProgressSnapshot records a goal's progress value at the moment it
// changed. Snapshots for a goal form an append-only series in which
// adjacent entries always differ in Progress.
type ProgressSnapshot struct {
	At       time.Time
	Progress float64
}
