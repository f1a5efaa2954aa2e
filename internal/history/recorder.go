// Package history maintains the append-only per-goal log of progress
// snapshots that feeds the progress-over-time view.
package history

import (
	"time"

	"github.com/alexmarten/strive/internal/domain"
)

// Recorder holds one growing snapshot series per goal id. Series are
// only ever appended to; adjacent entries always differ in progress
// value.
type Recorder struct {
	series map[string][]domain.ProgressSnapshot
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{series: make(map[string][]domain.ProgressSnapshot)}
}

// Restore creates a Recorder from previously persisted series.
func Restore(series map[string][]domain.ProgressSnapshot) *Recorder {
	r := NewRecorder()
	for id, snaps := range series {
		r.series[id] = append([]domain.ProgressSnapshot(nil), snaps...)
	}
	return r
}

// Observe scans the entire collection and appends a snapshot for every
// goal whose progress differs from its last recorded value (or that has
// no series yet). The full scan on every mutation is intentional
// simplicity at the few-dozen-goals scale this tool targets.
// Returns the ids that gained a snapshot.
func (r *Recorder) Observe(goals []domain.Goal, now time.Time) []string {
	var changed []string
	for _, g := range goals {
		prior := r.series[g.ID]
		if len(prior) > 0 && prior[len(prior)-1].Progress == g.Progress {
			continue
		}
		r.series[g.ID] = append(prior, domain.ProgressSnapshot{At: now, Progress: g.Progress})
		changed = append(changed, g.ID)
	}
	return changed
}

// Series returns a copy of the snapshot series for a goal id.
// A goal with no recorded snapshots yields nil.
func (r *Recorder) Series(id string) []domain.ProgressSnapshot {
	snaps := r.series[id]
	if snaps == nil {
		return nil
	}
	return append([]domain.ProgressSnapshot(nil), snaps...)
}

// Drop removes the series for a deleted goal.
func (r *Recorder) Drop(id string) {
	delete(r.series, id)
}

// All returns a copy of every series, keyed by goal id, for persistence.
func (r *Recorder) All() map[string][]domain.ProgressSnapshot {
	out := make(map[string][]domain.ProgressSnapshot, len(r.series))
	for id, snaps := range r.series {
		out[id] = append([]domain.ProgressSnapshot(nil), snaps...)
	}
	return out
}
