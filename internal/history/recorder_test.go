package history

import (
	"testing"
	"time"

	"github.com/alexmarten/strive/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_FirstObservationAlwaysRecorded(t *testing.T) {
	r := NewRecorder()
	now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	changed := r.Observe([]domain.Goal{{ID: "g-1", Progress: 0}}, now)

	assert.Equal(t, []string{"g-1"}, changed)
	series := r.Series("g-1")
	require.Len(t, series, 1)
	assert.Equal(t, 0.0, series[0].Progress)
	assert.True(t, series[0].At.Equal(now))
}

func TestRecorder_UnchangedValueAppendsNothing(t *testing.T) {
	r := NewRecorder()
	now := time.Now().UTC()
	goal := domain.Goal{ID: "g-1", Progress: 100}

	// Two consecutive observations of the same value append at most one
	// snapshot total.
	r.Observe([]domain.Goal{goal}, now)
	changed := r.Observe([]domain.Goal{goal}, now.Add(time.Minute))

	assert.Empty(t, changed)
	assert.Len(t, r.Series("g-1"), 1)
}

func TestRecorder_AdjacentSnapshotsAlwaysDiffer(t *testing.T) {
	r := NewRecorder()
	now := time.Now().UTC()

	values := []float64{0, 60, 60, 100, 100, 40}
	for i, v := range values {
		r.Observe([]domain.Goal{{ID: "g-1", Progress: v}}, now.Add(time.Duration(i)*time.Minute))
	}

	series := r.Series("g-1")
	require.Len(t, series, 4)
	for i := 1; i < len(series); i++ {
		assert.NotEqual(t, series[i-1].Progress, series[i].Progress,
			"adjacent snapshots must differ in value")
	}
}

func TestRecorder_ObserveScansWholeCollection(t *testing.T) {
	r := NewRecorder()
	now := time.Now().UTC()

	goals := []domain.Goal{
		{ID: "g-1", Progress: 0},
		{ID: "g-2", Progress: 50},
	}
	changed := r.Observe(goals, now)
	assert.ElementsMatch(t, []string{"g-1", "g-2"}, changed)

	// Mutating only g-1 still records g-2's first sight of a new value.
	goals[0].Progress = 20
	goals[1].Progress = 75
	changed = r.Observe(goals, now.Add(time.Minute))
	assert.ElementsMatch(t, []string{"g-1", "g-2"}, changed)
}

func TestRecorder_Drop(t *testing.T) {
	r := NewRecorder()
	r.Observe([]domain.Goal{{ID: "g-1", Progress: 10}}, time.Now())

	r.Drop("g-1")
	assert.Nil(t, r.Series("g-1"))
}

func TestRecorder_RestoreRoundTrip(t *testing.T) {
	r := NewRecorder()
	now := time.Now().UTC()
	r.Observe([]domain.Goal{{ID: "g-1", Progress: 10}}, now)
	r.Observe([]domain.Goal{{ID: "g-1", Progress: 20}}, now.Add(time.Minute))

	restored := Restore(r.All())

	assert.Equal(t, r.All(), restored.All())

	// Restored recorder keeps the adjacent-differ rule against the last
	// persisted value.
	changed := restored.Observe([]domain.Goal{{ID: "g-1", Progress: 20}}, now.Add(2*time.Minute))
	assert.Empty(t, changed)
}

func TestRecorder_SeriesReturnsCopy(t *testing.T) {
	r := NewRecorder()
	r.Observe([]domain.Goal{{ID: "g-1", Progress: 10}}, time.Now())

	series := r.Series("g-1")
	series[0].Progress = 999

	assert.Equal(t, 10.0, r.Series("g-1")[0].Progress)
}
