package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoal_ValidateNew(t *testing.T) {
	deadline := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		goal      Goal
		wantField string
	}{
		{"valid", Goal{Title: "Run 5K", Target: 5, Deadline: deadline, Category: CategoryHealth}, ""},
		{"empty title", Goal{Title: "", Target: 5, Deadline: deadline, Category: CategoryHealth}, "title"},
		{"whitespace title", Goal{Title: "   ", Target: 5, Deadline: deadline, Category: CategoryHealth}, "title"},
		{"zero target", Goal{Title: "Run", Target: 0, Deadline: deadline, Category: CategoryHealth}, "target"},
		{"negative target", Goal{Title: "Run", Target: -1, Deadline: deadline, Category: CategoryHealth}, "target"},
		{"missing deadline", Goal{Title: "Run", Target: 5, Category: CategoryHealth}, "deadline"},
		{"unknown category", Goal{Title: "Run", Target: 5, Deadline: deadline, Category: "Fitness"}, "category"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.goal.ValidateNew()
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantField, verr.Field)
		})
	}
}

func TestGoal_SetCurrent_KeepsProgressInSync(t *testing.T) {
	g := Goal{Title: "Save", Target: 2000, Category: CategoryFinancial}

	g.SetCurrent(1500)
	assert.Equal(t, 1500.0, g.Current)
	assert.Equal(t, 75.0, g.Progress)

	g.SetCurrent(-10)
	assert.Equal(t, 0.0, g.Current)
	assert.Equal(t, 0.0, g.Progress)

	g.SetCurrent(9999)
	assert.Equal(t, 2000.0, g.Current)
	assert.Equal(t, 100.0, g.Progress)
}

func TestValidationError_Message(t *testing.T) {
	err := error(&ValidationError{Field: "target", Reason: "must be greater than zero"})
	assert.Equal(t, "invalid target: must be greater than zero", err.Error())

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestGoal_DisplayID(t *testing.T) {
	g := Goal{ID: "a81c9f20-1d39-44a2-9c3f-000000000000"}
	assert.Equal(t, "a81c9f20", g.DisplayID())

	short := Goal{ID: "abc"}
	assert.Equal(t, "abc", short.DisplayID())
}
