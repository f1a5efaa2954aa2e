package testutil

import (
	"time"

	"github.com/alexmarten/strive/internal/domain"
)

// GoalOption customizes a test goal fixture.
type GoalOption func(*domain.Goal)

func WithTarget(target float64) GoalOption {
	return func(g *domain.Goal) {
		g.Target = target
	}
}

func WithCategory(c domain.Category) GoalOption {
	return func(g *domain.Goal) {
		g.Category = c
	}
}

func WithDeadline(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.Deadline = d
	}
}

func WithNotes(notes string) GoalOption {
	return func(g *domain.Goal) {
		g.Notes = notes
	}
}

// NewTestGoal builds a valid goal input ready for GoalService.Create.
// The ID is left empty so the service generates one.
func NewTestGoal(title string, opts ...GoalOption) *domain.Goal {
	g := &domain.Goal{
		Title:    title,
		Target:   100,
		Deadline: time.Now().UTC().AddDate(0, 3, 0).Truncate(24 * time.Hour),
		Category: domain.CategoryPersonal,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
