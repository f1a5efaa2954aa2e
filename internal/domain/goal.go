package domain

import (
	"fmt"
	"strings"
	"time"
)

// Goal is a single trackable objective with a numeric target and a deadline.
// Progress is derived from Current/Target and must never drift out of sync
// with them; every mutation path recomputes it via ComputeProgress.
type Goal struct {
	ID          string
	Title       string
	Description string
	Target      float64
	Current     float64
	Deadline    time.Time
	Progress    float64
	Category    Category
	Notes       string
	Comments    []string
}

// ValidationError reports a rejected input, naming the violated constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateNew checks the constraints required to create a goal:
// non-empty title, target > 0, a deadline, and a known category.
func (g *Goal) ValidateNew() error {
	if strings.TrimSpace(g.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if g.Target <= 0 {
		return &ValidationError{Field: "target", Reason: "must be greater than zero"}
	}
	if g.Deadline.IsZero() {
		return &ValidationError{Field: "deadline", Reason: "is required"}
	}
	if !g.Category.Known() {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("%q is not a valid category", g.Category)}
	}
	return nil
}

// SetCurrent clamps v into [0, Target] and recomputes Progress.
func (g *Goal) SetCurrent(v float64) {
	g.Current = ClampCurrent(v, g.Target)
	g.Progress = ComputeProgress(g.Current, g.Target)
}

// DisplayID returns a short identifier for display, truncating the UUID
// to 8 characters.
func (g *Goal) DisplayID() string {
	if len(g.ID) >= 8 {
		return g.ID[:8]
	}
	return g.ID
}
