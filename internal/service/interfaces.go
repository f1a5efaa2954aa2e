package service

import (
	"context"

	"github.com/alexmarten/strive/internal/domain"
)

// ProgressUpdate is the outcome of an UpdateProgress call: the goal
// after clamping and recomputation, plus the milestone threshold the
// update crossed upward, if any.
type ProgressUpdate struct {
	Goal         domain.Goal
	Milestone    float64
	MilestoneHit bool
}

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	Get(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context, category string, sort domain.SortKey) ([]domain.Goal, error)
	UpdateProgress(ctx context.Context, id string, value float64) (*ProgressUpdate, error)
	AddComment(ctx context.Context, id, text string) error
	Delete(ctx context.Context, id string) error
	History(ctx context.Context, id string) ([]domain.ProgressSnapshot, error)
}

// GoalProgress is one entry of the progress-overview projection.
type GoalProgress struct {
	Name     string
	Progress float64
}

// GoalSeries is one entry of the progress-over-time projection.
type GoalSeries struct {
	Name   string
	Series []domain.ProgressSnapshot
}

// MetricsService derives the read-only chart views from the goal
// collection and the snapshot history. All three are recomputed from
// scratch on every call.
type MetricsService interface {
	CategoryDistribution(ctx context.Context) (map[domain.Category]int, error)
	ProgressOverview(ctx context.Context) ([]GoalProgress, error)
	TimeSeries(ctx context.Context) ([]GoalSeries, error)
}

type SettingsService interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
	// FirstRun reports whether this is the first time the app has been
	// started, and marks the user as seen.
	FirstRun(ctx context.Context) (bool, error)
	SeedSampleGoals(ctx context.Context) ([]domain.Goal, error)
	ClearGoals(ctx context.Context) error
	// ExportData returns the full collection and history for backup.
	ExportData(ctx context.Context) ([]domain.Goal, map[string][]domain.ProgressSnapshot, error)
	// ImportData replaces the collection and history wholesale.
	ImportData(ctx context.Context, goals []domain.Goal, history map[string][]domain.ProgressSnapshot) error
}
