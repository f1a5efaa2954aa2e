package service

import (
	"context"
	"time"

	"github.com/alexmarten/strive/internal/domain"
	"github.com/alexmarten/strive/internal/repository"
	"github.com/google/uuid"
)

type settingsService struct {
	settings   repository.SettingsRepo
	collection repository.CollectionRepo
}

func NewSettingsService(settings repository.SettingsRepo, collection repository.CollectionRepo) SettingsService {
	return &settingsService{settings: settings, collection: collection}
}

func (s *settingsService) Theme(ctx context.Context) (domain.Theme, error) {
	return s.settings.Theme(ctx)
}

func (s *settingsService) SetTheme(ctx context.Context, theme domain.Theme) error {
	return s.settings.SetTheme(ctx, theme)
}

func (s *settingsService) FirstRun(ctx context.Context) (bool, error) {
	visited, err := s.settings.HasVisited(ctx)
	if err != nil {
		return false, err
	}
	if visited {
		return false, nil
	}
	if err := s.settings.MarkVisited(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *settingsService) SeedSampleGoals(ctx context.Context) ([]domain.Goal, error) {
	goals := sampleGoals()
	if err := s.collection.SaveGoals(ctx, goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *settingsService) ClearGoals(ctx context.Context) error {
	if err := s.collection.SaveGoals(ctx, nil); err != nil {
		return err
	}
	return s.collection.SaveHistory(ctx, map[string][]domain.ProgressSnapshot{})
}

func (s *settingsService) ExportData(ctx context.Context) ([]domain.Goal, map[string][]domain.ProgressSnapshot, error) {
	goals, err := s.collection.LoadGoals(ctx)
	if err != nil {
		return nil, nil, err
	}
	history, err := s.collection.LoadHistory(ctx)
	if err != nil {
		return nil, nil, err
	}
	return goals, history, nil
}

func (s *settingsService) ImportData(ctx context.Context, goals []domain.Goal, history map[string][]domain.ProgressSnapshot) error {
	if err := s.collection.SaveGoals(ctx, goals); err != nil {
		return err
	}
	if history == nil {
		history = map[string][]domain.ProgressSnapshot{}
	}
	return s.collection.SaveHistory(ctx, history)
}

// sampleGoals returns the starter collection offered from the settings
// view, for users who want something to explore before creating their
// own goals.
func sampleGoals() []domain.Goal {
	return []domain.Goal{
		{
			ID:          uuid.New().String(),
			Title:       "Complete React Course",
			Description: "Finish the advanced React course on Udemy",
			Target:      100,
			Current:     75,
			Deadline:    time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			Progress:    75,
			Category:    domain.CategoryEducation,
			Notes:       "Focus on hooks and context API",
			Comments:    []string{"Great progress!", "Keep it up!"},
		},
		{
			ID:          uuid.New().String(),
			Title:       "Run 5K",
			Description: "Train for and complete a 5K run",
			Target:      5,
			Current:     3,
			Deadline:    time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			Progress:    60,
			Category:    domain.CategoryHealth,
			Notes:       "Running 3 times per week",
			Comments:    []string{"You're doing great!", "Remember to stretch"},
		},
		{
			ID:          uuid.New().String(),
			Title:       "Save for Vacation",
			Description: "Save money for summer vacation",
			Target:      2000,
			Current:     1500,
			Deadline:    time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			Progress:    75,
			Category:    domain.CategoryFinancial,
			Notes:       "Putting aside $200 per week",
			Comments:    []string{"Almost there!", "Great saving habits"},
		},
	}
}
