package service

import (
	"context"

	"github.com/alexmarten/strive/internal/domain"
	"github.com/alexmarten/strive/internal/history"
	"github.com/alexmarten/strive/internal/repository"
)

type metricsService struct {
	collection repository.CollectionRepo
}

func NewMetricsService(collection repository.CollectionRepo) MetricsService {
	return &metricsService{collection: collection}
}

func (s *metricsService) CategoryDistribution(ctx context.Context) (map[domain.Category]int, error) {
	goals, err := s.collection.LoadGoals(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Category]int)
	for _, g := range goals {
		counts[g.Category]++
	}
	return counts, nil
}

func (s *metricsService) ProgressOverview(ctx context.Context) ([]GoalProgress, error) {
	goals, err := s.collection.LoadGoals(ctx)
	if err != nil {
		return nil, err
	}

	overview := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		overview = append(overview, GoalProgress{Name: g.Title, Progress: g.Progress})
	}
	return overview, nil
}

func (s *metricsService) TimeSeries(ctx context.Context) ([]GoalSeries, error) {
	goals, err := s.collection.LoadGoals(ctx)
	if err != nil {
		return nil, err
	}
	snaps, err := s.collection.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	rec := history.Restore(snaps)

	series := make([]GoalSeries, 0, len(goals))
	for _, g := range goals {
		series = append(series, GoalSeries{Name: g.Title, Series: rec.Series(g.ID)})
	}
	return series, nil
}
