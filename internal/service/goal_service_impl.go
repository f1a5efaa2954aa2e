package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexmarten/strive/internal/domain"
	"github.com/alexmarten/strive/internal/history"
	"github.com/alexmarten/strive/internal/repository"
	"github.com/google/uuid"
)

type goalService struct {
	collection repository.CollectionRepo
}

func NewGoalService(collection repository.CollectionRepo) GoalService {
	return &goalService{collection: collection}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	if err := g.ValidateNew(); err != nil {
		return err
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.Current = 0
	g.Progress = 0
	g.Comments = nil

	goals, err := s.collection.LoadGoals(ctx)
	if err != nil {
		return err
	}
	goals = append(goals, *g)

	if err := s.collection.SaveGoals(ctx, goals); err != nil {
		return err
	}
	return s.recordSnapshots(ctx, goals)
}

func (s *goalService) Get(ctx context.Context, id string) (*domain.Goal, error) {
	goals, err := s.collection.LoadGoals(ctx)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		if goals[i].ID == id {
			return &goals[i], nil
		}
	}
	return nil, fmt.Errorf("goal %s: %w", id, repository.ErrNotFound)
}

func (s *goalService) List(ctx context.Context, category string, sort domain.SortKey) ([]domain.Goal, error) {
	goals, err := s.collection.LoadGoals(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterAndSort(goals, category, sort), nil
}

func (s *goalService) UpdateProgress(ctx context.Context, id string, value float64) (*ProgressUpdate, error) {
	goals, err := s.collection.LoadGoals(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range goals {
		if goals[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("goal %s: %w", id, repository.ErrNotFound)
	}

	prev := goals[idx].Progress
	goals[idx].SetCurrent(value)
	milestone, hit := domain.CrossedMilestone(prev, goals[idx].Progress)

	if err := s.collection.SaveGoals(ctx, goals); err != nil {
		return nil, err
	}
	if err := s.recordSnapshots(ctx, goals); err != nil {
		return nil, err
	}

	return &ProgressUpdate{
		Goal:         goals[idx],
		Milestone:    milestone,
		MilestoneHit: hit,
	}, nil
}

func (s *goalService) AddComment(ctx context.Context, id, text string) error {
	if strings.TrimSpace(text) == "" {
		return &domain.ValidationError{Field: "comment", Reason: "must not be blank"}
	}

	goals, err := s.collection.LoadGoals(ctx)
	if err != nil {
		return err
	}
	for i := range goals {
		if goals[i].ID == id {
			goals[i].Comments = append(goals[i].Comments, text)
			return s.collection.SaveGoals(ctx, goals)
		}
	}
	return fmt.Errorf("goal %s: %w", id, repository.ErrNotFound)
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	goals, err := s.collection.LoadGoals(ctx)
	if err != nil {
		return err
	}

	kept := goals[:0]
	for _, g := range goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(goals) {
		// Unknown id: the collection is left unchanged.
		return nil
	}

	if err := s.collection.SaveGoals(ctx, kept); err != nil {
		return err
	}

	snaps, err := s.collection.LoadHistory(ctx)
	if err != nil {
		return err
	}
	rec := history.Restore(snaps)
	rec.Drop(id)
	return s.collection.SaveHistory(ctx, rec.All())
}

func (s *goalService) History(ctx context.Context, id string) ([]domain.ProgressSnapshot, error) {
	snaps, err := s.collection.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	return history.Restore(snaps).Series(id), nil
}

// recordSnapshots runs the history recorder over the whole collection
// after a mutation that may have changed a progress value, persisting
// only when something new was appended.
func (s *goalService) recordSnapshots(ctx context.Context, goals []domain.Goal) error {
	snaps, err := s.collection.LoadHistory(ctx)
	if err != nil {
		return err
	}
	rec := history.Restore(snaps)
	if changed := rec.Observe(goals, time.Now().UTC()); len(changed) == 0 {
		return nil
	}
	return s.collection.SaveHistory(ctx, rec.All())
}
