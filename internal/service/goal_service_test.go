package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexmarten/strive/internal/domain"
	"github.com/alexmarten/strive/internal/repository"
	"github.com/alexmarten/strive/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_Create(t *testing.T) {
	collection, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewGoalService(collection)

	goal := testutil.NewTestGoal("Read 12 Books", testutil.WithTarget(12), testutil.WithCategory(domain.CategoryEducation))
	goal.Current = 99 // must be ignored
	require.NoError(t, svc.Create(ctx, goal))

	assert.NotEmpty(t, goal.ID, "UUID should be generated")
	assert.Equal(t, 0.0, goal.Current)
	assert.Equal(t, 0.0, goal.Progress)

	fetched, err := svc.Get(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Read 12 Books", fetched.Title)
	assert.Equal(t, 12.0, fetched.Target)
	assert.Empty(t, fetched.Comments)
}

func TestGoalService_Create_ValidationFailures(t *testing.T) {
	collection, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewGoalService(collection)

	tests := []struct {
		name      string
		goal      *domain.Goal
		wantField string
	}{
		{"empty title", &domain.Goal{Target: 5, Deadline: time.Now(), Category: domain.CategoryHealth}, "title"},
		{"zero target", &domain.Goal{Title: "x", Target: 0, Deadline: time.Now(), Category: domain.CategoryHealth}, "target"},
		{"no deadline", &domain.Goal{Title: "x", Target: 5, Category: domain.CategoryHealth}, "deadline"},
		{"bad category", &domain.Goal{Title: "x", Target: 5, Deadline: time.Now(), Category: "Sport"}, "category"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Create(ctx, tc.goal)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantField, verr.Field)
		})
	}

	// Nothing was added by the rejected inputs.
	goals, err := svc.List(ctx, domain.CategoryAll, domain.SortByProgress)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalService_UpdateProgress_Clamping(t *testing.T) {
	collection, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewGoalService(collection)

	goal := testutil.NewTestGoal("Pushups", testutil.WithTarget(10))
	require.NoError(t, svc.Create(ctx, goal))

	tests := []struct {
		name         string
		value        float64
		wantCurrent  float64
		wantProgress float64
	}{
		{"negative clamps to zero", -5, 0, 0},
		{"in range kept exactly", 7, 7, 70},
		{"above target clamps", 15, 10, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			upd, err := svc.UpdateProgress(ctx, goal.ID, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCurrent, upd.Goal.Current)
			assert.Equal(t, tc.wantProgress, upd.Goal.Progress)
		})
	}
}

func TestGoalService_UpdateProgress_UnknownID(t *testing.T) {
	collection, _ := setupRepos(t)
	svc := NewGoalService(collection)

	_, err := svc.UpdateProgress(context.Background(), "missing", 5)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGoalService_Run5KScenario(t *testing.T) {
	collection, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewGoalService(collection)

	goal := &domain.Goal{
		Title:    "Run 5K",
		Target:   5,
		Deadline: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		Category: domain.CategoryHealth,
	}
	require.NoError(t, svc.Create(ctx, goal))

	goals, err := svc.List(ctx, domain.CategoryAll, domain.SortByProgress)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 0.0, goals[0].Current)
	assert.Equal(t, 0.0, goals[0].Progress)

	upd, err := svc.UpdateProgress(ctx, goal.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, upd.Goal.Current)
	assert.Equal(t, 60.0, upd.Goal.Progress)
	assert.True(t, upd.MilestoneHit)
	assert.Equal(t, 50.0, upd.Milestone)

	upd, err = svc.UpdateProgress(ctx, goal.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 5.0, upd.Goal.Current, "value above target clamps")
	assert.Equal(t, 100.0, upd.Goal.Progress)
	assert.True(t, upd.MilestoneHit)
	assert.Equal(t, 100.0, upd.Milestone, "completion fires")

	// Repeating the same value fires nothing further.
	upd, err = svc.UpdateProgress(ctx, goal.ID, 10)
	require.NoError(t, err)
	assert.False(t, upd.MilestoneHit)
}

func TestGoalService_MilestoneJumpFiresHighestOnly(t *testing.T) {
	collection, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewGoalService(collection)

	goal := testutil.NewTestGoal("Savings", testutil.WithTarget(100))
	require.NoError(t, svc.Create(ctx, goal))

	_, err := svc.UpdateProgress(ctx, goal.ID, 40)
	require.NoError(t, err)

	upd, err := svc.UpdateProgress(ctx, goal.ID, 80)
	require.NoError(t, err)
	require.True(t, upd.MilestoneHit)
	assert.Equal(t, 75.0, upd.Milestone, "jump over 50 and 75 fires only the highest")
}

func TestGoalService_Delete(t *testing.T) {
	collection, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewGoalService(collection)

	keep := testutil.NewTestGoal("Keep")
	drop := testutil.NewTestGoal("Drop")
	require.NoError(t, svc.Create(ctx, keep))
	require.NoError(t, svc.Create(ctx, drop))

	require.NoError(t, svc.Delete(ctx, drop.ID))

	goals, err := svc.List(ctx, domain.CategoryAll, domain.SortByProgress)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, keep.ID, goals[0].ID)

	// The deleted goal's history series goes with it.
	series, err := svc.History(ctx, drop.ID)
	require.NoError(t, err)
	assert.Empty(t, series)

	// Deleting a non-existent id is a no-op.
	require.NoError(t, svc.Delete(ctx, "missing"))
	goals, err = svc.List(ctx, domain.CategoryAll, domain.SortByProgress)
	require.NoError(t, err)
	assert.Len(t, goals, 1)
}

func TestGoalService_AddComment(t *testing.T) {
	collection, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewGoalService(collection)

	goal := testutil.NewTestGoal("Commented")
	require.NoError(t, svc.Create(ctx, goal))

	require.NoError(t, svc.AddComment(ctx, goal.ID, "first"))
	require.NoError(t, svc.AddComment(ctx, goal.ID, "nice work"))

	fetched, err := svc.Get(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "nice work"}, fetched.Comments)
}

func TestGoalService_AddComment_BlankRejected(t *testing.T) {
	collection, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewGoalService(collection)

	goal := testutil.NewTestGoal("Quiet")
	require.NoError(t, svc.Create(ctx, goal))

	err := svc.AddComment(ctx, goal.ID, "   \t ")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "comment", verr.Field)

	fetched, err := svc.Get(ctx, goal.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Comments)
}

func TestGoalService_AddComment_UnknownID(t *testing.T) {
	collection, _ := setupRepos(t)
	svc := NewGoalService(collection)

	err := svc.AddComment(context.Background(), "missing", "hello")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGoalService_List_FilterAndSort(t *testing.T) {
	collection, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewGoalService(collection)

	run := testutil.NewTestGoal("Run 5K",
		testutil.WithTarget(5),
		testutil.WithCategory(domain.CategoryHealth),
		testutil.WithDeadline(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)))
	walk := testutil.NewTestGoal("Morning Walks",
		testutil.WithTarget(30),
		testutil.WithCategory(domain.CategoryHealth),
		testutil.WithDeadline(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	course := testutil.NewTestGoal("Complete React Course",
		testutil.WithCategory(domain.CategoryEducation),
		testutil.WithDeadline(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)))

	for _, g := range []*domain.Goal{run, walk, course} {
		require.NoError(t, svc.Create(ctx, g))
	}

	health, err := svc.List(ctx, "Health", domain.SortByDeadline)
	require.NoError(t, err)
	require.Len(t, health, 2)
	assert.Equal(t, "Morning Walks", health[0].Title)
	assert.Equal(t, "Run 5K", health[1].Title)

	all, err := svc.List(ctx, domain.CategoryAll, domain.SortByDeadline)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGoalService_HistoryRecording(t *testing.T) {
	collection, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewGoalService(collection)

	goal := testutil.NewTestGoal("Tracked", testutil.WithTarget(10))
	require.NoError(t, svc.Create(ctx, goal))

	// Creation records the initial 0% snapshot.
	series, err := svc.History(ctx, goal.ID)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 0.0, series[0].Progress)

	_, err = svc.UpdateProgress(ctx, goal.ID, 10)
	require.NoError(t, err)
	_, err = svc.UpdateProgress(ctx, goal.ID, 10)
	require.NoError(t, err)

	// Two consecutive updates to the same value append one snapshot.
	series, err = svc.History(ctx, goal.ID)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, 100.0, series[1].Progress)
}

func TestGoalService_PersistsAcrossInstances(t *testing.T) {
	collection, _ := setupRepos(t)
	ctx := context.Background()

	svc := NewGoalService(collection)
	goal := testutil.NewTestGoal("Durable", testutil.WithTarget(4))
	require.NoError(t, svc.Create(ctx, goal))
	_, err := svc.UpdateProgress(ctx, goal.ID, 1)
	require.NoError(t, err)

	// A fresh service over the same store sees identical state.
	again := NewGoalService(collection)
	fetched, err := again.Get(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, fetched.Current)
	assert.Equal(t, 25.0, fetched.Progress)

	series, err := again.History(ctx, goal.ID)
	require.NoError(t, err)
	assert.Len(t, series, 2)
}

func TestGoalService_ProgressInvariant(t *testing.T) {
	collection, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewGoalService(collection)

	goal := testutil.NewTestGoal("Invariant", testutil.WithTarget(7))
	require.NoError(t, svc.Create(ctx, goal))

	for _, v := range []float64{-3, 2, 7, 100, 3.5} {
		_, err := svc.UpdateProgress(ctx, goal.ID, v)
		require.NoError(t, err)

		g, err := svc.Get(ctx, goal.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, g.Current, 0.0)
		assert.LessOrEqual(t, g.Current, g.Target)
		assert.Equal(t, domain.ComputeProgress(g.Current, g.Target), g.Progress,
			"progress must never drift from current/target")
	}
}
