package service

import (
	"context"
	"testing"

	"github.com/alexmarten/strive/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_ThemeRoundTrip(t *testing.T) {
	collection, settings := setupRepos(t)
	ctx := context.Background()
	svc := NewSettingsService(settings, collection)

	theme, err := svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme, "dark is the default theme")

	require.NoError(t, svc.SetTheme(ctx, domain.ThemeSystem))
	theme, err = svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeSystem, theme)
}

func TestSettingsService_FirstRunOnlyOnce(t *testing.T) {
	collection, settings := setupRepos(t)
	ctx := context.Background()
	svc := NewSettingsService(settings, collection)

	first, err := svc.FirstRun(ctx)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := svc.FirstRun(ctx)
	require.NoError(t, err)
	assert.False(t, second)
}

func TestSettingsService_SeedSampleGoals(t *testing.T) {
	collection, settings := setupRepos(t)
	ctx := context.Background()
	svc := NewSettingsService(settings, collection)
	goals := NewGoalService(collection)

	seeded, err := svc.SeedSampleGoals(ctx)
	require.NoError(t, err)
	require.Len(t, seeded, 3)

	listed, err := goals.List(ctx, domain.CategoryAll, domain.SortByDeadline)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Run 5K", listed[0].Title)

	for _, g := range listed {
		assert.Equal(t, domain.ComputeProgress(g.Current, g.Target), g.Progress)
	}
}

func TestSettingsService_ClearGoals(t *testing.T) {
	collection, settings := setupRepos(t)
	ctx := context.Background()
	svc := NewSettingsService(settings, collection)
	goals := NewGoalService(collection)

	_, err := svc.SeedSampleGoals(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.ClearGoals(ctx))

	listed, err := goals.List(ctx, domain.CategoryAll, domain.SortByProgress)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
