package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func testCollection() []Goal {
	return []Goal{
		{ID: "1", Title: "Complete React Course", Category: CategoryEducation, Target: 100, Current: 75, Progress: 75, Deadline: day(30)},
		{ID: "2", Title: "Run 5K", Category: CategoryHealth, Target: 5, Current: 3, Progress: 60, Deadline: day(15)},
		{ID: "3", Title: "Save for Vacation", Category: CategoryFinancial, Target: 2000, Current: 1500, Progress: 75, Deadline: day(1)},
		{ID: "4", Title: "Morning Walks", Category: CategoryHealth, Target: 30, Current: 3, Progress: 10, Deadline: day(5)},
	}
}

func TestFilterByCategory(t *testing.T) {
	goals := testCollection()

	health := FilterByCategory(goals, "Health")
	require.Len(t, health, 2)
	assert.Equal(t, "Run 5K", health[0].Title)
	assert.Equal(t, "Morning Walks", health[1].Title)

	all := FilterByCategory(goals, CategoryAll)
	assert.Len(t, all, 4)

	none := FilterByCategory(goals, "Career")
	assert.Empty(t, none)
}

func TestSortGoals_ProgressDescending(t *testing.T) {
	goals := testCollection()
	sorted := SortGoals(goals, SortByProgress)

	require.Len(t, sorted, 4)
	// Two goals tie at 75; stable sort keeps their collection order.
	assert.Equal(t, "1", sorted[0].ID)
	assert.Equal(t, "3", sorted[1].ID)
	assert.Equal(t, "2", sorted[2].ID)
	assert.Equal(t, "4", sorted[3].ID)

	// Original collection untouched.
	assert.Equal(t, "1", goals[0].ID)
}

func TestSortGoals_DeadlineAscending(t *testing.T) {
	sorted := SortGoals(testCollection(), SortByDeadline)

	var ids []string
	for _, g := range sorted {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"3", "4", "2", "1"}, ids)
}

func TestFilterAndSort_HealthByDeadline(t *testing.T) {
	got := FilterAndSort(testCollection(), "Health", SortByDeadline)

	require.Len(t, got, 2)
	assert.Equal(t, "Morning Walks", got[0].Title)
	assert.Equal(t, "Run 5K", got[1].Title)
	for _, g := range got {
		assert.Equal(t, CategoryHealth, g.Category)
	}
}
