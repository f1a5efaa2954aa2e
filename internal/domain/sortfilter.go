package domain

import "sort"

// FilterByCategory returns the goals matching category, preserving
// collection order. CategoryAll (or the empty string) bypasses
// filtering. The input slice is never mutated.
func FilterByCategory(goals []Goal, category string) []Goal {
	if category == "" || category == CategoryAll {
		return append([]Goal(nil), goals...)
	}
	var out []Goal
	for _, g := range goals {
		if string(g.Category) == category {
			out = append(out, g)
		}
	}
	return out
}

// SortGoals returns a sorted copy: progress descending or deadline
// ascending. Ties keep their original relative order (stable sort).
func SortGoals(goals []Goal, key SortKey) []Goal {
	out := append([]Goal(nil), goals...)
	switch key {
	case SortByDeadline:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Deadline.Before(out[j].Deadline)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Progress > out[j].Progress
		})
	}
	return out
}

// FilterAndSort combines FilterByCategory and SortGoals without
// mutating the collection.
func FilterAndSort(goals []Goal, category string, key SortKey) []Goal {
	return SortGoals(FilterByCategory(goals, category), key)
}
