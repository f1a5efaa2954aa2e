package domain

import "fmt"

type Category string

const (
	CategoryHealth    Category = "Health"
	CategoryCareer    Category = "Career"
	CategoryEducation Category = "Education"
	CategoryPersonal  Category = "Personal"
	CategoryFinancial Category = "Financial"
	CategoryOther     Category = "Other"
)

// Categories is the closed set of categories offered at goal creation.
var Categories = []Category{
	CategoryHealth,
	CategoryCareer,
	CategoryEducation,
	CategoryPersonal,
	CategoryFinancial,
	CategoryOther,
}

// CategoryAll is the filter value that bypasses category filtering.
// It is never a valid category on a goal itself.
const CategoryAll = "All"

// ParseCategory validates a category string against the closed set.
// Creation rejects unknown categories; goals loaded from storage may
// still carry one and are displayed as-is.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: Health, Career, Education, Personal, Financial, Other)", s)
}

// Known reports whether the category belongs to the closed set.
func (c Category) Known() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

type SortKey string

const (
	SortByProgress SortKey = "progress"
	SortByDeadline SortKey = "deadline"
)

func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByProgress, SortByDeadline:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q (valid: progress, deadline)", s)
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DefaultTheme is used before any theme setting has been persisted.
const DefaultTheme = ThemeDark

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q (valid: light, dark, system)", s)
}
