package backup

import (
	"fmt"
	"time"

	"github.com/alexmarten/strive/internal/domain"
)

// ValidateFile checks a parsed backup before conversion. Returns every
// problem found so a bad file can be fixed in one pass.
func ValidateFile(f *File) []error {
	var errs []error

	if f.Version != FileVersion {
		errs = append(errs, fmt.Errorf("unsupported backup version %d (expected %d)", f.Version, FileVersion))
	}

	seen := make(map[string]bool)
	for i, g := range f.Goals {
		prefix := fmt.Sprintf("goals[%d]", i)

		if g.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[g.ID] {
			errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, g.ID))
		}
		seen[g.ID] = true

		if g.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if g.Target <= 0 {
			errs = append(errs, fmt.Errorf("%s.target must be positive", prefix))
		}
		if g.Current < 0 || g.Current > g.Target {
			errs = append(errs, fmt.Errorf("%s.current %v is outside [0, %v]", prefix, g.Current, g.Target))
		}
		if g.Deadline == "" {
			errs = append(errs, fmt.Errorf("%s.deadline is required", prefix))
		} else if _, err := time.Parse("2006-01-02", g.Deadline); err != nil {
			errs = append(errs, fmt.Errorf("%s.deadline: invalid date %q (expected YYYY-MM-DD)", prefix, g.Deadline))
		}
		if !domain.Category(g.Category).Known() {
			errs = append(errs, fmt.Errorf("%s.category: unknown value %q", prefix, g.Category))
		}
	}

	for id, series := range f.History {
		if !seen[id] {
			errs = append(errs, fmt.Errorf("history references unknown goal %q", id))
			continue
		}
		for i, s := range series {
			if _, err := time.Parse(time.RFC3339, s.Date); err != nil {
				errs = append(errs, fmt.Errorf("history[%q][%d].date: invalid timestamp %q", id, i, s.Date))
			}
		}
	}

	return errs
}
