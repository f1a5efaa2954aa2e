package backup

import (
	"fmt"
	"time"

	"github.com/alexmarten/strive/internal/domain"
)

// Export converts live goals and history into the file shape.
func Export(goals []domain.Goal, history map[string][]domain.ProgressSnapshot) *File {
	f := &File{
		Version: FileVersion,
		Goals:   make([]GoalExport, 0, len(goals)),
	}

	for _, g := range goals {
		f.Goals = append(f.Goals, GoalExport{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Target:      g.Target,
			Current:     g.Current,
			Deadline:    g.Deadline.Format("2006-01-02"),
			Progress:    g.Progress,
			Category:    string(g.Category),
			Notes:       g.Notes,
			Comments:    g.Comments,
		})
	}

	if len(history) > 0 {
		f.History = make(map[string][]SnapshotExport, len(history))
		for id, series := range history {
			out := make([]SnapshotExport, 0, len(series))
			for _, s := range series {
				out = append(out, SnapshotExport{
					Date:     s.At.UTC().Format(time.RFC3339),
					Progress: s.Progress,
				})
			}
			f.History[id] = out
		}
	}

	return f
}

// Convert turns a validated backup into domain goals and history.
// Progress is recomputed from current/target rather than trusted.
func Convert(f *File) ([]domain.Goal, map[string][]domain.ProgressSnapshot, error) {
	goals := make([]domain.Goal, 0, len(f.Goals))
	for _, g := range f.Goals {
		deadline, err := time.Parse("2006-01-02", g.Deadline)
		if err != nil {
			return nil, nil, fmt.Errorf("goal %q: parsing deadline: %w", g.ID, err)
		}

		comments := g.Comments
		if comments == nil {
			comments = []string{}
		}

		goals = append(goals, domain.Goal{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Target:      g.Target,
			Current:     g.Current,
			Deadline:    deadline,
			Progress:    domain.ComputeProgress(g.Current, g.Target),
			Category:    domain.Category(g.Category),
			Notes:       g.Notes,
			Comments:    comments,
		})
	}

	history := make(map[string][]domain.ProgressSnapshot, len(f.History))
	for id, series := range f.History {
		out := make([]domain.ProgressSnapshot, 0, len(series))
		for _, s := range series {
			at, err := time.Parse(time.RFC3339, s.Date)
			if err != nil {
				return nil, nil, fmt.Errorf("history for %q: parsing timestamp: %w", id, err)
			}
			out = append(out, domain.ProgressSnapshot{At: at, Progress: s.Progress})
		}
		history[id] = out
	}

	return goals, history, nil
}
