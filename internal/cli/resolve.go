package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexmarten/strive/internal/domain"
)

// resolveGoalID turns user input into a goal ID. Accepts an exact ID,
// an unambiguous ID prefix, or an exact title (case-insensitive).
func resolveGoalID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("goal ID is required")
	}

	goals, err := app.Goals.List(ctx, domain.CategoryAll, domain.SortByProgress)
	if err != nil {
		return "", err
	}

	for _, g := range goals {
		if g.ID == input {
			return g.ID, nil
		}
	}

	for _, g := range goals {
		if strings.EqualFold(g.Title, input) {
			return g.ID, nil
		}
	}

	var matches []string
	for _, g := range goals {
		if strings.HasPrefix(g.ID, input) {
			matches = append(matches, g.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("goal not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("goal ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
