package formatter

import (
	"fmt"
	"strings"

	"github.com/alexmarten/strive/internal/domain"
)

// FormatGoalList renders a styled goal list inside a bordered box.
func FormatGoalList(goals []domain.Goal, barWidth int) string {
	if len(goals) == 0 {
		return RenderBox("Goals", Dim("No goals yet. Add one with `strive goal add`."))
	}

	headers := []string{"ID", "TITLE", "CATEGORY", "PROGRESS", "DEADLINE"}
	rows := make([][]string, 0, len(goals))

	for _, g := range goals {
		rows = append(rows, []string{
			TruncID(g.ID),
			Bold(g.Title),
			CategoryBadge(g.Category),
			RenderProgress(g.Progress/100, barWidth),
			DeadlineStyled(g.Deadline),
		})
	}

	return RenderBox("Goals", RenderTable(headers, rows))
}

// FormatGoalInspect renders a single goal as a detail card.
func FormatGoalInspect(g *domain.Goal, history []domain.ProgressSnapshot, barWidth int) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(g.Title) + "\n")
	b.WriteString(CategoryBadge(g.Category) + "  " + MilestoneBadge(g.Progress) + "\n\n")

	if g.Description != "" {
		b.WriteString(StyleFg.Render(g.Description) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID      "), TruncID(g.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("PROGRESS"), RenderProgress(g.Progress/100, barWidth)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("AMOUNT  "), StyleFg.Render(FormatAmount(g.Current, g.Target))))
	b.WriteString(fmt.Sprintf("%s  %s %s\n", StyleDim.Render("DEADLINE"), DeadlineStyled(g.Deadline), Dim("("+DeadlineDate(g.Deadline)+")")))

	if g.Notes != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("NOTES   "), StyleFg.Render(g.Notes)))
	}

	if len(history) > 0 {
		values := make([]float64, len(history))
		for i, s := range history {
			values[i] = s.Progress
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("HISTORY "), RenderSparkline(values)))
	}

	if len(g.Comments) > 0 {
		b.WriteString("\n" + StyleHeader.Render("COMMENTS") + "\n")
		for _, c := range g.Comments {
			b.WriteString(Dim("  • ") + StyleFg.Render(c) + "\n")
		}
	}

	return RenderBox("", b.String())
}
