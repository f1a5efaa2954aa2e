package formatter

import (
	"fmt"
	"strings"

	"github.com/alexmarten/strive/internal/domain"
	"github.com/alexmarten/strive/internal/service"
)

// FormatCategoryDistribution renders the goals-per-category bar chart.
// Categories appear in canonical order; empty categories are skipped.
func FormatCategoryDistribution(dist map[domain.Category]int, width int) string {
	entries := make([]BarChartEntry, 0, len(dist))
	for _, c := range domain.Categories {
		n, ok := dist[c]
		if !ok || n == 0 {
			continue
		}
		entries = append(entries, BarChartEntry{
			Label: string(c),
			Value: float64(n),
			Style: CategoryColor(c),
		})
	}
	return RenderBox("Goals by Category", RenderBarChart(entries, width))
}

// FormatProgressOverview renders the per-goal progress bar chart.
func FormatProgressOverview(overview []service.GoalProgress, width int) string {
	if len(overview) == 0 {
		return RenderBox("Progress Overview", Dim("(no goals)"))
	}

	var b strings.Builder
	labelWidth := 0
	for _, gp := range overview {
		if len(gp.Name) > labelWidth {
			labelWidth = len(gp.Name)
		}
	}
	for _, gp := range overview {
		pad := labelWidth - len(gp.Name)
		b.WriteString(gp.Name)
		b.WriteString(strings.Repeat(" ", pad+2))
		b.WriteString(RenderProgress(gp.Progress/100, width))
		b.WriteString("\n")
	}
	return RenderBox("Progress Overview", b.String())
}

// FormatTimeSeries renders each goal's progress history as a sparkline
// with first and latest values.
func FormatTimeSeries(series []service.GoalSeries) string {
	if len(series) == 0 {
		return RenderBox("Progress Over Time", Dim("(no goals)"))
	}

	var b strings.Builder
	labelWidth := 0
	for _, gs := range series {
		if len(gs.Name) > labelWidth {
			labelWidth = len(gs.Name)
		}
	}
	for _, gs := range series {
		pad := labelWidth - len(gs.Name)
		b.WriteString(gs.Name)
		b.WriteString(strings.Repeat(" ", pad+2))

		if len(gs.Series) == 0 {
			b.WriteString(Dim("(no history)") + "\n")
			continue
		}

		values := make([]float64, len(gs.Series))
		for i, s := range gs.Series {
			values[i] = s.Progress
		}
		latest := values[len(values)-1]
		b.WriteString(RenderSparkline(values))
		b.WriteString(Dim(fmt.Sprintf("  %s%%", trimFloat(latest))))
		b.WriteString("\n")
	}
	return RenderBox("Progress Over Time", b.String())
}
