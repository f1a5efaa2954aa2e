package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarChartEntry is a single labeled bar.
type BarChartEntry struct {
	Label string
	Value float64
	Style lipgloss.Style
}

// RenderBarChart renders a horizontal bar chart. Bars are scaled so the
// largest value fills maxWidth cells; labels are right-padded to align.
func RenderBarChart(entries []BarChartEntry, maxWidth int) string {
	if len(entries) == 0 {
		return Dim("(no data)")
	}
	if maxWidth < 2 {
		maxWidth = 2
	}

	var max float64
	labelWidth := 0
	for _, e := range entries {
		if e.Value > max {
			max = e.Value
		}
		if w := lipgloss.Width(e.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for _, e := range entries {
		cells := 0
		if max > 0 {
			cells = int(e.Value / max * float64(maxWidth))
		}
		if e.Value > 0 && cells == 0 {
			cells = 1
		}

		pad := labelWidth - lipgloss.Width(e.Label)
		b.WriteString(e.Label)
		b.WriteString(strings.Repeat(" ", pad+2))
		b.WriteString(e.Style.Render(strings.Repeat(filledBlock, cells)))
		b.WriteString(fmt.Sprintf(" %s\n", trimFloat(e.Value)))
	}
	return b.String()
}

// sparkTicks are the eight vertical-resolution glyphs, lowest first.
var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// RenderSparkline renders a series of values as a one-line sparkline,
// scaled to the 0-100 progress range.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return Dim("(no history)")
	}

	var b strings.Builder
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		idx := int(v / 100 * float64(len(sparkTicks)-1))
		b.WriteRune(sparkTicks[idx])
	}
	return StyleBlue.Render(b.String())
}

// trimFloat formats a float without trailing zeros (75 not 75.00,
// but 62.5 keeps its fraction).
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
