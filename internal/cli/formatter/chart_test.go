package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBarChart(t *testing.T) {
	entries := []BarChartEntry{
		{Label: "Health", Value: 3, Style: StyleGreen},
		{Label: "Career", Value: 1, Style: StyleBlue},
	}

	got := RenderBarChart(entries, 12)
	assert.Contains(t, got, "Health")
	assert.Contains(t, got, "Career")
	assert.Contains(t, got, filledBlock)
	assert.Contains(t, got, "3")
}

func TestRenderBarChart_Empty(t *testing.T) {
	got := RenderBarChart(nil, 12)
	assert.Contains(t, got, "no data")
}

func TestRenderBarChart_NonZeroGetsAtLeastOneCell(t *testing.T) {
	entries := []BarChartEntry{
		{Label: "Big", Value: 1000, Style: StyleGreen},
		{Label: "Tiny", Value: 1, Style: StyleRed},
	}
	got := RenderBarChart(entries, 10)
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		assert.Contains(t, line, filledBlock)
	}
}

func TestRenderSparkline(t *testing.T) {
	got := RenderSparkline([]float64{0, 25, 50, 75, 100})
	assert.Contains(t, got, "▁")
	assert.Contains(t, got, "█")

	assert.Contains(t, RenderSparkline(nil), "no history")
}

func TestTrimFloat(t *testing.T) {
	assert.Equal(t, "75", trimFloat(75.0))
	assert.Equal(t, "62.5", trimFloat(62.5))
	assert.Equal(t, "0", trimFloat(0))
}
