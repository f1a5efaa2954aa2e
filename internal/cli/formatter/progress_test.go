package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
	}{
		{"0%", 0.0, 10},
		{"50%", 0.5, 10},
		{"100%", 1.0, 10},
		{"over 100% clamps", 1.5, 10},
		{"negative clamps", -0.5, 10},
		{"tiny width clamps to 2", 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "]")
			assert.Contains(t, got, "%")
		})
	}
}

func TestRenderProgressClampedText(t *testing.T) {
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
	assert.Contains(t, RenderProgress(-0.5, 10), "0%")
}

func TestRenderCompactBar(t *testing.T) {
	// With dim=true we can check block content regardless of tier color.
	bar0 := RenderCompactBar(0.0, 4, true)
	assert.Contains(t, bar0, emptyBlock)

	bar100 := RenderCompactBar(1.0, 4, true)
	assert.Contains(t, bar100, filledBlock)

	assert.NotContains(t, RenderCompactBar(0.5, 4, false), "%")
}
