package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// progressStyle picks a bar color by completion tier, matching the
// milestone thresholds: green at 75%+, yellow at 50%+, red below.
func progressStyle(pct float64) func(...string) string {
	switch {
	case pct >= 0.75:
		return StyleGreen.Render
	case pct >= 0.5:
		return StyleYellow.Render
	default:
		return StyleRed.Render
	}
}

// RenderProgress renders a progress bar like [████░░░░] 45%.
// pct is a fraction in [0,1]; out-of-range values are clamped.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)
	return fmt.Sprintf("[%s] %s", progressStyle(pct)(bar), pctStr)
}

// RenderCompactBar renders a bare bar without brackets or percentage,
// for dense listings. When dim is true the bar uses the muted style.
func RenderCompactBar(pct float64, width int, dim bool) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	if dim {
		return StyleDim.Render(bar)
	}
	return progressStyle(pct)(bar)
}
