package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DeadlineDate formats a deadline as an absolute date.
func DeadlineDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// RelativeDeadline returns a human-friendly relative deadline string.
func RelativeDeadline(t time.Time) string {
	return RelativeDeadlineFrom(t, time.Now())
}

// RelativeDeadlineFrom returns a human-friendly relative deadline
// string from a reference time.
func RelativeDeadlineFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DeadlineStyled returns RelativeDeadline with urgency coloring: red
// when overdue or within 2 days, yellow within a week.
func DeadlineStyled(t time.Time) string {
	text := RelativeDeadline(t)
	days := int(math.Round(time.Until(t).Hours() / 24))

	switch {
	case days < 0:
		return StyleRed.Render(text)
	case days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatAmount renders a goal's current/target pair, dropping trailing
// zeros so whole numbers read cleanly.
func FormatAmount(current, target float64) string {
	return fmt.Sprintf("%s/%s", trimFloat(current), trimFloat(target))
}
