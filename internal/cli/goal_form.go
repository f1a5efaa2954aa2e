package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexmarten/strive/internal/cli/formatter"
	"github.com/alexmarten/strive/internal/domain"
)

// striveHuhTheme returns a custom huh theme using the Gruvbox palette.
func striveHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// goalFormValues collects the string inputs of the add-goal form before
// they are parsed into a domain.Goal.
type goalFormValues struct {
	Title       string
	Description string
	Target      string
	Deadline    string
	Category    string
	Notes       string
}

// newGoalForm builds the interactive add-goal form.
func newGoalForm(v *goalFormValues) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		options = append(options, huh.NewOption(string(c), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to achieve?").
				Placeholder("e.g., Run a marathon").
				Value(&v.Title),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&v.Description),
			huh.NewInput().
				Title("Target value").
				Placeholder("e.g., 100").
				Validate(validatePositiveNumber).
				Value(&v.Target),
			huh.NewInput().
				Title("Deadline").
				Placeholder("YYYY-MM-DD").
				Validate(validateDate).
				Value(&v.Deadline),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&v.Category),
			huh.NewInput().
				Title("Notes").
				Placeholder("optional").
				Value(&v.Notes),
		),
	).WithTheme(striveHuhTheme()).WithShowHelp(false)
}

// confirmForm builds a yes/no prompt for destructive actions.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(striveHuhTheme()).WithShowHelp(false)
}

func validatePositiveNumber(s string) error {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}
