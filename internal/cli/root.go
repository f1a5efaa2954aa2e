package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexmarten/strive/internal/cli/formatter"
	"github.com/alexmarten/strive/internal/domain"
	"github.com/alexmarten/strive/internal/identity"
	"github.com/alexmarten/strive/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals    service.GoalService
	Metrics  service.MetricsService
	Settings service.SettingsService

	// Auth is nil when the identity provider is not configured; auth
	// commands report that instead of failing on a nil client.
	Auth identity.Client

	// ChartWidth controls progress bar and chart widths.
	ChartWidth int

	// DefaultSort orders goal listings when no --sort flag is given.
	DefaultSort domain.SortKey

	// IsInteractive reports whether stdin is a terminal. Forms and
	// confirmation prompts are skipped when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) chartWidth() int {
	if a.ChartWidth < 2 {
		return 30
	}
	return a.ChartWidth
}

func (a *App) defaultSort() domain.SortKey {
	if _, err := domain.ParseSortKey(string(a.DefaultSort)); err != nil {
		return domain.SortByProgress
	}
	return a.DefaultSort
}

// NewRootCmd creates the top-level "strive" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "strive",
		Short: "Track personal goals from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWelcome(cmd, app)
		},
	}

	root.AddCommand(
		newGoalCmd(app),
		newStatsCmd(app),
		newSettingsCmd(app),
		newAuthCmd(app),
		newDashboardCmd(app),
	)

	return root
}

// runWelcome renders the landing screen. On the very first run it also
// points at the sample-goal seeder.
func runWelcome(cmd *cobra.Command, app *App) error {
	first, err := app.Settings.FirstRun(context.Background())
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(formatter.Bold("Achieve Your Goals") + "\n\n")
	b.WriteString("Track progress, visualize success, and stay motivated.\n\n")
	b.WriteString(formatter.Dim("  strive goal add        create a goal") + "\n")
	b.WriteString(formatter.Dim("  strive goal list       see where you stand") + "\n")
	b.WriteString(formatter.Dim("  strive stats           charts and history") + "\n")
	b.WriteString(formatter.Dim("  strive dashboard       interactive view") + "\n")

	if first {
		b.WriteString("\n" + formatter.StyleYellow.Render("First time here? Try `strive settings seed` for example goals."))
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Strive", b.String()))
	return nil
}
