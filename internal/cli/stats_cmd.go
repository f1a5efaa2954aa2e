package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexmarten/strive/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Charts over your goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare `strive stats` shows all three views.
			if err := runStatsCategories(cmd, app); err != nil {
				return err
			}
			if err := runStatsOverview(cmd, app); err != nil {
				return err
			}
			return runStatsHistory(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "categories",
			Short: "Goals per category",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runStatsCategories(cmd, app)
			},
		},
		&cobra.Command{
			Use:   "overview",
			Short: "Progress of each goal",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runStatsOverview(cmd, app)
			},
		},
		&cobra.Command{
			Use:   "history",
			Short: "Progress of each goal over time",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runStatsHistory(cmd, app)
			},
		},
	)

	return cmd
}

func runStatsCategories(cmd *cobra.Command, app *App) error {
	dist, err := app.Metrics.CategoryDistribution(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCategoryDistribution(dist, app.chartWidth()))
	return nil
}

func runStatsOverview(cmd *cobra.Command, app *App) error {
	overview, err := app.Metrics.ProgressOverview(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgressOverview(overview, app.chartWidth()))
	return nil
}

func runStatsHistory(cmd *cobra.Command, app *App) error {
	series, err := app.Metrics.TimeSeries(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTimeSeries(series))
	return nil
}
