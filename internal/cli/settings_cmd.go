package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexmarten/strive/internal/backup"
	"github.com/alexmarten/strive/internal/cli/formatter"
	"github.com/alexmarten/strive/internal/domain"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Preferences and data management",
	}

	cmd.AddCommand(
		newSettingsThemeCmd(app),
		newSettingsSeedCmd(app),
		newSettingsClearCmd(app),
		newSettingsExportCmd(app),
		newSettingsImportCmd(app),
	)

	return cmd
}

func newSettingsThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark|system]",
		Short: "Show or set the color theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				theme, err := app.Settings.Theme(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", formatter.Bold(string(theme)))
				return nil
			}

			theme, err := domain.ParseTheme(args[0])
			if err != nil {
				return err
			}
			if err := app.Settings.SetTheme(ctx, theme); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", formatter.Bold(string(theme)))
			return nil
		},
	}
}

func newSettingsSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add example goals to explore the app",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Settings.SeedSampleGoals(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %d example goals:\n", len(goals))
			for _, g := range goals {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", formatter.Bold(g.Title), formatter.CategoryBadge(g.Category))
			}
			return nil
		},
	}
}

func newSettingsExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write all goals and history to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, history, err := app.Settings.ExportData(context.Background())
			if err != nil {
				return err
			}

			if err := backup.WriteFile(args[0], backup.Export(goals, history)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d goals to %s\n", len(goals), args[0])
			return nil
		},
	}
}

func newSettingsImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all goals and history from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := backup.ReadFile(args[0])
			if err != nil {
				return err
			}

			if errs := backup.ValidateFile(f); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleRed.Render("  "+e.Error()))
				}
				return fmt.Errorf("backup file has %d problems", len(errs))
			}

			goals, history, err := backup.Convert(f)
			if err != nil {
				return err
			}

			if err := app.Settings.ImportData(context.Background(), goals, history); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d goals from %s\n", len(goals), args[0])
			return nil
		},
	}
}

func newSettingsClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all goals and history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				confirmed := false
				if err := confirmForm("Delete all goals and their history?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Settings.ClearGoals(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All goals cleared.")
			return nil
		},
	}
}
