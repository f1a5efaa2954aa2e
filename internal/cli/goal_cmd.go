package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexmarten/strive/internal/cli/formatter"
	"github.com/alexmarten/strive/internal/domain"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalInspectCmd(app),
		newGoalProgressCmd(app),
		newGoalCommentCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var title, description, target, deadline, notes string
	category := string(domain.CategoryPersonal)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := goalFormValues{
				Title:       title,
				Description: description,
				Target:      target,
				Deadline:    deadline,
				Category:    category,
				Notes:       notes,
			}

			// No flags on an interactive terminal opens the guided form.
			if title == "" && target == "" && app.interactive() {
				v.Category = string(domain.CategoryPersonal)
				if err := newGoalForm(&v).Run(); err != nil {
					return err
				}
			}

			g, err := goalFromValues(v)
			if err != nil {
				return err
			}

			if err := app.Goals.Create(context.Background(), g); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s [%s] %s\n",
				formatter.Bold(g.Title), g.DisplayID(), formatter.CategoryBadge(g.Category))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")
	cmd.Flags().StringVar(&target, "target", "", "Target value to reach")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().Var(newCategoryFlag(&category, false), "category", "Category (Health, Career, Education, Personal, Financial, Other)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

// goalFromValues parses form/flag strings into an unvalidated goal.
// Domain validation happens in the service.
func goalFromValues(v goalFormValues) (*domain.Goal, error) {
	g := &domain.Goal{
		Title:       v.Title,
		Description: v.Description,
		Notes:       v.Notes,
		Category:    domain.Category(v.Category),
	}

	if v.Target != "" {
		n, err := strconv.ParseFloat(v.Target, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid target %q: %w", v.Target, err)
		}
		g.Target = n
	}

	if v.Deadline != "" {
		d, err := time.Parse("2006-01-02", v.Deadline)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline %q: %w", v.Deadline, err)
		}
		g.Deadline = d
	}

	return g, nil
}

func newGoalListCmd(app *App) *cobra.Command {
	category := domain.CategoryAll
	sortBy := string(app.defaultSort())

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.List(context.Background(), category, domain.SortKey(sortBy))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGoalList(goals, app.chartWidth()/2))
			return nil
		},
	}

	cmd.Flags().Var(newCategoryFlag(&category, true), "category", "Filter by category (or All)")
	cmd.Flags().Var(newSortFlag(&sortBy), "sort", "Sort by: progress or deadline")

	return cmd
}

func newGoalInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show goal details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}

			g, err := app.Goals.Get(ctx, id)
			if err != nil {
				return err
			}
			history, err := app.Goals.History(ctx, id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGoalInspect(g, history, app.chartWidth()))
			return nil
		},
	}
}

func newGoalProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress ID VALUE",
		Short: "Set a goal's current value",
		Long: `Set the current value of a goal. Values are clamped to [0, target]
and progress is recomputed. Crossing the 50%, 75% or 100% mark prints
a milestone celebration.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}

			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			upd, err := app.Goals.UpdateProgress(ctx, id, value)
			if err != nil {
				return err
			}

			g := upd.Goal
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s\n",
				formatter.Bold(g.Title),
				formatter.RenderProgress(g.Progress/100, app.chartWidth()),
				formatter.Dim(formatter.FormatAmount(g.Current, g.Target)))

			if upd.MilestoneHit {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.MilestoneToast(upd.Milestone))
			}
			return nil
		},
	}
}

func newGoalCommentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "comment ID TEXT...",
		Short: "Add a comment to a goal",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			if err := app.Goals.AddComment(ctx, id, text); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Comment added.")
			return nil
		},
	}
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}

			g, err := app.Goals.Get(ctx, id)
			if err != nil {
				return err
			}

			if app.interactive() {
				confirmed := false
				if err := confirmForm(fmt.Sprintf("Delete %q?", g.Title), &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Goals.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed goal %s\n", formatter.Bold(g.Title))
			return nil
		},
	}
}
