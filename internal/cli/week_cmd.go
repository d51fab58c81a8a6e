package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lvanderveer/tally/internal/cli/formatter"
	"github.com/lvanderveer/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "View and edit your weekly timesheet",
	}

	addWeekFlag(cmd.PersistentFlags())

	cmd.AddCommand(
		newWeekShowCmd(app),
		newWeekAddRowCmd(app),
		newWeekRemoveRowCmd(app),
		newWeekSetCmd(app),
		newWeekNoteCmd(app),
		newWeekSaveCmd(app),
		newWeekSubmitCmd(app),
		newWeekChartCmd(app),
		newWeekEditCmd(app),
	)

	return cmd
}

// loadWeek resolves the actor and week flag, then fetches the sheet.
func loadWeek(ctx context.Context, app *App, cmd *cobra.Command) (*domain.Timesheet, *domain.User, string, error) {
	actor, err := resolveActor(ctx, app, cmd)
	if err != nil {
		return nil, nil, "", err
	}
	week, err := resolveWeek(cmd)
	if err != nil {
		return nil, nil, "", err
	}
	ts, err := app.Timesheets.GetWeek(ctx, actor.ID, week)
	if err != nil {
		return nil, nil, "", err
	}
	return ts, actor, week, nil
}

func printWeek(ctx context.Context, app *App, ts *domain.Timesheet) error {
	names, err := app.Catalog.Names(ctx)
	if err != nil {
		return err
	}
	fmt.Println(formatter.FormatWeek(ts, names))
	return nil
}

func newWeekShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the week's grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ts, _, _, err := loadWeek(ctx, app, cmd)
			if err != nil {
				return err
			}
			return printWeek(ctx, app, ts)
		},
	}
}

func newWeekAddRowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add-row PROJECT SUB_PROJECT",
		Short: "Add an assignment row to the week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := resolveActor(ctx, app, cmd)
			if err != nil {
				return err
			}
			week, err := resolveWeek(cmd)
			if err != nil {
				return err
			}
			projectID, subProjectID, err := resolveAssignment(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			ts, err := app.Timesheets.AddRow(ctx, actor.ID, week, projectID, subProjectID)
			if err != nil {
				return err
			}
			return printWeek(ctx, app, ts)
		},
	}
}

func newWeekRemoveRowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-row ROW",
		Short: "Remove an assignment row and its hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ts, actor, week, err := loadWeek(ctx, app, cmd)
			if err != nil {
				return err
			}
			rowID, err := resolveRowID(ts, args[0])
			if err != nil {
				return err
			}

			ts, err = app.Timesheets.RemoveRow(ctx, actor.ID, week, rowID)
			if err != nil {
				return err
			}
			return printWeek(ctx, app, ts)
		},
	}
}

func newWeekSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set ROW DAY HOURS",
		Short: "Set the hours for one cell",
		Long:  "Set the hours for one cell. ROW is a grid position or row ID, DAY is Mon-Sun or 0-6, and HOURS is a half-hour value such as 7.5. An empty or non-numeric value clears the cell.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ts, actor, week, err := loadWeek(ctx, app, cmd)
			if err != nil {
				return err
			}
			rowID, err := resolveRowID(ts, args[0])
			if err != nil {
				return err
			}
			day, err := parseDay(args[1])
			if err != nil {
				return err
			}

			ts, err = app.Timesheets.SetHours(ctx, actor.ID, week, rowID, day, args[2])
			if err != nil {
				return err
			}
			return printWeek(ctx, app, ts)
		},
	}
}

func newWeekNoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "note ROW DAY TEXT...",
		Short: "Attach a note to one cell",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ts, actor, week, err := loadWeek(ctx, app, cmd)
			if err != nil {
				return err
			}
			rowID, err := resolveRowID(ts, args[0])
			if err != nil {
				return err
			}
			day, err := parseDay(args[1])
			if err != nil {
				return err
			}
			text := strings.Join(args[2:], " ")

			ts, err = app.Timesheets.SetNote(ctx, actor.ID, week, rowID, day, text)
			if err != nil {
				return err
			}
			return printWeek(ctx, app, ts)
		},
	}
}

func newWeekSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the week as it stands (reopens a rejected week as Draft)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ts, _, _, err := loadWeek(ctx, app, cmd)
			if err != nil {
				return err
			}

			ts, err = app.Timesheets.Save(ctx, ts)
			if err != nil {
				return err
			}
			return printWeek(ctx, app, ts)
		},
	}
}

func newWeekSubmitCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit the week for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ts, _, _, err := loadWeek(ctx, app, cmd)
			if err != nil {
				return err
			}

			total := domain.WeekTotal(ts)
			if !yes && app.IsInteractive != nil && app.IsInteractive() {
				prompt := fmt.Sprintf("Submit week %s for review?", ts.WeekKey())
				detail := fmt.Sprintf("%s hours across %d rows. The sheet locks until it is reviewed.",
					domain.FormatHours(total), len(ts.Rows))
				confirmed := false
				if err := confirmForm(prompt, detail, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Submission cancelled.")
					return nil
				}
			}

			ts, err = app.Timesheets.SaveAndSubmit(ctx, ts)
			if err != nil {
				return err
			}

			fmt.Printf("%s week %s (%s h)\n", formatter.StatusBadge(ts.Status), ts.WeekKey(), domain.FormatHours(total))
			if domain.UnderFullTime(ts) {
				fmt.Println(formatter.StyleYellow.Render("Note: the week is under full-time hours."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newWeekEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the week's grid interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("'week edit' needs a terminal; use 'week set' in scripts")
			}
			ctx := context.Background()
			ts, _, _, err := loadWeek(ctx, app, cmd)
			if err != nil {
				return err
			}
			names, err := app.Catalog.Names(ctx)
			if err != nil {
				return err
			}
			return runWeekEditor(ctx, app, ts, names)
		},
	}
}
