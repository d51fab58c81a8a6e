package cli

import (
	"context"
	"fmt"

	"github.com/lvanderveer/tally/internal/cli/formatter"
	"github.com/lvanderveer/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review submitted timesheets",
	}

	cmd.AddCommand(
		newReviewListCmd(app),
		newReviewApproveCmd(app),
		newReviewRejectCmd(app),
	)

	return cmd
}

// ownerNames builds a user id to display name map for review output.
func ownerNames(ctx context.Context, app *App) (map[string]string, error) {
	users, err := app.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	return names, nil
}

func newReviewListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List timesheets waiting for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pending, err := app.Reviews.ListPending(ctx)
			if err != nil {
				return err
			}
			names, err := ownerNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatPending(pending, names))
			return nil
		},
	}
}

// decide runs an approve or reject against a queue position or sheet id.
func decide(app *App, cmd *cobra.Command, ref string,
	fn func(ctx context.Context, actor *domain.User, id string) (*domain.Timesheet, error)) error {
	ctx := context.Background()
	actor, err := resolveActor(ctx, app, cmd)
	if err != nil {
		return err
	}
	pending, err := app.Reviews.ListPending(ctx)
	if err != nil {
		return err
	}
	id, err := resolveSheetRef(pending, ref)
	if err != nil {
		return err
	}

	ts, err := fn(ctx, actor, id)
	if err != nil {
		return err
	}

	names, err := ownerNames(ctx, app)
	if err != nil {
		return err
	}
	fmt.Print(formatter.FormatDecision(ts, names))
	return nil
}

func newReviewApproveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve SHEET",
		Short: "Approve a submitted timesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decide(app, cmd, args[0], app.Reviews.Approve)
		},
	}
}

func newReviewRejectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reject SHEET",
		Short: "Reject a submitted timesheet so the owner can rework it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decide(app, cmd, args[0], app.Reviews.Reject)
		},
	}
}
