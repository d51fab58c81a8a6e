package cli

import (
	"context"
	"fmt"

	"github.com/lvanderveer/tally/internal/cli/formatter"
	"github.com/lvanderveer/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(
		newUserListCmd(app),
		newUserAddCmd(app),
	)

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatUserList(users))
			return nil
		},
	}
}

func newUserAddCmd(app *App) *cobra.Command {
	var email, name, role, reportsTo string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			u := &domain.User{
				Email:    email,
				FullName: name,
				Role:     domain.Role(role),
			}
			if reportsTo != "" {
				manager, err := app.Users.GetByEmail(ctx, reportsTo)
				if err != nil {
					return fmt.Errorf("manager %q: %w", reportsTo, err)
				}
				u.ReportsTo = manager.ID
			}

			if err := app.Users.Create(ctx, u); err != nil {
				return err
			}

			fmt.Printf("Created user %s <%s> (%s)\n", u.FullName, u.Email, u.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleEmployee), "Role (Employee|Manager|Admin)")
	cmd.Flags().StringVar(&reportsTo, "reports-to", "", "Manager's email")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
