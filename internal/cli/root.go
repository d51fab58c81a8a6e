package cli

import (
	"github.com/lvanderveer/tally/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Timesheets service.TimesheetService
	Reviews    service.ReviewService
	Catalog    service.CatalogService
	Users      service.UserService

	// IsInteractive reports whether stdin is a terminal. Confirmation
	// prompts and the grid editor are only offered when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tally" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tally",
		Short: "Weekly timesheet tracker with an approval workflow",
	}

	root.PersistentFlags().String("user", "", "Acting user's email (defaults to $TALLY_USER)")

	root.AddCommand(
		newWeekCmd(app),
		newReviewCmd(app),
		newProjectCmd(app),
		newUserCmd(app),
		newExportCmd(app),
	)

	return root
}
