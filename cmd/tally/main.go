package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lvanderveer/tally/internal/cli"
	"github.com/lvanderveer/tally/internal/db"
	"github.com/lvanderveer/tally/internal/repository"
	"github.com/lvanderveer/tally/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tally/tally.db
	dbPath := os.Getenv("TALLY_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tally", "tally.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	timesheetRepo := repository.NewSQLiteTimesheetRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Timesheets: service.NewTimesheetService(timesheetRepo, uow),
		Reviews:    service.NewReviewService(timesheetRepo, uow),
		Catalog:    service.NewCatalogService(projectRepo),
		Users:      service.NewUserService(userRepo),
	}

	// Detect interactive terminal for prompts and the grid editor.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
