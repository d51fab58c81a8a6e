package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lvanderveer/tally/internal/cli/formatter"
	"github.com/lvanderveer/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the project catalog",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectAddCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects and their sub-projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Catalog.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, code string
	var subs []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project with its sub-projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				Name: name,
				Code: strings.ToLower(code),
			}
			for _, s := range subs {
				parts := strings.SplitN(s, "=", 2)
				if len(parts) != 2 {
					return fmt.Errorf("invalid --sub format %q, expected code=name", s)
				}
				p.SubProjects = append(p.SubProjects, domain.SubProject{
					Code: strings.ToLower(parts[0]),
					Name: parts[1],
				})
			}

			if err := app.Catalog.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s] with %d sub-projects\n", p.Name, p.Code, len(p.SubProjects))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&code, "code", "", "Short project code")
	cmd.Flags().StringArrayVar(&subs, "sub", nil, "Sub-project (code=name, repeatable)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}
