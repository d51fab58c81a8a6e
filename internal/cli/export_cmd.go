package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lvanderveer/tally/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a week's entries as CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ts, _, _, err := loadWeek(ctx, app, cmd)
			if err != nil {
				return err
			}
			names, err := app.Catalog.Names(ctx)
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "csv":
				err = export.ToCSV(w, ts, names)
			case "json":
				err = export.ToJSON(w, ts, names)
			default:
				return fmt.Errorf("unknown format %q (use csv or json)", format)
			}
			if err != nil {
				return err
			}

			if out != "" {
				fmt.Printf("Exported week %s to %s\n", ts.WeekKey(), out)
			}
			return nil
		},
	}

	addWeekFlag(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "csv", "Output format (csv|json)")
	cmd.Flags().StringVar(&out, "out", "", "Write to a file instead of stdout")

	return cmd
}
