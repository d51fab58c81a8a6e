package cli

import (
	"context"
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/lvanderveer/tally/internal/cli/formatter"
	"github.com/lvanderveer/tally/internal/domain"
	"github.com/spf13/cobra"
)

const (
	chartWidth  = 56
	chartHeight = 12
)

// rowPalette cycles through accent colors so stacked segments stay
// distinguishable per assignment row.
var rowPalette = []lipgloss.Color{
	formatter.ColorBlue,
	formatter.ColorGreen,
	formatter.ColorPurple,
	formatter.ColorYellow,
	formatter.ColorRed,
}

func newWeekChartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Show the week's hours as a bar chart per day",
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

			fmt.Println(formatter.Header(fmt.Sprintf("Week of %s", ts.WeekKey())))
			fmt.Println(renderWeekChart(ts, names))
			fmt.Printf("%s %s h\n", formatter.Bold("Total:"), domain.FormatHours(domain.WeekTotal(ts)))
			return nil
		},
	}
}

// renderWeekChart draws one stacked bar per weekday, one segment per
// assignment row that logged hours that day.
func renderWeekChart(ts *domain.Timesheet, names domain.NameIndex) string {
	chart := barchart.New(chartWidth, chartHeight)

	bars := make([]barchart.BarData, 0, domain.DaysPerWeek)
	for day := 0; day < domain.DaysPerWeek; day++ {
		var values []barchart.BarValue
		for i, row := range displayRows(ts) {
			hours := row.Entries[day].Hours
			if hours == 0 {
				continue
			}
			values = append(values, barchart.BarValue{
				Name:  names.SubProjectName(row.SubProjectID),
				Value: hours,
				Style: lipgloss.NewStyle().Foreground(rowPalette[i%len(rowPalette)]),
			})
		}
		if len(values) == 0 {
			values = []barchart.BarValue{{Value: 0, Style: formatter.StyleDim}}
		}
		bars = append(bars, barchart.BarData{
			Label:  domain.DayNames[day],
			Values: values,
		})
	}

	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}
