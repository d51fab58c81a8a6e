package formatter

import (
	"fmt"
	"strings"

	"github.com/lvanderveer/tally/internal/domain"
)

// FormatWeek renders a timesheet as a grid: one line per assignment row,
// grouped under project headings, with day columns Mon through Sun and
// row, day, and week totals. Names come from the catalog index; unknown
// ids fall back to "Unknown".
func FormatWeek(ts *domain.Timesheet, names domain.NameIndex) string {
	var b strings.Builder

	title := fmt.Sprintf("Week of %s", ts.WeekKey())
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(StatusBadge(ts.Status))
	b.WriteString("\n\n")

	if len(ts.Rows) == 0 {
		b.WriteString(Dim("No assignments yet. Add one with 'week add-row'.") + "\n")
		return b.String()
	}

	headers := make([]string, 0, 2+domain.DaysPerWeek+1)
	headers = append(headers, "#", "TASK")
	for _, day := range domain.DayNames {
		headers = append(headers, day)
	}
	headers = append(headers, "TOTAL")

	aligns := make([]Align, len(headers))
	for i := 2; i < len(headers); i++ {
		aligns[i] = AlignRight
	}

	rows := make([][]string, 0, len(ts.Rows)+2)

	position := 0
	for _, group := range domain.GroupRowsByProject(ts) {
		heading := make([]string, len(headers))
		heading[1] = StylePurple.Bold(true).Render(names.ProjectName(group.ProjectID))
		rows = append(rows, heading)

		for _, row := range group.Rows {
			position++
			line := make([]string, 0, len(headers))
			line = append(line,
				Dim(fmt.Sprintf("%d", position)),
				"  "+names.SubProjectName(row.SubProjectID),
			)
			for _, entry := range row.Entries {
				line = append(line, hoursCell(entry))
			}
			line = append(line, Bold(domain.FormatHours(domain.RowTotal(row))))
			rows = append(rows, line)
		}
	}

	totals := make([]string, 0, len(headers))
	totals = append(totals, "", StyleHeader.Render("TOTAL"))
	for day := 0; day < domain.DaysPerWeek; day++ {
		totals = append(totals, Bold(domain.FormatHours(domain.DayTotal(ts, day))))
	}
	totals = append(totals, StyleHeader.Render(domain.FormatHours(domain.WeekTotal(ts))))
	rows = append(rows, totals)

	b.WriteString(RenderAlignedTable(headers, rows, aligns))

	if domain.UnderFullTime(ts) {
		b.WriteString("\n")
		msg := fmt.Sprintf("Logged %s of %s full-time hours.",
			domain.FormatHours(domain.WeekTotal(ts)),
			domain.FormatHours(domain.FullTimeWeekHours))
		b.WriteString(StyleYellow.Render(msg) + "\n")
	}

	if notes := collectNotes(ts, names); notes != "" {
		b.WriteString("\n")
		b.WriteString(notes)
	}

	return b.String()
}

// hoursCell renders one day cell. Zero hours render dim, and a note on the
// entry is flagged with an asterisk.
func hoursCell(entry domain.Entry) string {
	text := domain.FormatHours(entry.Hours)
	if entry.Notes != "" {
		text += "*"
	}
	if entry.Hours == 0 && entry.Notes == "" {
		return Dim("-")
	}
	return StyleFg.Render(text)
}

// collectNotes lists the noted entries below the grid, one per line.
func collectNotes(ts *domain.Timesheet, names domain.NameIndex) string {
	var b strings.Builder
	for _, row := range ts.Rows {
		for _, entry := range row.Entries {
			if entry.Notes == "" {
				continue
			}
			label := fmt.Sprintf("%s %s", domain.DayNames[entry.DayIndex],
				names.SubProjectName(row.SubProjectID))
			b.WriteString(fmt.Sprintf("%s %s\n", Dim("*"+label+":"), entry.Notes))
		}
	}
	return b.String()
}
