package export

import (
	"encoding/csv"
	"io"

	"github.com/lvanderveer/tally/internal/domain"
)

// ToCSV writes one line per day cell with logged hours or a note. Project
// and sub-project ids resolve through the catalog index; unknown ids fall
// back to "Unknown".
func ToCSV(w io.Writer, ts *domain.Timesheet, names domain.NameIndex) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"Week", "Status", "Project", "Sub-project", "Day", "Date", "Hours", "Notes"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range flatten(ts, names) {
		row := []string{
			rec.Week,
			rec.Status,
			rec.Project,
			rec.SubProject,
			rec.Day,
			rec.Date,
			domain.FormatHours(rec.Hours),
			rec.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
