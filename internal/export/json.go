package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lvanderveer/tally/internal/domain"
)

type weekExport struct {
	ExportedAt string       `json:"exported_at"`
	Week       string       `json:"week"`
	Status     string       `json:"status"`
	TotalHours float64      `json:"total_hours"`
	Entries    []cellRecord `json:"entries"`
}

type cellRecord struct {
	Week       string  `json:"-"`
	Status     string  `json:"-"`
	Project    string  `json:"project"`
	SubProject string  `json:"sub_project"`
	Day        string  `json:"day"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Notes      string  `json:"notes,omitempty"`
}

// ToJSON writes the week as an indented JSON document with one entry per
// day cell that has hours or a note.
func ToJSON(w io.Writer, ts *domain.Timesheet, names domain.NameIndex) error {
	doc := weekExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Week:       ts.WeekKey(),
		Status:     string(ts.Status),
		TotalHours: domain.WeekTotal(ts),
		Entries:    flatten(ts, names),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// flatten turns the grid into one record per cell that carries hours or a
// note, in display order.
func flatten(ts *domain.Timesheet, names domain.NameIndex) []cellRecord {
	records := make([]cellRecord, 0)
	for _, group := range domain.GroupRowsByProject(ts) {
		for _, row := range group.Rows {
			for _, entry := range row.Entries {
				if entry.Hours == 0 && entry.Notes == "" {
					continue
				}
				date := ts.WeekStart.AddDate(0, 0, entry.DayIndex)
				records = append(records, cellRecord{
					Week:       ts.WeekKey(),
					Status:     string(ts.Status),
					Project:    names.ProjectName(row.ProjectID),
					SubProject: names.SubProjectName(row.SubProjectID),
					Day:        domain.DayNames[entry.DayIndex],
					Date:       date.Format(domain.WeekLayout),
					Hours:      entry.Hours,
					Notes:      entry.Notes,
				})
			}
		}
	}
	return records
}
