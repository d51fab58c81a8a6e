package formatter

import (
	"fmt"
	"strings"

	"github.com/lvanderveer/tally/internal/domain"
)

// FormatPending renders the review queue. owners maps user ids to display
// names; sheets from unknown owners show the raw id.
func FormatPending(sheets []*domain.Timesheet, owners map[string]string) string {
	var b strings.Builder
	b.WriteString(Header("Pending review"))
	b.WriteString("\n")

	if len(sheets) == 0 {
		b.WriteString(Dim("Nothing waiting for review.") + "\n")
		return b.String()
	}

	headers := []string{"#", "OWNER", "WEEK", "SUBMITTED", "HOURS", "ID"}
	aligns := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignLeft}

	rows := make([][]string, 0, len(sheets))
	for i, ts := range sheets {
		owner := owners[ts.OwnerUserID]
		if owner == "" {
			owner = ts.OwnerUserID
		}
		submitted := "-"
		if ts.SubmittedAt != nil {
			submitted = ts.SubmittedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			Bold(owner),
			ts.WeekKey(),
			Dim(submitted),
			domain.FormatHours(domain.WeekTotal(ts)),
			Dim(shortID(ts.ID)),
		})
	}

	b.WriteString(RenderAlignedTable(headers, rows, aligns))
	return b.String()
}

// FormatDecision renders the one-line outcome of an approve or reject.
func FormatDecision(ts *domain.Timesheet, owners map[string]string) string {
	owner := owners[ts.OwnerUserID]
	if owner == "" {
		owner = ts.OwnerUserID
	}
	return fmt.Sprintf("%s %s for week %s (%s h)\n",
		StatusBadge(ts.Status),
		Bold(owner),
		ts.WeekKey(),
		domain.FormatHours(domain.WeekTotal(ts)))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
