package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lvanderveer/tally/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addWeekFlag registers the shared --week flag on a flag set.
func addWeekFlag(fs *pflag.FlagSet) {
	fs.String("week", "", "Week start Monday (YYYY-MM-DD, default: current week)")
}

// resolveActor resolves the acting user from the --user flag or, when the
// flag is empty, the TALLY_USER environment variable.
func resolveActor(ctx context.Context, app *App, cmd *cobra.Command) (*domain.User, error) {
	email, _ := cmd.Flags().GetString("user")
	if email == "" {
		email = os.Getenv("TALLY_USER")
	}
	if email == "" {
		return nil, fmt.Errorf("no acting user: pass --user or set TALLY_USER")
	}
	u, err := app.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", email, err)
	}
	return u, nil
}

// resolveWeek resolves the --week flag to a Monday key. An empty flag
// means the week containing today.
func resolveWeek(cmd *cobra.Command) (string, error) {
	week, _ := cmd.Flags().GetString("week")
	if week == "" {
		return domain.MondayOf(time.Now()).Format(domain.WeekLayout), nil
	}
	parsed, err := domain.ParseWeekStart(week)
	if err != nil {
		return "", err
	}
	return parsed.Format(domain.WeekLayout), nil
}

// displayRows flattens the sheet's rows in the order the grid shows them,
// so numeric positions in commands match what the user sees.
func displayRows(ts *domain.Timesheet) []*domain.AssignmentRow {
	var rows []*domain.AssignmentRow
	for _, group := range domain.GroupRowsByProject(ts) {
		rows = append(rows, group.Rows...)
	}
	return rows
}

// resolveRowID resolves a row identifier which can be:
//   - A 1-based grid position as shown by "week show"
//   - A row ID or unambiguous row ID prefix
func resolveRowID(ts *domain.Timesheet, input string) (string, error) {
	rows := displayRows(ts)

	if pos, err := strconv.Atoi(input); err == nil {
		if pos < 1 || pos > len(rows) {
			return "", fmt.Errorf("row #%d out of range (sheet has %d rows)", pos, len(rows))
		}
		return rows[pos-1].RowID, nil
	}

	var matches []string
	for _, row := range rows {
		if row.RowID == input {
			return row.RowID, nil
		}
		if strings.HasPrefix(row.RowID, input) {
			matches = append(matches, row.RowID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("row not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("row ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseDay parses a day column given as an index 0-6 or a day name such
// as "Wed" or "wednesday".
func parseDay(input string) (int, error) {
	if idx, err := strconv.Atoi(input); err == nil {
		if idx < 0 || idx >= domain.DaysPerWeek {
			return 0, fmt.Errorf("day index %d out of range 0-%d", idx, domain.DaysPerWeek-1)
		}
		return idx, nil
	}
	for i, name := range domain.DayNames {
		if strings.EqualFold(input, name) || strings.HasPrefix(strings.ToLower(fullDayNames[i]), strings.ToLower(input)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown day %q (use Mon-Sun or 0-6)", input)
}

var fullDayNames = [domain.DaysPerWeek]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// resolveAssignment resolves project and sub-project references given as
// ids, codes, or names against the catalog.
func resolveAssignment(ctx context.Context, app *App, projectInput, subInput string) (string, string, error) {
	projects, err := app.Catalog.List(ctx)
	if err != nil {
		return "", "", err
	}

	var project *domain.Project
	for _, p := range projects {
		if p.ID == projectInput || strings.EqualFold(p.Code, projectInput) || strings.EqualFold(p.Name, projectInput) {
			project = p
			break
		}
	}
	if project == nil {
		return "", "", fmt.Errorf("project not found: %q (see 'tally project list')", projectInput)
	}

	for _, sp := range project.SubProjects {
		if sp.ID == subInput || strings.EqualFold(sp.Code, subInput) || strings.EqualFold(sp.Name, subInput) {
			return project.ID, sp.ID, nil
		}
	}
	return "", "", fmt.Errorf("sub-project not found in %s: %q", project.Name, subInput)
}

// resolveSheetRef resolves a review target: a 1-based queue position from
// "review list" or a timesheet ID prefix.
func resolveSheetRef(pending []*domain.Timesheet, input string) (string, error) {
	if pos, err := strconv.Atoi(input); err == nil {
		if pos < 1 || pos > len(pending) {
			return "", fmt.Errorf("queue position #%d out of range (%d pending)", pos, len(pending))
		}
		return pending[pos-1].ID, nil
	}

	var matches []string
	for _, ts := range pending {
		if ts.ID == input {
			return ts.ID, nil
		}
		if strings.HasPrefix(ts.ID, input) {
			matches = append(matches, ts.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no pending timesheet matches %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("timesheet ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
