package domain

// Aggregation over the grid. All functions are pure and total: absent or
// empty inputs yield zero. WeekTotal(ts) == sum of DayTotal over all days
// == sum of RowTotal over all rows, by construction.

// RowTotal sums a row's seven entries.
func RowTotal(row *AssignmentRow) float64 {
	if row == nil {
		return 0
	}
	var total float64
	for _, e := range row.Entries {
		total += e.Hours
	}
	return total
}

// DayTotal sums the entries at dayIndex across all rows.
func DayTotal(ts *Timesheet, dayIndex int) float64 {
	if ts == nil || dayIndex < 0 || dayIndex >= DaysPerWeek {
		return 0
	}
	var total float64
	for _, row := range ts.Rows {
		total += row.Entries[dayIndex].Hours
	}
	return total
}

// WeekTotal sums every entry in the timesheet.
func WeekTotal(ts *Timesheet) float64 {
	if ts == nil {
		return 0
	}
	var total float64
	for _, row := range ts.Rows {
		total += RowTotal(row)
	}
	return total
}

// UnderFullTime reports the non-blocking advisory: the week has logged hours
// but fewer than the full-time threshold. It never gates submission.
func UnderFullTime(ts *Timesheet) bool {
	total := WeekTotal(ts)
	return total > 0 && total < FullTimeWeekHours
}
