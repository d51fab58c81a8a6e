package domain

import (
	"fmt"
	"time"
)

// WeekLayout is the canonical week key format: the Monday date.
const WeekLayout = "2006-01-02"

// ParseWeekStart parses a YYYY-MM-DD week key and verifies it is a Monday.
func ParseWeekStart(s string) (time.Time, error) {
	t, err := time.Parse(WeekLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("week start %q: %w", s, ErrInvalidInput)
	}
	if t.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("week start %q is a %s, not a Monday: %w", s, t.Weekday(), ErrInvalidInput)
	}
	return t, nil
}

// MondayOf returns the Monday of the week containing t, at midnight UTC.
func MondayOf(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekKey returns the timesheet's week identifier (its Monday date).
func (ts *Timesheet) WeekKey() string {
	return ts.WeekStart.Format(WeekLayout)
}
