package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is one day's logged hours and note for one assignment row.
type Entry struct {
	DayIndex int
	Hours    float64
	Notes    string
}

// AssignmentRow pairs a project and sub-project with a full week of entries.
// Rows are identified by a generated RowID rather than their position, so
// callers can keep a handle across removals and reordering.
type AssignmentRow struct {
	RowID        string
	ProjectID    string
	SubProjectID string
	Location     string
	Entries      []Entry
}

// NewAssignmentRow creates a row with seven zero-hour, empty-note entries.
func NewAssignmentRow(projectID, subProjectID string) *AssignmentRow {
	entries := make([]Entry, DaysPerWeek)
	for i := range entries {
		entries[i].DayIndex = i
	}
	return &AssignmentRow{
		RowID:        uuid.New().String(),
		ProjectID:    projectID,
		SubProjectID: subProjectID,
		Location:     "Remote",
		Entries:      entries,
	}
}

// Timesheet is one employee's record for one week: an ordered sequence of
// assignment rows plus a lifecycle status. A timesheet with an empty ID has
// never been saved.
type Timesheet struct {
	ID          string
	OwnerUserID string
	WeekStart   time.Time
	Rows        []*AssignmentRow
	Status      TimesheetStatus

	SubmittedAt *time.Time
	ApprovedAt  *time.Time
	ApprovedBy  string
	RejectedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTimesheet creates an empty Draft timesheet for the given owner and week.
func NewTimesheet(ownerUserID string, weekStart time.Time) *Timesheet {
	return &Timesheet{
		OwnerUserID: ownerUserID,
		WeekStart:   weekStart,
		Status:      StatusDraft,
	}
}

// Editable reports whether the timesheet accepts row and entry mutations.
// This is the single gate consulted by every mutation entry point.
func (ts *Timesheet) Editable() bool {
	return ts.Status == StatusDraft || ts.Status == StatusRejected
}

// RowByID returns the row with the given ID, or ErrRowNotFound.
func (ts *Timesheet) RowByID(rowID string) (*AssignmentRow, error) {
	for _, r := range ts.Rows {
		if r.RowID == rowID {
			return r, nil
		}
	}
	return nil, fmt.Errorf("row %q: %w", rowID, ErrRowNotFound)
}

// RowAt resolves a zero-based display position to a row.
func (ts *Timesheet) RowAt(index int) (*AssignmentRow, error) {
	if index < 0 || index >= len(ts.Rows) {
		return nil, fmt.Errorf("index %d with %d rows: %w", index, len(ts.Rows), ErrIndexOutOfRange)
	}
	return ts.Rows[index], nil
}

// AddRow appends a new zero-filled row for the pairing. Duplicate pairings
// are rejected, not merged.
func (ts *Timesheet) AddRow(projectID, subProjectID string) (*AssignmentRow, error) {
	if !ts.Editable() {
		return nil, fmt.Errorf("status %s: %w", ts.Status, ErrLocked)
	}
	for _, r := range ts.Rows {
		if r.ProjectID == projectID && r.SubProjectID == subProjectID {
			return nil, fmt.Errorf("pairing %s/%s: %w", projectID, subProjectID, ErrDuplicateRow)
		}
	}
	row := NewAssignmentRow(projectID, subProjectID)
	ts.Rows = append(ts.Rows, row)
	return row, nil
}

// RemoveRow deletes the row with the given ID, preserving the order of the
// remaining rows.
func (ts *Timesheet) RemoveRow(rowID string) error {
	if !ts.Editable() {
		return fmt.Errorf("status %s: %w", ts.Status, ErrLocked)
	}
	for i, r := range ts.Rows {
		if r.RowID == rowID {
			ts.Rows = append(ts.Rows[:i], ts.Rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("row %q: %w", rowID, ErrRowNotFound)
}

// SetHours parses raw and stores the result in the entry at dayIndex.
// Empty and non-numeric input coerce to zero; values outside [0, 24] or off
// the half-hour grid are rejected and the entry is left unchanged.
func (ts *Timesheet) SetHours(rowID string, dayIndex int, raw string) error {
	if !ts.Editable() {
		return fmt.Errorf("status %s: %w", ts.Status, ErrLocked)
	}
	row, err := ts.RowByID(rowID)
	if err != nil {
		return err
	}
	if dayIndex < 0 || dayIndex >= DaysPerWeek {
		return fmt.Errorf("day index %d: %w", dayIndex, ErrInvalidInput)
	}
	hours, err := ParseHours(raw)
	if err != nil {
		return err
	}
	row.Entries[dayIndex].Hours = hours
	return nil
}

// SetNote replaces the note text for the entry at dayIndex.
func (ts *Timesheet) SetNote(rowID string, dayIndex int, text string) error {
	if !ts.Editable() {
		return fmt.Errorf("status %s: %w", ts.Status, ErrLocked)
	}
	row, err := ts.RowByID(rowID)
	if err != nil {
		return err
	}
	if dayIndex < 0 || dayIndex >= DaysPerWeek {
		return fmt.Errorf("day index %d: %w", dayIndex, ErrInvalidInput)
	}
	row.Entries[dayIndex].Notes = text
	return nil
}

// Submit moves a Draft or Rejected timesheet to Submitted.
func (ts *Timesheet) Submit(now time.Time) error {
	if ts.Status != StatusDraft && ts.Status != StatusRejected {
		return fmt.Errorf("submit from %s: %w", ts.Status, ErrInvalidTransition)
	}
	ts.Status = StatusSubmitted
	ts.SubmittedAt = &now
	return nil
}

// Approve moves a Submitted timesheet to Approved. Row content is untouched.
func (ts *Timesheet) Approve(now time.Time, reviewerID string) error {
	if ts.Status != StatusSubmitted {
		return fmt.Errorf("approve from %s: %w", ts.Status, ErrInvalidTransition)
	}
	ts.Status = StatusApproved
	ts.ApprovedAt = &now
	ts.ApprovedBy = reviewerID
	return nil
}

// Reject moves a Submitted timesheet to Rejected, reopening it for edits.
func (ts *Timesheet) Reject(now time.Time) error {
	if ts.Status != StatusSubmitted {
		return fmt.Errorf("reject from %s: %w", ts.Status, ErrInvalidTransition)
	}
	ts.Status = StatusRejected
	ts.RejectedAt = &now
	return nil
}

// Clone returns a deep copy. Editors mutate the copy and hand it back to the
// service layer, so a cancelled edit never touches the loaded snapshot.
func (ts *Timesheet) Clone() *Timesheet {
	cp := *ts
	cp.Rows = make([]*AssignmentRow, len(ts.Rows))
	for i, r := range ts.Rows {
		rc := *r
		rc.Entries = append([]Entry(nil), r.Entries...)
		cp.Rows[i] = &rc
	}
	return &cp
}
