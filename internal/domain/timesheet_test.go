package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftSheet(t *testing.T) *Timesheet {
	t.Helper()
	week, err := ParseWeekStart("2026-08-31")
	require.NoError(t, err)
	return NewTimesheet("user-1", week)
}

func TestAddRow_InitializesSevenZeroEntries(t *testing.T) {
	ts := draftSheet(t)

	row, err := ts.AddRow("P1", "S1")
	require.NoError(t, err)
	require.NotEmpty(t, row.RowID)
	require.Len(t, row.Entries, DaysPerWeek)
	for i, e := range row.Entries {
		assert.Equal(t, i, e.DayIndex)
		assert.Zero(t, e.Hours)
		assert.Empty(t, e.Notes)
	}
	assert.Equal(t, "Remote", row.Location)
}

func TestAddRow_DuplicatePairingRejected(t *testing.T) {
	ts := draftSheet(t)

	_, err := ts.AddRow("P1", "S1")
	require.NoError(t, err)

	_, err = ts.AddRow("P1", "S1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateRow)
	assert.Len(t, ts.Rows, 1, "failed add must not change row count")
}

func TestAddRow_SameProjectDifferentSubProject(t *testing.T) {
	ts := draftSheet(t)

	_, err := ts.AddRow("P1", "S1")
	require.NoError(t, err)
	_, err = ts.AddRow("P1", "S2")
	require.NoError(t, err)
	assert.Len(t, ts.Rows, 2)
}

func TestRemoveRow_PreservesRemainingEntries(t *testing.T) {
	ts := draftSheet(t)

	r1, err := ts.AddRow("P1", "S1")
	require.NoError(t, err)
	r2, err := ts.AddRow("P2", "S2")
	require.NoError(t, err)
	require.NoError(t, ts.SetHours(r2.RowID, 3, "6.5"))

	require.NoError(t, ts.RemoveRow(r1.RowID))

	require.Len(t, ts.Rows, 1)
	assert.Equal(t, r2.RowID, ts.Rows[0].RowID)
	assert.Equal(t, 6.5, ts.Rows[0].Entries[3].Hours)
}

func TestRemoveRow_UnknownID(t *testing.T) {
	ts := draftSheet(t)

	err := ts.RemoveRow("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRowNotFound)
}

func TestRowAt_OutOfRange(t *testing.T) {
	ts := draftSheet(t)
	_, err := ts.RowAt(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, addErr := ts.AddRow("P1", "S1")
	require.NoError(t, addErr)
	_, err = ts.RowAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ts.RowAt(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSetHours_CoercionAndValidation(t *testing.T) {
	ts := draftSheet(t)
	row, err := ts.AddRow("P1", "S1")
	require.NoError(t, err)

	require.NoError(t, ts.SetHours(row.RowID, 0, "8"))
	assert.Equal(t, 8.0, row.Entries[0].Hours)

	// Empty and non-numeric input coerce to zero.
	require.NoError(t, ts.SetHours(row.RowID, 0, ""))
	assert.Zero(t, row.Entries[0].Hours)
	require.NoError(t, ts.SetHours(row.RowID, 0, "abc"))
	assert.Zero(t, row.Entries[0].Hours)

	// Out-of-range and off-grid values are rejected without touching the entry.
	require.NoError(t, ts.SetHours(row.RowID, 1, "7.5"))
	err = ts.SetHours(row.RowID, 1, "-3")
	assert.ErrorIs(t, err, ErrInvalidInput)
	err = ts.SetHours(row.RowID, 1, "25")
	assert.ErrorIs(t, err, ErrInvalidInput)
	err = ts.SetHours(row.RowID, 1, "4.25")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 7.5, row.Entries[1].Hours, "rejected edits must leave the entry unchanged")
}

func TestSetHours_InvalidDayIndex(t *testing.T) {
	ts := draftSheet(t)
	row, err := ts.AddRow("P1", "S1")
	require.NoError(t, err)

	assert.ErrorIs(t, ts.SetHours(row.RowID, -1, "8"), ErrInvalidInput)
	assert.ErrorIs(t, ts.SetHours(row.RowID, 7, "8"), ErrInvalidInput)
}

func TestSetNote(t *testing.T) {
	ts := draftSheet(t)
	row, err := ts.AddRow("P1", "S1")
	require.NoError(t, err)

	require.NoError(t, ts.SetNote(row.RowID, 2, "standup, code review"))
	assert.Equal(t, "standup, code review", row.Entries[2].Notes)

	require.NoError(t, ts.SetNote(row.RowID, 2, ""))
	assert.Empty(t, row.Entries[2].Notes)

	assert.ErrorIs(t, ts.SetNote(row.RowID, 9, "x"), ErrInvalidInput)
}

func TestMutations_RejectedWhenLocked(t *testing.T) {
	now := time.Now().UTC()

	for _, status := range []TimesheetStatus{StatusSubmitted, StatusApproved} {
		ts := draftSheet(t)
		row, err := ts.AddRow("P1", "S1")
		require.NoError(t, err)
		require.NoError(t, ts.SetHours(row.RowID, 0, "8"))

		require.NoError(t, ts.Submit(now))
		if status == StatusApproved {
			require.NoError(t, ts.Approve(now, "mgr-1"))
		}

		before := ts.Clone()

		_, err = ts.AddRow("P2", "S2")
		assert.ErrorIs(t, err, ErrLocked)
		assert.ErrorIs(t, ts.RemoveRow(row.RowID), ErrLocked)
		assert.ErrorIs(t, ts.SetHours(row.RowID, 0, "4"), ErrLocked)
		assert.ErrorIs(t, ts.SetNote(row.RowID, 0, "late edit"), ErrLocked)

		assert.Equal(t, before, ts, "locked timesheet must be unchanged after rejected mutations")
	}
}

func TestMutations_AllowedWhileRejected(t *testing.T) {
	ts := draftSheet(t)
	row, err := ts.AddRow("P1", "S1")
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, ts.Submit(now))
	require.NoError(t, ts.Reject(now))

	require.NoError(t, ts.SetHours(row.RowID, 0, "8"))
	_, err = ts.AddRow("P2", "S2")
	require.NoError(t, err)
}

func TestStateMachine_Transitions(t *testing.T) {
	now := time.Now().UTC()

	ts := draftSheet(t)
	require.NoError(t, ts.Submit(now))
	assert.Equal(t, StatusSubmitted, ts.Status)
	require.NotNil(t, ts.SubmittedAt)

	require.NoError(t, ts.Approve(now, "mgr-1"))
	assert.Equal(t, StatusApproved, ts.Status)
	assert.Equal(t, "mgr-1", ts.ApprovedBy)
	require.NotNil(t, ts.ApprovedAt)

	ts = draftSheet(t)
	require.NoError(t, ts.Submit(now))
	require.NoError(t, ts.Reject(now))
	assert.Equal(t, StatusRejected, ts.Status)
	require.NotNil(t, ts.RejectedAt)

	// Rejected sheets can be resubmitted.
	require.NoError(t, ts.Submit(now))
	assert.Equal(t, StatusSubmitted, ts.Status)
}

func TestStateMachine_InvalidTransitions(t *testing.T) {
	now := time.Now().UTC()

	ts := draftSheet(t)
	assert.ErrorIs(t, ts.Approve(now, "mgr-1"), ErrInvalidTransition)
	assert.ErrorIs(t, ts.Reject(now), ErrInvalidTransition)
	assert.Equal(t, StatusDraft, ts.Status)

	require.NoError(t, ts.Submit(now))
	assert.ErrorIs(t, ts.Submit(now), ErrInvalidTransition)

	require.NoError(t, ts.Approve(now, "mgr-1"))
	assert.ErrorIs(t, ts.Approve(now, "mgr-1"), ErrInvalidTransition)
	assert.ErrorIs(t, ts.Reject(now), ErrInvalidTransition)
	assert.ErrorIs(t, ts.Submit(now), ErrInvalidTransition)
}

func TestApproveReject_DoNotAlterRows(t *testing.T) {
	now := time.Now().UTC()

	ts := draftSheet(t)
	row, err := ts.AddRow("P1", "S1")
	require.NoError(t, err)
	require.NoError(t, ts.SetHours(row.RowID, 0, "8"))
	require.NoError(t, ts.Submit(now))

	rowsBefore := ts.Clone().Rows
	require.NoError(t, ts.Approve(now, "mgr-1"))
	assert.Equal(t, rowsBefore, ts.Rows)
}

func TestClone_Independent(t *testing.T) {
	ts := draftSheet(t)
	row, err := ts.AddRow("P1", "S1")
	require.NoError(t, err)

	cp := ts.Clone()
	require.NoError(t, cp.SetHours(cp.Rows[0].RowID, 0, "8"))

	assert.Zero(t, row.Entries[0].Hours, "mutating the clone must not touch the original")
	assert.Equal(t, 8.0, cp.Rows[0].Entries[0].Hours)
}
