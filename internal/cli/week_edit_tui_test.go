package cli

import (
	"testing"

	"github.com/lvanderveer/tally/internal/domain"
	"github.com/lvanderveer/tally/internal/teatest"
	"github.com/lvanderveer/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editorNames() domain.NameIndex {
	return domain.BuildNameIndex([]*domain.Project{
		{
			ID:   "internal",
			Name: "Internal",
			Code: "INT",
			SubProjects: []domain.SubProject{
				{ID: "int-adm", Name: "Administration", Code: "ADM"},
				{ID: "int-mtg", Name: "Meetings", Code: "MTG"},
			},
		},
	})
}

func newEditorDriver(t *testing.T, ts *domain.Timesheet, save func(*domain.Timesheet) error) *teatest.Driver {
	t.Helper()
	if save == nil {
		save = func(*domain.Timesheet) error { return nil }
	}
	d := teatest.New(t, newWeekEditModel(ts, editorNames(), save))
	d.DrainInit()
	return d
}

func editorModel(t *testing.T, d *teatest.Driver) weekEditModel {
	t.Helper()
	m, ok := d.Model.(weekEditModel)
	require.True(t, ok)
	return m
}

func TestWeekEditor_RendersGrid(t *testing.T) {
	ts := testutil.NewTestTimesheet("owner",
		testutil.WithRow("internal", "int-adm", 8, 8),
	)
	d := newEditorDriver(t, ts, nil)

	view := d.View()
	assert.Contains(t, view, "EDIT WEEK 2026-08-31")
	assert.Contains(t, view, "Administration")
	assert.Contains(t, view, "Mon")
	assert.Contains(t, view, "16")
}

func TestWeekEditor_CursorNavigationClamps(t *testing.T) {
	ts := testutil.NewTestTimesheet("owner",
		testutil.WithRow("internal", "int-adm"),
		testutil.WithRow("internal", "int-mtg"),
	)
	d := newEditorDriver(t, ts, nil)

	d.PressUp()
	d.PressLeft()
	m := editorModel(t, d)
	assert.Equal(t, 0, m.curRow)
	assert.Equal(t, 0, m.curDay)

	d.PressDown()
	d.PressDown()
	d.PressRight()
	d.PressRight()
	m = editorModel(t, d)
	assert.Equal(t, 1, m.curRow, "cursor stops at the last row")
	assert.Equal(t, 2, m.curDay)

	for i := 0; i < 10; i++ {
		d.PressRight()
	}
	m = editorModel(t, d)
	assert.Equal(t, domain.DaysPerWeek-1, m.curDay, "cursor stops at Sunday")
}

func TestWeekEditor_EditCellCommitsHours(t *testing.T) {
	ts := testutil.NewTestTimesheet("owner",
		testutil.WithRow("internal", "int-adm"),
	)
	d := newEditorDriver(t, ts, nil)

	d.PressEnter()
	d.Type("7.5")
	d.PressEnter()

	m := editorModel(t, d)
	assert.Equal(t, 7.5, m.ts.Rows[0].Entries[0].Hours)
	assert.True(t, m.dirty)
	assert.Contains(t, d.View(), "7.5")
}

func TestWeekEditor_InvalidHoursStayInEditMode(t *testing.T) {
	ts := testutil.NewTestTimesheet("owner",
		testutil.WithRow("internal", "int-adm", 4),
	)
	d := newEditorDriver(t, ts, nil)

	d.PressEnter()
	d.Type("99")
	d.PressEnter()

	m := editorModel(t, d)
	assert.Equal(t, 4.0, m.ts.Rows[0].Entries[0].Hours, "rejected value leaves the cell unchanged")
	assert.NotEmpty(t, m.errMsg)
	assert.False(t, m.dirty)
}

func TestWeekEditor_EscCancelsEdit(t *testing.T) {
	ts := testutil.NewTestTimesheet("owner",
		testutil.WithRow("internal", "int-adm", 4),
	)
	d := newEditorDriver(t, ts, nil)

	d.PressEnter()
	d.Type("9")
	d.PressEsc()

	m := editorModel(t, d)
	assert.Equal(t, 4.0, m.ts.Rows[0].Entries[0].Hours)
	assert.False(t, m.dirty)
}

func TestWeekEditor_StepKeysAdjustByHalfHour(t *testing.T) {
	ts := testutil.NewTestTimesheet("owner",
		testutil.WithRow("internal", "int-adm", 4),
	)
	d := newEditorDriver(t, ts, nil)

	d.PressKey('+')
	m := editorModel(t, d)
	assert.Equal(t, 4.5, m.ts.Rows[0].Entries[0].Hours)

	d.PressKey('-')
	d.PressKey('-')
	m = editorModel(t, d)
	assert.Equal(t, 3.5, m.ts.Rows[0].Entries[0].Hours)
}

func TestWeekEditor_StepNeverGoesNegative(t *testing.T) {
	ts := testutil.NewTestTimesheet("owner",
		testutil.WithRow("internal", "int-adm"),
	)
	d := newEditorDriver(t, ts, nil)

	d.PressKey('-')
	m := editorModel(t, d)
	assert.Equal(t, 0.0, m.ts.Rows[0].Entries[0].Hours)
}

func TestWeekEditor_NoteEditing(t *testing.T) {
	ts := testutil.NewTestTimesheet("owner",
		testutil.WithRow("internal", "int-adm"),
	)
	d := newEditorDriver(t, ts, nil)

	d.PressKey('n')
	d.Type("standup notes")
	d.PressEnter()

	m := editorModel(t, d)
	assert.Equal(t, "standup notes", m.ts.Rows[0].Entries[0].Notes)
	assert.True(t, m.dirty)
}

func TestWeekEditor_SaveCallsPersistAndQuits(t *testing.T) {
	ts := testutil.NewTestTimesheet("owner",
		testutil.WithRow("internal", "int-adm"),
	)
	var saved *domain.Timesheet
	d := newEditorDriver(t, ts, func(edited *domain.Timesheet) error {
		saved = edited
		return nil
	})

	d.PressEnter()
	d.Type("8")
	d.PressEnter()
	d.PressKey('s')

	require.NotNil(t, saved)
	assert.Equal(t, 8.0, saved.Rows[0].Entries[0].Hours)
	assert.True(t, d.Quitting)
	assert.True(t, editorModel(t, d).saved)
}

func TestWeekEditor_QuitDiscardsWorkingCopy(t *testing.T) {
	ts := testutil.NewTestTimesheet("owner",
		testutil.WithRow("internal", "int-adm", 4),
	)
	d := newEditorDriver(t, ts, func(*domain.Timesheet) error {
		t.Fatal("quit must not persist")
		return nil
	})

	d.PressKey('+')
	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.Equal(t, 4.0, ts.Rows[0].Entries[0].Hours, "the loaded sheet is untouched")
}
