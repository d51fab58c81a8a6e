package service

import (
	"context"
	"testing"

	"github.com/lvanderveer/tally/internal/domain"
	"github.com/lvanderveer/tally/internal/repository"
	"github.com/lvanderveer/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkflow_RejectAndResubmit walks a timesheet through its full life:
// the owner fills a week and submits, a manager rejects it, the owner
// corrects and resubmits, and the manager approves.
func TestWorkflow_RejectAndResubmit(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	userRepo := repository.NewSQLiteUserRepo(database)
	owner := testutil.NewTestUser("Ada Lovelace")
	manager := testutil.NewTestUser("Grace Hopper", testutil.WithRole(domain.RoleManager))
	require.NoError(t, userRepo.Create(ctx, owner))
	require.NoError(t, userRepo.Create(ctx, manager))

	tsRepo := repository.NewSQLiteTimesheetRepo(database)
	uow := testutil.NewTestUoW(database)
	sheets := NewTimesheetService(tsRepo, uow)
	reviews := NewReviewService(tsRepo, uow)

	// Owner fills the week across two assignments.
	ts, err := sheets.AddRow(ctx, owner.ID, testutil.TestWeek, "client-alpha", "cla-dev")
	require.NoError(t, err)
	devRow := ts.Rows[0].RowID
	ts, err = sheets.AddRow(ctx, owner.ID, testutil.TestWeek, "internal", "int-mtg")
	require.NoError(t, err)
	mtgRow := ts.Rows[1].RowID

	for day := 0; day < 5; day++ {
		_, err = sheets.SetHours(ctx, owner.ID, testutil.TestWeek, devRow, day, "6")
		require.NoError(t, err)
	}
	ts, err = sheets.SetHours(ctx, owner.ID, testutil.TestWeek, mtgRow, 2, "1.5")
	require.NoError(t, err)
	assert.Equal(t, 31.5, domain.WeekTotal(ts))
	assert.True(t, domain.UnderFullTime(ts))

	ts, err = sheets.SaveAndSubmit(ctx, ts)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, ts.Status)

	// Manager sees it in the queue and rejects.
	pending, err := reviews.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	_, err = reviews.Reject(ctx, manager, ts.ID)
	require.NoError(t, err)

	// Owner tops up the missing hours; the sheet reopens as a Draft
	// with the prior content intact.
	ts, err = sheets.GetWeek(ctx, owner.ID, testutil.TestWeek)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, ts.Status)
	assert.Equal(t, 31.5, domain.WeekTotal(ts))

	for day := 0; day < 5; day++ {
		ts, err = sheets.SetHours(ctx, owner.ID, testutil.TestWeek, devRow, day, "7.5")
		require.NoError(t, err)
	}
	assert.Equal(t, domain.StatusDraft, ts.Status)
	ts, err = sheets.SetNote(ctx, owner.ID, testutil.TestWeek, devRow, 4, "release prep")
	require.NoError(t, err)
	assert.Equal(t, 39.0, domain.WeekTotal(ts))

	ts, err = sheets.SaveAndSubmit(ctx, ts)
	require.NoError(t, err)

	// Manager approves the corrected sheet.
	approved, err := reviews.Approve(ctx, manager, ts.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, approved.Status)
	assert.Equal(t, manager.ID, approved.ApprovedBy)

	final, err := sheets.GetWeek(ctx, owner.ID, testutil.TestWeek)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, final.Status)
	assert.Equal(t, 39.0, domain.WeekTotal(final))
	finalDevRow, err := final.RowByID(devRow)
	require.NoError(t, err)
	assert.Equal(t, "release prep", finalDevRow.Entries[4].Notes)
	require.NotNil(t, final.SubmittedAt)
	require.NotNil(t, final.RejectedAt)
	require.NotNil(t, final.ApprovedAt)
}

// TestWorkflow_WeeksAreIndependent confirms edits to one week never leak
// into a neighboring week for the same owner.
func TestWorkflow_WeeksAreIndependent(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	owner := testutil.NewTestUser("Ada Lovelace")
	require.NoError(t, repository.NewSQLiteUserRepo(database).Create(ctx, owner))

	sheets := NewTimesheetService(
		repository.NewSQLiteTimesheetRepo(database),
		testutil.NewTestUoW(database),
	)

	const nextWeek = "2026-09-07"

	ts1, err := sheets.AddRow(ctx, owner.ID, testutil.TestWeek, "internal", "int-adm")
	require.NoError(t, err)
	_, err = sheets.SetHours(ctx, owner.ID, testutil.TestWeek, ts1.Rows[0].RowID, 0, "8")
	require.NoError(t, err)
	_, err = sheets.SaveAndSubmit(ctx, ts1)
	require.NoError(t, err)

	// The submitted week locks; the next week starts fresh and editable.
	ts2, err := sheets.AddRow(ctx, owner.ID, nextWeek, "internal", "int-adm")
	require.NoError(t, err)
	assert.NotEqual(t, ts1.ID, ts2.ID)
	assert.Equal(t, domain.StatusDraft, ts2.Status)
	assert.Zero(t, domain.WeekTotal(ts2))

	reloaded, err := sheets.GetWeek(ctx, owner.ID, testutil.TestWeek)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, reloaded.Status)
}
