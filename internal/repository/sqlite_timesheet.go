package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lvanderveer/tally/internal/db"
	"github.com/lvanderveer/tally/internal/domain"
)

// SQLiteTimesheetRepo implements TimesheetRepo over a DBTX. A timesheet is
// stored across three tables (header, rows, entries); every load returns the
// fully hydrated grid.
type SQLiteTimesheetRepo struct {
	db db.DBTX
}

func NewSQLiteTimesheetRepo(db db.DBTX) *SQLiteTimesheetRepo {
	return &SQLiteTimesheetRepo{db: db}
}

const timesheetColumns = `id, owner_user_id, week_start, status,
	submitted_at, approved_at, approved_by, rejected_at, created_at, updated_at`

func (r *SQLiteTimesheetRepo) Create(ctx context.Context, ts *domain.Timesheet) error {
	query := `INSERT INTO timesheets (` + timesheetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		ts.ID,
		ts.OwnerUserID,
		ts.WeekKey(),
		string(ts.Status),
		nullableTimeToString(ts.SubmittedAt, time.RFC3339),
		nullableTimeToString(ts.ApprovedAt, time.RFC3339),
		emptyToNull(ts.ApprovedBy),
		nullableTimeToString(ts.RejectedAt, time.RFC3339),
		ts.CreatedAt.Format(time.RFC3339),
		ts.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting timesheet: %w", err)
	}
	return r.insertRows(ctx, ts)
}

func (r *SQLiteTimesheetRepo) Update(ctx context.Context, ts *domain.Timesheet) error {
	query := `UPDATE timesheets SET status = ?, submitted_at = ?, approved_at = ?,
		approved_by = ?, rejected_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(ts.Status),
		nullableTimeToString(ts.SubmittedAt, time.RFC3339),
		nullableTimeToString(ts.ApprovedAt, time.RFC3339),
		emptyToNull(ts.ApprovedBy),
		nullableTimeToString(ts.RejectedAt, time.RFC3339),
		ts.UpdatedAt.Format(time.RFC3339),
		ts.ID,
	)
	if err != nil {
		return fmt.Errorf("updating timesheet: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("timesheet %s: %w", ts.ID, ErrNotFound)
	}

	// Replace the grid wholesale; entry rows cascade with their row.
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM timesheet_rows WHERE timesheet_id = ?`, ts.ID); err != nil {
		return fmt.Errorf("clearing timesheet rows: %w", err)
	}
	return r.insertRows(ctx, ts)
}

func (r *SQLiteTimesheetRepo) UpdateStatus(ctx context.Context, ts *domain.Timesheet) error {
	query := `UPDATE timesheets SET status = ?, submitted_at = ?, approved_at = ?,
		approved_by = ?, rejected_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(ts.Status),
		nullableTimeToString(ts.SubmittedAt, time.RFC3339),
		nullableTimeToString(ts.ApprovedAt, time.RFC3339),
		emptyToNull(ts.ApprovedBy),
		nullableTimeToString(ts.RejectedAt, time.RFC3339),
		ts.UpdatedAt.Format(time.RFC3339),
		ts.ID,
	)
	if err != nil {
		return fmt.Errorf("updating timesheet status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("timesheet %s: %w", ts.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTimesheetRepo) insertRows(ctx context.Context, ts *domain.Timesheet) error {
	for pos, row := range ts.Rows {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO timesheet_rows (id, timesheet_id, project_id, sub_project_id, location, position)
				VALUES (?, ?, ?, ?, ?, ?)`,
			row.RowID, ts.ID, row.ProjectID, row.SubProjectID, row.Location, pos); err != nil {
			return fmt.Errorf("inserting timesheet row: %w", err)
		}
		for _, e := range row.Entries {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO timesheet_entries (row_id, day_index, hours, notes) VALUES (?, ?, ?, ?)`,
				row.RowID, e.DayIndex, e.Hours, e.Notes); err != nil {
				return fmt.Errorf("inserting entry day %d: %w", e.DayIndex, err)
			}
		}
	}
	return nil
}

func (r *SQLiteTimesheetRepo) GetByID(ctx context.Context, id string) (*domain.Timesheet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+timesheetColumns+` FROM timesheets WHERE id = ?`, id)
	ts, err := scanTimesheet(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadRows(ctx, ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (r *SQLiteTimesheetRepo) GetByOwnerWeek(ctx context.Context, ownerUserID, weekStart string) (*domain.Timesheet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+timesheetColumns+` FROM timesheets WHERE owner_user_id = ? AND week_start = ?`,
		ownerUserID, weekStart)
	ts, err := scanTimesheet(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadRows(ctx, ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (r *SQLiteTimesheetRepo) ListByStatus(ctx context.Context, status domain.TimesheetStatus) ([]*domain.Timesheet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+timesheetColumns+` FROM timesheets WHERE status = ? ORDER BY week_start, owner_user_id`,
		string(status))
	if err != nil {
		return nil, fmt.Errorf("listing timesheets: %w", err)
	}
	defer rows.Close()

	var sheets []*domain.Timesheet
	for rows.Next() {
		ts, err := scanTimesheetRow(rows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timesheets: %w", err)
	}

	for _, ts := range sheets {
		if err := r.loadRows(ctx, ts); err != nil {
			return nil, err
		}
	}
	return sheets, nil
}

func (r *SQLiteTimesheetRepo) loadRows(ctx context.Context, ts *domain.Timesheet) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, sub_project_id, location FROM timesheet_rows
			WHERE timesheet_id = ? ORDER BY position`, ts.ID)
	if err != nil {
		return fmt.Errorf("listing timesheet rows: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*domain.AssignmentRow)
	for rows.Next() {
		var ar domain.AssignmentRow
		if err := rows.Scan(&ar.RowID, &ar.ProjectID, &ar.SubProjectID, &ar.Location); err != nil {
			return fmt.Errorf("scanning timesheet row: %w", err)
		}
		ar.Entries = make([]domain.Entry, domain.DaysPerWeek)
		for i := range ar.Entries {
			ar.Entries[i].DayIndex = i
		}
		ts.Rows = append(ts.Rows, &ar)
		byID[ar.RowID] = &ar
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating timesheet rows: %w", err)
	}

	entries, err := r.db.QueryContext(ctx,
		`SELECT e.row_id, e.day_index, e.hours, e.notes
			FROM timesheet_entries e
			JOIN timesheet_rows r ON r.id = e.row_id
			WHERE r.timesheet_id = ?`, ts.ID)
	if err != nil {
		return fmt.Errorf("listing entries: %w", err)
	}
	defer entries.Close()

	for entries.Next() {
		var rowID string
		var dayIndex int
		var hours float64
		var notes string
		if err := entries.Scan(&rowID, &dayIndex, &hours, &notes); err != nil {
			return fmt.Errorf("scanning entry: %w", err)
		}
		ar, ok := byID[rowID]
		if !ok || dayIndex < 0 || dayIndex >= domain.DaysPerWeek {
			continue
		}
		ar.Entries[dayIndex].Hours = hours
		ar.Entries[dayIndex].Notes = notes
	}
	if err := entries.Err(); err != nil {
		return fmt.Errorf("iterating entries: %w", err)
	}
	return nil
}

func scanTimesheet(row *sql.Row) (*domain.Timesheet, error) {
	var ts domain.Timesheet
	var weekStr, statusStr, createdAtStr, updatedAtStr string
	var submittedAt, approvedAt, approvedBy, rejectedAt sql.NullString

	err := row.Scan(
		&ts.ID, &ts.OwnerUserID, &weekStr, &statusStr,
		&submittedAt, &approvedAt, &approvedBy, &rejectedAt,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("timesheet: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning timesheet: %w", err)
	}
	return fillTimesheet(&ts, weekStr, statusStr, submittedAt, approvedAt, approvedBy, rejectedAt, createdAtStr, updatedAtStr)
}

func scanTimesheetRow(rows *sql.Rows) (*domain.Timesheet, error) {
	var ts domain.Timesheet
	var weekStr, statusStr, createdAtStr, updatedAtStr string
	var submittedAt, approvedAt, approvedBy, rejectedAt sql.NullString

	err := rows.Scan(
		&ts.ID, &ts.OwnerUserID, &weekStr, &statusStr,
		&submittedAt, &approvedAt, &approvedBy, &rejectedAt,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning timesheet row: %w", err)
	}
	return fillTimesheet(&ts, weekStr, statusStr, submittedAt, approvedAt, approvedBy, rejectedAt, createdAtStr, updatedAtStr)
}

func fillTimesheet(
	ts *domain.Timesheet,
	weekStr, statusStr string,
	submittedAt, approvedAt, approvedBy, rejectedAt sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Timesheet, error) {
	ts.Status = domain.TimesheetStatus(statusStr)

	week, err := time.Parse(domain.WeekLayout, weekStr)
	if err != nil {
		return nil, fmt.Errorf("parsing week_start: %w", err)
	}
	ts.WeekStart = week

	ts.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	ts.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	ts.SubmittedAt = parseNullableTime(submittedAt, time.RFC3339)
	ts.ApprovedAt = parseNullableTime(approvedAt, time.RFC3339)
	ts.RejectedAt = parseNullableTime(rejectedAt, time.RFC3339)
	if approvedBy.Valid {
		ts.ApprovedBy = approvedBy.String
	}
	return ts, nil
}
