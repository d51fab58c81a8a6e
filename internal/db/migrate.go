package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations in order. Statements are idempotent;
// ALTER TABLE duplicates from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL UNIQUE,
		full_name  TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT 'Employee'
		           CHECK(role IN ('Employee','Manager','Admin')),
		reports_to TEXT,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		code       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sub_projects (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		code       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sub_projects_project ON sub_projects(project_id)`,

	`CREATE TABLE IF NOT EXISTS timesheets (
		id            TEXT PRIMARY KEY,
		owner_user_id TEXT NOT NULL REFERENCES users(id),
		week_start    TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'Draft'
		              CHECK(status IN ('Draft','Submitted','Approved','Rejected')),
		submitted_at  TEXT,
		approved_at   TEXT,
		approved_by   TEXT,
		rejected_at   TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL,
		UNIQUE(owner_user_id, week_start)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_timesheets_status ON timesheets(status)`,

	`CREATE TABLE IF NOT EXISTS timesheet_rows (
		id             TEXT PRIMARY KEY,
		timesheet_id   TEXT NOT NULL REFERENCES timesheets(id) ON DELETE CASCADE,
		project_id     TEXT NOT NULL,
		sub_project_id TEXT NOT NULL,
		location       TEXT NOT NULL DEFAULT 'Remote',
		position       INTEGER NOT NULL,
		UNIQUE(timesheet_id, project_id, sub_project_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_timesheet_rows_sheet ON timesheet_rows(timesheet_id)`,

	`CREATE TABLE IF NOT EXISTS timesheet_entries (
		row_id    TEXT NOT NULL REFERENCES timesheet_rows(id) ON DELETE CASCADE,
		day_index INTEGER NOT NULL CHECK(day_index BETWEEN 0 AND 6),
		hours     REAL NOT NULL DEFAULT 0 CHECK(hours >= 0 AND hours <= 24),
		notes     TEXT NOT NULL DEFAULT '',
		PRIMARY KEY(row_id, day_index)
	)`,

	// Seed the bootstrap admin account.
	`INSERT OR IGNORE INTO users (id, email, full_name, role, created_at)
		VALUES ('admin', 'admin@example.com', 'System Admin', 'Admin', '2024-01-01T00:00:00Z')`,

	// Seed the default project catalog.
	`INSERT OR IGNORE INTO projects (id, name, code, created_at) VALUES
		('internal',     'Internal',     'INT-001', '2024-01-01T00:00:00Z'),
		('client-alpha', 'Client Alpha', 'CL-A',    '2024-01-01T00:00:00Z'),
		('time-off',     'Time Off',     'TO',      '2024-01-01T00:00:00Z')`,

	`INSERT OR IGNORE INTO sub_projects (id, project_id, name, code) VALUES
		('int-adm',  'internal',     'Administrative', 'ADM'),
		('int-trn',  'internal',     'Training',       'TRN'),
		('int-mtg',  'internal',     'Meetings',       'MTG'),
		('cla-dev',  'client-alpha', 'Development',    'DEV'),
		('cla-des',  'client-alpha', 'Design',         'DES'),
		('cla-tst',  'client-alpha', 'Testing',        'TST'),
		('to-vac',   'time-off',     'Vacation',       'VAC'),
		('to-sick',  'time-off',     'Sick Leave',     'SICK'),
		('to-pub',   'time-off',     'Public Holiday', 'PUB')`,
}
