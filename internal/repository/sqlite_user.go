package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lvanderveer/tally/internal/db"
	"github.com/lvanderveer/tally/internal/domain"
)

// SQLiteUserRepo implements UserRepo over a DBTX.
type SQLiteUserRepo struct {
	db db.DBTX
}

func NewSQLiteUserRepo(db db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: db}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, email, full_name, role, reports_to, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Email,
		u.FullName,
		string(u.Role),
		emptyToNull(u.ReportsTo),
		u.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, full_name, role, reports_to, created_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *SQLiteUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, full_name, role, reports_to, created_at FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *SQLiteUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, full_name, role, reports_to, created_at FROM users ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var roleStr, createdAtStr string
	var reportsTo sql.NullString

	err := row.Scan(&u.ID, &u.Email, &u.FullName, &roleStr, &reportsTo, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return fillUser(&u, roleStr, reportsTo, createdAtStr)
}

func scanUserRow(rows *sql.Rows) (*domain.User, error) {
	var u domain.User
	var roleStr, createdAtStr string
	var reportsTo sql.NullString

	if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &roleStr, &reportsTo, &createdAtStr); err != nil {
		return nil, fmt.Errorf("scanning user row: %w", err)
	}
	return fillUser(&u, roleStr, reportsTo, createdAtStr)
}

func fillUser(u *domain.User, roleStr string, reportsTo sql.NullString, createdAtStr string) (*domain.User, error) {
	u.Role = domain.Role(roleStr)
	if reportsTo.Valid {
		u.ReportsTo = reportsTo.String
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	u.CreatedAt = createdAt
	return u, nil
}
