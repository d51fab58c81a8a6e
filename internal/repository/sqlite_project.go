package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lvanderveer/tally/internal/db"
	"github.com/lvanderveer/tally/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo over a DBTX. Projects are stored
// with their sub-projects in a child table and always loaded nested.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(db db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, code, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Code, p.CreatedAt.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	for _, sp := range p.SubProjects {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO sub_projects (id, project_id, name, code) VALUES (?, ?, ?, ?)`,
			sp.ID, p.ID, sp.Name, sp.Code); err != nil {
			return fmt.Errorf("inserting sub-project %s: %w", sp.Code, err)
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, code, created_at FROM projects WHERE id = ?`, id)

	var p domain.Project
	var createdAtStr string
	if err := row.Scan(&p.ID, &p.Name, &p.Code, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	p.CreatedAt = createdAt

	if err := r.loadSubProjects(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, code, created_at FROM projects ORDER BY created_at, code`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		var createdAtStr string
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		p.CreatedAt = createdAt
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	for _, p := range projects {
		if err := r.loadSubProjects(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) loadSubProjects(ctx context.Context, p *domain.Project) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, code FROM sub_projects WHERE project_id = ? ORDER BY code`, p.ID)
	if err != nil {
		return fmt.Errorf("listing sub-projects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sp domain.SubProject
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Code); err != nil {
			return fmt.Errorf("scanning sub-project: %w", err)
		}
		p.SubProjects = append(p.SubProjects, sp)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating sub-projects: %w", err)
	}
	return nil
}
