package repository

import (
	"context"

	"github.com/lvanderveer/tally/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}

type TimesheetRepo interface {
	Create(ctx context.Context, ts *domain.Timesheet) error
	GetByID(ctx context.Context, id string) (*domain.Timesheet, error)
	GetByOwnerWeek(ctx context.Context, ownerUserID, weekStart string) (*domain.Timesheet, error)
	// Update rewrites the header and replaces all rows and entries.
	Update(ctx context.Context, ts *domain.Timesheet) error
	// UpdateStatus persists status and review timestamps only; row content
	// is deliberately untouched (approve/reject never edit the grid).
	UpdateStatus(ctx context.Context, ts *domain.Timesheet) error
	ListByStatus(ctx context.Context, status domain.TimesheetStatus) ([]*domain.Timesheet, error)
}
