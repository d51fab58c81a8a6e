package service

import (
	"context"

	"github.com/lvanderveer/tally/internal/domain"
)

// TimesheetService is the owner-facing mutation surface. Operations address
// a sheet by (owner, week start); an absent week behaves as an empty Draft.
// Every mutation is validated against the sheet's status and persisted
// atomically, returning the updated snapshot.
type TimesheetService interface {
	GetWeek(ctx context.Context, ownerUserID, weekStart string) (*domain.Timesheet, error)
	AddRow(ctx context.Context, ownerUserID, weekStart, projectID, subProjectID string) (*domain.Timesheet, error)
	RemoveRow(ctx context.Context, ownerUserID, weekStart, rowID string) (*domain.Timesheet, error)
	SetHours(ctx context.Context, ownerUserID, weekStart, rowID string, dayIndex int, raw string) (*domain.Timesheet, error)
	SetNote(ctx context.Context, ownerUserID, weekStart, rowID string, dayIndex int, text string) (*domain.Timesheet, error)
	Save(ctx context.Context, ts *domain.Timesheet) (*domain.Timesheet, error)
	// SaveAndSubmit persists the sheet's content and flips it to Submitted
	// in one transaction; if the save fails the submit does not happen.
	SaveAndSubmit(ctx context.Context, ts *domain.Timesheet) (*domain.Timesheet, error)
}

// ReviewService is the reviewer-facing surface.
type ReviewService interface {
	ListPending(ctx context.Context) ([]*domain.Timesheet, error)
	Approve(ctx context.Context, actor *domain.User, timesheetID string) (*domain.Timesheet, error)
	Reject(ctx context.Context, actor *domain.User, timesheetID string) (*domain.Timesheet, error)
}

type CatalogService interface {
	List(ctx context.Context) ([]*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	// Names builds the display-name index; unresolved ids render "Unknown".
	Names(ctx context.Context) (domain.NameIndex, error)
}

type UserService interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
