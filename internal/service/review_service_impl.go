package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lvanderveer/tally/internal/db"
	"github.com/lvanderveer/tally/internal/domain"
	"github.com/lvanderveer/tally/internal/repository"
)

// ErrNotReviewer indicates the acting user lacks a reviewer-capable role.
var ErrNotReviewer = errors.New("reviewer role required")

type reviewService struct {
	timesheets repository.TimesheetRepo
	uow        db.UnitOfWork
}

func NewReviewService(timesheets repository.TimesheetRepo, uow db.UnitOfWork) ReviewService {
	return &reviewService{timesheets: timesheets, uow: uow}
}

func (s *reviewService) ListPending(ctx context.Context) ([]*domain.Timesheet, error) {
	return s.timesheets.ListByStatus(ctx, domain.StatusSubmitted)
}

func (s *reviewService) Approve(ctx context.Context, actor *domain.User, timesheetID string) (*domain.Timesheet, error) {
	return s.transition(ctx, actor, timesheetID, func(ts *domain.Timesheet, now time.Time) error {
		return ts.Approve(now, actor.ID)
	})
}

func (s *reviewService) Reject(ctx context.Context, actor *domain.User, timesheetID string) (*domain.Timesheet, error) {
	return s.transition(ctx, actor, timesheetID, func(ts *domain.Timesheet, now time.Time) error {
		return ts.Reject(now)
	})
}

// transition re-reads the sheet inside the transaction so the state check
// applies to the stored status, then persists status fields only — review
// actions never touch row content.
func (s *reviewService) transition(ctx context.Context, actor *domain.User, timesheetID string, fn func(*domain.Timesheet, time.Time) error) (*domain.Timesheet, error) {
	if actor == nil || !actor.CanReview() {
		return nil, fmt.Errorf("user %q: %w", actorID(actor), ErrNotReviewer)
	}

	var result *domain.Timesheet
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTimesheetRepo(tx)
		ts, err := repo.GetByID(ctx, timesheetID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		if err := fn(ts, now); err != nil {
			return err
		}
		ts.UpdatedAt = now
		if err := repo.UpdateStatus(ctx, ts); err != nil {
			return err
		}
		result = ts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func actorID(actor *domain.User) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}
