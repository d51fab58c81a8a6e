package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lvanderveer/tally/internal/db"
	"github.com/lvanderveer/tally/internal/domain"
	"github.com/lvanderveer/tally/internal/repository"
)

type timesheetService struct {
	timesheets repository.TimesheetRepo
	uow        db.UnitOfWork
}

func NewTimesheetService(timesheets repository.TimesheetRepo, uow db.UnitOfWork) TimesheetService {
	return &timesheetService{timesheets: timesheets, uow: uow}
}

func (s *timesheetService) GetWeek(ctx context.Context, ownerUserID, weekStart string) (*domain.Timesheet, error) {
	week, err := domain.ParseWeekStart(weekStart)
	if err != nil {
		return nil, err
	}
	ts, err := s.timesheets.GetByOwnerWeek(ctx, ownerUserID, weekStart)
	if errors.Is(err, repository.ErrNotFound) {
		// An unsaved week is an implicit empty Draft, not an error.
		return domain.NewTimesheet(ownerUserID, week), nil
	}
	if err != nil {
		return nil, err
	}
	return ts, nil
}

func (s *timesheetService) AddRow(ctx context.Context, ownerUserID, weekStart, projectID, subProjectID string) (*domain.Timesheet, error) {
	return s.mutate(ctx, ownerUserID, weekStart, func(ts *domain.Timesheet) error {
		_, err := ts.AddRow(projectID, subProjectID)
		return err
	})
}

func (s *timesheetService) RemoveRow(ctx context.Context, ownerUserID, weekStart, rowID string) (*domain.Timesheet, error) {
	return s.mutate(ctx, ownerUserID, weekStart, func(ts *domain.Timesheet) error {
		return ts.RemoveRow(rowID)
	})
}

func (s *timesheetService) SetHours(ctx context.Context, ownerUserID, weekStart, rowID string, dayIndex int, raw string) (*domain.Timesheet, error) {
	return s.mutate(ctx, ownerUserID, weekStart, func(ts *domain.Timesheet) error {
		return ts.SetHours(rowID, dayIndex, raw)
	})
}

func (s *timesheetService) SetNote(ctx context.Context, ownerUserID, weekStart, rowID string, dayIndex int, text string) (*domain.Timesheet, error) {
	return s.mutate(ctx, ownerUserID, weekStart, func(ts *domain.Timesheet) error {
		return ts.SetNote(rowID, dayIndex, text)
	})
}

func (s *timesheetService) Save(ctx context.Context, ts *domain.Timesheet) (*domain.Timesheet, error) {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return persistTimesheet(ctx, repository.NewSQLiteTimesheetRepo(tx), ts)
	})
	if err != nil {
		return nil, err
	}
	return ts, nil
}

func (s *timesheetService) SaveAndSubmit(ctx context.Context, ts *domain.Timesheet) (*domain.Timesheet, error) {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTimesheetRepo(tx)
		if err := persistTimesheet(ctx, repo, ts); err != nil {
			return err
		}
		now := time.Now().UTC()
		if err := ts.Submit(now); err != nil {
			return err
		}
		ts.UpdatedAt = now
		return repo.UpdateStatus(ctx, ts)
	})
	if err != nil {
		return nil, err
	}
	return ts, nil
}

// mutate loads the owner's sheet for the week (or starts an empty Draft),
// applies fn, and persists the result — all in one transaction, so a
// rejected mutation leaves the stored sheet byte-for-byte unchanged.
func (s *timesheetService) mutate(ctx context.Context, ownerUserID, weekStart string, fn func(*domain.Timesheet) error) (*domain.Timesheet, error) {
	week, err := domain.ParseWeekStart(weekStart)
	if err != nil {
		return nil, err
	}

	var result *domain.Timesheet
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTimesheetRepo(tx)

		ts, err := repo.GetByOwnerWeek(ctx, ownerUserID, weekStart)
		if errors.Is(err, repository.ErrNotFound) {
			ts = domain.NewTimesheet(ownerUserID, week)
		} else if err != nil {
			return err
		}

		if err := fn(ts); err != nil {
			return err
		}
		if err := persistTimesheet(ctx, repo, ts); err != nil {
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

// persistTimesheet creates or updates the sheet. Editing a Rejected sheet
// reopens it as a Draft before the write lands.
func persistTimesheet(ctx context.Context, repo repository.TimesheetRepo, ts *domain.Timesheet) error {
	if !ts.Editable() {
		return domain.ErrLocked
	}
	now := time.Now().UTC()
	if ts.Status == domain.StatusRejected {
		ts.Status = domain.StatusDraft
	}
	if ts.ID == "" {
		ts.ID = uuid.New().String()
		ts.CreatedAt = now
		ts.UpdatedAt = now
		return repo.Create(ctx, ts)
	}
	ts.UpdatedAt = now
	return repo.Update(ctx, ts)
}
