package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lvanderveer/tally/internal/domain"
)

var emailCounter atomic.Int64

// User options
type UserOption func(*domain.User)

func WithRole(r domain.Role) UserOption {
	return func(u *domain.User) {
		u.Role = r
	}
}

func WithReportsTo(managerID string) UserOption {
	return func(u *domain.User) {
		u.ReportsTo = managerID
	}
}

func NewTestUser(fullName string, opts ...UserOption) *domain.User {
	slug := strings.ToLower(strings.ReplaceAll(fullName, " ", "."))
	u := &domain.User{
		ID:        uuid.New().String(),
		Email:     fmt.Sprintf("%s.%d@example.com", slug, emailCounter.Add(1)),
		FullName:  fullName,
		Role:      domain.RoleEmployee,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Project options
type ProjectOption func(*domain.Project)

func WithSubProject(name, code string) ProjectOption {
	return func(p *domain.Project) {
		p.SubProjects = append(p.SubProjects, domain.SubProject{
			ID:   uuid.New().String(),
			Name: name,
			Code: code,
		})
	}
}

func NewTestProject(name, code string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Code:      code,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Timesheet options
type TimesheetOption func(*domain.Timesheet)

func WithStatus(s domain.TimesheetStatus) TimesheetOption {
	return func(ts *domain.Timesheet) {
		ts.Status = s
	}
}

func WithRow(projectID, subProjectID string, hours ...float64) TimesheetOption {
	return func(ts *domain.Timesheet) {
		row := domain.NewAssignmentRow(projectID, subProjectID)
		for i, h := range hours {
			if i >= domain.DaysPerWeek {
				break
			}
			row.Entries[i].Hours = h
		}
		ts.Rows = append(ts.Rows, row)
	}
}

// TestWeek is the Monday used by timesheet fixtures.
const TestWeek = "2026-08-31"

func NewTestTimesheet(ownerUserID string, opts ...TimesheetOption) *domain.Timesheet {
	week, err := domain.ParseWeekStart(TestWeek)
	if err != nil {
		panic(err)
	}
	now := time.Now().UTC()
	ts := domain.NewTimesheet(ownerUserID, week)
	ts.ID = uuid.New().String()
	ts.CreatedAt = now
	ts.UpdatedAt = now
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}
