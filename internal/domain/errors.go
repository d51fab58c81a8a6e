package domain

import "errors"

var (
	// ErrLocked indicates a mutation was attempted on a Submitted or
	// Approved timesheet.
	ErrLocked = errors.New("timesheet is locked")

	// ErrDuplicateRow indicates the (project, sub-project) pairing already
	// has a row in the timesheet.
	ErrDuplicateRow = errors.New("duplicate assignment row")

	// ErrRowNotFound indicates no row matches the given row ID.
	ErrRowNotFound = errors.New("assignment row not found")

	// ErrIndexOutOfRange indicates a display position does not resolve to a row.
	ErrIndexOutOfRange = errors.New("row index out of range")

	// ErrInvalidInput indicates an out-of-range hours value, an hours value
	// off the half-hour grid, or an invalid day index.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition indicates a status transition not permitted by
	// the approval state machine.
	ErrInvalidTransition = errors.New("invalid status transition")
)
