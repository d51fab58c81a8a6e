package repository

import "errors"

// ErrNotFound is wrapped by every Get* when no row matches. The service
// layer treats a missing timesheet for a week as an implicit empty Draft,
// never as a failure.
var ErrNotFound = errors.New("not found")
