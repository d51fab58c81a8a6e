package domain

import "time"

type User struct {
	ID        string
	Email     string
	FullName  string
	Role      Role
	ReportsTo string
	CreatedAt time.Time
}

// CanReview reports whether the user may approve or reject submitted
// timesheets.
func (u *User) CanReview() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
