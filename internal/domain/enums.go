package domain

type TimesheetStatus string

const (
	StatusDraft     TimesheetStatus = "Draft"
	StatusSubmitted TimesheetStatus = "Submitted"
	StatusApproved  TimesheetStatus = "Approved"
	StatusRejected  TimesheetStatus = "Rejected"
)

type Role string

const (
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
	RoleAdmin    Role = "Admin"
)

const (
	// DaysPerWeek is the number of entries each assignment row carries,
	// indexed 0 (Monday) through 6 (Sunday).
	DaysPerWeek = 7

	// MaxDailyHours bounds a single entry's hours.
	MaxDailyHours = 24.0

	// FullTimeWeekHours is the advisory threshold for a complete week.
	FullTimeWeekHours = 40.0
)

// DayNames maps day_index to its short weekday name.
var DayNames = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
