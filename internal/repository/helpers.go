package repository

import (
	"database/sql"
	"time"
)

// parseNullableTime parses a sql.NullString with the given layout.
// NULL, empty and unparseable values all map to nil.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a SQLite-storable value:
// nil becomes SQL NULL, anything else the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// emptyToNull stores empty strings as SQL NULL.
func emptyToNull(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
