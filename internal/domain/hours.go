package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseHours interprets raw user input as an hours value. Empty or
// non-numeric input coerces to zero. Parsed values must fall inside
// [0, MaxDailyHours] and land on a half-hour boundary; anything else is
// ErrInvalidInput so a rejected edit never changes the entry.
func ParseHours(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	h, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, nil
	}
	if h < 0 || h > MaxDailyHours {
		return 0, fmt.Errorf("hours %v outside [0, %v]: %w", h, MaxDailyHours, ErrInvalidInput)
	}
	if h*2 != math.Trunc(h*2) {
		return 0, fmt.Errorf("hours %v not on a half-hour boundary: %w", h, ErrInvalidInput)
	}
	return h, nil
}

// FormatHours renders an hours value the way the grid displays it: whole
// numbers without a decimal, half hours with one.
func FormatHours(h float64) string {
	if h == math.Trunc(h) {
		return strconv.FormatFloat(h, 'f', 0, 64)
	}
	return strconv.FormatFloat(h, 'f', 1, 64)
}
