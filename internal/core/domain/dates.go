package domain

import (
	"errors"
	"time"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

var ErrMissingDate = errors.New("check-in and check-out dates are required")
var ErrInvalidDate = errors.New("dates must be in YYYY-MM-DD format")
var ErrPastDate = errors.New("dates cannot be in the past")
var ErrInvertedRange = errors.New("check-in date must be earlier than the check-out date")

// DateRange is a check-in/check-out pair held only while a search or
// booking request is being prepared.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDate parses a wire-format date. An empty string yields the zero
// time so the caller can report a missing date rather than a malformed one.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ValidateDateRange checks a check-in/check-out pair against today and
// against each other. Time-of-day is ignored: all three values are
// truncated to midnight before comparison.
//
// The past-date check deliberately runs before the ordering check, so a
// same-day range in the past reports ErrPastDate rather than
// ErrInvertedRange.
func ValidateDateRange(start, end, today time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ErrMissingDate
	}

	start = midnight(start)
	end = midnight(end)
	today = midnight(today)

	if start.Before(today) || end.Before(today) {
		return ErrPastDate
	}
	if !start.Before(end) {
		return ErrInvertedRange
	}
	return nil
}

// ParseDateRange parses and validates a wire-format pair in one step.
func ParseDateRange(startStr, endStr string, today time.Time) (DateRange, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseDate(endStr)
	if err != nil {
		return DateRange{}, err
	}
	if err := ValidateDateRange(start, end, today); err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: start, End: end}, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
