package model

import (
	"strings"
	"time"
)

// DateFormat is the calendar-date form used everywhere: user entry,
// period bounds, and the bundle document.
const DateFormat = "2006-01-02"

// DateOnly strips any time-of-day, leaving midnight UTC on the same
// calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts "YYYY-MM-DD" or a full RFC 3339 timestamp; any
// time-of-day is discarded. The field name goes into the error.
func ParseDate(field, text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOnly(t), nil
	}
	return time.Time{}, invalidDate(field, text)
}
