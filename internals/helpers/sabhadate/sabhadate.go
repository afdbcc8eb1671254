// Package sabhadate canonicalizes attendance dates. A sabha day is the UTC
// calendar day of the input instant, pinned to 00:00:00 UTC, so the same
// wall-clock date always maps to the same stored key no matter which timezone
// or time-of-day the client sent.
package sabhadate

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Normalize returns the canonical day for t: midnight UTC of t's UTC calendar day.
func Normalize(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Parse accepts RFC3339, a bare datetime, or a bare date, and returns the
// canonical day. Layouts without an offset are read as UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Normalize(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// DayRange returns the half-open interval [00:00Z, +24h) for day. Store queries
// always filter with >= start AND < end, never equality on a stored timestamp.
func DayRange(day time.Time) (start, end time.Time) {
	start = Normalize(day)
	return start, start.Add(24 * time.Hour)
}

// WeekdayCount counts occurrences of wd in the given calendar month.
func WeekdayCount(year int, month time.Month, wd time.Weekday) int {
	count := 0
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Month() == month {
		if d.Weekday() == wd {
			count++
		}
		d = d.AddDate(0, 0, 1)
	}
	return count
}
