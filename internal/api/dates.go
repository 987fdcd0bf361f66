package api

import (
	"fmt"
	"time"
)

// Components used when a time carries no calendar information. The upstream
// client always sent these for unreadable dates; they are kept for parity.
const (
	fallbackYear   = 2022
	fallbackMonth  = time.January
	fallbackDay    = 1
	fallbackHour   = 1
	fallbackMinute = 0
)

// FormatDateTime renders t the way the timetable endpoint expects it:
// "Y-M-D%20H:MM". Month, day and hour are not zero-padded and the space is
// already percent-encoded. This is not ISO 8601.
func FormatDateTime(t time.Time) string {
	year, month, day, hour, minute := components(t)
	return fmt.Sprintf("%d-%d-%d%%20%d:%02d", year, int(month), day, hour, minute)
}

// FormatDateOnly renders t as "YYYY-MM-DD" for train timetable queries
func FormatDateOnly(t time.Time) string {
	year, month, day, _, _ := components(t)
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// EndOfDay returns 23:59 on t's calendar day, in t's location
func EndOfDay(t time.Time) time.Time {
	year, month, day, _, _ := components(t)
	loc := t.Location()
	if t.IsZero() {
		loc = time.UTC
	}
	return time.Date(year, month, day, 23, 59, 0, 0, loc)
}

// components extracts the calendar fields of t. A zero time yields the
// legacy fallback date.
func components(t time.Time) (year int, month time.Month, day, hour, minute int) {
	if t.IsZero() {
		return fallbackYear, fallbackMonth, fallbackDay, fallbackHour, fallbackMinute
	}
	year, month, day = t.Date()
	hour, minute, _ = t.Clock()
	return year, month, day, hour, minute
}
