// Package dateutil provides strftime-style date-time formatting and
// parsing plus calendar range boundaries and offsets.
//
// Layout strings use the conventional strftime token set (%Y, %m, %d,
// %H, %M, %S, and compounds like %F and %T) as implemented by
// timefmt-go, not Go reference layouts.
package dateutil

import (
	"errors"
	"fmt"
	"time"

	timefmt "github.com/itchyny/timefmt-go"
)

// ErrImpossibleDate is returned by Parse when the input matches the
// layout syntactically but names a date that does not exist on the
// calendar (for example 2023-02-29).
var ErrImpossibleDate = errors.New("date does not exist")

// Format renders t using the strftime layout.
func Format(t time.Time, layout string) string {
	return timefmt.Format(t, layout)
}

// FormatNow renders the current local time using the strftime layout.
func FormatNow(layout string) string {
	return Format(time.Now(), layout)
}

// Parse interprets value according to the strftime layout in the local
// time zone. Unlike time.Date, Parse is strict: a value that only
// matches after calendar normalization is rejected with
// ErrImpossibleDate.
func Parse(value, layout string) (time.Time, error) {
	t, err := timefmt.ParseInLocation(value, layout, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q with layout %q: %w", value, layout, err)
	}
	// The underlying time.Date call normalizes out-of-range fields
	// (Feb 29 in a non-leap year becomes Mar 1). Rendering the result
	// back through the same layout exposes any normalization.
	if timefmt.Format(t, layout) != value {
		return time.Time{}, fmt.Errorf("parse %q with layout %q: %w", value, layout, ErrImpossibleDate)
	}
	return t, nil
}

// Reformat parses value with the from layout and renders it with the
// to layout. A value that cannot be parsed yields the parse error.
func Reformat(value, from, to string) (string, error) {
	t, err := Parse(value, from)
	if err != nil {
		return "", err
	}
	return Format(t, to), nil
}

// IsAM reports whether t falls in the first half of its day.
func IsAM(t time.Time) bool {
	return t.Hour() < 12
}

// IsPM reports whether t falls in the second half of its day.
func IsPM(t time.Time) bool {
	return t.Hour() >= 12
}

// StartOfDay returns midnight of t's day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek returns midnight of the Monday of t's ISO week.
func StartOfWeek(t time.Time) time.Time {
	sinceMonday := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t.AddDate(0, 0, -sinceMonday))
}

// EndOfWeek returns the last nanosecond of the Sunday of t's ISO week.
func EndOfWeek(t time.Time) time.Time {
	untilSunday := 6 - (int(t.Weekday())+6)%7
	return EndOfDay(t.AddDate(0, 0, untilSunday))
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month, leap years
// included.
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}

// StartOfYear returns midnight of January 1 of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last nanosecond of December 31 of t's year.
func EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.December, 31, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// OffsetUnit selects the step size for Offset.
type OffsetUnit int

const (
	Seconds OffsetUnit = iota
	Minutes
	Hours
	// Days is a fixed 24-hour step, not a calendar day.
	Days
)

// Offset shifts t by value units. Negative values shift backwards.
func Offset(t time.Time, value int64, unit OffsetUnit) time.Time {
	switch unit {
	case Minutes:
		return t.Add(time.Duration(value) * time.Minute)
	case Hours:
		return t.Add(time.Duration(value) * time.Hour)
	case Days:
		return t.Add(time.Duration(value) * 24 * time.Hour)
	default:
		return t.Add(time.Duration(value) * time.Second)
	}
}

// Between returns the number of whole seconds from a to b.
// The result is negative when b precedes a.
func Between(a, b time.Time) int64 {
	return int64(b.Sub(a) / time.Second)
}
