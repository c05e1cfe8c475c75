// Package timeutil provides arithmetic over Unix timestamps
// (whole seconds unless noted otherwise).
package timeutil

import (
	"strconv"
	"time"
)

// Timestamp returns the current Unix timestamp in seconds.
func Timestamp() int64 {
	return time.Now().Unix()
}

// TimestampMillis returns the current Unix timestamp in milliseconds.
func TimestampMillis() int64 {
	return time.Now().UnixMilli()
}

// FormatTimestamp renders a timestamp as its decimal string.
func FormatTimestamp(timestamp int64) string {
	return strconv.FormatInt(timestamp, 10)
}

// CurrentDate returns the current timestamp as a decimal string.
func CurrentDate() string {
	return FormatTimestamp(Timestamp())
}

// DiffSeconds returns the absolute difference between two timestamps.
func DiffSeconds(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}

// IsFuture reports whether timestamp is after the current time.
func IsFuture(timestamp int64) bool {
	return timestamp > Timestamp()
}

// IsPast reports whether timestamp is before the current time.
func IsPast(timestamp int64) bool {
	return timestamp < Timestamp()
}

// AddSeconds returns timestamp advanced by seconds.
func AddSeconds(timestamp, seconds int64) int64 {
	return timestamp + seconds
}

// SubtractSeconds returns timestamp moved back by seconds,
// clamped at zero.
func SubtractSeconds(timestamp, seconds int64) int64 {
	if seconds >= timestamp {
		return 0
	}
	return timestamp - seconds
}

// Minutes returns the number of whole minutes in timestamp.
func Minutes(timestamp int64) int64 {
	return timestamp / 60
}

// Hours returns the number of whole hours in timestamp.
func Hours(timestamp int64) int64 {
	return timestamp / 3600
}

// Days returns the number of whole days in timestamp.
func Days(timestamp int64) int64 {
	return timestamp / 86400
}
