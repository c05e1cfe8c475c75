// Package strutil provides small string predicates and transforms.
package strutil

import (
	"strings"
	"unicode"
)

// IsEmpty reports whether s has zero length.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty reports whether s has nonzero length.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ToUpper returns s with all letters mapped to upper case.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToLower returns s with all letters mapped to lower case.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// Trim returns s with leading and trailing whitespace removed.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimStart returns s with leading whitespace removed.
func TrimStart(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// TrimEnd returns s with trailing whitespace removed.
func TrimEnd(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Contains reports whether pattern is a substring of s.
func Contains(s, pattern string) bool {
	return strings.Contains(s, pattern)
}

// HasPrefix reports whether s begins with prefix.
func HasPrefix(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// HasSuffix reports whether s ends with suffix.
func HasSuffix(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// Length returns the length of s in bytes, not runes.
// Multi-byte characters count once per byte.
func Length(s string) int {
	return len(s)
}

// Replace returns s with all occurrences of from replaced by to.
func Replace(s, from, to string) string {
	return strings.ReplaceAll(s, from, to)
}

// Split slices s around each instance of delimiter.
func Split(s, delimiter string) []string {
	return strings.Split(s, delimiter)
}

// Join concatenates elems, placing delimiter between them.
func Join(elems []string, delimiter string) string {
	return strings.Join(elems, delimiter)
}

// Repeat returns s concatenated count times.
func Repeat(s string, count int) string {
	return strings.Repeat(s, count)
}

// Substring returns the byte range [start, end) of s.
// Indexes are byte offsets; out-of-range indexes panic, matching
// ordinary slice semantics.
func Substring(s string, start, end int) string {
	return s[start:end]
}
