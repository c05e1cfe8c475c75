package fileutil

import "errors"

// Sentinel errors for package fileutil.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrBlankPath is returned when a path is empty or whitespace-only,
	// before any filesystem call is made.
	ErrBlankPath = errors.New("path is blank")
)
