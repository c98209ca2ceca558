package driver

import "errors"

// Sentinel errors for driver selection.
var (
	// ErrNoDriver is returned when no registered probe accepts the
	// terminal type.
	ErrNoDriver = errors.New("no driver for terminal type")
)
