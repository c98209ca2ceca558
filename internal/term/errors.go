package term

import "errors"

// Sentinel errors for the terminal layer.
var (
	// ErrOutputOverflow is returned by Flush when the session output
	// buffer exceeded its limit and sequences were dropped.
	ErrOutputOverflow = errors.New("output buffer limit exceeded")

	// ErrNoOutput is returned when a terminal is created without an
	// output writer.
	ErrNoOutput = errors.New("output writer cannot be nil")

	// ErrNoTermType is returned when no terminal type is configured
	// and $TERM is empty.
	ErrNoTermType = errors.New("terminal type is not set")
)
