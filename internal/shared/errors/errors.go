package errors

import "errors"

// Domain errors
var (
	// Check errors
	ErrToolNotFound = errors.New("tool not found in PATH")
	ErrToolLaunch   = errors.New("failed to launch tool")

	// Output errors
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// History errors
	ErrHistoryCorrupt = errors.New("history record is corrupt")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)
