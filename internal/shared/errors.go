package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig  = fmt.Errorf("invalid configuration")
	ErrNoDatabase     = fmt.Errorf("database not configured")
	ErrServerShutdown = fmt.Errorf("server shutdown failed")

	// Storage errors
	ErrNotFound = fmt.Errorf("record not found")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)

// ArgumentError is caller-correctable input validation failure.
//
// Error returns Message alone so it can be shown to the user as-is. It matches [ErrInvalidArgument] under [errors.Is].
type ArgumentError struct {
	Field   string
	Message string
}

// NewArgumentError creates an [ArgumentError] for field.
func NewArgumentError(field, message string) *ArgumentError {
	return &ArgumentError{Field: field, Message: message}
}

func (e *ArgumentError) Error() string { return e.Message }

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }
