package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Application exit codes define the standard exit statuses for both programs.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error, including unreadable input.
	ExitErrorInput    = 2   // Indicates input that does not parse as the expected number.
	ExitErrorOverflow = 3   // Indicates a value outside the numeric type's range.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as an unknown
// flag value. The program cannot start with it.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// OverflowError reports a value that does not fit the fixed-width unsigned
// type in use, either as typed by the user or as produced by a computation.
type OverflowError struct {
	// Value describes what overflowed (the raw input, or "F(94)").
	Value string
	// Bits is the width of the unsigned type that was exceeded.
	Bits int
	// Hint is an optional remedy appended to the message.
	Hint string
}

// Error returns a formatted message describing the overflow.
func (e OverflowError) Error() string {
	msg := fmt.Sprintf("%s overflows a %d-bit unsigned integer", e.Value, e.Bits)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// ReadError reports that the console stream could not deliver a line,
// typically because standard input was closed.
type ReadError struct {
	// Cause is the underlying I/O error.
	Cause error
}

// Error returns the error message for a ReadError.
func (e ReadError) Error() string {
	return fmt.Sprintf("failed to read input: %v", e.Cause)
}

// Unwrap returns the underlying I/O error.
func (e ReadError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInputError reports whether err is caused by what the user typed, as
// opposed to a failure of the input stream itself. Only these errors are
// worth asking again for.
func IsInputError(err error) bool {
	var validationErr ValidationError
	var overflowErr OverflowError
	return errors.As(err, &validationErr) || errors.As(err, &overflowErr)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	var (
		configErr     ConfigError
		validationErr ValidationError
		overflowErr   OverflowError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &validationErr):
		return ExitErrorInput
	case errors.As(err, &overflowErr):
		return ExitErrorOverflow
	default:
		return ExitErrorGeneric
	}
}

// Styler decorates diagnostic text for display. The CLI theme implements it.
type Styler interface {
	Error(s string) string
}

// HandleError writes a single diagnostic line for err and returns the exit
// code the process should terminate with. A nil styler prints plain text.
func HandleError(err error, out io.Writer, styler Styler) int {
	if err == nil {
		return ExitSuccess
	}
	prefix := "Error:"
	if IsContextError(err) {
		prefix = "Canceled:"
	}
	if styler != nil {
		prefix = styler.Error(prefix)
	}
	fmt.Fprintf(out, "%s %v\n", prefix, err)
	return ExitCode(err)
}
