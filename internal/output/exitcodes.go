package output

import "errors"

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error

	// Choices lists valid values the user could have given, if any.
	Choices []string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// WithChoices attaches the valid values to the error and returns it.
func (e *ExitError) WithChoices(choices []string) *ExitError {
	e.Choices = choices
	return e
}

// NewUserError creates an error for user-caused issues (exit code 1).
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// NewUserErrorWithCause creates a user error wrapping an underlying cause.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message, Cause: cause}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Untyped errors come from cobra flag and argument parsing
	return ExitUserError
}
