package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	ExitSuccess = 0
	ExitUser    = 1
	ExitSystem  = 2
)

// Re-exported wrapping helpers.
var (
	New    = crdb.New
	Newf   = crdb.Newf
	Wrap   = crdb.Wrap
	Wrapf  = crdb.Wrapf
	Is     = crdb.Is
	As     = crdb.As
	Mark   = crdb.Mark
	Unwrap = crdb.UnwrapOnce
)

// ErrInvalidArgument indicates a command-line argument was rejected.
var ErrInvalidArgument = crdb.New("invalid argument")

// ExitError wraps an error with an exit code and optional suggestion.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable hint for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// Error returns the underlying error's message, or a generic message when
// there is none.
func (e *ExitError) Error() string {
	if e.Err == nil {
		if e.Suggestion != "" {
			return e.Suggestion
		}
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// CodeOf returns the exit code for err: ExitSuccess for nil, the code of the
// first ExitError in the chain, or ExitUser otherwise.
func CodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}

// SuggestionOf returns the suggestion of the first ExitError in the chain.
func SuggestionOf(err error) string {
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Suggestion
	}
	return ""
}
