// Package errors provides error handling conventions for the maestro CLI.
//
// It re-exports the github.com/cockroachdb/errors helpers the commands use,
// and defines [ExitError], which carries an exit code and an actionable
// suggestion to main:
//
//	err := errors.NewUserError(cause, "Run: maestro configure <path>")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    fmt.Fprintln(os.Stderr, exitErr.Suggestion)
//	    os.Exit(exitErr.Code)
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): the user can fix it (configuration, input)
//   - ExitSystem (2): the environment is at fault (I/O, permissions)
package errors
