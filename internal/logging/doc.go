// Package logging provides structured logging for the maestro CLI using slog.
//
// Output is either a compact, colorized text format for terminals or JSON.
// The verbosity flags map to levels through [LevelFromVerbosity]:
//
//	-q      error
//	(none)  warn
//	-v      info
//	-vv     debug
//	-vvv    trace
//
// The CLI stores the configured logger on the command context with
// [NewContext]; library code receives a *slog.Logger explicitly.
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	s := store.New(path, store.WithLogger(logging.ForTest(t)))
package logging
