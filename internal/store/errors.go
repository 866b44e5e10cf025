package store

import "github.com/cockroachdb/errors"

// Failure kinds returned by Store operations.
var (
	// ErrConfigNotFound indicates the pointer file could not be read.
	// This is the expected state before the first Save.
	ErrConfigNotFound = errors.New("maestro is not configured")

	// ErrMalformedPointer indicates the pointer file is not a valid pointer record.
	ErrMalformedPointer = errors.New("malformed maestro configuration")

	// ErrUserConfigNotFound indicates the file named by the pointer could not be read.
	ErrUserConfigNotFound = errors.New("user configuration not found")

	// ErrMalformedUserConfig indicates the user configuration could not be decoded.
	ErrMalformedUserConfig = errors.New("malformed user configuration")

	// ErrValidation indicates a workspace in the user configuration is invalid.
	ErrValidation = errors.New("invalid user configuration")

	// ErrPathResolution indicates a path passed to Save could not be canonicalized.
	ErrPathResolution = errors.New("cannot resolve configuration path")

	// ErrWrite indicates the pointer file could not be written.
	ErrWrite = errors.New("cannot write maestro configuration")
)

// Kinds lists every failure kind, in pipeline order.
var Kinds = []error{
	ErrConfigNotFound,
	ErrMalformedPointer,
	ErrUserConfigNotFound,
	ErrMalformedUserConfig,
	ErrValidation,
	ErrPathResolution,
	ErrWrite,
}

// KindOf returns the failure kind marked on err, or nil if none is.
func KindOf(err error) error {
	for _, kind := range Kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// fail wraps cause with msg and marks it with kind.
func fail(cause error, kind error, msg string) error {
	return errors.Mark(errors.Wrap(cause, msg), kind)
}
