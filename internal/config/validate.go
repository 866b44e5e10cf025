package config

import (
	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/maestro/internal/logging"
	"github.com/thoreinstein/maestro/internal/paths"
)

// Validation errors for settings fields.
var (
	// ErrInvalidLogFormat indicates log_format is neither text nor json.
	ErrInvalidLogFormat = errors.New("invalid log format")

	// ErrInvalidPointerFile indicates pointer_file is not a usable file path.
	ErrInvalidPointerFile = errors.New("invalid pointer file")
)

// Validate checks the settings and returns the first problem found.
func Validate(s *Settings) error {
	if s == nil {
		return errors.New("settings are nil")
	}

	if _, ok := logging.ParseFormat(s.LogFormat); !ok {
		return errors.Wrapf(ErrInvalidLogFormat, "%q (want text or json)", s.LogFormat)
	}

	if s.PointerFile == "" {
		return errors.Wrap(ErrInvalidPointerFile, "must not be empty")
	}
	if err := paths.ValidatePath(s.PointerFile); err != nil {
		return errors.Wrapf(ErrInvalidPointerFile, "%q", s.PointerFile)
	}

	return nil
}
