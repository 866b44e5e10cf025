package store

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/maestro/internal/logging"
	"github.com/thoreinstein/maestro/internal/paths"
	"github.com/thoreinstein/maestro/internal/workspace"
	"github.com/thoreinstein/maestro/pkg/fileutil"
)

// DefaultPointerFile is the pointer file name, relative to the working directory.
const DefaultPointerFile = "maestro.json"

// pointerPerm is the permission applied to written pointer files.
const pointerPerm = 0o644

// Canonicalizer resolves a user-supplied path to its canonical form.
type Canonicalizer func(path string) (string, error)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug output. Without it the Store
// logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithCanonicalizer replaces paths.Canonicalize.
func WithCanonicalizer(c Canonicalizer) Option {
	return func(s *Store) {
		s.canonicalize = c
	}
}

// Store reads and writes the pointer file and the user configuration it
// names. It holds no open files between calls.
type Store struct {
	pointerPath  string
	logger       *slog.Logger
	canonicalize Canonicalizer
}

// New creates a Store whose pointer file lives at pointerPath.
// An empty pointerPath means DefaultPointerFile.
func New(pointerPath string, opts ...Option) *Store {
	if pointerPath == "" {
		pointerPath = DefaultPointerFile
	}
	s := &Store{
		pointerPath:  pointerPath,
		logger:       logging.NewDiscard(),
		canonicalize: paths.Canonicalize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PointerPath returns the location of the pointer file.
func (s *Store) PointerPath() string {
	return s.pointerPath
}

// Logger returns the logger the Store writes to.
func (s *Store) Logger() *slog.Logger {
	return s.logger
}

// Save records userPath as the user configuration and returns its canonical
// form. Nothing is written when the path cannot be resolved.
func (s *Store) Save(userPath string) (string, error) {
	canonical, err := s.canonicalize(userPath)
	if err != nil {
		return "", fail(err, ErrPathResolution, "canonicalizing "+userPath)
	}

	data, err := NewPointer(canonical).Marshal()
	if err != nil {
		return "", fail(err, ErrWrite, "encoding pointer")
	}

	if err := fileutil.AtomicWriteFile(s.writeTarget(), data, pointerPerm); err != nil {
		return "", fail(err, ErrWrite, "writing "+s.pointerPath)
	}

	s.logger.Debug("saved maestro configuration", "pointer", s.pointerPath, "config", canonical)
	return canonical, nil
}

// writeTarget returns the file Save replaces. A symlinked pointer file is
// written through so the link survives.
func (s *Store) writeTarget() string {
	if target, err := filepath.EvalSymlinks(s.pointerPath); err == nil {
		return target
	}
	return s.pointerPath
}

// Pointer reads and decodes the pointer file.
func (s *Store) Pointer() (Pointer, error) {
	data, err := fileutil.ReadFileWithLimit(s.pointerPath)
	if errors.Is(err, fileutil.ErrFileTooLarge) {
		return Pointer{}, fail(err, ErrMalformedPointer, "reading "+s.pointerPath)
	}
	if err != nil {
		return Pointer{}, fail(err, ErrConfigNotFound, "reading "+s.pointerPath)
	}

	p, err := UnmarshalPointer(data)
	if err != nil {
		return Pointer{}, fail(err, ErrMalformedPointer, "parsing "+s.pointerPath)
	}
	return p, nil
}

// Load follows the pointer file and returns the validated user
// configuration. No configuration is returned on any failure.
func (s *Store) Load() (*workspace.Config, error) {
	p, err := s.Pointer()
	if err != nil {
		return nil, err
	}

	s.logger.Debug("resolved maestro configuration", "pointer", s.pointerPath, "config", p.ConfigFilePath)
	return s.loadFile(p.ConfigFilePath)
}

// LoadFile decodes and validates the user configuration at path without
// consulting the pointer file.
func LoadFile(path string, opts ...Option) (*workspace.Config, error) {
	return New("", opts...).loadFile(path)
}

func (s *Store) loadFile(path string) (*workspace.Config, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if errors.Is(err, fileutil.ErrFileTooLarge) {
		// The file exists; it is just not a configuration we accept.
		return nil, fail(err, ErrMalformedUserConfig, "reading "+path)
	}
	if err != nil {
		return nil, fail(err, ErrUserConfigNotFound, "reading "+path)
	}

	cfg, err := workspace.Decode(data, workspace.FormatFromPath(path))
	if err != nil {
		return nil, fail(err, ErrMalformedUserConfig, "parsing "+path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fail(err, ErrValidation, "validating "+path)
	}

	s.logger.Debug("loaded user configuration", "config", path, "workspaces", len(cfg.Workspaces))
	return cfg, nil
}

// Configured reports whether a pointer file exists.
func (s *Store) Configured() bool {
	_, err := os.Stat(s.pointerPath)
	return err == nil
}
