package doctor

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/maestro/internal/paths"
	"github.com/thoreinstein/maestro/internal/store"
	"github.com/thoreinstein/maestro/internal/workspace"
)

const configureHint = "maestro configure <path>"

// PointerCheck verifies the pointer file exists and decodes.
type PointerCheck struct {
	store *store.Store
}

var _ Check = (*PointerCheck)(nil)

// NewPointerCheck creates a pointer file check for s.
func NewPointerCheck(s *store.Store) *PointerCheck {
	return &PointerCheck{store: s}
}

// Name returns the unique identifier for this check.
func (c *PointerCheck) Name() string {
	return "pointer-file"
}

// Category returns the grouping for this check.
func (c *PointerCheck) Category() string {
	return "pointer"
}

// Run reads and decodes the pointer file.
func (c *PointerCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"pointer_file": c.store.PointerPath()},
	}

	p, err := c.store.Pointer()
	switch {
	case err == nil:
		result.Status = SeverityPass
		result.Message = "points to " + p.ConfigFilePath
		result.Details["config_file_path"] = p.ConfigFilePath
	case errors.Is(err, store.ErrConfigNotFound):
		result.Status = SeverityError
		result.Message = "maestro is not configured"
		result.FixHint = configureHint
	default:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("pointer file is unreadable: %v", err)
		result.FixHint = configureHint
	}
	return result
}

// UserConfigCheck loads the user configuration through the pointer file and
// validates every workspace.
type UserConfigCheck struct {
	store *store.Store
}

var _ Check = (*UserConfigCheck)(nil)

// NewUserConfigCheck creates a user configuration check for s.
func NewUserConfigCheck(s *store.Store) *UserConfigCheck {
	return &UserConfigCheck{store: s}
}

// Name returns the unique identifier for this check.
func (c *UserConfigCheck) Name() string {
	return "user-config"
}

// Category returns the grouping for this check.
func (c *UserConfigCheck) Category() string {
	return "config"
}

// Run loads and validates the user configuration.
func (c *UserConfigCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	cfg, err := c.store.Load()
	if err == nil {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d workspace(s) valid", len(cfg.Workspaces))
		result.Details = map[string]any{"workspaces": len(cfg.Workspaces)}
		return result
	}

	switch store.KindOf(err) {
	case store.ErrConfigNotFound, store.ErrMalformedPointer:
		result.Status = SeverityInfo
		result.Message = "skipped: no usable pointer file"
	case store.ErrUserConfigNotFound:
		result.Status = SeverityError
		result.Message = "configured file cannot be read"
		result.FixHint = "restore the file or run " + configureHint
	case store.ErrMalformedUserConfig:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("configured file does not parse: %v", err)
		result.FixHint = "fix the syntax of the user configuration file"
	case store.ErrValidation:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("invalid workspace: %v", err)
		var verr *workspace.ValidationError
		if errors.As(err, &verr) {
			result.Details = map[string]any{
				"workspace": verr.Workspace,
				"field":     verr.Field,
			}
			result.FixHint = fmt.Sprintf("fix workspace %q: %s", verr.Workspace, verr.Reason)
		}
	default:
		result.Status = SeverityError
		result.Message = err.Error()
	}
	return result
}

// WorkspacePathsCheck reports declared workspace paths that are missing on
// this machine. Validation does not require paths to exist, so problems are
// warnings.
type WorkspacePathsCheck struct {
	store *store.Store
}

var _ Check = (*WorkspacePathsCheck)(nil)

// NewWorkspacePathsCheck creates a workspace path check for s.
func NewWorkspacePathsCheck(s *store.Store) *WorkspacePathsCheck {
	return &WorkspacePathsCheck{store: s}
}

// Name returns the unique identifier for this check.
func (c *WorkspacePathsCheck) Name() string {
	return "workspace-paths"
}

// Category returns the grouping for this check.
func (c *WorkspacePathsCheck) Category() string {
	return "workspaces"
}

// Run stats the path of every workspace.
func (c *WorkspacePathsCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	cfg, err := c.store.Load()
	if err != nil {
		result.Status = SeverityInfo
		result.Message = "skipped: user configuration does not load"
		return result
	}

	problems := make(map[string]any)
	for _, ws := range cfg.Workspaces {
		if problem := checkWorkspacePath(ws.Path); problem != "" {
			problems[ws.Name] = problem
		}
	}

	if len(problems) == 0 {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("all %d workspace path(s) exist", len(cfg.Workspaces))
		return result
	}

	result.Status = SeverityWarning
	result.Message = fmt.Sprintf("%d of %d workspace path(s) unusable", len(problems), len(cfg.Workspaces))
	result.Details = problems
	result.FixHint = "create the directories or update workspace_path"
	return result
}

// checkWorkspacePath returns a description of what is wrong with path, or
// "" if it is an existing directory.
func checkWorkspacePath(path string) string {
	expanded, err := paths.ExpandHome(path)
	if err != nil {
		return err.Error()
	}
	info, err := os.Stat(expanded)
	switch {
	case os.IsNotExist(err):
		return "does not exist"
	case err != nil:
		return fmt.Sprintf("cannot stat: %v", err)
	case !info.IsDir():
		return "not a directory"
	default:
		return ""
	}
}
