package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/thoreinstein/maestro/internal/store"
)

// PermissionCheck flags world-writable maestro files: the pointer file, its
// directory and the user configuration. Anyone able to write them can
// redirect maestro to other workspaces.
type PermissionCheck struct {
	PermissionFixer
	store *store.Store
}

var (
	_ Check = (*PermissionCheck)(nil)
	_ Fixer = (*PermissionCheck)(nil)
)

// NewPermissionCheck creates a permission check for s.
func NewPermissionCheck(s *store.Store) *PermissionCheck {
	return &PermissionCheck{store: s}
}

// Name returns the unique identifier for this check.
func (c *PermissionCheck) Name() string {
	return "file-permissions"
}

// Category returns the grouping for this check.
func (c *PermissionCheck) Category() string {
	return "filesystem"
}

// Run inspects permissions of every file maestro reads.
func (c *PermissionCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	// Unix permissions don't apply on Windows
	if runtime.GOOS == "windows" {
		result.Status = SeverityInfo
		result.Message = "skipped on windows"
		return result
	}

	pointer := c.store.PointerPath()
	var issues []pathIssue
	issues = append(issues, checkFile(pointer)...)
	issues = append(issues, checkDirectory(filepath.Dir(pointer))...)
	if p, err := c.store.Pointer(); err == nil {
		issues = append(issues, checkFile(p.ConfigFilePath)...)
	}
	c.setIssues(issues)

	if len(issues) == 0 {
		result.Status = SeverityPass
		result.Message = "no world-writable files"
		return result
	}

	details := make(map[string]any, len(issues))
	for _, issue := range issues {
		details[issue.Path] = fmt.Sprintf("%s (mode %s)", issue.Problem, issue.Permissions)
	}
	result.Status = SeverityWarning
	result.Message = fmt.Sprintf("%d path(s) with unsafe permissions", len(issues))
	result.Details = details
	result.Fixable = c.CanFix()
	result.FixHint = "maestro doctor --fix"
	return result
}

// pathIssue represents a single permission problem.
type pathIssue struct {
	Path        string
	Type        string // "file" or "directory"
	Problem     string
	Permissions string
	Fixable     bool
}

func checkFile(path string) []pathIssue {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		// Missing files are reported by the pointer and config checks
		return nil
	}
	if info.Mode().Perm()&0o002 == 0 {
		return nil
	}
	return []pathIssue{{
		Path:        path,
		Type:        "file",
		Problem:     "file is world-writable",
		Permissions: formatOctal(info.Mode().Perm()),
		Fixable:     true,
	}}
}

func checkDirectory(path string) []pathIssue {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil
	}
	// Sticky directories such as /tmp only let owners replace their files
	if info.Mode().Perm()&0o002 == 0 || info.Mode()&os.ModeSticky != 0 {
		return nil
	}
	return []pathIssue{{
		Path:        path,
		Type:        "directory",
		Problem:     "directory is world-writable",
		Permissions: formatOctal(info.Mode().Perm()),
		Fixable:     true,
	}}
}

func formatOctal(perm os.FileMode) string {
	return fmt.Sprintf("%04o", perm)
}
