package doctor

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

// Fixer is implemented by checks that can repair what they detect.
type Fixer interface {
	// CanFix reports whether the last Run found fixable issues.
	CanFix() bool

	// Fix attempts to remediate the issues found by Run.
	Fix() []FixResult
}

// FixResult describes the outcome of an attempted fix.
type FixResult struct {
	// Path is the file or directory that was targeted.
	Path string `json:"path"`

	// Fixed indicates whether the fix was applied.
	Fixed bool `json:"fixed"`

	// Description explains what was done or why it failed.
	Description string `json:"description"`

	// Error contains the error if the fix failed.
	Error error `json:"-"`
}

// secureFilePerm is the target permission for files (rw-r--r--).
const secureFilePerm os.FileMode = 0o644

// secureDirPerm is the target permission for directories (rwxr-xr-x).
const secureDirPerm os.FileMode = 0o755

// PermissionFixer resets unsafe permissions found by PermissionCheck.
type PermissionFixer struct {
	issues []pathIssue
}

// CanFix returns true if there are any fixable permission issues.
func (f *PermissionFixer) CanFix() bool {
	return f.CountFixable() > 0
}

// CountFixable returns the number of fixable issues.
func (f *PermissionFixer) CountFixable() int {
	count := 0
	for _, issue := range f.issues {
		if issue.Fixable {
			count++
		}
	}
	return count
}

// Fix attempts to fix all fixable permission issues.
func (f *PermissionFixer) Fix() []FixResult {
	results := make([]FixResult, 0, f.CountFixable())
	for _, issue := range f.issues {
		if issue.Fixable {
			results = append(results, fixIssue(issue))
		}
	}
	return results
}

func (f *PermissionFixer) setIssues(issues []pathIssue) {
	f.issues = issues
}

func fixIssue(issue pathIssue) FixResult {
	result := FixResult{Path: issue.Path}

	var target os.FileMode
	switch issue.Type {
	case "file":
		target = secureFilePerm
	case "directory":
		target = secureDirPerm
	default:
		result.Description = "unknown type: " + issue.Type
		result.Error = errors.Newf("cannot fix unknown type: %s", issue.Type)
		return result
	}

	if err := os.Chmod(issue.Path, target); err != nil {
		result.Description = fmt.Sprintf("failed to chmod %04o: %v", target, err)
		result.Error = errors.Wrapf(err, "chmod %04o %s", target, issue.Path)
		return result
	}

	result.Fixed = true
	result.Description = fmt.Sprintf("chmod %04o", target)
	return result
}
