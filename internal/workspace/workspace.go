package workspace

import (
	"fmt"
	"regexp"
	"time"
)

// namePattern matches a single word: letters, letter numbers such as 'Ⅻ',
// combining marks, decimal digits and connector punctuation such as '_'.
var namePattern = regexp.MustCompile(`^[\p{L}\p{Nl}\p{M}\p{Nd}\p{Pc}]+$`)

// Validation failure reasons.
const (
	ReasonNameNotWord  = "Name must be a single word containing only letters, digits or underscores"
	ReasonNameEmpty    = "Name must not be empty"
	ReasonPathRequired = "Workspace path must not be empty"
)

// Workspace is one named unit of configuration.
type Workspace struct {
	// Name identifies the workspace on the command line.
	Name string `json:"name" yaml:"name"`

	// Description is free text shown in listings.
	Description string `json:"description" yaml:"description"`

	// Path is the workspace location on the host.
	Path string `json:"workspace_path" yaml:"workspace_path"`

	// ContainerWorkingDir is the working directory inside the workspace
	// container, if any.
	ContainerWorkingDir *string `json:"container_working_dir" yaml:"container_working_dir"`

	// LastUpdated records when the entry was last touched.
	LastUpdated *time.Time `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
}

// ValidationError reports why a workspace is unusable.
type ValidationError struct {
	// Workspace is the offending workspace's name as written in the file.
	Workspace string

	// Field is the serialized key that failed.
	Field string

	// Reason is the human-readable rule that was violated.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("workspace %q: %s: %s", e.Workspace, e.Field, e.Reason)
}

// Validate checks the workspace and returns the first rule it violates.
func (w *Workspace) Validate() error {
	if !namePattern.MatchString(w.Name) {
		return w.invalid("name", ReasonNameNotWord)
	}
	if w.Name == "" {
		return w.invalid("name", ReasonNameEmpty)
	}
	if w.Path == "" {
		return w.invalid("workspace_path", ReasonPathRequired)
	}
	return nil
}

// WorkingDir returns the container working directory, or "" when unset.
func (w *Workspace) WorkingDir() string {
	if w.ContainerWorkingDir == nil {
		return ""
	}
	return *w.ContainerWorkingDir
}

func (w *Workspace) invalid(field, reason string) *ValidationError {
	return &ValidationError{Workspace: w.Name, Field: field, Reason: reason}
}
