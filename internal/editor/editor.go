// Package editor launches the user's preferred text editor.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNoEditor indicates the editor setting is blank after splitting.
var ErrNoEditor = errors.New("no editor configured")

// Editor runs an editor command with the terminal streams attached.
type Editor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Editor attached to the process's standard streams.
func New() *Editor {
	return &Editor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Open launches the editor for path and waits for it to exit. The command
// may carry arguments, e.g. EDITOR="code --wait".
func (e *Editor) Open(ctx context.Context, path string) error {
	args := strings.Fields(Detect())
	if len(args) == 0 {
		return ErrNoEditor
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", args[0])
	}
	return nil
}

// Detect returns the editor command line. Fallback chain:
// $MAESTRO_EDITOR, $EDITOR, $VISUAL, nano, vi.
func Detect() string {
	for _, env := range []string{"MAESTRO_EDITOR", "EDITOR", "VISUAL"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	// vi is available on all POSIX systems
	return "vi"
}
