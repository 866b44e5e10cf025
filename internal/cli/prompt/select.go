// Package prompt provides line-based interactive prompts for terminals
// where a full-screen finder is unavailable.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/maestro/internal/workspace"
)

// Sentinel errors for workspace selection.
var (
	ErrNoWorkspaces       = errors.New("no workspaces to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector handles numbered selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a Selector reading stdin. The prompt goes to stderr
// so stdout carries only the answer.
func NewSelector() *Selector {
	return NewSelectorWithIO(os.Stdin, os.Stderr)
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{reader: r, writer: w}
}

// SelectWorkspace prompts the user to choose one of workspaces and returns
// its index.
//
// Returns:
//   - ErrNoWorkspaces if the list is empty
//   - 0 without prompting if only one workspace exists
//   - ErrInvalidSelection if the answer is not a number in range
//   - ErrSelectionCancelled on EOF (e.g., Ctrl+D)
func (s *Selector) SelectWorkspace(workspaces []workspace.Workspace) (int, error) {
	if len(workspaces) == 0 {
		return -1, ErrNoWorkspaces
	}
	if len(workspaces) == 1 {
		return 0, nil
	}

	fmt.Fprintln(s.writer, "Workspaces:")
	for i, ws := range workspaces {
		fmt.Fprintf(s.writer, "  [%d] %s (%s)\n", i+1, ws.Name, ws.Path)
	}
	fmt.Fprint(s.writer, "Select [1]: ")

	input, err := bufio.NewReader(s.reader).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return -1, errors.Wrap(err, "reading selection")
		}
		// Piped input may lack a trailing newline
		if strings.TrimSpace(input) == "" {
			return -1, ErrSelectionCancelled
		}
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return -1, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if selection < 1 || selection > len(workspaces) {
		return -1, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(workspaces))
	}
	return selection - 1, nil
}
