package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/maestro/internal/cli/prompt"
	"github.com/thoreinstein/maestro/internal/errors"
	"github.com/thoreinstein/maestro/internal/logging"
	"github.com/thoreinstein/maestro/internal/store"
	"github.com/thoreinstein/maestro/internal/workspace"
)

func init() {
	workspaceCmd.AddCommand(workspacePickCmd)
}

var workspacePickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a workspace interactively",
	Long: `Open a fuzzy finder over the configured workspaces and print the
selected workspace's path. Nothing is printed if the finder is cancelled.

When stdin is not a terminal a numbered prompt is shown on stderr instead
and the answer is read from stdin.`,
	Example: `  cd "$(maestro workspace pick)"

  See Also: maestro workspace list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		find := findWorkspace
		if !logging.IsTTY(os.Stdin) {
			find = prompt.NewSelector().SelectWorkspace
		}
		return runPickWithWriter(cmd.OutOrStdout(), openStore(cmd), find)
	},
}

// finder selects a workspace index; it is swapped out in tests.
type finder func(workspaces []workspace.Workspace) (int, error)

func findWorkspace(workspaces []workspace.Workspace) (int, error) {
	return fuzzyfinder.Find(
		workspaces,
		func(i int) string {
			return workspaces[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			var sb strings.Builder
			if err := writeDetails(&sb, &workspaces[i]); err != nil {
				return err.Error()
			}
			return sb.String()
		}),
	)
}

// runPickWithWriter allows injecting a writer, store and finder for testing.
func runPickWithWriter(w io.Writer, s *store.Store, find finder) error {
	cfg, err := s.Load()
	if err != nil {
		return storeError(err)
	}
	if len(cfg.Workspaces) == 0 {
		return errors.NewUserError(errors.New("no workspaces configured"),
			"Add a workspace to your user configuration file")
	}

	idx, err := find(cfg.Workspaces)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) || errors.Is(err, prompt.ErrSelectionCancelled) {
			return nil
		}
		return errors.Wrap(err, "interactive selection failed")
	}

	fmt.Fprintln(w, cfg.Workspaces[idx].Path)
	return nil
}
