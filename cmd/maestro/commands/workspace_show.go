package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/maestro/internal/errors"
	"github.com/thoreinstein/maestro/internal/store"
)

// ErrWorkspaceNotFound indicates no workspace has the requested name.
var ErrWorkspaceNotFound = errors.New("workspace not found")

var showFormat string

func init() {
	workspaceShowCmd.Flags().StringVarP(&showFormat, "format", "o", formatTable, "output format: table, json, yaml")
	workspaceCmd.AddCommand(workspaceShowCmd)
}

var workspaceShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one workspace",
	Long: `Show a single workspace by name.

Names are not required to be unique; the first workspace with the name wins.`,
	Example: `  maestro workspace show api
  maestro workspace show api --format yaml

  See Also: maestro workspace list`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShowWithWriter(cmd.OutOrStdout(), openStore(cmd), args[0], showFormat)
	},
}

// runShowWithWriter allows injecting a writer and store for testing.
func runShowWithWriter(w io.Writer, s *store.Store, name, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	cfg, err := s.Load()
	if err != nil {
		return storeError(err)
	}

	ws, ok := cfg.Find(name)
	if !ok {
		return errors.NewUserError(
			errors.Wrapf(ErrWorkspaceNotFound, "%q", name),
			"Run 'maestro workspace list' to see configured workspaces")
	}

	if format != formatTable {
		return encode(w, format, ws)
	}
	return writeDetails(w, ws)
}
