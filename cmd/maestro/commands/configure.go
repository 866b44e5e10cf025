package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/maestro/internal/logging"
	"github.com/thoreinstein/maestro/internal/paths"
	"github.com/thoreinstein/maestro/internal/store"
)

func init() {
	rootCmd.AddCommand(configureCmd)
}

var configureCmd = &cobra.Command{
	Use:   "configure <path>",
	Short: "Point maestro at a user configuration file",
	Long: `Record the location of your user configuration file.

The path is resolved to an absolute path with symlinks evaluated and written
to the maestro pointer file. The file must exist. It may be JSON (comments
allowed), YAML or TOML.

After saving, the file is loaded once; problems are reported as warnings
so you can fix the file afterwards.`,
	Example: `  # Use a file in the current directory
  maestro configure workspaces.json

  # Use a file in your home directory
  maestro configure ~/maestro/workspaces.yaml

  See Also: maestro validate, maestro config path`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigureWithWriter(cmd.OutOrStdout(), openStore(cmd), logging.FromContext(cmd.Context()), args[0])
	},
}

// runConfigureWithWriter allows injecting a writer and store for testing.
func runConfigureWithWriter(w io.Writer, s *store.Store, logger *slog.Logger, userPath string) error {
	expanded, err := paths.ExpandHome(userPath)
	if err != nil {
		return err
	}

	canonical, err := s.Save(expanded)
	if err != nil {
		return storeError(err)
	}
	fmt.Fprintf(w, "Configured maestro to use %s\n", canonical)

	if _, err := s.Load(); err != nil {
		logger.Warn("saved configuration does not load cleanly", "error", err)
	}
	return nil
}
