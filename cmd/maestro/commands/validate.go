package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/maestro/internal/paths"
	"github.com/thoreinstein/maestro/internal/store"
	"github.com/thoreinstein/maestro/internal/workspace"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate the user configuration",
	Long: `Parse and validate the configured user configuration file, or the
given file without touching the maestro pointer file.

Every workspace needs a single-word name (letters, digits, underscores) and
a non-empty workspace_path. Validation stops at the first invalid workspace.`,
	Example: `  # Validate the configured file
  maestro validate

  # Validate a file before configuring it
  maestro validate ./workspaces.yaml

  See Also: maestro configure, maestro workspace list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := ""
		if len(args) == 1 {
			file = args[0]
		}
		return runValidateWithWriter(cmd.OutOrStdout(), openStore(cmd), file)
	},
}

// runValidateWithWriter allows injecting a writer and store for testing.
func runValidateWithWriter(w io.Writer, s *store.Store, file string) error {
	logger := s.Logger()
	var (
		cfg *workspace.Config
		err error
	)
	if file != "" {
		file, err = paths.ExpandHome(file)
		if err != nil {
			return err
		}
		cfg, err = store.LoadFile(file, store.WithLogger(logger))
	} else {
		cfg, err = s.Load()
	}
	if err != nil {
		return storeError(err)
	}

	green := color.New(color.FgGreen)
	fmt.Fprintf(w, "%s %s valid\n", green.Sprint("✓"), pluralize(len(cfg.Workspaces), "workspace"))
	return nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
