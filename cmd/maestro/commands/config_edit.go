package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/maestro/internal/editor"
	"github.com/thoreinstein/maestro/internal/logging"
	"github.com/thoreinstein/maestro/internal/store"
)

func init() {
	configCmd.AddCommand(configEditCmd)
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the user configuration in your editor",
	Long: `Open the configured user configuration file in $MAESTRO_EDITOR,
$EDITOR or $VISUAL (falling back to nano, then vi), and validate it once
the editor exits.`,
	Example: `  maestro config edit
  MAESTRO_EDITOR="code --wait" maestro config edit

See Also: maestro validate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigEditWithWriter(cmd.Context(), cmd.OutOrStdout(), openStore(cmd), editor.New(),
			logging.FromContext(cmd.Context()))
	},
}

// fileOpener opens a file for interactive editing.
type fileOpener interface {
	Open(ctx context.Context, path string) error
}

// runConfigEditWithWriter allows injecting a writer, store and editor for testing.
func runConfigEditWithWriter(ctx context.Context, w io.Writer, s *store.Store, ed fileOpener, logger *slog.Logger) error {
	p, err := s.Pointer()
	if err != nil {
		return storeError(err)
	}

	fmt.Fprintf(w, "Location: %s\n", p.ConfigFilePath)
	logger.Debug("opening editor", "config", p.ConfigFilePath)
	if err := ed.Open(ctx, p.ConfigFilePath); err != nil {
		return err
	}

	return runValidateWithWriter(w, s, "")
}
