package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/maestro/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		writeVersion(c.OutOrStdout())
	},
}

func writeVersion(w io.Writer) {
	fmt.Fprintf(w, "maestro %s (commit %s, built %s)\n", cmd.Version, cmd.Commit, cmd.Date)
}
