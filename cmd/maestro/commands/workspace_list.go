package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/maestro/internal/store"
	"github.com/thoreinstein/maestro/internal/workspace"
)

var listFormat string

func init() {
	workspaceListCmd.Flags().StringVarP(&listFormat, "format", "o", formatTable, "output format: table, json, yaml")
	workspaceCmd.AddCommand(workspaceListCmd)
}

var workspaceListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List configured workspaces",
	Long:    `List every workspace in declaration order.`,
	Example: `  # Table output
  maestro workspace list

  # Machine-readable output
  maestro workspace list --format json

  See Also: maestro workspace show`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runListWithWriter(cmd.OutOrStdout(), openStore(cmd), listFormat)
	},
}

// runListWithWriter allows injecting a writer and store for testing.
func runListWithWriter(w io.Writer, s *store.Store, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	cfg, err := s.Load()
	if err != nil {
		return storeError(err)
	}

	if format != formatTable {
		return encode(w, format, cfg)
	}
	return outputTable(w, cfg)
}

// outputTable prints workspaces as an aligned table.
func outputTable(w io.Writer, cfg *workspace.Config) error {
	if len(cfg.Workspaces) == 0 {
		fmt.Fprintln(w, "(no workspaces configured)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tCONTAINER DIR\tDESCRIPTION")
	for _, ws := range cfg.Workspaces {
		dir := ws.WorkingDir()
		if dir == "" {
			dir = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ws.Name, ws.Path, dir, ws.Description)
	}
	return tw.Flush()
}
