package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/maestro/internal/errors"
	"github.com/thoreinstein/maestro/internal/workspace"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func init() {
	rootCmd.AddCommand(workspaceCmd)
}

var workspaceCmd = &cobra.Command{
	Use:     "workspace",
	Aliases: []string{"ws"},
	Short:   "Inspect configured workspaces",
	Long: `Inspect the workspaces declared in the user configuration file.

The configuration is loaded and validated on every invocation; nothing is
shown unless every workspace is valid.`,
	Example: `  # List workspaces
  maestro workspace list

  # Show one workspace as JSON
  maestro workspace show api --format json

  # Jump into a workspace
  cd "$(maestro workspace pick)"

  See Also: maestro validate`,
}

// checkFormat rejects unknown --format values.
func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return errors.NewUserError(
			errors.Wrapf(errors.ErrInvalidArgument, "--format %q", format),
			"Use --format table, json or yaml")
	}
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding JSON")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	default:
		return errors.Newf("unsupported format %q", format)
	}
}

// writeDetails prints one workspace as aligned key/value lines.
func writeDetails(w io.Writer, ws *workspace.Workspace) error {
	bold := color.New(color.Bold)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", bold.Sprint("Name:"), ws.Name)
	fmt.Fprintf(tw, "%s\t%s\n", bold.Sprint("Description:"), ws.Description)
	fmt.Fprintf(tw, "%s\t%s\n", bold.Sprint("Path:"), ws.Path)
	if dir := ws.WorkingDir(); dir != "" {
		fmt.Fprintf(tw, "%s\t%s\n", bold.Sprint("Container dir:"), dir)
	}
	if ws.LastUpdated != nil {
		fmt.Fprintf(tw, "%s\t%s\n", bold.Sprint("Last updated:"), ws.LastUpdated.Format("2006-01-02 15:04:05 MST"))
	}
	return tw.Flush()
}
