package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/maestro/internal/doctor"
	"github.com/thoreinstein/maestro/internal/errors"
	"github.com/thoreinstein/maestro/internal/store"
)

var (
	doctorJSON bool
	doctorFix  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"repair unsafe file permissions, then re-run the checks")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration issues",
	Long: `Run diagnostic checks on the maestro pointer file, the user
configuration it names and the workspaces declared there.

Output modes:
  (default)   Show errors and warnings
  -v          Show all checks including passed ones
  -q          No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  maestro doctor
  maestro doctor --fix

  See Also: maestro validate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := doctorOptions{JSON: doctorJSON, Fix: doctorFix, Quiet: quiet, All: verbosity > 0}
		return runDoctorWithWriter(cmd.OutOrStdout(), openStore(cmd), opts)
	},
}

// doctorOptions selects output mode and remediation.
type doctorOptions struct {
	JSON  bool
	Fix   bool
	Quiet bool
	All   bool
}

// errDoctorWarnings is returned with exit code 1.
var errDoctorWarnings = errors.New("doctor found warnings")

// errDoctorErrors is returned with exit code 2.
var errDoctorErrors = errors.New("doctor found errors")

func newDoctorRunner(s *store.Store) *doctor.Runner {
	return doctor.NewRunner(
		doctor.NewPointerCheck(s),
		doctor.NewUserConfigCheck(s),
		doctor.NewWorkspacePathsCheck(s),
		doctor.NewPermissionCheck(s),
	)
}

// runDoctorWithWriter allows injecting a writer and store for testing.
func runDoctorWithWriter(w io.Writer, s *store.Store, opts doctorOptions) error {
	if opts.JSON && opts.Quiet {
		return errors.NewUserError(nil, "cannot use --json and --quiet together")
	}

	runner := newDoctorRunner(s)
	report := runner.Run()

	if opts.Fix {
		fixes := runner.Fix()
		if !opts.Quiet && !opts.JSON {
			for _, f := range fixes {
				fmt.Fprintf(w, "fixed %s: %s\n", f.Path, f.Description)
			}
		}
		if len(fixes) > 0 {
			report = runner.Run()
		}
	}

	if err := outputDoctorReport(w, report, opts); err != nil {
		return err
	}

	if report.HasErrors() {
		return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
	}
	if report.HasWarnings() {
		return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
	}
	return nil
}

func outputDoctorReport(w io.Writer, report *doctor.Report, opts doctorOptions) error {
	switch {
	case opts.Quiet:
		return nil
	case opts.JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON")
	}

	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !opts.All && !problem {
			continue
		}

		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
