// Package commands implements the CLI commands for maestro.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/maestro/cmd"
	"github.com/thoreinstein/maestro/internal/config"
	"github.com/thoreinstein/maestro/internal/errors"
	"github.com/thoreinstein/maestro/internal/logging"
	"github.com/thoreinstein/maestro/internal/store"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// pointerFile holds the value of the --pointer-file flag.
var pointerFile string

// settingsFile holds the value of the --settings flag.
var settingsFile string

// settings holds the loaded tool settings.
var settings *config.Settings

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default from settings, else text)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&pointerFile, "pointer-file", "",
		"location of the maestro pointer file (default from settings, else ./maestro.json)")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "",
		"read maestro settings from this file")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("maestro version {{.Version}}\n")

	// Errors are printed by Execute with their suggestion.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "maestro",
	Short: "Manage workspace configuration for maestro",
	Long: `maestro orchestrates a collection of named workspaces.

Workspaces are declared in a user configuration file that can live anywhere
on disk. 'maestro configure' records where that file is; every other command
follows the record, parses the file and validates each workspace before use.`,
	Example: `  # Point maestro at your workspace file
  maestro configure ~/maestro/workspaces.json

  # Check it
  maestro validate

  # List workspaces
  maestro workspace list

  See Also: maestro configure, maestro validate, maestro workspace`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadSettings(); err != nil {
			return err
		}
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// loadSettings reads maestro's own settings into settings.
func loadSettings() error {
	config.Init()
	s, err := config.Load(settingsFile)
	if err != nil {
		return errors.NewUserError(err, "Check your maestro settings file")
	}
	settings = s
	return nil
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	level := logging.LevelFromVerbosity(verbosity)
	if quiet {
		level = slog.LevelError
	}

	formatName := logFormat
	if formatName == "" && settings != nil {
		formatName = settings.LogFormat
	}
	format := logging.FormatText
	if formatName != "" {
		f, ok := logging.ParseFormat(formatName)
		if !ok {
			return errors.NewUserError(
				errors.Wrapf(errors.ErrInvalidArgument, "--log-format %q", formatName),
				"Use --log-format text or --log-format json")
		}
		format = f
	}

	handler := logging.Config{Level: level, Format: format, Output: cmd.ErrOrStderr()}.NewHandler()

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		fileHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})
		handler = logging.NewMultiHandler(handler, fileHandler)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// openStore returns the store for the pointer file selected by flags and
// settings.
func openStore(cmd *cobra.Command) *store.Store {
	path := pointerFile
	if path == "" && settings != nil {
		path = settings.PointerFile
	}
	return store.New(path, store.WithLogger(logging.FromContext(cmd.Context())))
}

// Execute runs the root command and prints any error with its suggestion.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

// printError writes err and, when present, its suggestion.
func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	fmt.Fprintf(w, "%s %v\n", red.Sprint("Error:"), err)
	if s := errors.SuggestionOf(err); s != "" && s != err.Error() {
		fmt.Fprintf(w, "%s\n", s)
	}
}
