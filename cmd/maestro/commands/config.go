package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/maestro/internal/config"
	"github.com/thoreinstein/maestro/internal/errors"
	"github.com/thoreinstein/maestro/internal/store"
)

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect maestro's configuration",
	Long: `Inspect where maestro keeps its bookkeeping and which user
configuration file it points to.

Without a subcommand, shows the effective settings.`,
	Example: `  # Show settings
  maestro config

  # Print the configured user configuration path
  maestro config path

See Also: maestro configure`,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configured user configuration path",
	Long:  `Print the absolute path recorded in the maestro pointer file.`,
	Example: `  # Open the configuration in your editor
  $EDITOR "$(maestro config path)"

See Also: maestro configure`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigPathWithWriter(cmd.OutOrStdout(), openStore(cmd))
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Long:  `Show the effective maestro settings in YAML format.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// settingsView is the YAML shape printed by 'maestro config show'.
type settingsView struct {
	SettingsFile string `yaml:"settings_file"`
	PointerFile  string `yaml:"pointer_file"`
	LogFormat    string `yaml:"log_format"`
	Configured   bool   `yaml:"configured"`
	ConfigFile   string `yaml:"config_file,omitempty"`
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	return runConfigShowWithWriter(cmd.OutOrStdout(), openStore(cmd), settings)
}

// runConfigShowWithWriter allows injecting a writer, store and settings for testing.
func runConfigShowWithWriter(w io.Writer, s *store.Store, cfg *config.Settings) error {
	view := settingsView{
		SettingsFile: config.File(),
		PointerFile:  s.PointerPath(),
		Configured:   s.Configured(),
	}
	if cfg != nil {
		view.LogFormat = cfg.LogFormat
	}
	if view.SettingsFile == "" {
		view.SettingsFile = "(none)"
	}
	if view.Configured {
		if p, err := s.Pointer(); err == nil {
			view.ConfigFile = p.ConfigFilePath
		}
	}

	data, err := yaml.Marshal(view)
	if err != nil {
		return errors.Wrap(err, "marshaling settings")
	}
	_, err = w.Write(data)
	return err
}

// runConfigPathWithWriter allows injecting a writer and store for testing.
func runConfigPathWithWriter(w io.Writer, s *store.Store) error {
	p, err := s.Pointer()
	if err != nil {
		return storeError(err)
	}
	fmt.Fprintln(w, p.ConfigFilePath)
	return nil
}
