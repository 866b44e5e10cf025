package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/maestro/internal/logging"
	"github.com/thoreinstein/maestro/internal/paths"
	"github.com/thoreinstein/maestro/internal/store"
)

// Setting keys.
const (
	KeyPointerFile = "pointer_file"
	KeyLogFormat   = "log_format"
)

// Settings is maestro's own configuration.
type Settings struct {
	// PointerFile is where the pointer to the user configuration is kept.
	PointerFile string `mapstructure:"pointer_file" yaml:"pointer_file"`

	// LogFormat is the default --log-format.
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Init resets Viper and installs search paths, environment binding and
// defaults. Call it once before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.SettingsDir())

	viper.SetEnvPrefix("MAESTRO")
	viper.AutomaticEnv()

	viper.SetDefault(KeyPointerFile, store.DefaultPointerFile)
	viper.SetDefault(KeyLogFormat, string(logging.FormatText))
}

// Load reads the settings file. When path is empty the default locations
// are searched and a missing file is fine; an explicit path must exist.
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// defaults apply
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "settings file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	if err := Validate(&s); err != nil {
		return nil, errors.Wrap(err, "validating settings")
	}

	return &s, nil
}

// File returns the settings file Viper loaded, or "" if none was found.
func File() string {
	return viper.ConfigFileUsed()
}
