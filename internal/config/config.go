// Package config resolves run settings from flags, environment, and an
// optional YAML file. With nothing set, every value matches the tool's
// built-in behavior.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Keys shared with flag bindings.
const (
	KeyReportDir = "report_dir"
	KeyGlob      = "glob"
	KeyLogLevel  = "log_level"
)

// EnvPrefix prefixes environment overrides, e.g. LOGSUMMARY_REPORT_DIR.
const EnvPrefix = "LOGSUMMARY"

// Config holds the resolved settings for one run.
type Config struct {
	// ReportDir is where the CSV summary is written (default: reports)
	ReportDir string `mapstructure:"report_dir"`

	// Glob expands doublestar patterns in arguments (default: false)
	Glob bool `mapstructure:"glob"`

	// LogLevel controls stderr diagnostics (default: warn)
	LogLevel string `mapstructure:"log_level"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyReportDir, "reports")
	v.SetDefault(KeyGlob, false)
	v.SetDefault(KeyLogLevel, "warn")
}

// Load reads cfgFile if given, otherwise looks for .logsummary.yaml in the
// working directory and then the home directory. A missing default file is
// not an error; an unreadable explicit file is.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".logsummary")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the run cannot use.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ReportDir) == "" {
		return errors.New("config: report_dir must not be empty")
	}
	return nil
}
