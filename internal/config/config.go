// Package config provides configuration management for baremp3 using Viper.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/aikumo/baremp3/internal/errors"
)

// AppName is the application name used for config file naming.
const AppName = "baremp3"

// Config represents the top-level configuration structure.
type Config struct {
	Version int          `mapstructure:"version" yaml:"version"`
	Output  OutputConfig `mapstructure:"output" yaml:"output"`
	Decode  DecodeConfig `mapstructure:"decode" yaml:"decode"`
	Log     LogConfig    `mapstructure:"log" yaml:"log"`
}

// OutputConfig controls how decoded audio is written.
type OutputConfig struct {
	// Dir is the default directory for decoded WAV files.
	// Empty means next to the input file.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// BitDepth is the WAV sample width in bits, 16 or 24.
	BitDepth int `mapstructure:"bit_depth" yaml:"bit_depth"`
}

// DecodeConfig controls the decode run itself.
type DecodeConfig struct {
	// Jobs is the number of files decoded concurrently.
	Jobs int `mapstructure:"jobs" yaml:"jobs"`
}

// LogConfig controls default log output.
type LogConfig struct {
	// Format is "text" or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// Dir returns the directory where the config file is searched.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix("BAREMP3")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("output.bit_depth", 16)
	viper.SetDefault("decode.jobs", 1)
	viper.SetDefault("log.format", "text")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found
// (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// An explicit path must exist; the implicit search may come up
			// empty and fall back to defaults.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
