// Package config loads tool defaults from an optional YAML config file.
//
// The file is discovered as config.yaml under the user config directory
// (e.g. ~/.config/csvq) or the working directory, or named explicitly with
// --config. A missing file is not an error: built-in defaults apply, and
// command-line flags always win over config values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the defaults applied before flags are parsed.
type Config struct {
	Format    string `mapstructure:"format"`
	Color     bool   `mapstructure:"color"`
	Delimiter string `mapstructure:"delimiter"`
	Comment   string `mapstructure:"comment"`
	Limit     int    `mapstructure:"limit"`
}

// Load reads the config file at path, or searches the default locations
// when path is empty.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, "csvq"))
		}
		v.AddConfigPath(".")
	}

	v.SetDefault("format", "table")
	v.SetDefault("color", false)
	v.SetDefault("delimiter", ",")
	v.SetDefault("comment", "#")
	v.SetDefault("limit", 0)

	if err := v.ReadInConfig(); err != nil {
		// A config file is optional unless one was named explicitly.
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if path != "" || !notFound {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}
