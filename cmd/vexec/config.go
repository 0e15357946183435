package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variables that configure vexec
const EnvPrefix = "VEXEC"

// Config holds settings shared by all subcommands
type Config struct {
	// Verbose enables debug logging
	Verbose bool `mapstructure:"verbose"`
	// EnvDirs are applied, in order, to the environment of every run
	EnvDirs []string `mapstructure:"envdir"`
	// Separators is the default separator set for split
	Separators string `mapstructure:"separators"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() Config {
	return Config{
		Separators: " \t\n",
	}
}

// newViper creates a viper instance with defaults and environment bindings
func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("envdir", defaults.EnvDirs)
	v.SetDefault("separators", defaults.Separators)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// loadConfig reads the optional config file and decodes the settings
func loadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
