// Package config loads gqlmeta.yaml.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// FileName is the config file name without extension.
const FileName = "gqlmeta"

// Config represents the gqlmeta configuration
type Config struct {
	// Dir is the directory Go packages are loaded from.
	Dir string `mapstructure:"dir"`
	// Packages are Go package patterns to analyze.
	Packages []string `mapstructure:"packages"`
	// Manifests are YAML type declaration files.
	Manifests []string `mapstructure:"manifests"`
	// Roots are the type names a schema is built from.
	Roots []string `mapstructure:"roots"`
	// Strict makes warnings fail a build.
	Strict   bool   `mapstructure:"strict"`
	LogLevel string `mapstructure:"log_level"`
	// SetterPrefixes mark input object setter methods.
	SetterPrefixes []string `mapstructure:"setter_prefixes"`
	// Output is the SDL output path; empty means stdout.
	Output string `mapstructure:"output"`
}

// Load reads the config from path, or from gqlmeta.yaml in dir when path is
// empty. A missing default file is not an error. GQLMETA_* environment
// variables override file values.
func Load(path, dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("dir", "")
	v.SetDefault("packages", []string{})
	v.SetDefault("manifests", []string{})
	v.SetDefault("roots", []string{"Query"})
	v.SetDefault("strict", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("setter_prefixes", []string{"set"})
	v.SetDefault("output", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		if dir == "" {
			dir = "."
		}
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("GQLMETA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	var errs []error

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	for _, root := range c.Roots {
		if strings.TrimSpace(root) == "" {
			errs = append(errs, errors.New("roots: empty type name"))
		}
	}

	for _, prefix := range c.SetterPrefixes {
		if prefix == "" {
			errs = append(errs, errors.New("setter_prefixes: empty prefix"))
		}
	}

	return errors.Join(errs...)
}

// HasSources reports whether any package or manifest is configured.
func (c *Config) HasSources() bool {
	return len(c.Packages) > 0 || len(c.Manifests) > 0
}
