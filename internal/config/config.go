// Package config loads the maaray command-line configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".maaray.toml"

// Environment variables that override the file.
const (
	EnvLogLevel = "MAARAY_LOG_LEVEL"
	EnvFormat   = "MAARAY_FORMAT"
)

// Output formats accepted by the parse command.
var Formats = []string{"debug", "yaml", "source"}

// Color modes.
var ColorModes = []string{"auto", "always", "never"}

// Config holds the complete CLI configuration
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	Query  QueryConfig  `toml:"query"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	Level string `toml:"level"`
}

// QueryConfig controls name search
type QueryConfig struct {
	IgnoreCase bool `toml:"ignore_case"`
	Longest    bool `toml:"longest"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration. An explicit path must exist; with an empty
// path DefaultFile is used if present. Environment overrides are applied
// last.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	path = os.ExpandEnv(path)

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Path = path
	case errors.Is(err, os.ErrNotExist) && explicit:
		return nil, fmt.Errorf("config file not found: %w", err)
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnv()
	return cfg.finish()
}

// Parse decodes configuration from TOML text without consulting the
// environment.
func Parse(data string) (*Config, error) {
	var cfg Config
	if err := cfg.decode([]byte(data)); err != nil {
		return nil, err
	}
	return cfg.finish()
}

// decode reads TOML into c, rejecting keys that map to no setting.
func (c *Config) decode(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return nil
}

// finish fills defaults and validates.
func (c *Config) finish() (*Config, error) {
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyEnv overrides file values from the environment.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Output.Format = v
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "debug"
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
	c.Output.Color = strings.ToLower(c.Output.Color)
	c.Log.Level = strings.ToLower(c.Log.Level)
}

// Validate checks that every setting has a known value.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(Formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format: unknown format %q (want one of %s)",
			c.Output.Format, strings.Join(Formats, ", ")))
	}
	if !slices.Contains(ColorModes, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color: unknown mode %q (want one of %s)",
			c.Output.Color, strings.Join(ColorModes, ", ")))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil || c.Log.Level == "" {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

// LogLevel returns the configured zerolog level.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}
