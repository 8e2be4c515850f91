package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Config represents the application configuration
type Config struct {
	Locales LocalesConfig `mapstructure:"locales" yaml:"locales"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LocalesConfig controls where locale message files are looked up
type LocalesConfig struct {
	Root    string `mapstructure:"root" yaml:"root"`
	Pattern string `mapstructure:"pattern" yaml:"pattern"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"pretty": true,
	"json":   true,
}

// Validate validates the configuration, filling empty fields with defaults
func (c *Config) Validate() error {
	if c.Locales.Root == "" {
		c.Locales.Root = DefaultLocalesRoot
	}
	if c.Locales.Pattern == "" {
		c.Locales.Pattern = DefaultLocalesPattern
	}
	if !doublestar.ValidatePattern(c.Locales.Pattern) {
		return fmt.Errorf("invalid locales.pattern: %q", c.Locales.Pattern)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid logging.format: %q", c.Logging.Format)
	}
	return nil
}
