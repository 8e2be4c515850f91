package config

import "github.com/quantmind-br/manifest-info/internal/manifest"

// Default values
const (
	// Locale defaults
	DefaultLocalesRoot    = "."
	DefaultLocalesPattern = manifest.DefaultLocalePattern

	// Logging defaults
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Locales: LocalesConfig{
			Root:    DefaultLocalesRoot,
			Pattern: DefaultLocalesPattern,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
