package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load loads configuration from defaults, bound CLI flags and an optional
// config file. Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	return LoadWithViper(viper.GetViper())
}

// LoadWithViper loads configuration from the given viper instance.
// A config file is only read when one was set explicitly with
// SetConfigFile; no search paths or environment variables are consulted.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if path := v.ConfigFileUsed(); path != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	// Locale defaults
	v.SetDefault("locales.root", DefaultLocalesRoot)
	v.SetDefault("locales.pattern", DefaultLocalesPattern)

	// Logging defaults
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
