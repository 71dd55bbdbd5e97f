package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// OutputText prints one "<size> <color> <name>" line per product.
	OutputText = "text"

	// OutputJSON prints the matching products as a JSON array.
	OutputJSON = "json"
)

// Config holds all configuration for specfilter.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig selects the product catalog.
type CatalogConfig struct {
	// Path to a YAML catalog file. Empty selects the built-in sample catalog.
	Path string `mapstructure:"path"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command-line flag names to the config keys they set.
var flagKeys = map[string]string{
	"catalog": "catalog.path",
	"output":  "output.format",
}

// Load reads configuration from flags, environment variables and file, in
// that order of precedence. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("catalog.path", "")
	v.SetDefault("output.format", OutputText)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir(), ".specfilter"))
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("SPECFILTER")
	v.AutomaticEnv()

	_ = v.BindEnv("catalog.path", "SPECFILTER_CATALOG_PATH")
	_ = v.BindEnv("output.format", "SPECFILTER_OUTPUT_FORMAT")
	_ = v.BindEnv("logging.level", "SPECFILTER_LOGGING_LEVEL")
	_ = v.BindEnv("logging.format", "SPECFILTER_LOGGING_FORMAT")

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK; use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that configuration values are recognized.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", OutputText, OutputJSON, c.Output.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug|info|warn|error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
