package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/username/feiertage/pkg/feiertage"
)

// Config represents CLI configuration. The holiday library itself takes no
// configuration; everything here only affects the command line tool.
type Config struct {
	State  string        `mapstructure:"state"`  // default federal state (ISO code or German name)
	Output string        `mapstructure:"output"` // "table" or "json"
	Log    LoggingConfig `mapstructure:"log"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`  // log file path; empty logs to console
	Level string `mapstructure:"level"` // zap level name, default "info"
}

// Load loads configuration from file. A missing config file is not an
// error; defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.feiertage")
		v.AddConfigPath("/etc/feiertage")
	}

	v.SetDefault("state", feiertage.Berlin.Code())
	v.SetDefault("output", "table")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("feiertage")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := feiertage.ParseState(c.State); err != nil {
		return fmt.Errorf("state must name a German federal state: %w", err)
	}

	switch c.Output {
	case "table", "json":
	default:
		return fmt.Errorf("output must be 'table' or 'json', got '%s'", c.Output)
	}

	return nil
}

// DefaultState returns the configured default federal state
func (c *Config) DefaultState() feiertage.State {
	state, err := feiertage.ParseState(c.State)
	if err != nil {
		return feiertage.Berlin
	}
	return state
}
