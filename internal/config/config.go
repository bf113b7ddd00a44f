// Package config loads svarog settings from a YAML file and SVAROG_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the top-level svarog configuration.
type Config struct {
	// WorldsDir holds one directory per world, each with its campaigns.
	WorldsDir string `mapstructure:"worlds_dir" yaml:"worlds_dir" validate:"required"`
	// DataDirs are extra creature template directories.
	DataDirs []string `mapstructure:"data_dirs" yaml:"data_dirs"`
	// DefaultCreature is the target of commands that name none.
	DefaultCreature string        `mapstructure:"default_creature" yaml:"default_creature" validate:"required"`
	Logging         LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig mirrors logger.Config.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json"`
	Output string `mapstructure:"output" yaml:"output" validate:"required"`
}

var validate = validator.New()

// Load loads configuration from file, environment, and defaults.
//
// Precedence, highest first: SVAROG_* environment variables, the config
// file, defaults. An empty configPath uses $XDG_CONFIG_HOME/svarog/config.yaml.
// A missing file is not an error.
func Load(configPath string) (*Config, error) {
	return LoadWith(viper.New(), configPath)
}

// LoadWith is Load on a caller-provided viper instance, so that flags bound
// with BindPFlag take part in the lookup.
func LoadWith(v *viper.Viper, configPath string) (*Config, error) {
	setupViper(v, configPath)

	if _, err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero values and normalizes the logging level.
func ApplyDefaults(cfg *Config) {
	if cfg.WorldsDir == "" {
		cfg.WorldsDir = "./worlds"
	}
	if cfg.DefaultCreature == "" {
		cfg.DefaultCreature = "self"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	return validate.Struct(cfg)
}

func setupViper(v *viper.Viper, configPath string) {
	// SVAROG_LOGGING_LEVEL=debug
	v.SetEnvPrefix("SVAROG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about
	for _, key := range []string{"worlds_dir", "data_dirs", "default_creature", "logging.level", "logging.format", "logging.output"} {
		v.SetDefault(key, nil)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.AddConfigPath(ConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

// ConfigDir returns $XDG_CONFIG_HOME/svarog, falling back to ~/.config/svarog.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "svarog")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "svarog")
}

// DefaultConfigPath returns the config file used when no path is given.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
