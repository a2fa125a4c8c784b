// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// Evaluation configuration
	Eval EvalConfig `yaml:"eval"`

	// Logging configuration
	Log LogConfig `yaml:"log"`
}

// EvalConfig holds evaluation settings.
type EvalConfig struct {
	// Cutoffs are the ranks NDCG is reported at.
	Cutoffs []int `envconfig:"TYPEVAL_CUTOFFS" yaml:"cutoffs"`
	// Workers bounds concurrent per-question scoring. 1 means sequential.
	Workers int `envconfig:"TYPEVAL_WORKERS" yaml:"workers"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `envconfig:"TYPEVAL_LOG_LEVEL" yaml:"level"`
	Format string `envconfig:"TYPEVAL_LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from environment variables and optional config file.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	// Set defaults first
	setDefaults(cfg)

	// Load from YAML file if provided (overrides defaults)
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func setDefaults(cfg *Config) {
	cfg.Eval = EvalConfig{
		Cutoffs: []int{5, 10},
		Workers: 1,
	}

	cfg.Log = LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []string

	if len(c.Eval.Cutoffs) == 0 {
		errs = append(errs, "at least one NDCG cutoff is required")
	}
	for _, k := range c.Eval.Cutoffs {
		if k < 1 {
			errs = append(errs, fmt.Sprintf("invalid cutoff %d: must be positive", k))
		}
	}

	if c.Eval.Workers < 1 {
		errs = append(errs, "workers must be at least 1")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be text or json)", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
