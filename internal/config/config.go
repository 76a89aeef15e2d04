// Package config loads configuration for the chanwire CLI from a TOML file
// with CHANWIRE_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config holds tunables for the CLI's engine instance.
type Config struct {
	// QueueSize is the deferred-delivery queue size.
	QueueSize int `toml:"queue_size"`

	// Workers is the number of delivery worker goroutines.
	Workers int `toml:"workers"`

	// LogLevel is the minimum log level ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		QueueSize: 10000,
		Workers:   10,
		LogLevel:  "info",
	}
}

// Load builds a Config from defaults, then the TOML file at path (a missing
// file is not an error; path may be empty to skip), then environment
// overrides. Later sources win.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing config file is fine; defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides cfg fields from CHANWIRE_* environment variables.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("CHANWIRE_QUEUE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing CHANWIRE_QUEUE_SIZE: %w", err)
		}
		cfg.QueueSize = n
	}
	if v, ok := os.LookupEnv("CHANWIRE_WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing CHANWIRE_WORKERS: %w", err)
		}
		cfg.Workers = n
	}
	if v, ok := os.LookupEnv("CHANWIRE_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}
