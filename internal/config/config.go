package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tally-dev/tally/internal/money"
)

// Config represents the tally.yaml configuration.
type Config struct {
	Currency string    `yaml:"currency"`
	Log      LogConfig `yaml:"log"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Currency: money.DefaultSymbol,
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads a tally.yaml file, falling back to defaults when the file
// is absent. A .env file in the working directory is applied first,
// then TALLY_CURRENCY and TALLY_LOG_LEVEL override either source.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if v := os.Getenv("TALLY_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("TALLY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if cfg.Currency == "" {
		cfg.Currency = money.DefaultSymbol
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
