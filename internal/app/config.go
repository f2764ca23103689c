package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v3"
)

// configFile is the optional per-user configuration inside the home dir.
const configFile = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the app directory holding settings and config,
	// e.g. $HOME/.embcalc.
	Home string `yaml:"-" env:"EMBCALC_HOME"`
	// Verbose switches the logger to development output.
	Verbose bool `yaml:"verbose" env:"EMBCALC_VERBOSE"`
	// Currency is the symbol used when rendering amounts.
	Currency string `yaml:"currency" env:"EMBCALC_CURRENCY"`
}

// LoadConfig resolves the configuration. Precedence, lowest to highest:
// built-in defaults, config.yaml in the home dir, environment variables,
// then the explicit flag value for the home dir itself.
func LoadConfig(flagHome string) (*Config, error) {
	cfg := &Config{Currency: "$"}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if flagHome != "" {
		cfg.Home = flagHome
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.Home = filepath.Join(dir, ".embcalc")
	}

	data, err := os.ReadFile(filepath.Join(cfg.Home, configFile))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		// Environment wins over the file.
		if err := env.Parse(cfg); err != nil {
			return nil, fmt.Errorf("parse env: %w", err)
		}
	}
	if cfg.Currency == "" {
		cfg.Currency = "$"
	}
	return cfg, nil
}
