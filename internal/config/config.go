package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds user defaults. Command-line flags override every field.
type Config struct {
	// OutputDir is where generated files are written. Empty means the
	// current working directory.
	OutputDir string `yaml:"output_dir"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Color: "auto"}
}

// Load reads the config file at path. A missing file, or an empty path,
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if err := ValidateColor(cfg.Color); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ValidateColor checks a --color / color: value.
func ValidateColor(mode string) error {
	switch mode {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("color must be 'auto', 'always' or 'never', got %q", mode)
	}
}
