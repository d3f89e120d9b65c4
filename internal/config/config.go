// Package config loads the optional pylex.yaml file the CLI reads its
// output preferences from. The lexer core itself takes no configuration;
// its behavior is a pure function of the input buffer.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourceFileExt is the conventional extension for lexable source files.
const SourceFileExt = ".py"

// Config holds the CLI output preferences.
type Config struct {
	// Format selects the token dump format: text, ndjson, or yaml.
	Format string `yaml:"format,omitempty"`

	// Color controls ANSI coloring of the text format: auto (only when
	// stdout is a terminal), always, or never.
	Color string `yaml:"color,omitempty"`

	// FailFast stops the dump at the first error item.
	FailFast bool `yaml:"fail_fast,omitempty"`
}

// Default returns the configuration used when no pylex.yaml is present.
func Default() Config {
	return Config{Format: "text", Color: "auto"}
}

// Load reads and validates a pylex.yaml file. Fields absent from the file
// keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects unknown format and color modes.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "ndjson", "yaml":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}
