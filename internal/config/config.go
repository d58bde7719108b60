// Package config loads optional scan exclusion settings from a YAML
// file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds user-supplied exclusion settings.
type Config struct {
	// ExcludeRoot contains directory names skipped directly under the
	// filesystem root, in addition to the built-in set.
	ExcludeRoot []string `yaml:"exclude-root"`
	// Exclude contains directory names skipped anywhere in the tree.
	Exclude []string `yaml:"exclude"`
}

// Default returns an empty configuration; the scanner's built-in
// exclusions always apply regardless.
func Default() *Config {
	return &Config{}
}

// Load reads the configuration from path. A missing file yields the
// default configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}

	return &cfg, nil
}
