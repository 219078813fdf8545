// Package config loads the optional YAML configuration for the kvlog CLI.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultFileName is the config file probed in the working directory when
// no --config flag is given.
const DefaultFileName = "kvlog.yaml"

// Config holds the CLI settings. Flags override anything set here.
type Config struct {
	// Dir is the store directory.
	Dir string `yaml:"dir"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Dir: "."}
}

// Load reads the configuration from path. With an empty path it probes
// DefaultFileName in the working directory and falls back to Default when
// the file does not exist; an explicitly given path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	return cfg, nil
}
