// Package config holds the file-finder server's runtime settings.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the configuration for the file-finder server.
type Config struct {
	// Address is the host:port the HTTP transport listens on.
	Address string `yaml:"address"`

	// Path is the mount point for the streaming MCP handler.
	Path string `yaml:"path"`

	// Helper pins the helper binary path, overriding automatic resolution.
	Helper string `yaml:"helper"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Address: "127.0.0.1:8080",
		Path:    "/mcp",
	}
}

// LoadFile loads configuration from a file. An empty path or a missing file
// yields the defaults.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load loads configuration from an io.Reader. Settings absent from the
// document keep their default values.
func Load(r io.Reader) (*Config, error) {
	config := Default()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading config data: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config YAML: %w", err)
	}

	return config, nil
}
