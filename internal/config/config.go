// Package config loads the shinywidgets.json project configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "shinywidgets.json"

	// DefaultAddress is the default server listen address.
	DefaultAddress = ":3838"

	// DefaultBasePath is the default mount prefix for framework routes.
	DefaultBasePath = "/shinywidgets"
)

// Config represents the shinywidgets.json configuration.
type Config struct {
	// Address is the server listen address.
	Address string `json:"address,omitempty"`

	// BasePath is the mount prefix for the websocket and client routes.
	BasePath string `json:"base_path,omitempty"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `json:"log_level,omitempty"`

	// MaxSessions caps concurrent sessions. Zero means no cap.
	MaxSessions int `json:"max_sessions,omitempty"`

	// ReadTimeoutSeconds bounds how long a session waits for a frame.
	ReadTimeoutSeconds int `json:"read_timeout_seconds,omitempty"`

	// Gallery is the path to the demo gallery manifest (YAML).
	Gallery string `json:"gallery,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Address:            DefaultAddress,
		BasePath:           DefaultBasePath,
		LogLevel:           "info",
		ReadTimeoutSeconds: 60,
	}
}

// Load reads the configuration from dir, falling back to defaults when no
// file exists.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values and fills unset fields with defaults.
func (c *Config) Validate() error {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.BasePath == "" {
		c.BasePath = DefaultBasePath
	}
	switch c.LogLevel {
	case "":
		c.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("config: max_sessions must not be negative, got %d", c.MaxSessions)
	}
	if c.ReadTimeoutSeconds <= 0 {
		c.ReadTimeoutSeconds = 60
	}
	return nil
}

// ReadTimeout returns the read timeout as a duration.
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}
