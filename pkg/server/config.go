package server

import (
	"fmt"
	"log/slog"
	"time"
)

// Config configures the server and its sessions.
type Config struct {
	// Address is the listen address for Run (e.g., ":3838").
	Address string

	// BasePath is the mount prefix for the websocket and client-script
	// routes. Defaults to "/shinywidgets".
	BasePath string

	// ReadTimeout bounds how long a session waits for any inbound frame
	// (the client pings within this interval).
	ReadTimeout time.Duration

	// WriteTimeout bounds a single outbound websocket write.
	WriteTimeout time.Duration

	// MaxMessageSize limits inbound frame size in bytes.
	MaxMessageSize int64

	// MaxSessions caps concurrently connected sessions. Zero means no cap.
	MaxSessions int

	// SendQueueSize is the per-session outbound queue length.
	SendQueueSize int

	// Logger receives server and session logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Address:        ":3838",
		BasePath:       "/shinywidgets",
		ReadTimeout:    60 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxMessageSize: 1 << 20, // 1MB
		SendQueueSize:  64,
	}
}

// Validate checks the configuration and fills unset fields with defaults.
func (c *Config) Validate() error {
	if c.Address == "" {
		c.Address = ":3838"
	}
	if c.BasePath == "" {
		c.BasePath = "/shinywidgets"
	}
	if c.BasePath[0] != '/' {
		return fmt.Errorf("server: base path %q must start with /", c.BasePath)
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 60 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = 1 << 20
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("server: max sessions must not be negative, got %d", c.MaxSessions)
	}
	if c.SendQueueSize <= 0 {
		c.SendQueueSize = 64
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return nil
}
