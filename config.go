package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/olgasafonova/wikimedia-mcp-server/internal/base"
)

// Config holds server settings read from the environment
type Config struct {
	// UserAgent identifies the server to the Wikimedia APIs
	UserAgent string

	// Timeout for API requests
	Timeout time.Duration

	// LogLevel for the stderr logger
	LogLevel slog.Level
}

// LoadConfig loads configuration from environment variables. Every setting
// has a default, so the server starts with no environment at all; only a
// malformed value is an error.
func LoadConfig() (*Config, error) {
	timeout := base.DefaultTimeout
	if t := os.Getenv("WIKIMEDIA_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return nil, fmt.Errorf("invalid WIKIMEDIA_TIMEOUT %q: %w", t, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid WIKIMEDIA_TIMEOUT %q: must be positive", t)
		}
		timeout = d
	}

	userAgent := os.Getenv("WIKIMEDIA_USER_AGENT")
	if userAgent == "" {
		userAgent = base.DefaultUserAgent
	}

	return &Config{
		UserAgent: userAgent,
		Timeout:   timeout,
		LogLevel:  parseLogLevel(os.Getenv("WIKIMEDIA_LOG_LEVEL")),
	}, nil
}

// parseLogLevel maps a level name to a slog level, defaulting to info
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
