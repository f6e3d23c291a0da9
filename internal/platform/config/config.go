// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration values for the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// LogLevel controls the minimum log level: debug, info, warn, or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins
	// (comma-separated). Defaults to the Expo dev server.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:8081"`

	// SessionSigningKey signs session tokens (HS256). Required.
	SessionSigningKey string `env:"SESSION_SIGNING_KEY"`

	// SessionTTL is how long a minted session token stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// TokenStore selects the secure token store backend: memory or file.
	TokenStore string `env:"TOKEN_STORE" envDefault:"memory"`

	// TokenStorePath is the file used by the file backend.
	TokenStorePath string `env:"TOKEN_STORE_PATH" envDefault:"tokens.json"`

	// MockLatencyScale multiplies every simulated provider delay.
	// 1 keeps the canonical delays; 0 makes providers synchronous.
	MockLatencyScale float64 `env:"MOCK_LATENCY_SCALE" envDefault:"1"`
}

// Load reads configuration from environment variables and returns a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.SessionSigningKey == "" {
		return Config{}, fmt.Errorf("required environment variable not set: SESSION_SIGNING_KEY")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error (got %q)", cfg.LogLevel)
	}
	switch cfg.TokenStore {
	case "memory", "file":
	default:
		return Config{}, fmt.Errorf("TOKEN_STORE must be memory or file (got %q)", cfg.TokenStore)
	}
	if cfg.MockLatencyScale < 0 {
		return Config{}, fmt.Errorf("MOCK_LATENCY_SCALE must be >= 0 (got %g)", cfg.MockLatencyScale)
	}

	return cfg, nil
}
