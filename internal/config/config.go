// Package config loads client settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/rashedq/artscape/internal/token"
)

// Config holds the client's settings. Flags may override every field.
type Config struct {
	BaseURL   string        // backend API root, e.g. https://api.example.com/api
	TokenPath string        // persisted token location
	Timeout   time.Duration // per-request timeout
}

const defaultTimeout = 30 * time.Second

// Load reads ARTSCAPE_* variables, falling back to a .env file in the
// working directory when present. Missing values get defaults; a missing
// .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:   os.Getenv("ARTSCAPE_API_URL"),
		TokenPath: os.Getenv("ARTSCAPE_TOKEN_PATH"),
		Timeout:   defaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000/api"
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = token.DefaultPath()
	}
	if v := os.Getenv("ARTSCAPE_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	return cfg
}
