// Package config loads client configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/khoi-stripe/danddy/internal/errors"
)

// Config holds the settings the CLI needs to reach a backend and keep
// a session between invocations.
type Config struct {
	// BaseURL is the backend root, e.g. http://localhost:8000
	BaseURL string `env:"DANDDY_BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds each HTTP request
	Timeout time.Duration `env:"DANDDY_TIMEOUT" envDefault:"30s"`

	// TokenFile is where the access token is persisted between runs.
	// Defaults to ~/.danddy/token when unset.
	TokenFile string `env:"DANDDY_TOKEN_FILE"`
}

// Load reads configuration from environment variables and fills in the
// token file default.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	if cfg.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve home directory")
		}
		cfg.TokenFile = filepath.Join(home, ".danddy", "token")
	}

	return &cfg, nil
}

// Validate ensures the loaded configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.InvalidArgument("base URL is required")
	}
	if c.Timeout <= 0 {
		return errors.InvalidArgument("timeout must be positive")
	}
	return nil
}
