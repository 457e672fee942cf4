// Package config loads server settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Account backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config is the full server configuration.
type Config struct {
	HTTPAddr        string        `env:"PDD_HTTP_ADDR" envDefault:":8080"`
	AccountBackend  string        `env:"PDD_ACCOUNT_BACKEND" envDefault:"memory"`
	SQLitePath      string        `env:"PDD_SQLITE_PATH" envDefault:"pdd.db"`
	DatabaseURI     string        `env:"DATABASE_URI"`
	PasswordScheme  string        `env:"PDD_PASSWORD_SCHEME" envDefault:"plaintext"`
	BcryptCost      int           `env:"PDD_BCRYPT_COST" envDefault:"12"`
	SessionSecret   string        `env:"PDD_SESSION_SECRET"`
	SessionTTL      time.Duration `env:"PDD_SESSION_TTL" envDefault:"12h"`
	CookieSecure    bool          `env:"PDD_COOKIE_SECURE" envDefault:"false"`
	ModelDir        string        `env:"PDD_MODEL_DIR" envDefault:"models"`
	ModelURL        string        `env:"PDD_MODEL_URL"`
	ModelTimeout    time.Duration `env:"PDD_MODEL_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"PDD_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads envFile when it exists, then parses and validates the
// environment. Variables already set take precedence over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects inconsistent settings.
func (c Config) Validate() error {
	switch c.AccountBackend {
	case BackendMemory, BackendSQLite:
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURI) == "" {
			return errors.New("DATABASE_URI is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown account backend %q", c.AccountBackend)
	}
	switch c.PasswordScheme {
	case "plaintext", "bcrypt":
	default:
		return fmt.Errorf("unknown password scheme %q", c.PasswordScheme)
	}
	if c.SessionSecret == "" {
		return errors.New("PDD_SESSION_SECRET is required")
	}
	if c.SessionTTL <= 0 {
		return errors.New("PDD_SESSION_TTL must be positive")
	}
	return nil
}
