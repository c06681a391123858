// Package config builds application configuration from the environment so
// main stays lean. Configuration is validated once at startup; a process
// with invalid configuration must not come up.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Environment names recognized in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config captures everything the server needs from the environment.
type Config struct {
	Env  string
	Addr string

	// DatabaseDSN selects the Postgres stores when set; empty means the
	// in-memory stores (development and tests).
	DatabaseDSN string
	DBTimeout   time.Duration

	JWTSecret string
	JWTExpiry time.Duration

	BcryptCost int

	CORSAllowedOrigins []string
}

// FromEnv loads an optional .env file, then reads and validates the
// environment. Returns an error describing the first invalid variable.
func FromEnv() (Config, error) {
	// Missing .env is fine; real deployments rely on process environment.
	_ = godotenv.Load()

	cfg := Config{
		Env:         getenv("APP_ENV", EnvDevelopment),
		Addr:        getenv("ADDR", ":8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
	}

	switch cfg.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return Config{}, fmt.Errorf("APP_ENV must be one of development, production, test; got %q", cfg.Env)
	}

	var err error
	if cfg.DBTimeout, err = parseDuration("DB_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.JWTExpiry, err = parseDuration("JWT_EXPIRES_IN", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.JWTExpiry <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRES_IN must be positive")
	}

	cfg.JWTSecret = os.Getenv("JWT_KEY")
	if cfg.JWTSecret == "" {
		if cfg.Env == EnvProduction {
			return Config{}, fmt.Errorf("JWT_KEY is required in production")
		}
		// Development fallback; never acceptable in production.
		cfg.JWTSecret = "dev-secret-key-change-in-production"
	}

	if cfg.BcryptCost, err = parseInt("BCRYPT_COST", 12); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost < 10 || cfg.BcryptCost > 14 {
		return Config{}, fmt.Errorf("BCRYPT_COST must be between 10 and 14, got %d", cfg.BcryptCost)
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("BCRYPT_COST %d outside bcrypt limits", cfg.BcryptCost)
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

// IsProduction reports whether the process runs with production hardening
// (generic 500 bodies, no stack traces in responses).
func (c Config) IsProduction() bool { return c.Env == EnvProduction }

// minSecretLen is the shortest JWT signing secret that doesn't draw a
// startup warning.
const minSecretLen = 32

// Warnings lists configuration that works but deserves operator attention.
// The caller logs them at startup.
func (c Config) Warnings() []string {
	var warnings []string
	if len(c.JWTSecret) < minSecretLen {
		warnings = append(warnings,
			fmt.Sprintf("JWT_KEY is shorter than %d characters; use a longer random secret", minSecretLen))
	}
	return warnings
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 1h or 30m, got %q", key, v)
	}
	return d, nil
}

func parseInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}
