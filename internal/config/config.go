// Package config loads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Data backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	// HTTP server
	Addr            string
	WebDir          string
	ShutdownTimeout time.Duration

	// Storage
	DataBackend    string
	DatabaseURL    string
	DBMaxOpenConns int

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// SSO, enabled when OIDCIssuer is set
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Calendar zone used for day and month keys; empty means time.Local.
	TZName string

	LogLevel string
	Env      string
}

// Load reads an optional .env file and then the environment. Variables
// already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Addr:            getEnv("ADDR", ":8080"),
		WebDir:          getEnv("WEB_DIR", "web"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		DataBackend:    getEnv("DATA_BACKEND", BackendMemory),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 7*24*time.Hour),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", ""),

		TZName: getEnv("TZ_NAME", ""),

		LogLevel: getEnv("LOG_LEVEL", ""),
		Env:      getEnv("ENV", "development"),
	}
	return cfg, nil
}

// SSOEnabled reports whether an OIDC provider is configured.
func (c *Config) SSOEnabled() bool {
	return c.OIDCIssuer != ""
}

// Location resolves TZName.
func (c *Config) Location() (*time.Location, error) {
	if c.TZName == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TZName)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.TZName, err)
	}
	return loc, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.Addr == "" {
		errs = append(errs, "listen address cannot be empty")
	}

	validBackends := []string{BackendMemory, BackendPostgres}
	if !slices.Contains(validBackends, c.DataBackend) {
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}
	if c.DataBackend == BackendPostgres && c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required when using postgres backend")
	}
	if c.DBMaxOpenConns < 1 {
		errs = append(errs, fmt.Sprintf("invalid max open connections %d: must be at least 1", c.DBMaxOpenConns))
	}

	if c.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	} else if len(c.JWTSecret) < 16 {
		errs = append(errs, "JWT_SECRET must be at least 16 characters")
	}
	if c.TokenTTL < time.Minute {
		errs = append(errs, fmt.Sprintf("invalid token ttl %v: must be at least 1 minute", c.TokenTTL))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}

	if _, err := c.Location(); err != nil {
		errs = append(errs, err.Error())
	}

	if c.SSOEnabled() {
		if u, err := url.Parse(c.OIDCIssuer); err != nil || (u.Scheme != "https" && u.Scheme != "http") {
			errs = append(errs, fmt.Sprintf("invalid OIDC issuer '%s': must be an http(s) URL", c.OIDCIssuer))
		}
		if c.OIDCClientID == "" {
			errs = append(errs, "OIDC_CLIENT_ID is required when OIDC_ISSUER is set")
		}
		if c.OIDCRedirectURL == "" {
			errs = append(errs, "OIDC_REDIRECT_URL is required when OIDC_ISSUER is set")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
