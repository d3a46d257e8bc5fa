package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Dev-only fallback secrets. Validate rejects them outside dev so a prod
// deploy can never run on a guessable key.
const (
	devSessionSecret = "dev-session-secret-do-not-deploy"
	devChatSecret    = "dev-ws-secret-do-not-deploy"
)

var (
	ErrMissingSessionSecret = errors.New("SESSION_JWT_SECRET is required outside dev")
	ErrMissingChatSecret    = errors.New("WS_JWT_SECRET is required outside dev")
)

type Config struct {
	SessionSecret string // Secret for HS256 session tokens
	ChatSecret    string // Secret for HS256 chat connection tokens
	SessionIssuer string // Issuer claim for session tokens (default: psicoconecta-api)
	ChatIssuer    string // Issuer claim for chat tokens (default: psicoconecta-ws)

	DatabaseFile        string        // Path to SQLite database file (default: ./portal.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		SessionSecret:       os.Getenv("SESSION_JWT_SECRET"),
		ChatSecret:          os.Getenv("WS_JWT_SECRET"),
		SessionIssuer:       getEnvOrDefault("SESSION_ISSUER", "psicoconecta-api"),
		ChatIssuer:          getEnvOrDefault("WS_ISSUER", "psicoconecta-ws"),
		DatabaseFile:        getEnvOrDefault("PORTAL_DATABASE_FILE", "portal.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate fills in dev defaults and hard-fails on missing secrets outside
// dev. Starting a prod portal without explicit secrets is a deploy error,
// not something to paper over.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		if c.Env != "dev" {
			return ErrMissingSessionSecret
		}
		c.SessionSecret = devSessionSecret
	}

	if c.ChatSecret == "" {
		if c.Env != "dev" {
			return ErrMissingChatSecret
		}
		c.ChatSecret = devChatSecret
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
