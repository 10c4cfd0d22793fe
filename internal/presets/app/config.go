package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer   string   // Required: expected issuer claim on access tokens
	Audience []string // Optional: expected audience claims (empty disables the check)

	JWKSFile string // Optional: path to a JWKS document on disk
	JWKSURL  string // Optional: URL to fetch the JWKS document from

	DatabaseFile      string        // Optional: path to SQLite database file (default: ./presets.db)
	Env               string        // Environment (dev, staging, prod) (default: dev)
	LogLevel          string        // Log level (debug, info, warn, error) (default: info)
	LogFormat         string        // Log format (json, text) (default: json)
	Port              int           // HTTP server port (default: 8080)
	ShutdownGrace     time.Duration // Graceful shutdown timeout (default: 10s)
	Retention         time.Duration // How long generated-password records are kept (0 disables pruning)
	RetentionInterval time.Duration // How often the retention sweep runs (default: 1h)
}

func LoadConfig() Config {
	// Best effort; the file is only present in local dev.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:            getEnvOrDefault("AUTH_ISSUER", "padlock-auth"),
		JWKSFile:          os.Getenv("AUTH_JWKS_FILE"),
		JWKSURL:           os.Getenv("AUTH_JWKS_URL"),
		DatabaseFile:      getEnvOrDefault("PRESETS_DATABASE_FILE", "presets.db"),
		Env:               getEnvOrDefault("ENV", "dev"),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:         getEnvOrDefault("LOG_FORMAT", "json"),
		Port:              getEnvIntOrDefault("PORT", 8080),
		ShutdownGrace:     getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		Retention:         getEnvDurationOrDefault("PRESETS_RETENTION", 0),
		RetentionInterval: getEnvDurationOrDefault("PRESETS_RETENTION_INTERVAL", 1*time.Hour),
	}

	if aud := os.Getenv("AUTH_AUDIENCE"); aud != "" {
		for _, a := range strings.Split(aud, ",") {
			if a = strings.TrimSpace(a); a != "" {
				cfg.Audience = append(cfg.Audience, a)
			}
		}
	}

	return cfg
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

	// Bare integers are read as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
