// Package config holds explicit configuration structs for the API.
// Limits and defaults are injected where they are used; there is no
// module-level mutable configuration.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the top-level server configuration.
type Config struct {
	// HTTPAddr is the listen address for the API server.
	HTTPAddr string

	// DatabaseURL is the PostgreSQL DSN. Empty selects the in-memory store.
	DatabaseURL string

	// APIPrefix is the base path the versioned API is mounted under.
	APIPrefix string

	LogLevel    string
	Development bool

	ShutdownTimeout time.Duration

	Pagination PaginationConfig
	Typeahead  TypeaheadConfig
}

// PaginationConfig bounds list page sizes.
type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// TypeaheadConfig bounds typeahead result counts.
type TypeaheadConfig struct {
	DefaultCount int
	MaxCount     int
}

// Default returns configuration with upstream-compatible limits.
func Default() Config {
	return Config{
		HTTPAddr:        ":8080",
		APIPrefix:       "/api/v1",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		Pagination: PaginationConfig{
			DefaultPageSize: 50,
			MaxPageSize:     100,
		},
		Typeahead: TypeaheadConfig{
			DefaultCount: 20,
			MaxCount:     100,
		},
	}
}

// FromEnv builds configuration from environment variables on top of defaults.
func FromEnv() Config {
	cfg := Default()
	cfg.HTTPAddr = getEnv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.APIPrefix = getEnv("API_PREFIX", cfg.APIPrefix)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.Development = getEnv("APP_ENV", "development") == "development"
	cfg.Pagination.DefaultPageSize = getEnvInt("DEFAULT_PAGE_SIZE", cfg.Pagination.DefaultPageSize)
	cfg.Pagination.MaxPageSize = getEnvInt("MAX_PAGE_SIZE", cfg.Pagination.MaxPageSize)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}
