// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	DBPath     string
	Store      string
	RedisURL   string
	CatalogDir string
	KeyPrefix  string

	LogLevel  string
	LogFormat string
	LogFile   string

	// AutoAdvance moves past answer feedback after this delay. Zero waits
	// for the player.
	AutoAdvance time.Duration

	// PersistReviewMisses also records misses made during a review quiz.
	PersistReviewMisses bool
}

// Load reads configuration from environment variables with defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:              getEnv("QUIZDECK_DB", ""),
		Store:               strings.ToLower(getEnv("QUIZDECK_STORE", StoreSQLite)),
		RedisURL:            getEnv("QUIZDECK_REDIS_URL", "redis://localhost:6379/0"),
		CatalogDir:          getEnv("QUIZDECK_CATALOG_DIR", ""),
		KeyPrefix:           getEnv("QUIZDECK_KEY_PREFIX", "quizdeck:"),
		LogLevel:            getEnv("QUIZDECK_LOG_LEVEL", "info"),
		LogFormat:           getEnv("QUIZDECK_LOG_FORMAT", "json"),
		LogFile:             getEnv("QUIZDECK_LOG_FILE", ""),
		AutoAdvance:         getEnvDuration("QUIZDECK_AUTO_ADVANCE", 0),
		PersistReviewMisses: getEnvBool("QUIZDECK_PERSIST_REVIEW_MISSES", false),
	}
}

// ValidStore reports whether name is a known store backend.
func ValidStore(name string) bool {
	switch name {
	case StoreSQLite, StoreRedis, StoreMemory:
		return true
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// getEnvDuration accepts Go durations ("1500ms") or a bare number of
// milliseconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d >= 0 {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
