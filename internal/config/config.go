// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// BaseURL is the public origin used to build share links.
	// Defaults to "http://localhost:8080".
	BaseURL string

	// GeocoderURL is the base URL of a Nominatim-compatible geocoding
	// service. Empty (the default) disables city and place search.
	GeocoderURL string

	// RedisURL, when set, switches the search cache from in-process memory
	// to the named Redis server. Accepts redis:// connection URLs.
	RedisURL string

	// TileURL is the map tile layer template handed to clients. Empty (the
	// default) makes the map endpoint report itself unavailable.
	TileURL string

	// SearchRPS is the per-IP request rate allowed on the search endpoints.
	// Defaults to 5. Values <= 0 disable search rate limiting.
	SearchRPS float64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		GeocoderURL: os.Getenv("GEOCODER_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		TileURL:     os.Getenv("TILE_URL"),
		SearchRPS:   getEnvFloat("SEARCH_RPS", 5),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvFloat parses the environment variable named by key as a float,
// or returns fallback if the variable is unset, empty, or malformed.
func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
