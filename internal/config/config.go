package config

import (
	"os"
	"strings"
	"time"
)

// Insecure development fallbacks, overridable via environment.
const (
	defaultPort          = "3000"
	defaultSessionSecret = "devshelf-dev-secret-change-me"
	defaultSQLitePath    = "data/devshelf.db"
)

// DefaultSessionTTL bounds how long an issued session cookie stays valid.
const DefaultSessionTTL = 7 * 24 * time.Hour

type Config struct {
	Port          string
	SessionSecret string

	// DatabaseURL selects postgres when set; otherwise an embedded sqlite
	// file at SQLitePath is used.
	DatabaseURL string
	SQLitePath  string

	AllowedOrigins []string
}

// Load reads configuration from the environment, falling back to development
// defaults.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", defaultPort),
		SessionSecret:  getEnv("SESSION_SECRET", defaultSessionSecret),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     getEnv("SQLITE_PATH", defaultSQLitePath),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue
	}

	var values []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
