package app

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer       string        // Optional: issuer claim for session tokens (default: artist-portal)
	SessionTTL   time.Duration // Optional: session token lifetime (default: 24h)
	NumKeys      int           // Optional: number of ephemeral signing keys (default: 1, max: 10)
	DatabaseFile string        // Optional: path to SQLite database file (default: ./users.db)
	PepperFile   string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	StaticDir    string        // Optional: directory of the built single page app; embedded shell when empty
	SeedUsers    bool          // Optional: create the demo artists on serve (default: true)
	CookieSecure bool          // Optional: set Secure on the session cookie (default: false)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 3001)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:       getEnvOrDefault("PORTAL_ISSUER", "artist-portal"),
		SessionTTL:   getEnvDurationOrDefault("PORTAL_SESSION_TTL", 24*time.Hour),
		NumKeys:      getEnvIntOrDefault("PORTAL_NUM_KEYS", 1),
		DatabaseFile: getEnvOrDefault("PORTAL_DATABASE_FILE", "users.db"),
		PepperFile:   getEnvOrDefault("PORTAL_PEPPER_FILE", "pepper"),
		StaticDir:    os.Getenv("PORTAL_STATIC_DIR"),
		SeedUsers:    getEnvBoolOrDefault("PORTAL_SEED_USERS", true),
		CookieSecure: getEnvBoolOrDefault("PORTAL_COOKIE_SECURE", false),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 3001),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// DSN is the SQLite connection string for the configured database file.
// ":memory:" is passed through unchanged.
func (c Config) DSN() string {
	if c.DatabaseFile == ":memory:" {
		return c.DatabaseFile
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", c.DatabaseFile)
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
