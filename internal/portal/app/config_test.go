package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORTAL_ISSUER", "PORTAL_SESSION_TTL", "PORTAL_NUM_KEYS", "PORTAL_DATABASE_FILE",
		"PORTAL_PEPPER_FILE", "PORTAL_STATIC_DIR", "PORTAL_SEED_USERS", "PORTAL_COOKIE_SECURE",
		"ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD", "HOUSEKEEPING_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "artist-portal", cfg.Issuer)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, 1, cfg.NumKeys)
	require.Equal(t, "users.db", cfg.DatabaseFile)
	require.Equal(t, "pepper", cfg.PepperFile)
	require.Empty(t, cfg.StaticDir)
	require.True(t, cfg.SeedUsers)
	require.False(t, cfg.CookieSecure)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 3001, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORTAL_ISSUER", "portal-test")
	t.Setenv("PORTAL_SESSION_TTL", "30m")
	t.Setenv("PORTAL_NUM_KEYS", "3")
	t.Setenv("PORTAL_SEED_USERS", "false")
	t.Setenv("PORTAL_COOKIE_SECURE", "true")
	t.Setenv("PORT", "8080")
	t.Setenv("HOUSEKEEPING_INTERVAL", "15")

	cfg := LoadConfig()
	require.Equal(t, "portal-test", cfg.Issuer)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.Equal(t, 3, cfg.NumKeys)
	require.False(t, cfg.SeedUsers)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("PORTAL_SESSION_TTL", "forever")
	t.Setenv("PORTAL_SEED_USERS", "maybe")

	cfg := LoadConfig()
	require.Equal(t, 3001, cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.True(t, cfg.SeedUsers)
}

func TestConfigDSN(t *testing.T) {
	require.Equal(t, ":memory:", Config{DatabaseFile: ":memory:"}.DSN())

	dsn := Config{DatabaseFile: "/var/lib/portal/users.db"}.DSN()
	require.Equal(t, "file:/var/lib/portal/users.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", dsn)
}
