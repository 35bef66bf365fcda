package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/artistportal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()

	return Config{
		Issuer:               "artist-portal",
		SessionTTL:           time.Hour,
		NumKeys:              1,
		DatabaseFile:         filepath.Join(dir, "users.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		SeedUsers:            true,
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		Port:                 0,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}
}

func TestNew_SeedsAndServes(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	app, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.close() })

	body := strings.NewReader(`{"email":"sarah@example.com","password":"password123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp portalsdk.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "sarahc", resp.User.Username)
}

func TestNew_ReopenKeepsUsers(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	first, err := New(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, first.close())

	second, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.close() })

	n, err := second.db.Users().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func TestNew_WithoutSeeding(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.SeedUsers = false

	app, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.close() })

	n, err := app.db.Users().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := testConfig(t)

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- app.Run(ctx) }()

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
