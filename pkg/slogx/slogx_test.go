package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/artistportal/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{
		Service: "artist-portal",
		Version: "v-test",
		Env:     "test",
		Level:   "debug",
		Output:  &buf,
	})

	logger.Debug("hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "hello", line["msg"])
	require.Equal(t, "artist-portal", line["service"])
	require.Equal(t, "v-test", line["version"])
	require.Equal(t, "v", line["k"])
}

func TestFromContext_DefaultsWhenMissing(t *testing.T) {
	require.Equal(t, slog.Default(), slogx.FromContext(context.Background()))
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var sawLogger bool
	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = slogx.FromContext(r.Context()) != slog.Default()
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

		require.True(t, sawLogger)
		require.Equal(t, http.StatusTeapot, rec.Code)
		require.NotEmpty(t, rec.Header().Get(slogx.RequestIDHeader))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		require.Equal(t, "http_request", line["msg"])
		require.EqualValues(t, http.StatusTeapot, line["status"])
		require.Equal(t, "/livez", line["path"])
		require.Equal(t, "unmatched", line["route"])
		require.Equal(t, "WARN", line["level"])
	})

	t.Run("propagates incoming request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(slogx.RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "req-123", rec.Header().Get(slogx.RequestIDHeader))
		require.Contains(t, buf.String(), `"req_id":"req-123"`)
	})
}

func TestHTTPMiddleware_RouteAndLevel(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	slogx.HTTPMiddleware(base)(mux).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/7", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "GET /api/user/{id}", line["route"])
	require.Equal(t, "ERROR", line["level"])
}

func TestNew_RedactsCredentials(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{Service: "artist-portal", Level: "info", Format: "text", Output: &buf})

	logger.Info("login attempt", "email", "alex@example.com", "password", "password123", "token", "eyJhbGciOi")

	out := buf.String()
	require.Contains(t, out, "email=alex@example.com")
	require.NotContains(t, out, "password123")
	require.NotContains(t, out, "eyJhbGciOi")
	require.Contains(t, out, "password=[REDACTED]")
}

func TestNew_LevelParsing(t *testing.T) {
	tests := []struct {
		level    string
		debugOn  bool
		infoOn   bool
		errorsOn bool
	}{
		{"debug", true, true, true},
		{"INFO", false, true, true},
		{"error", false, false, true},
		{"nonsense", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := slogx.New(slogx.Config{Level: tt.level, Output: &bytes.Buffer{}})
			ctx := context.Background()
			require.Equal(t, tt.debugOn, logger.Enabled(ctx, slog.LevelDebug))
			require.Equal(t, tt.infoOn, logger.Enabled(ctx, slog.LevelInfo))
			require.Equal(t, tt.errorsOn, logger.Enabled(ctx, slog.LevelError))
		})
	}
}
