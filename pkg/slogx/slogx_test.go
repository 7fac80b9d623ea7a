package slogx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/doorman/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		require.Equal(t, want, slogx.ParseLevel(in), in)
	}
}

func TestNew_JSONCarriesServiceFields(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{
		Service: "doorman",
		Version: "test",
		Env:     "prod",
		Level:   "info",
		Format:  "json",
		Writer:  &buf,
	})

	logger.Debug("hidden")
	logger.Info("hello", "k", "v")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "doorman", entry["service"])
	require.Equal(t, "test", entry["version"])
	require.Equal(t, "prod", entry["env"])
	require.Equal(t, "v", entry["k"])
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var seenID string
	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = slogx.RequestID(r.Context())
		slogx.FromContext(r.Context()).Info("inside")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.Len(t, seenID, 26)
		require.Equal(t, seenID, rec.Header().Get(slogx.RequestIDHeader))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)

		var inside, access map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &inside))
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &access))

		require.Equal(t, seenID, inside["req_id"])
		require.Equal(t, "http_request", access["msg"])
		require.Equal(t, float64(http.StatusTeapot), access["status"])
		require.Equal(t, float64(len("short and stout")), access["bytes"])
		require.Equal(t, "/livez", access["path"])
	})

	t.Run("honours inbound request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/livez", nil)
		req.Header.Set(slogx.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "abc-123", seenID)
		require.Equal(t, "abc-123", rec.Header().Get(slogx.RequestIDHeader))
	})
}

func TestFromContext_DefaultsOutsideRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Equal(t, slog.Default(), slogx.FromContext(req.Context()))
	require.Empty(t, slogx.RequestID(req.Context()))
}
