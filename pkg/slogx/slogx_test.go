package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/bartab-teams/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, slogx.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, slogx.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, slogx.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, slogx.ParseLevel("whatever"))
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := slogx.WithContext(context.Background(), base)
	ctx = slogx.WithAttrs(ctx, "team_id", "t1")
	slogx.FromContext(ctx).Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "t1", line["team_id"])
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Same(t, slog.Default(), slogx.FromContext(context.Background()))
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slogx.FromContext(r.Context()).Info("inside")
		w.WriteHeader(http.StatusGone)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/invites/lookup", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusGone, rec.Code)
	require.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inside, access map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inside))
	require.NoError(t, json.Unmarshal(lines[1], &access))
	require.Equal(t, "req-123", inside["req_id"])
	require.Equal(t, "WARN", access["level"])
	require.EqualValues(t, http.StatusGone, access["status"])
}
