package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/bartab-teams/pkg/httpx"
	"github.com/aussiebroadwan/bartab-teams/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	v, err := jwtx.NewHS256([]byte(testSecret), "bartab-auth", []string{"teams"})
	require.NoError(t, err)

	var seen string
	h := httpx.AuthnMiddleware(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = httpx.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("valid token sets user id", func(t *testing.T) {
		tok, err := v.Sign(jwtx.NewAccessClaims("user-1", "bartab-auth", []string{"teams"}, time.Minute, time.Now()))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "bearer "+tok)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "user-1", seen)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")

		var body httpx.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "missing_auth", body.Error)
	})

	t.Run("wrong audience", func(t *testing.T) {
		tok, err := v.Sign(jwtx.NewAccessClaims("user-1", "bartab-auth", []string{"billing"}, time.Minute, time.Now()))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("basic auth is not a bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.SetBasicAuth("a", "b")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("decodes object", func(t *testing.T) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Core"}`))
		require.NoError(t, httpx.DecodeJSON(req, &p))
		require.Equal(t, "Core", p.Name)
	})

	t.Run("empty body is zero value", func(t *testing.T) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		require.NoError(t, httpx.DecodeJSON(req, &p))
		require.Empty(t, p.Name)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nmae":"Core"}`))
		require.Error(t, httpx.DecodeJSON(req, &p))
	})

	t.Run("trailing data rejected", func(t *testing.T) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
		require.Error(t, httpx.DecodeJSON(req, &p))
	})
}

func TestWriteErrorSetsNoStore(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, http.StatusGone, "invite_exhausted", "gone")

	require.Equal(t, http.StatusGone, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
