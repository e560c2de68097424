package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/bartab-teams/pkg/jwtx"
	"github.com/aussiebroadwan/bartab-teams/pkg/slogx"
)

// AuthnMiddleware verifies the bearer token and attaches the subject as the
// verified user id. Requests without a valid token never reach the handler.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := bearerToken(r)
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = WithUserID(ctx, claims.Subject)
			ctx = slogx.WithAttrs(ctx, "user_id", claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if len(authz) < len("Bearer ") || !strings.EqualFold(authz[:len("Bearer ")], "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(authz[len("Bearer "):])
	return raw, raw != ""
}

// RFC 6750 challenge plus the JSON error body the rest of the API uses.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "missing_auth", desc)
}
