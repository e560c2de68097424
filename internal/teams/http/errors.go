package http

import (
	"net/http"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/pkg/httpx"
	"github.com/aussiebroadwan/bartab-teams/pkg/slogx"
)

// writeError renders domain errors with their own status and kind. Anything
// else is an unexpected failure and is logged, never echoed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if de, ok := domain.AsError(err); ok {
		httpx.WriteError(w, de.Status, string(de.Kind), de.Description)
		return
	}
	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	httpx.WriteError(w, http.StatusInternalServerError, "server_error", "internal server error")
}

// decodeBody decodes a JSON request body, answering invalid_request itself
// when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(r, v); err != nil {
		slogx.FromContext(r.Context()).Debug("bad request body", "err", err)
		httpx.WriteError(w, http.StatusBadRequest, string(domain.KindInvalidRequest), "invalid JSON body")
		return false
	}
	return true
}
