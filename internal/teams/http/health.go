package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
	"github.com/aussiebroadwan/bartab-teams/pkg/httpx"
	"github.com/aussiebroadwan/bartab-teams/pkg/teamsdk"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning status, uptime and version. Always 200 while the process runs.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	teamsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, teamsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe that pings the membership database.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	teamsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	teamsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &teamsdk.HealthChecks{Database: "ok"}
		status, code := "ok", http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, teamsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
