package http

import (
	"net/http"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/access"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/metrics"
	"github.com/aussiebroadwan/bartab-teams/pkg/httpx"
	"github.com/aussiebroadwan/bartab-teams/pkg/slogx"
)

// ScopedHandler serves a request that has passed the team guard.
type ScopedHandler func(w http.ResponseWriter, r *http.Request, scope domain.Scope)

// TeamGuard resolves the acting user's membership before a team-scoped
// handler runs. It must sit behind httpx.AuthnMiddleware.
type TeamGuard struct {
	Resolver *access.Resolver
	Metrics  *metrics.Metrics
}

// Scoped admits any member of the target team.
func (g *TeamGuard) Scoped(next ScopedHandler) http.Handler {
	return g.Require(nil, next)
}

// Require admits members whose role is in required. A nil set admits every
// member.
func (g *TeamGuard) Require(required domain.RoleSet, next ScopedHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, _ := httpx.UserIDFromContext(ctx)

		var (
			scope domain.Scope
			err   error
		)
		if required == nil {
			scope, err = g.Resolver.Resolve(ctx, userID, teamIDFrom(r))
		} else {
			scope, err = g.Resolver.Require(ctx, userID, teamIDFrom(r), required)
		}
		if err != nil {
			if de, ok := domain.AsError(err); ok {
				g.Metrics.Denied(string(de.Kind))
				slogx.FromContext(ctx).Warn("team access denied", "kind", de.Kind)
			}
			writeError(w, r, err)
			return
		}

		ctx = slogx.WithAttrs(ctx,
			"team_id", scope.Team.ID,
			"role", string(scope.Role()),
		)
		next(w, r.WithContext(ctx), scope)
	})
}

// teamIDFrom reads the team from the {teamID} path segment, then the
// team_id query parameter. Empty means the user's last active team.
func teamIDFrom(r *http.Request) string {
	if id := r.PathValue("teamID"); id != "" {
		return id
	}
	return r.URL.Query().Get("team_id")
}
