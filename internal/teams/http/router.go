package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/access"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/metrics"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/service"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
	"github.com/aussiebroadwan/bartab-teams/pkg/httpx"
	"github.com/aussiebroadwan/bartab-teams/pkg/jwtx"
	"github.com/aussiebroadwan/bartab-teams/pkg/slogx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/aussiebroadwan/bartab-teams/api/teams" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store   store.Store
	metrics *metrics.Metrics
	guard   *TeamGuard

	UserService       *service.UserService
	MembershipService *service.MembershipService
	InviteService     *service.InviteService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		metrics:      m,
		logger:       logger,
		guard: &TeamGuard{
			Resolver: &access.Resolver{Store: st},
			Metrics:  m,
		},
	}

	// Set default middleware chain; tracing is outermost.
	r.middlewares = []httpx.Middleware{
		func(next http.Handler) http.Handler { return otelhttp.NewHandler(next, "teams.http") },
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerMe()
	r.registerTeams()
	r.registerMembers()
	r.registerInvites()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	r.handler = httpx.Chain(r.Mux, r.middlewares...)
}

// ServeHTTP implements http.Handler for Router through the middleware chain
// built by ApplyRoutes.
//
//	@title			BarTab Teams Service API
//	@version		0.1.0
//	@description	Multi-tenant team membership: teams, roles, ownership succession and invite links.
//	@description
//	@description				Every team-scoped route resolves the caller's membership on each request; nothing is cached.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/bartab-teams
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.handler == nil {
		http.Error(w, "routes not applied", http.StatusServiceUnavailable)
		return
	}
	r.handler.ServeHTTP(w, req)
}

// handle registers h under pattern with the route latency histogram.
func (r *Router) handle(pattern string, h http.Handler) {
	r.Mux.Handle(pattern, r.metrics.InstrumentRoute(pattern, h))
}

// authed wraps h with bearer authentication and a per-user rate limit.
func (r *Router) authed(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerMe() {
	h := &MeHandler{
		UserService:       r.UserService,
		MembershipService: r.MembershipService,
	}

	r.handle("GET /v1/me", r.authed(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.handle("PUT /v1/me", r.authed(http.HandlerFunc(h.HandlePut), httpx.ModerateLimit))
	r.handle("GET /v1/me/teams", r.authed(http.HandlerFunc(h.HandleTeams), httpx.LenientLimit))
}

func (r *Router) registerTeams() {
	h := &TeamsHandler{MembershipService: r.MembershipService}

	// POST /v1/teams - moderate, every create allocates a slug
	r.handle("POST /v1/teams", r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))

	// GET /v1/team - the caller's last active team
	r.handle("GET /v1/team", r.authed(r.guard.Scoped(h.HandleGet), httpx.LenientLimit))
	r.handle("GET /v1/teams/{teamID}", r.authed(r.guard.Scoped(h.HandleGet), httpx.LenientLimit))
	r.handle("PATCH /v1/teams/{teamID}", r.authed(r.guard.Require(domain.Managers, h.HandleRename), httpx.ModerateLimit))
	r.handle("POST /v1/teams/{teamID}/select", r.authed(r.guard.Scoped(h.HandleSelect), httpx.LenientLimit))
}

func (r *Router) registerMembers() {
	h := &MembersHandler{MembershipService: r.MembershipService}

	r.handle("GET /v1/teams/{teamID}/members",
		r.authed(r.guard.Scoped(h.HandleList), httpx.LenientLimit))
	r.handle("POST /v1/teams/{teamID}/members",
		r.authed(r.guard.Require(domain.Managers, h.HandleAdd), httpx.ModerateLimit))
	r.handle("PATCH /v1/teams/{teamID}/members/{userID}",
		r.authed(r.guard.Require(domain.Managers, h.HandleChangeRole), httpx.ModerateLimit))

	// DELETE is open to any member: leaving is always allowed, removing
	// others is checked by the service.
	r.handle("DELETE /v1/teams/{teamID}/members/{userID}",
		r.authed(r.guard.Scoped(h.HandleRemove), httpx.ModerateLimit))
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InviteService: r.InviteService}

	r.handle("POST /v1/teams/{teamID}/invites",
		r.authed(r.guard.Require(domain.Managers, h.HandleIssue), httpx.ModerateLimit))
	r.handle("GET /v1/teams/{teamID}/invites",
		r.authed(r.guard.Require(domain.Managers, h.HandleList), httpx.LenientLimit))

	// GET /lookup - public, strict by IP so tokens cannot be enumerated
	r.handle("GET /v1/invites/lookup",
		httpx.Chain(http.HandlerFunc(h.HandleLookup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /accept - strict by user
	r.handle("POST /v1/invites/accept", r.authed(http.HandlerFunc(h.HandleAccept), httpx.StrictLimit))
}

func (r *Router) registerSystem() {
	// Health and metrics endpoints - public limits, monitoring polls frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /metrics",
		httpx.Chain(r.metrics.Handler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
