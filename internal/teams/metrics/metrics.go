// Package metrics holds the Prometheus instruments of the teams service.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "teams"

// Join sources.
const (
	JoinCreate = "create"
	JoinDirect = "direct"
	JoinInvite = "invite"
)

type Metrics struct {
	registry prometheus.Gatherer

	teamsCreated      prometheus.Counter
	membersJoined     *prometheus.CounterVec
	membersRemoved    prometheus.Counter
	roleChanges       *prometheus.CounterVec
	successions       prometheus.Counter
	invitesIssued     prometheus.Counter
	inviteRedemptions *prometheus.CounterVec
	denials           *prometheus.CounterVec
	uniqueRetries     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec

	totals *prometheus.GaugeVec
}

// New registers the instruments on reg. Pass a fresh registry in tests.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		teamsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "created_total",
			Help: "Teams created.",
		}),
		membersJoined: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "members_joined_total",
			Help: "Memberships created, by source.",
		}, []string{"source"}),
		membersRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "members_removed_total",
			Help: "Memberships removed.",
		}),
		roleChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "role_changes_total",
			Help: "Role changes, by new role.",
		}, []string{"role"}),
		successions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "ownership_successions_total",
			Help: "Admins promoted to owner after the last owner left.",
		}),
		invitesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "invites_issued_total",
			Help: "Invite tokens issued.",
		}),
		inviteRedemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "invite_redemptions_total",
			Help: "Invite accept attempts, by outcome.",
		}, []string{"outcome"}),
		denials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "denials_total",
			Help: "Requests refused by a business rule, by error kind.",
		}, []string{"kind"}),
		uniqueRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "unique_retries_total",
			Help: "Inserts retried after a uniqueness violation, by column.",
		}, []string{"column"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request latency, by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "code"}),
		totals: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "rows",
			Help: "Row census refreshed by the stats collector.",
		}, []string{"table"}),
	}

	reg.MustRegister(
		m.teamsCreated,
		m.membersJoined,
		m.membersRemoved,
		m.roleChanges,
		m.successions,
		m.invitesIssued,
		m.inviteRedemptions,
		m.denials,
		m.uniqueRetries,
		m.requestDuration,
		m.totals,
	)
	return m
}

func (m *Metrics) TeamCreated() {
	if m == nil {
		return
	}
	m.teamsCreated.Inc()
}

func (m *Metrics) MemberJoined(source string) {
	if m == nil {
		return
	}
	m.membersJoined.WithLabelValues(source).Inc()
}

func (m *Metrics) MemberRemoved(promoted bool) {
	if m == nil {
		return
	}
	m.membersRemoved.Inc()
	if promoted {
		m.successions.Inc()
	}
}

func (m *Metrics) RoleChanged(role string) {
	if m == nil {
		return
	}
	m.roleChanges.WithLabelValues(role).Inc()
}

func (m *Metrics) InviteIssued() {
	if m == nil {
		return
	}
	m.invitesIssued.Inc()
}

// InviteRedeemed records an accept outcome: "joined", "already_member" or
// an error kind.
func (m *Metrics) InviteRedeemed(outcome string) {
	if m == nil {
		return
	}
	m.inviteRedemptions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Denied(kind string) {
	if m == nil {
		return
	}
	m.denials.WithLabelValues(kind).Inc()
}

func (m *Metrics) UniqueRetry(column string) {
	if m == nil {
		return
	}
	m.uniqueRetries.WithLabelValues(column).Inc()
}

// ObserveTotals publishes a census from the store.
func (m *Metrics) ObserveTotals(t store.Totals) {
	if m == nil {
		return
	}
	m.totals.WithLabelValues("users").Set(float64(t.Users))
	m.totals.WithLabelValues("teams").Set(float64(t.Teams))
	m.totals.WithLabelValues("team_members").Set(float64(t.Members))
	m.totals.WithLabelValues("team_invites").Set(float64(t.Invites))
	m.totals.WithLabelValues("team_invites_exhausted").Set(float64(t.ExhaustedInvites))
}

// InstrumentRoute wraps h with a latency histogram labelled by route.
func (m *Metrics) InstrumentRoute(route string, h http.Handler) http.Handler {
	if m == nil {
		return h
	}
	return promhttp.InstrumentHandlerDuration(
		m.requestDuration.MustCurryWith(prometheus.Labels{"route": route}), h)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Timeout: 5 * time.Second})
}
