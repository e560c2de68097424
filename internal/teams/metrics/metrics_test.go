package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.TeamCreated()
	m.MemberJoined(JoinInvite)
	m.MemberRemoved(true)
	m.Denied("forbidden")
	m.ObserveTotals(store.Totals{Teams: 1})

	h := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	require.NotNil(t, m.InstrumentRoute("x", h))
}

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.TeamCreated()
	m.MemberJoined(JoinInvite)
	m.MemberJoined(JoinInvite)
	m.MemberRemoved(true)
	m.MemberRemoved(false)
	m.InviteRedeemed("invite_exhausted")

	require.Equal(t, 1.0, testutil.ToFloat64(m.teamsCreated))
	require.Equal(t, 2.0, testutil.ToFloat64(m.membersJoined.WithLabelValues(JoinInvite)))
	require.Equal(t, 2.0, testutil.ToFloat64(m.membersRemoved))
	require.Equal(t, 1.0, testutil.ToFloat64(m.successions))
	require.Equal(t, 1.0, testutil.ToFloat64(m.inviteRedemptions.WithLabelValues("invite_exhausted")))
}

func TestHandlerExposesTotals(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveTotals(store.Totals{Teams: 3, ExhaustedInvites: 1})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `teams_rows{table="teams"} 3`)
	require.Contains(t, rec.Body.String(), `teams_rows{table="team_invites_exhausted"} 1`)
}
