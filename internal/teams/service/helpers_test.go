package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/metrics"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/store/drivers/sqlstore"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store      *sqlstore.Store
	metrics    *metrics.Metrics
	users      *UserService
	membership *MembershipService
	invites    *InviteService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlstore.NewSQLite(context.Background(), filepath.Join(t.TempDir(), "teams.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	m := metrics.New(prometheus.NewRegistry())
	return &fixture{
		store:      st,
		metrics:    m,
		users:      &UserService{Store: st, Metrics: m},
		membership: &MembershipService{Store: st, Metrics: m},
		invites:    &InviteService{Store: st, Metrics: m, BaseURL: "https://app.example.com/join"},
	}
}

func (f *fixture) user(t *testing.T, id, email string) domain.User {
	t.Helper()

	u, err := f.users.UpsertProfile(context.Background(), id, email, id)
	require.NoError(t, err)
	return u
}

func (f *fixture) team(t *testing.T, ownerID, name string) domain.Team {
	t.Helper()

	team, err := f.membership.CreateTeam(context.Background(), ownerID, name, "")
	require.NoError(t, err)
	return team
}

func (f *fixture) role(t *testing.T, teamID, userID string) domain.Role {
	t.Helper()

	m, err := f.store.Members().GetMember(context.Background(), teamID, userID)
	require.NoError(t, err)
	return m.Role
}

func (f *fixture) join(t *testing.T, teamID, email string, role domain.Role) {
	t.Helper()
	ctx := context.Background()

	m, err := f.membership.AddMember(ctx, teamID, domain.RoleOwner, email)
	require.NoError(t, err)
	if role != domain.RoleMember {
		_, err = f.membership.ChangeRole(ctx, teamID, domain.RoleOwner, m.UserID, role)
		require.NoError(t, err)
	}
}

// managers counts owner and admin rows.
func (f *fixture) managers(t *testing.T, teamID string) int {
	t.Helper()

	n, err := f.store.Members().CountRoles(context.Background(), teamID, domain.Managers, "")
	require.NoError(t, err)
	return n
}
