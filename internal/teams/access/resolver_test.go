package access_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/access"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/service"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/store/drivers/sqlstore"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	ctx := context.Background()

	st, err := sqlstore.NewSQLite(ctx, filepath.Join(t.TempDir(), "teams.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	users := &service.UserService{Store: st}
	membership := &service.MembershipService{Store: st}
	resolver := &access.Resolver{Store: st}

	_, err = users.UpsertProfile(ctx, "u1", "u1@example.com", "One")
	require.NoError(t, err)
	_, err = users.UpsertProfile(ctx, "u2", "u2@example.com", "Two")
	require.NoError(t, err)

	t.Run("no auth", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "", "")
		require.ErrorIs(t, err, domain.ErrMissingAuth)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "ghost", "")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("no team selected", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "u2", "")
		require.ErrorIs(t, err, domain.ErrMissingTeam)
	})

	core, err := membership.CreateTeam(ctx, "u1", "Core", "")
	require.NoError(t, err)

	t.Run("falls back to last active team", func(t *testing.T) {
		scope, err := resolver.Resolve(ctx, "u1", "")
		require.NoError(t, err)
		require.Equal(t, core.ID, scope.Team.ID)
		require.Equal(t, domain.RoleOwner, scope.Role())
	})

	t.Run("explicit team wins", func(t *testing.T) {
		other, err := membership.CreateTeam(ctx, "u1", "Other", "")
		require.NoError(t, err)

		scope, err := resolver.Resolve(ctx, "u1", core.ID)
		require.NoError(t, err)
		require.Equal(t, core.ID, scope.Team.ID)

		scope, err = resolver.Resolve(ctx, "u1", "")
		require.NoError(t, err)
		require.Equal(t, other.ID, scope.Team.ID)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "u1", "nope")
		require.ErrorIs(t, err, domain.ErrTeamNotFound)
	})

	t.Run("not a member", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "u2", core.ID)
		require.ErrorIs(t, err, domain.ErrNotAMember)
	})

	t.Run("role requirement", func(t *testing.T) {
		_, err := membership.AddMember(ctx, core.ID, domain.RoleOwner, "u2@example.com")
		require.NoError(t, err)

		_, err = resolver.Require(ctx, "u2", core.ID, domain.Managers)
		require.ErrorIs(t, err, domain.ErrForbidden)

		scope, err := resolver.Require(ctx, "u2", core.ID, domain.AnyMember)
		require.NoError(t, err)
		require.Equal(t, domain.RoleMember, scope.Role())
	})
}
