package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCreateTeam(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "u1", "jane.doe@example.com")

	t.Run("creator becomes owner and selects the team", func(t *testing.T) {
		team, err := f.membership.CreateTeam(ctx, "u1", "  Core  ", "")
		require.NoError(t, err)
		require.Equal(t, "Core", team.Name)
		require.Equal(t, "core", team.Slug)
		require.Equal(t, "jane-doe", team.InboxBase)
		require.Equal(t, domain.RoleOwner, f.role(t, team.ID, "u1"))

		u, err := f.store.Users().GetUserByID(ctx, "u1")
		require.NoError(t, err)
		require.Equal(t, team.ID, u.LastActiveTeamID)
	})

	t.Run("second team reuses inbox base and gets a suffixed slug", func(t *testing.T) {
		team, err := f.membership.CreateTeam(ctx, "u1", "core", "")
		require.NoError(t, err)
		require.Equal(t, "core-1", team.Slug)
		require.Equal(t, "jane-doe", team.InboxBase)
	})

	t.Run("slug override is normalised", func(t *testing.T) {
		team, err := f.membership.CreateTeam(ctx, "u1", "Whatever", "Sales Team")
		require.NoError(t, err)
		require.Equal(t, "sales-team", team.Slug)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := f.membership.CreateTeam(ctx, "u1", "   ", "")
		require.ErrorIs(t, err, domain.ErrInvalidName)
	})

	t.Run("unknown creator", func(t *testing.T) {
		_, err := f.membership.CreateTeam(ctx, "ghost", "Core", "")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestCreateTeamConcurrentSameName(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "u1", "u1@example.com")

	const n = 4
	slugs := make([]string, n)
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			team, err := f.membership.CreateTeam(ctx, "u1", "Acme", "")
			slugs[i] = team.Slug
			return err
		})
	}
	require.NoError(t, g.Wait())

	seen := map[string]bool{}
	for _, s := range slugs {
		require.False(t, seen[s], "duplicate slug %s", s)
		seen[s] = true
	}
	require.True(t, seen["acme"])
}

func TestAddMember(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "owner", "owner@example.com")
	f.user(t, "bob", "bob@example.com")
	team := f.team(t, "owner", "Core")

	t.Run("members cannot add", func(t *testing.T) {
		_, err := f.membership.AddMember(ctx, team.ID, domain.RoleMember, "bob@example.com")
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.membership.AddMember(ctx, team.ID, domain.RoleAdmin, "nobody@example.com")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("adds by case-insensitive email", func(t *testing.T) {
		m, err := f.membership.AddMember(ctx, team.ID, domain.RoleAdmin, "BOB@Example.com")
		require.NoError(t, err)
		require.Equal(t, "bob", m.UserID)
		require.Equal(t, domain.RoleMember, m.Role)

		// the added user's active team is untouched
		u, err := f.store.Users().GetUserByID(ctx, "bob")
		require.NoError(t, err)
		require.Empty(t, u.LastActiveTeamID)
	})

	t.Run("already member", func(t *testing.T) {
		_, err := f.membership.AddMember(ctx, team.ID, domain.RoleOwner, "bob@example.com")
		require.ErrorIs(t, err, domain.ErrAlreadyMember)
	})
}

func TestChangeRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "owner", "owner@example.com")
	f.user(t, "admin", "admin@example.com")
	f.user(t, "bob", "bob@example.com")
	team := f.team(t, "owner", "Core")
	f.join(t, team.ID, "admin@example.com", domain.RoleAdmin)
	f.join(t, team.ID, "bob@example.com", domain.RoleMember)

	t.Run("admin cannot grant ownership", func(t *testing.T) {
		_, err := f.membership.ChangeRole(ctx, team.ID, domain.RoleAdmin, "bob", domain.RoleOwner)
		require.ErrorIs(t, err, domain.ErrOwnerOnly)
		require.Equal(t, domain.RoleMember, f.role(t, team.ID, "bob"))
	})

	t.Run("owner can grant ownership", func(t *testing.T) {
		m, err := f.membership.ChangeRole(ctx, team.ID, domain.RoleOwner, "bob", domain.RoleOwner)
		require.NoError(t, err)
		require.Equal(t, domain.RoleOwner, m.Role)
	})

	t.Run("owners are locked", func(t *testing.T) {
		_, err := f.membership.ChangeRole(ctx, team.ID, domain.RoleOwner, "bob", domain.RoleMember)
		require.ErrorIs(t, err, domain.ErrOwnerLocked)
	})

	t.Run("member cannot change roles", func(t *testing.T) {
		_, err := f.membership.ChangeRole(ctx, team.ID, domain.RoleMember, "admin", domain.RoleMember)
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown member", func(t *testing.T) {
		_, err := f.membership.ChangeRole(ctx, team.ID, domain.RoleOwner, "ghost", domain.RoleAdmin)
		require.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := f.membership.ChangeRole(ctx, team.ID, domain.RoleOwner, "admin", domain.Role("root"))
		require.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("admin demotes admin", func(t *testing.T) {
		m, err := f.membership.ChangeRole(ctx, team.ID, domain.RoleAdmin, "admin", domain.RoleMember)
		require.NoError(t, err)
		require.Equal(t, domain.RoleMember, m.Role)
	})
}

func TestRemoveMember(t *testing.T) {
	ctx := context.Background()

	t.Run("sole owner leaves and earliest admin is promoted", func(t *testing.T) {
		f := newFixture(t)
		f.user(t, "owner", "owner@example.com")
		f.user(t, "a1", "a1@example.com")
		f.user(t, "a2", "a2@example.com")
		f.user(t, "m1", "m1@example.com")
		team := f.team(t, "owner", "Core")
		f.join(t, team.ID, "a1@example.com", domain.RoleAdmin)
		f.join(t, team.ID, "m1@example.com", domain.RoleMember)
		f.join(t, team.ID, "a2@example.com", domain.RoleAdmin)

		removal, err := f.membership.RemoveMember(ctx, team.ID, "owner", "owner")
		require.NoError(t, err)
		require.Equal(t, "owner", removal.RemovedUserID)
		require.Equal(t, "a1", removal.PromotedUserID)

		require.Equal(t, domain.RoleOwner, f.role(t, team.ID, "a1"))
		require.Equal(t, domain.RoleAdmin, f.role(t, team.ID, "a2"))
		require.Equal(t, domain.RoleMember, f.role(t, team.ID, "m1"))
	})

	t.Run("sole owner alone cannot leave", func(t *testing.T) {
		f := newFixture(t)
		f.user(t, "owner", "owner@example.com")
		team := f.team(t, "owner", "Core")

		_, err := f.membership.RemoveMember(ctx, team.ID, "owner", "owner")
		require.ErrorIs(t, err, domain.ErrLastAdminOwner)
		require.Equal(t, domain.RoleOwner, f.role(t, team.ID, "owner"))
	})

	t.Run("sole owner with only members cannot leave", func(t *testing.T) {
		f := newFixture(t)
		f.user(t, "owner", "owner@example.com")
		f.user(t, "m1", "m1@example.com")
		team := f.team(t, "owner", "Core")
		f.join(t, team.ID, "m1@example.com", domain.RoleMember)

		_, err := f.membership.RemoveMember(ctx, team.ID, "owner", "owner")
		require.ErrorIs(t, err, domain.ErrLastAdminOwner)
	})

	t.Run("owner leaves while another owner remains", func(t *testing.T) {
		f := newFixture(t)
		f.user(t, "o1", "o1@example.com")
		f.user(t, "o2", "o2@example.com")
		f.user(t, "a1", "a1@example.com")
		team := f.team(t, "o1", "Core")
		f.join(t, team.ID, "o2@example.com", domain.RoleOwner)
		f.join(t, team.ID, "a1@example.com", domain.RoleAdmin)

		removal, err := f.membership.RemoveMember(ctx, team.ID, "o1", "o1")
		require.NoError(t, err)
		require.Empty(t, removal.PromotedUserID)
		require.Equal(t, domain.RoleAdmin, f.role(t, team.ID, "a1"))
	})

	t.Run("owners cannot be removed by others", func(t *testing.T) {
		f := newFixture(t)
		f.user(t, "owner", "owner@example.com")
		f.user(t, "a1", "a1@example.com")
		team := f.team(t, "owner", "Core")
		f.join(t, team.ID, "a1@example.com", domain.RoleAdmin)

		_, err := f.membership.RemoveMember(ctx, team.ID, "owner", "a1")
		require.ErrorIs(t, err, domain.ErrOwnerLocked)
	})

	t.Run("members cannot remove others", func(t *testing.T) {
		f := newFixture(t)
		f.user(t, "owner", "owner@example.com")
		f.user(t, "m1", "m1@example.com")
		f.user(t, "m2", "m2@example.com")
		team := f.team(t, "owner", "Core")
		f.join(t, team.ID, "m1@example.com", domain.RoleMember)
		f.join(t, team.ID, "m2@example.com", domain.RoleMember)

		_, err := f.membership.RemoveMember(ctx, team.ID, "m2", "m1")
		require.ErrorIs(t, err, domain.ErrForbidden)

		removal, err := f.membership.RemoveMember(ctx, team.ID, "m2", "owner")
		require.NoError(t, err)
		require.Equal(t, "m2", removal.RemovedUserID)

		// members may always leave
		_, err = f.membership.RemoveMember(ctx, team.ID, "m1", "m1")
		require.NoError(t, err)
	})

	t.Run("unknown member", func(t *testing.T) {
		f := newFixture(t)
		f.user(t, "owner", "owner@example.com")
		team := f.team(t, "owner", "Core")

		_, err := f.membership.RemoveMember(ctx, team.ID, "ghost", "owner")
		require.ErrorIs(t, err, domain.ErrMemberNotFound)
	})
}

func TestConcurrentOwnerSelfRemovalKeepsAManager(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "o1", "o1@example.com")
	f.user(t, "o2", "o2@example.com")
	f.user(t, "a1", "a1@example.com")
	team := f.team(t, "o1", "Core")
	f.join(t, team.ID, "o2@example.com", domain.RoleOwner)
	f.join(t, team.ID, "a1@example.com", domain.RoleAdmin)

	var g errgroup.Group
	for _, id := range []string{"o1", "o2"} {
		g.Go(func() error {
			_, err := f.membership.RemoveMember(ctx, team.ID, id, id)
			return err
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, domain.RoleOwner, f.role(t, team.ID, "a1"))
	require.Equal(t, 1, f.managers(t, team.ID))
}

func TestRenameTeam(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "owner", "owner@example.com")
	core := f.team(t, "owner", "Core")
	f.team(t, "owner", "Sales")

	t.Run("members cannot rename", func(t *testing.T) {
		_, err := f.membership.RenameTeam(ctx, core.ID, domain.RoleMember, "X", "")
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("name only keeps slug", func(t *testing.T) {
		team, err := f.membership.RenameTeam(ctx, core.ID, domain.RoleAdmin, "Core Platform", "")
		require.NoError(t, err)
		require.Equal(t, "Core Platform", team.Name)
		require.Equal(t, "core", team.Slug)
	})

	t.Run("taken slug is suffixed", func(t *testing.T) {
		team, err := f.membership.RenameTeam(ctx, core.ID, domain.RoleOwner, "", "sales")
		require.NoError(t, err)
		require.Equal(t, "sales-1", team.Slug)
		require.Equal(t, "Core Platform", team.Name)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := f.membership.RenameTeam(ctx, "01HZZZZZZZZZZZZZZZZZZZZZZZ", domain.RoleOwner, "X", "")
		require.ErrorIs(t, err, domain.ErrTeamNotFound)
	})
}

func TestRenameTeamAppliesToCurrentRow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "owner", "owner@example.com")
	core := f.team(t, "owner", "Core")

	// Two renames resolved against the same team; the slug change commits
	// first.
	_, err := f.membership.RenameTeam(ctx, core.ID, domain.RoleOwner, "", "platform")
	require.NoError(t, err)

	team, err := f.membership.RenameTeam(ctx, core.ID, domain.RoleOwner, "Core Team", "")
	require.NoError(t, err)
	require.Equal(t, "Core Team", team.Name)
	require.Equal(t, "platform", team.Slug)

	stored, err := f.store.Teams().GetTeamByID(ctx, core.ID)
	require.NoError(t, err)
	require.Equal(t, "platform", stored.Slug)
	require.Equal(t, "Core Team", stored.Name)
}

func TestRenameTeamKeepsOwnSlug(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "owner", "owner@example.com")
	f.team(t, "owner", "Core")
	second := f.team(t, "owner", "Core")
	require.Equal(t, "core-1", second.Slug)

	tests := []struct {
		name string
		base string
		want string
	}{
		{"base held by another team", "core", "core-1"},
		{"own slug", "core-1", "core-1"},
		{"own slug unnormalised", " Core 1 ", "core-1"},
		{"free base", "ops", "ops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team, err := f.membership.RenameTeam(ctx, second.ID, domain.RoleOwner, "", tt.base)
			require.NoError(t, err)
			require.Equal(t, tt.want, team.Slug)
		})
	}
}

func TestListTeamsAndMembers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "owner", "owner@example.com")
	f.user(t, "bob", "bob@example.com")
	core := f.team(t, "owner", "Core")
	sales := f.team(t, "owner", "Sales")
	f.join(t, sales.ID, "bob@example.com", domain.RoleMember)

	teams, err := f.membership.ListTeams(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.Equal(t, core.ID, teams[0].Team.ID)
	require.Equal(t, domain.RoleOwner, teams[1].Role)

	members, err := f.membership.ListMembers(ctx, sales.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, "owner", members[0].UserID)
	require.Equal(t, "bob@example.com", members[1].Email)

	team, err := f.membership.SelectTeam(ctx, domain.Scope{User: domain.User{ID: "owner"}, Team: core})
	require.NoError(t, err)
	require.Equal(t, core.ID, team.ID)

	u, err := f.store.Users().GetUserByID(ctx, "owner")
	require.NoError(t, err)
	require.Equal(t, core.ID, u.LastActiveTeamID)
}
