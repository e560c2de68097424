package teams_test

import (
	"errors"
	"testing"

	"github.com/aussiebroadwan/bartab-teams/pkg/teamsdk"
	"github.com/stretchr/testify/require"
)

// runMembershipScenario drives a team from creation to ownership
// succession against the service at baseURL.
func runMembershipScenario(t *testing.T, baseURL string) {
	ctx := t.Context()
	client := teamsdk.NewClient(baseURL)

	u1 := sessionFor(t, client, "u1", "u1@example.com")
	u2 := sessionFor(t, client, "u2", "u2@example.com")
	u3 := sessionFor(t, client, "u3", "u3@example.com")

	core, err := u1.CreateTeam(ctx, teamsdk.CreateTeamRequest{Name: "Core"})
	require.NoError(t, err)
	require.Equal(t, "core", core.Slug)

	again, err := u1.CreateTeam(ctx, teamsdk.CreateTeamRequest{Name: "Core"})
	require.NoError(t, err)
	require.Equal(t, "core-1", again.Slug)

	_, err = u1.AddMember(ctx, core.ID, "u2@example.com")
	require.NoError(t, err)
	_, err = u1.AddMember(ctx, core.ID, "u3@example.com")
	require.NoError(t, err)

	_, err = u1.AddMember(ctx, core.ID, "u2@example.com")
	require.True(t, errors.Is(err, teamsdk.ErrAlreadyMember), "got %v", err)

	_, err = u1.ChangeRole(ctx, core.ID, "u2", "admin")
	require.NoError(t, err)

	_, err = u2.ChangeRole(ctx, core.ID, "u3", "owner")
	require.ErrorIs(t, err, teamsdk.ErrOwnerOnly)

	_, err = u3.ListInvites(ctx, core.ID)
	require.ErrorIs(t, err, teamsdk.ErrForbidden)

	removed, err := u1.RemoveMember(ctx, core.ID, "u1")
	require.NoError(t, err)
	require.NotNil(t, removed.PromotedUserID)
	require.Equal(t, "u2", *removed.PromotedUserID)

	_, err = u1.GetTeam(ctx, core.ID)
	require.ErrorIs(t, err, teamsdk.ErrNotAMember)

	members, err := u3.ListMembers(ctx, core.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, "owner", members[0].Role)

	_, err = u2.RemoveMember(ctx, core.ID, "u2")
	require.ErrorIs(t, err, teamsdk.ErrLastAdminOwner)
}

func TestMembershipOnSQLite(t *testing.T) {
	runMembershipScenario(t, setupTeamsContainer(t))
}

func TestMembershipOnPostgres(t *testing.T) {
	runMembershipScenario(t, setupTeamsOnPostgres(t))
}
