package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/stretchr/testify/require"
)

func TestUpsertProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("creates on first call", func(t *testing.T) {
		u, err := f.users.UpsertProfile(ctx, "u1", " Jane@Example.com ", " Jane ")
		require.NoError(t, err)
		require.Equal(t, "u1", u.ID)
		require.Equal(t, "jane@example.com", u.Email)
		require.Equal(t, "Jane", u.Name)
	})

	t.Run("unset fields are kept", func(t *testing.T) {
		u, err := f.users.UpsertProfile(ctx, "u1", "", "Jane Doe")
		require.NoError(t, err)
		require.Equal(t, "jane@example.com", u.Email)
		require.Equal(t, "Jane Doe", u.Name)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := f.users.UpsertProfile(ctx, "u1", "not-an-email", "")
		require.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("email owned by another user", func(t *testing.T) {
		_, err := f.users.UpsertProfile(ctx, "u2", "jane@example.com", "")
		require.ErrorIs(t, err, domain.ErrEmailTaken)
		de, ok := domain.AsError(err)
		require.True(t, ok)
		require.Equal(t, http.StatusConflict, de.Status)
	})

	t.Run("missing auth", func(t *testing.T) {
		_, err := f.users.UpsertProfile(ctx, "", "a@example.com", "")
		require.ErrorIs(t, err, domain.ErrMissingAuth)
	})

	t.Run("get profile", func(t *testing.T) {
		u, err := f.users.GetProfile(ctx, "u1")
		require.NoError(t, err)
		require.Equal(t, "Jane Doe", u.Name)

		_, err = f.users.GetProfile(ctx, "ghost")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
