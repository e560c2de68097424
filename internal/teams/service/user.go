package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/metrics"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
	"github.com/aussiebroadwan/bartab-teams/pkg/slogx"
)

type UserService struct {
	Store   store.Store
	Metrics *metrics.Metrics

	// Now defaults to time.Now.
	Now func() time.Time
}

// GetProfile returns the caller's user row.
func (s *UserService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	if userID == "" {
		return domain.User{}, domain.ErrMissingAuth
	}
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, orNotFound(err, domain.ErrUserNotFound, "load user")
	}
	return u, nil
}

// UpsertProfile records the caller's email and display name, creating the
// user on first call. Unset fields keep their stored value.
func (s *UserService) UpsertProfile(ctx context.Context, userID, email, name string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if userID == "" {
		return domain.User{}, deny(ctx, s.Metrics, domain.ErrMissingAuth, "profile without verified user")
	}

	parsedEmail := domain.ParseEmail(email)
	if parsedEmail.IsInvalid() {
		return domain.User{}, deny(ctx, s.Metrics, domain.ErrInvalidEmail.WithDescription(parsedEmail.Reason()), "invalid profile email")
	}
	parsedName := domain.ParseDisplayName(name)
	if parsedName.IsInvalid() {
		return domain.User{}, deny(ctx, s.Metrics, domain.ErrInvalidName.WithDescription(parsedName.Reason()), "invalid profile name")
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		u = domain.User{ID: userID}
	case err != nil:
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}

	if v, ok := parsedEmail.Get(); ok {
		u.Email = v
	}
	if v, ok := parsedName.Get(); ok {
		u.Name = v
	}
	u.UpdatedAt = clock(s.Now).now()

	if err := s.Store.Users().UpsertUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, deny(ctx, s.Metrics, domain.ErrEmailTaken, "profile email taken")
		}
		log.Error("failed to upsert user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Debug("profile updated", slog.String("user_id", userID))
	return s.Store.Users().GetUserByID(ctx, userID)
}
