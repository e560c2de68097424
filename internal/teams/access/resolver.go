// Package access resolves which team a request acts on and the caller's
// membership in it.
package access

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/telemetry"
	"github.com/aussiebroadwan/bartab-teams/pkg/idx"
	"github.com/aussiebroadwan/bartab-teams/pkg/slogx"
	"go.opentelemetry.io/otel/attribute"
)

type Resolver struct {
	Store store.Store
}

// Resolve loads the acting user, the target team (explicitTeamID, else the
// user's last active team) and the user's membership. Every call reads
// current state.
func (r *Resolver) Resolve(ctx context.Context, userID, explicitTeamID string) (scope domain.Scope, err error) {
	ctx, span := telemetry.Start(ctx, "access.resolve")
	defer func() { telemetry.End(span, err) }()
	log := slogx.FromContext(ctx)

	// 1. Verified caller.
	if userID == "" {
		return domain.Scope{}, domain.ErrMissingAuth
	}

	// 2. The caller's user row; it also carries the fallback team.
	user, err := r.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("verified user has no user row", slog.String("user_id", userID))
		return domain.Scope{}, orNotFound(err, domain.ErrUserNotFound)
	}

	// 3. Target team.
	teamID := strings.TrimSpace(explicitTeamID)
	if teamID == "" {
		teamID = user.LastActiveTeamID
	}
	if teamID == "" {
		return domain.Scope{}, domain.ErrMissingTeam
	}
	span.SetAttributes(attribute.String("team.id", teamID))
	if !idx.IsValid(teamID) {
		return domain.Scope{}, domain.ErrTeamNotFound
	}

	team, err := r.Store.Teams().GetTeamByID(ctx, teamID)
	if err != nil {
		return domain.Scope{}, orNotFound(err, domain.ErrTeamNotFound)
	}

	// 4. Membership.
	member, err := r.Store.Members().GetMember(ctx, team.ID, user.ID)
	if err != nil {
		return domain.Scope{}, orNotFound(err, domain.ErrNotAMember)
	}

	return domain.Scope{User: user, Team: team, Member: member}, nil
}

// Require resolves and then checks the membership role against required.
func (r *Resolver) Require(ctx context.Context, userID, explicitTeamID string, required domain.RoleSet) (domain.Scope, error) {
	scope, err := r.Resolve(ctx, userID, explicitTeamID)
	if err != nil {
		return domain.Scope{}, err
	}
	if err := domain.Authorize(scope.Role(), required); err != nil {
		return domain.Scope{}, err
	}
	return scope, nil
}

func orNotFound(err error, notFound *domain.Error) error {
	if store.IsNotFound(err) {
		return notFound
	}
	return err
}
