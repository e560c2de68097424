package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/metrics"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/telemetry"
	"github.com/aussiebroadwan/bartab-teams/pkg/cryptox"
	"github.com/aussiebroadwan/bartab-teams/pkg/idx"
	"github.com/aussiebroadwan/bartab-teams/pkg/slogx"
	"go.opentelemetry.io/otel/attribute"
)

// errJoinedConcurrently marks a membership insert that lost to a concurrent
// insert of the same (team, user).
var errJoinedConcurrently = errors.New("member inserted concurrently")

type InviteService struct {
	Store   store.Store
	Metrics *metrics.Metrics

	// BaseURL, when set, is used to build shareable invite links.
	BaseURL string

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *InviteService) now() time.Time { return clock(s.Now).now() }

// URL returns the shareable link for token, or "" without a base URL.
func (s *InviteService) URL(token string) string {
	if s.BaseURL == "" || token == "" {
		return ""
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

// Issue mints an invite for the team. maxUses is clamped to
// [0, domain.MaxInviteUses]; non-finite or negative values mean unlimited.
func (s *InviteService) Issue(
	ctx context.Context,
	teamID string,
	actingRole domain.Role,
	createdByUserID string,
	maxUses float64,
	allowedDomain string,
) (invite domain.Invite, err error) {
	ctx, span := telemetry.Start(ctx, "invite.issue")
	defer func() { telemetry.End(span, err) }()
	log := slogx.FromContext(ctx)

	// 1. Only owners and admins issue invites.
	if err := domain.Authorize(actingRole, domain.Managers); err != nil {
		return domain.Invite{}, deny(ctx, s.Metrics, domain.ErrForbidden, "issue invite denied",
			slog.String("acting_role", string(actingRole)))
	}

	// 2. Normalise the cap and the domain restriction.
	parsedDomain := domain.ParseAllowedDomain(allowedDomain)
	if parsedDomain.IsInvalid() {
		return domain.Invite{}, deny(ctx, s.Metrics, domain.ErrInvalidDomain.WithDescription(parsedDomain.Reason()),
			"issue invite with invalid domain")
	}
	restrict, _ := parsedDomain.Get()

	now := s.now()
	invite = domain.Invite{
		TeamID:          teamID,
		MaxUses:         domain.ClampMaxUses(maxUses),
		AllowedDomain:   restrict,
		CreatedByUserID: createdByUserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// 3. Generate a token and persist; regenerate on the (negligible) chance
	// of a collision.
	for attempt := 1; attempt <= maxUniqueAttempts; attempt++ {
		invite.ID = idx.NewAt(now).String()
		invite.Token, err = cryptox.NewInviteToken()
		if err != nil {
			log.Error("failed to generate invite token", slog.Any("error", err))
			return domain.Invite{}, err
		}

		err = s.Store.Invites().CreateInvite(ctx, invite)
		if err == nil {
			s.Metrics.InviteIssued()
			span.SetAttributes(attribute.String("invite.id", invite.ID))
			log.Info("invite issued",
				slog.String("invite_id", invite.ID),
				slog.String("team_id", teamID),
				slog.Int("max_uses", invite.MaxUses),
				slog.String("allowed_domain", invite.AllowedDomain),
			)
			return invite, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			log.Error("failed to create invite", slog.Any("error", err))
			return domain.Invite{}, fmt.Errorf("create invite: %w", err)
		}
		s.Metrics.UniqueRetry("token")
	}

	return domain.Invite{}, deny(ctx, s.Metrics, domain.ErrSlugConflict, "invite token exhausted retries")
}

// loadActive parses raw and returns the invite it names, refusing exhausted
// invites.
func (s *InviteService) loadActive(ctx context.Context, raw string) (domain.Invite, error) {
	token := domain.ExtractToken(raw)
	if token == "" {
		return domain.Invite{}, domain.ErrMissingToken
	}
	if !cryptox.WellFormed(token, cryptox.TokenSizeInvite) {
		return domain.Invite{}, domain.ErrInviteNotFound
	}
	inv, err := s.Store.Invites().GetInviteByToken(ctx, token)
	if err != nil {
		return domain.Invite{}, orNotFound(err, domain.ErrInviteNotFound, "load invite")
	}
	if inv.Exhausted() {
		return inv, domain.ErrInviteExhausted
	}
	return inv, nil
}

// Lookup describes the invite named by a bare token or invite link.
func (s *InviteService) Lookup(ctx context.Context, raw string) (view domain.InviteView, err error) {
	ctx, span := telemetry.Start(ctx, "invite.lookup")
	defer func() { telemetry.End(span, err) }()

	inv, err := s.loadActive(ctx, raw)
	if de, ok := domain.AsError(err); ok {
		return domain.InviteView{}, deny(ctx, s.Metrics, de, "invite lookup refused")
	}
	if err != nil {
		return domain.InviteView{}, err
	}

	team, err := s.Store.Teams().GetTeamByID(ctx, inv.TeamID)
	if err != nil {
		return domain.InviteView{}, orNotFound(err, domain.ErrInviteNotFound, "load invite team")
	}

	return domain.InviteView{
		TeamID:        team.ID,
		TeamName:      team.Name,
		TeamSlug:      team.Slug,
		AllowedDomain: inv.AllowedDomain,
		RemainingUses: inv.RemainingUses(),
	}, nil
}

// Accept redeems an invite for the acting user. Redeeming an invite for a
// team the user already belongs to only re-selects the team; usage is not
// counted and exhaustion or domain rules do not apply.
func (s *InviteService) Accept(
	ctx context.Context,
	raw string,
	actingUserID string,
) (result domain.Acceptance, err error) {
	ctx, span := telemetry.Start(ctx, "invite.accept")
	defer func() { telemetry.End(span, err) }()
	log := slogx.FromContext(ctx)

	refuse := func(de *domain.Error, msg string) (domain.Acceptance, error) {
		s.Metrics.InviteRedeemed(string(de.Kind))
		return domain.Acceptance{}, deny(ctx, s.Metrics, de, msg, slog.String("user_id", actingUserID))
	}

	// 1. Parse the token and require a caller.
	token := domain.ExtractToken(raw)
	if token == "" {
		return refuse(domain.ErrMissingToken, "accept without token")
	}
	if actingUserID == "" {
		return refuse(domain.ErrMissingAuth, "accept without verified user")
	}

	// 2. Load the invite and the caller.
	if !cryptox.WellFormed(token, cryptox.TokenSizeInvite) {
		return refuse(domain.ErrInviteNotFound, "accept malformed token")
	}
	inv, err := s.Store.Invites().GetInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return refuse(domain.ErrInviteNotFound, "accept unknown invite")
		}
		return domain.Acceptance{}, fmt.Errorf("load invite: %w", err)
	}
	span.SetAttributes(attribute.String("invite.id", inv.ID), attribute.String("team.id", inv.TeamID))

	user, err := s.Store.Users().GetUserByID(ctx, actingUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return refuse(domain.ErrUserNotFound, "accept by unknown user")
		}
		return domain.Acceptance{}, fmt.Errorf("load user: %w", err)
	}

	// 3. Everything else happens under the team lock so membership, usage
	// and the cap are read and written consistently.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Members().LockTeam(ctx, inv.TeamID); err != nil {
			return orNotFound(err, domain.ErrInviteNotFound, "lock team")
		}

		current, err := tx.Invites().GetInviteByToken(ctx, token)
		if err != nil {
			return orNotFound(err, domain.ErrInviteNotFound, "reload invite")
		}

		// 3a. Already a member: re-select the team, leave usage alone.
		now := s.now()
		_, err = tx.Members().GetMember(ctx, current.TeamID, user.ID)
		if err == nil {
			if err := tx.Users().SetLastActiveTeam(ctx, user.ID, current.TeamID, now); err != nil {
				return fmt.Errorf("select team: %w", err)
			}
			result = domain.Acceptance{
				TeamID:        current.TeamID,
				AlreadyMember: true,
				RemainingUses: current.RemainingUses(),
			}
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("load member: %w", err)
		}

		// 3b. Gates on joining.
		if current.Exhausted() {
			return domain.ErrInviteExhausted
		}
		if !current.Admits(user.Email) {
			return domain.ErrDomainRestricted
		}

		// 3c. Join, count the use against the cap at write time, select.
		member := domain.Member{
			ID:        idx.NewAt(now).String(),
			TeamID:    current.TeamID,
			UserID:    user.ID,
			Role:      domain.RoleMember,
			CreatedAt: now,
		}
		if err := tx.Members().CreateMember(ctx, member); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return errJoinedConcurrently
			}
			return err
		}

		remaining := current.RemainingUses()
		if current.MaxUses > 0 {
			used, err := tx.Invites().IncrementUse(ctx, current.ID, now)
			if errors.Is(err, store.ErrCapReached) {
				return domain.ErrInviteExhausted
			}
			if err != nil {
				return err
			}
			left := max(current.MaxUses-used, 0)
			remaining = &left
		}

		if err := tx.Users().SetLastActiveTeam(ctx, user.ID, current.TeamID, now); err != nil {
			return fmt.Errorf("select team: %w", err)
		}

		result = domain.Acceptance{
			TeamID:        current.TeamID,
			Joined:        true,
			RemainingUses: remaining,
		}
		return nil
	})

	switch {
	case errors.Is(err, errJoinedConcurrently):
		// The competing insert committed; treat like a re-accept.
		if err := s.Store.Users().SetLastActiveTeam(ctx, user.ID, inv.TeamID, s.now()); err != nil {
			return domain.Acceptance{}, fmt.Errorf("select team: %w", err)
		}
		latest, err := s.Store.Invites().GetInviteByToken(ctx, token)
		if err != nil {
			return domain.Acceptance{}, fmt.Errorf("reload invite: %w", err)
		}
		result = domain.Acceptance{TeamID: inv.TeamID, AlreadyMember: true, RemainingUses: latest.RemainingUses()}
	case err != nil:
		if de, ok := domain.AsError(err); ok {
			return refuse(de, "accept refused")
		}
		log.Error("failed to accept invite", slog.Any("error", err))
		return domain.Acceptance{}, err
	}

	if result.Joined {
		s.Metrics.MemberJoined(metrics.JoinInvite)
		s.Metrics.InviteRedeemed("joined")
	} else {
		s.Metrics.InviteRedeemed("already_member")
	}
	log.Info("invite accepted",
		slog.String("invite_id", inv.ID),
		slog.String("team_id", result.TeamID),
		slog.String("user_id", user.ID),
		slog.Bool("joined", result.Joined),
	)
	return result, nil
}

// List returns the team's invites, newest first.
func (s *InviteService) List(ctx context.Context, teamID string, actingRole domain.Role) ([]domain.Invite, error) {
	if err := domain.Authorize(actingRole, domain.Managers); err != nil {
		return nil, deny(ctx, s.Metrics, domain.ErrForbidden, "list invites denied",
			slog.String("acting_role", string(actingRole)))
	}
	invites, err := s.Store.Invites().ListTeamInvites(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	return invites, nil
}
