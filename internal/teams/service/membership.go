package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/metrics"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/slug"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/telemetry"
	"github.com/aussiebroadwan/bartab-teams/pkg/idx"
	"github.com/aussiebroadwan/bartab-teams/pkg/slogx"
	"go.opentelemetry.io/otel/attribute"
)

type MembershipService struct {
	Store   store.Store
	Metrics *metrics.Metrics

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *MembershipService) now() time.Time { return clock(s.Now).now() }

// CreateTeam creates a team with the creator as its owner and selects it as
// the creator's active team. slugOverride, when set, replaces the name as
// the slug base but still goes through the allocator.
func (s *MembershipService) CreateTeam(
	ctx context.Context,
	creatorUserID string,
	name string,
	slugOverride string,
) (team domain.Team, err error) {
	ctx, span := telemetry.Start(ctx, "membership.create_team")
	defer func() { telemetry.End(span, err) }()
	log := slogx.FromContext(ctx)

	// 1. Validate the name.
	parsed := domain.ParseTeamName(name)
	teamName, ok := parsed.Get()
	if !ok {
		e := domain.ErrInvalidName
		if parsed.IsInvalid() {
			e = e.WithDescription(parsed.Reason())
		}
		return domain.Team{}, deny(ctx, s.Metrics, e, "create team with invalid name")
	}

	// 2. Load the creator.
	creator, err := s.Store.Users().GetUserByID(ctx, creatorUserID)
	if err != nil {
		return domain.Team{}, orNotFound(err, domain.ErrUserNotFound, "load creator")
	}

	// 3. Derive the inbox base.
	inboxBase, err := s.inboxBaseFor(ctx, creator, teamName)
	if err != nil {
		return domain.Team{}, err
	}

	// 4. Allocate a slug and write team, owner membership and active team
	// together. A slug lost to a concurrent insert is re-allocated.
	base := strings.TrimSpace(slugOverride)
	if base == "" {
		base = teamName
	}
	allocator := &slug.Allocator{Checker: s.Store.Teams()}

	for attempt := 1; attempt <= maxUniqueAttempts; attempt++ {
		teamSlug, err := allocator.Allocate(ctx, base)
		if err != nil {
			return domain.Team{}, fmt.Errorf("allocate slug: %w", err)
		}

		now := s.now()
		team = domain.Team{
			ID:        idx.NewAt(now).String(),
			Name:      teamName,
			Slug:      teamSlug,
			InboxBase: inboxBase,
			CreatedAt: now,
			UpdatedAt: now,
		}
		owner := domain.Member{
			ID:        idx.NewAt(now).String(),
			TeamID:    team.ID,
			UserID:    creator.ID,
			Role:      domain.RoleOwner,
			CreatedAt: now,
		}

		err = s.Store.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Teams().CreateTeam(ctx, team); err != nil {
				return err
			}
			if err := tx.Members().CreateMember(ctx, owner); err != nil {
				return err
			}
			return tx.Users().SetLastActiveTeam(ctx, creator.ID, team.ID, now)
		})
		if err == nil {
			s.Metrics.TeamCreated()
			s.Metrics.MemberJoined(metrics.JoinCreate)
			span.SetAttributes(attribute.String("team.id", team.ID))
			log.Info("team created",
				slog.String("team_id", team.ID),
				slog.String("slug", team.Slug),
				slog.String("owner_id", creator.ID),
			)
			return team, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			log.Error("failed to create team", slog.Any("error", err))
			return domain.Team{}, fmt.Errorf("create team: %w", err)
		}

		s.Metrics.UniqueRetry("slug")
		log.Warn("slug taken at insert, retrying",
			slog.String("slug", teamSlug),
			slog.Int("attempt", attempt),
		)
	}

	return domain.Team{}, deny(ctx, s.Metrics, domain.ErrSlugConflict, "slug allocation exhausted retries",
		slog.String("base", base))
}

// inboxBaseFor keeps a creator's inbox identity stable: an owned team's base
// wins, then the email local part, then the display name, then the team name.
func (s *MembershipService) inboxBaseFor(ctx context.Context, creator domain.User, teamName string) (string, error) {
	existing, err := s.Store.Teams().InboxBaseOwnedBy(ctx, creator.ID)
	switch {
	case err == nil && existing != "":
		return existing, nil
	case err != nil && !errors.Is(err, store.ErrNotFound):
		return "", fmt.Errorf("load inbox base: %w", err)
	}

	for _, candidate := range []string{
		domain.EmailLocalPart(creator.Email),
		creator.Name,
		teamName,
	} {
		if base := slug.Slugify(candidate); base != "" {
			return base, nil
		}
	}
	return slug.Fallback, nil
}

// AddMember adds the user registered under email as a member.
func (s *MembershipService) AddMember(
	ctx context.Context,
	teamID string,
	actingRole domain.Role,
	email string,
) (member domain.Member, err error) {
	ctx, span := telemetry.Start(ctx, "membership.add_member")
	defer func() { telemetry.End(span, err) }()
	log := slogx.FromContext(ctx)

	// 1. Only owners and admins add members.
	if err := domain.Authorize(actingRole, domain.Managers); err != nil {
		return domain.Member{}, deny(ctx, s.Metrics, domain.ErrForbidden, "add member denied",
			slog.String("acting_role", string(actingRole)))
	}

	// 2. Resolve the user by email.
	addr, ok := domain.ParseEmail(email).Get()
	if !ok {
		return domain.Member{}, deny(ctx, s.Metrics, domain.ErrInvalidEmail, "add member with invalid email")
	}
	user, err := s.Store.Users().GetUserByEmail(ctx, addr)
	if err != nil {
		return domain.Member{}, orNotFound(err, domain.ErrUserNotFound, "load user by email")
	}

	// 3. Insert under the team lock.
	now := s.now()
	member = domain.Member{
		ID:        idx.NewAt(now).String(),
		TeamID:    teamID,
		UserID:    user.ID,
		Role:      domain.RoleMember,
		CreatedAt: now,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Members().LockTeam(ctx, teamID); err != nil {
			return orNotFound(err, domain.ErrTeamNotFound, "lock team")
		}
		_, err := tx.Members().GetMember(ctx, teamID, user.ID)
		switch {
		case err == nil:
			return domain.ErrAlreadyMember
		case !errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("load member: %w", err)
		}
		if err := tx.Members().CreateMember(ctx, member); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.ErrAlreadyMember
			}
			return err
		}
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyMember) {
		return domain.Member{}, deny(ctx, s.Metrics, domain.ErrAlreadyMember, "add existing member",
			slog.String("team_id", teamID), slog.String("user_id", user.ID))
	}
	if err != nil {
		return domain.Member{}, err
	}

	s.Metrics.MemberJoined(metrics.JoinDirect)
	log.Info("member added",
		slog.String("team_id", teamID),
		slog.String("user_id", user.ID),
	)
	return member, nil
}

// ChangeRole sets a member's role. Owners are locked, and only an owner may
// hand out ownership.
func (s *MembershipService) ChangeRole(
	ctx context.Context,
	teamID string,
	actingRole domain.Role,
	targetUserID string,
	newRole domain.Role,
) (member domain.Member, err error) {
	ctx, span := telemetry.Start(ctx, "membership.change_role")
	defer func() { telemetry.End(span, err) }()
	log := slogx.FromContext(ctx)

	if err := domain.Authorize(actingRole, domain.Managers); err != nil {
		return domain.Member{}, deny(ctx, s.Metrics, domain.ErrForbidden, "change role denied",
			slog.String("acting_role", string(actingRole)))
	}
	if !newRole.Valid() {
		return domain.Member{}, deny(ctx, s.Metrics, domain.ErrInvalidRole, "change to unknown role",
			slog.String("role", string(newRole)))
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Members().LockTeam(ctx, teamID); err != nil {
			return orNotFound(err, domain.ErrTeamNotFound, "lock team")
		}

		target, err := tx.Members().GetMember(ctx, teamID, targetUserID)
		if err != nil {
			return orNotFound(err, domain.ErrMemberNotFound, "load member")
		}
		if target.Role == domain.RoleOwner {
			return domain.ErrOwnerLocked
		}
		if newRole == domain.RoleOwner && actingRole != domain.RoleOwner {
			return domain.ErrOwnerOnly
		}

		if err := tx.Members().UpdateMemberRole(ctx, teamID, targetUserID, newRole); err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		target.Role = newRole
		member = target
		return nil
	})
	if de, ok := domain.AsError(err); ok {
		return domain.Member{}, deny(ctx, s.Metrics, de, "change role refused",
			slog.String("team_id", teamID), slog.String("target_id", targetUserID))
	}
	if err != nil {
		return domain.Member{}, err
	}

	s.Metrics.RoleChanged(string(newRole))
	log.Info("member role changed",
		slog.String("team_id", teamID),
		slog.String("user_id", targetUserID),
		slog.String("role", string(newRole)),
	)
	return member, nil
}

// RemoveMember deletes a membership. Owners may only remove themselves, and
// a self-removal must leave another owner or admin behind. When the last
// owner leaves, the earliest admin is promoted in the same transaction.
func (s *MembershipService) RemoveMember(
	ctx context.Context,
	teamID string,
	targetUserID string,
	actingUserID string,
) (removal domain.Removal, err error) {
	ctx, span := telemetry.Start(ctx, "membership.remove_member")
	defer func() { telemetry.End(span, err) }()
	log := slogx.FromContext(ctx)

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		members := tx.Members()

		// 1. Serialise with other membership changes on this team.
		if err := members.LockTeam(ctx, teamID); err != nil {
			return orNotFound(err, domain.ErrTeamNotFound, "lock team")
		}

		// 2. Load the target.
		target, err := members.GetMember(ctx, teamID, targetUserID)
		if err != nil {
			return orNotFound(err, domain.ErrMemberNotFound, "load member")
		}
		self := targetUserID == actingUserID

		// 3. Removing someone else: owners are untouchable and the actor
		// must manage the team.
		if !self {
			if target.Role == domain.RoleOwner {
				return domain.ErrOwnerLocked
			}
			actor, err := members.GetMember(ctx, teamID, actingUserID)
			if err != nil {
				return orNotFound(err, domain.ErrNotAMember, "load actor")
			}
			if err := domain.Authorize(actor.Role, domain.Managers); err != nil {
				return domain.ErrForbidden
			}
		}

		// 4. Leaving: someone else must still be able to run the team.
		if self {
			others, err := members.CountRoles(ctx, teamID, domain.Managers, targetUserID)
			if err != nil {
				return err
			}
			if others == 0 {
				return domain.ErrLastAdminOwner
			}
		}

		// 5. Delete.
		if err := members.DeleteMember(ctx, teamID, targetUserID); err != nil {
			return orNotFound(err, domain.ErrMemberNotFound, "delete member")
		}
		removal.RemovedUserID = targetUserID

		// 6. Succession, re-checked after the delete.
		if !self || target.Role != domain.RoleOwner {
			return nil
		}
		owners, err := members.CountRoles(ctx, teamID, domain.Owners, "")
		if err != nil {
			return err
		}
		if owners > 0 {
			return nil
		}
		heir, err := members.EarliestWithRole(ctx, teamID, domain.RoleAdmin)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load successor: %w", err)
		}
		if err := members.UpdateMemberRole(ctx, teamID, heir.UserID, domain.RoleOwner); err != nil {
			return fmt.Errorf("promote successor: %w", err)
		}
		removal.PromotedUserID = heir.UserID
		return nil
	})
	if de, ok := domain.AsError(err); ok {
		return domain.Removal{}, deny(ctx, s.Metrics, de, "remove member refused",
			slog.String("team_id", teamID),
			slog.String("target_id", targetUserID),
			slog.String("acting_id", actingUserID),
		)
	}
	if err != nil {
		log.Error("failed to remove member", slog.Any("error", err))
		return domain.Removal{}, err
	}

	s.Metrics.MemberRemoved(removal.PromotedUserID != "")
	log.Info("member removed",
		slog.String("team_id", teamID),
		slog.String("user_id", targetUserID),
		slog.String("promoted_id", removal.PromotedUserID),
	)
	return removal, nil
}

// ListTeams returns the user's teams in join order.
func (s *MembershipService) ListTeams(ctx context.Context, userID string) ([]domain.TeamMembership, error) {
	teams, err := s.Store.Members().ListUserTeams(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// SelectTeam makes the resolved team the user's active team.
func (s *MembershipService) SelectTeam(ctx context.Context, scope domain.Scope) (domain.Team, error) {
	if err := s.Store.Users().SetLastActiveTeam(ctx, scope.User.ID, scope.Team.ID, s.now()); err != nil {
		return domain.Team{}, orNotFound(err, domain.ErrUserNotFound, "select team")
	}
	slogx.FromContext(ctx).Debug("team selected", slog.String("team_id", scope.Team.ID))
	return scope.Team, nil
}

// RenameTeam changes a team's name and, when newSlug is set, its slug.
// Empty name keeps the current name. Changes apply to the team as stored at
// write time, so a concurrent rename is never undone.
func (s *MembershipService) RenameTeam(
	ctx context.Context,
	teamID string,
	actingRole domain.Role,
	name string,
	newSlug string,
) (updated domain.Team, err error) {
	ctx, span := telemetry.Start(ctx, "membership.rename_team")
	defer func() { telemetry.End(span, err) }()
	log := slogx.FromContext(ctx)

	// 1. Authorise and validate input.
	if err := domain.Authorize(actingRole, domain.Managers); err != nil {
		return domain.Team{}, deny(ctx, s.Metrics, domain.ErrForbidden, "rename denied",
			slog.String("acting_role", string(actingRole)))
	}
	parsed := domain.ParseTeamName(name)
	if parsed.IsInvalid() {
		return domain.Team{}, deny(ctx, s.Metrics, domain.ErrInvalidName.WithDescription(parsed.Reason()), "rename with invalid name")
	}
	newSlug = strings.TrimSpace(newSlug)

	// 2. Lock, reload and write. A slug lost to a concurrent insert is
	// re-allocated on the next attempt.
	for attempt := 1; attempt <= maxUniqueAttempts; attempt++ {
		err = s.Store.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Members().LockTeam(ctx, teamID); err != nil {
				return err
			}
			current, err := tx.Teams().GetTeamByID(ctx, teamID)
			if err != nil {
				return err
			}

			updated = current
			if n, ok := parsed.Get(); ok {
				updated.Name = n
			}
			if newSlug != "" {
				allocator := &slug.Allocator{Checker: ownSlugFree(tx.Teams(), current.Slug)}
				if updated.Slug, err = allocator.Allocate(ctx, newSlug); err != nil {
					return fmt.Errorf("allocate slug: %w", err)
				}
			}
			updated.UpdatedAt = s.now()
			return tx.Teams().UpdateTeam(ctx, updated)
		})
		if err == nil {
			log.Info("team renamed",
				slog.String("team_id", teamID),
				slog.String("slug", updated.Slug),
			)
			return updated, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return domain.Team{}, orNotFound(err, domain.ErrTeamNotFound, "rename team")
		}
		s.Metrics.UniqueRetry("slug")
	}
	return domain.Team{}, deny(ctx, s.Metrics, domain.ErrSlugConflict, "rename slug exhausted retries")
}

// ownSlugFree reports the team's current slug as available so a rename can
// keep it.
func ownSlugFree(c slug.Checker, current string) slug.Checker {
	return slug.CheckerFunc(func(ctx context.Context, candidate string) (bool, error) {
		if candidate == current {
			return false, nil
		}
		return c.SlugExists(ctx, candidate)
	})
}

// ListMembers returns the team's members in join order.
func (s *MembershipService) ListMembers(ctx context.Context, teamID string) ([]domain.MemberProfile, error) {
	members, err := s.Store.Members().ListTeamMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}
