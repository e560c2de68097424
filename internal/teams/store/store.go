package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrCapReached is returned by Invites().IncrementUse when the invite has
	// no uses left at write time.
	ErrCapReached = errors.New("store: invite cap reached")
)

// Store is the root data access interface. Drivers (sqlite, postgres)
// implement it. Sub-repositories are exposed as methods so a Tx-scoped store
// hands out Tx-scoped repositories and nothing can escape the transaction.
type Store interface {
	Users() Users
	Teams() Teams
	Members() Members
	Invites() Invites
	Stats() Stats

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Use the tx argument, never the outer Store,
	// inside fn.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches case-insensitively (emails are stored lowercase).
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpsertUser creates the user or updates email and name.
	// ErrAlreadyExists when the email belongs to another user.
	UpsertUser(ctx context.Context, u domain.User) error

	// SetLastActiveTeam updates last_active_team_id and sets updated_at to at.
	SetLastActiveTeam(ctx context.Context, userID, teamID string, at time.Time) error
}

type Teams interface {
	GetTeamByID(ctx context.Context, id string) (domain.Team, error)
	SlugExists(ctx context.Context, slug string) (bool, error)

	// CreateTeam returns ErrAlreadyExists on a slug collision.
	CreateTeam(ctx context.Context, t domain.Team) error

	// UpdateTeam writes name and slug. ErrAlreadyExists on a slug collision.
	UpdateTeam(ctx context.Context, t domain.Team) error

	// InboxBaseOwnedBy returns the inbox base of the earliest team the user
	// owns, or ErrNotFound.
	InboxBaseOwnedBy(ctx context.Context, userID string) (string, error)
}

type Members interface {
	// LockTeam serialises membership mutations of one team for the rest of
	// the transaction. ErrNotFound if the team does not exist.
	LockTeam(ctx context.Context, teamID string) error

	GetMember(ctx context.Context, teamID, userID string) (domain.Member, error)

	// CreateMember returns ErrAlreadyExists if (team, user) already exists.
	CreateMember(ctx context.Context, m domain.Member) error

	UpdateMemberRole(ctx context.Context, teamID, userID string, role domain.Role) error
	DeleteMember(ctx context.Context, teamID, userID string) error

	// CountRoles counts members holding any of roles, excluding excludeUserID
	// when it is non-empty.
	CountRoles(ctx context.Context, teamID string, roles domain.RoleSet, excludeUserID string) (int, error)

	// EarliestWithRole returns the member with the role that joined first,
	// or ErrNotFound.
	EarliestWithRole(ctx context.Context, teamID string, role domain.Role) (domain.Member, error)

	// ListTeamMembers is ordered by join time ascending.
	ListTeamMembers(ctx context.Context, teamID string) ([]domain.MemberProfile, error)

	// ListUserTeams is ordered by join time ascending.
	ListUserTeams(ctx context.Context, userID string) ([]domain.TeamMembership, error)
}

type Invites interface {
	// CreateInvite returns ErrAlreadyExists on a token collision.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	GetInviteByToken(ctx context.Context, token string) (domain.Invite, error)

	// IncrementUse bumps used_count only while it is below max_uses and
	// returns the new count. ErrCapReached when no use is left.
	IncrementUse(ctx context.Context, inviteID string, at time.Time) (int, error)

	// ListTeamInvites is ordered newest first.
	ListTeamInvites(ctx context.Context, teamID string) ([]domain.Invite, error)
}

// Totals is a point-in-time census used for gauges.
type Totals struct {
	Users            int
	Teams            int
	Members          int
	Invites          int
	ExhaustedInvites int
}

type Stats interface {
	Totals(ctx context.Context) (Totals, error)
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
