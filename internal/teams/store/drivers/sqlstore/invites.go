package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
)

type invitesRepo struct {
	c conn
}

const inviteColumns = `id, token, team_id, max_uses, used_count, allowed_domain, created_by_user_id, created_at, updated_at`

func scanInvite(row interface{ Scan(...any) error }) (domain.Invite, error) {
	var (
		inv              domain.Invite
		domainRestrict   sql.NullString
		created, updated int64
	)
	err := row.Scan(&inv.ID, &inv.Token, &inv.TeamID, &inv.MaxUses, &inv.UsedCount,
		&domainRestrict, &inv.CreatedByUserID, &created, &updated)
	if err != nil {
		return domain.Invite{}, mapErr(err)
	}
	inv.AllowedDomain = domainRestrict.String
	inv.CreatedAt = fromMillis(created)
	inv.UpdatedAt = fromMillis(updated)
	return inv, nil
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.c.exec(ctx, `
		INSERT INTO team_invites (`+inviteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Token, inv.TeamID, inv.MaxUses, inv.UsedCount,
		nullString(inv.AllowedDomain), inv.CreatedByUserID,
		toMillis(inv.CreatedAt), toMillis(inv.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create invite: %w", mapErr(err))
	}
	return nil
}

func (r *invitesRepo) GetInviteByToken(ctx context.Context, token string) (domain.Invite, error) {
	return scanInvite(r.c.queryRow(ctx,
		`SELECT `+inviteColumns+` FROM team_invites WHERE token = ?`, token))
}

// IncrementUse is a compare-and-set on the cap: the WHERE clause is evaluated
// against the row as of the write, so concurrent redemptions cannot overshoot.
func (r *invitesRepo) IncrementUse(ctx context.Context, inviteID string, at time.Time) (int, error) {
	var used int
	err := r.c.queryRow(ctx, `
		UPDATE team_invites
		SET used_count = used_count + 1, updated_at = ?
		WHERE id = ? AND used_count < max_uses
		RETURNING used_count`,
		toMillis(at), inviteID,
	).Scan(&used)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, store.ErrCapReached
	}
	if err != nil {
		return 0, fmt.Errorf("increment invite use: %w", err)
	}
	return used, nil
}

func (r *invitesRepo) ListTeamInvites(ctx context.Context, teamID string) ([]domain.Invite, error) {
	rows, err := r.c.query(ctx, `
		SELECT `+inviteColumns+`
		FROM team_invites
		WHERE team_id = ?
		ORDER BY created_at DESC, id DESC`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	defer rows.Close()

	var out []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invite: %w", err)
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	return out, nil
}
