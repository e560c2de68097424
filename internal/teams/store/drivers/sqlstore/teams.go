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

type teamsRepo struct {
	c conn
}

const teamColumns = `t.id, t.name, t.slug, t.inbox_base, t.created_at, t.updated_at`

func scanTeam(row interface{ Scan(...any) error }, extra ...any) (domain.Team, error) {
	var (
		t                domain.Team
		created, updated int64
	)
	dest := append([]any{&t.ID, &t.Name, &t.Slug, &t.InboxBase, &created, &updated}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.Team{}, mapErr(err)
	}
	t.CreatedAt = fromMillis(created)
	t.UpdatedAt = fromMillis(updated)
	return t, nil
}

func (r *teamsRepo) GetTeamByID(ctx context.Context, id string) (domain.Team, error) {
	return scanTeam(r.c.queryRow(ctx,
		`SELECT `+teamColumns+` FROM teams t WHERE t.id = ?`, id))
}

func (r *teamsRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var one int
	err := r.c.queryRow(ctx, `SELECT 1 FROM teams WHERE slug = ?`, slug).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("slug exists: %w", err)
	}
	return true, nil
}

func (r *teamsRepo) CreateTeam(ctx context.Context, t domain.Team) error {
	_, err := r.c.exec(ctx, `
		INSERT INTO teams (id, name, slug, inbox_base, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Slug, t.InboxBase, toMillis(t.CreatedAt), toMillis(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create team: %w", mapErr(err))
	}
	return nil
}

func (r *teamsRepo) UpdateTeam(ctx context.Context, t domain.Team) error {
	updated := t.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	res, err := r.c.exec(ctx,
		`UPDATE teams SET name = ?, slug = ?, updated_at = ? WHERE id = ?`,
		t.Name, t.Slug, toMillis(updated), t.ID,
	)
	if err != nil {
		return fmt.Errorf("update team: %w", mapErr(err))
	}
	return requireAffected(res)
}

func (r *teamsRepo) InboxBaseOwnedBy(ctx context.Context, userID string) (string, error) {
	var base string
	err := r.c.queryRow(ctx, `
		SELECT t.inbox_base
		FROM team_members m
		JOIN teams t ON t.id = m.team_id
		WHERE m.user_id = ? AND m.role = ?
		ORDER BY m.created_at, m.id
		LIMIT 1`,
		userID, string(domain.RoleOwner),
	).Scan(&base)
	if err != nil {
		return "", mapErr(err)
	}
	return base, nil
}

// requireAffected turns a zero-row UPDATE/DELETE into ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
