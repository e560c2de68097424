package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
)

type usersRepo struct {
	c conn
}

const userColumns = `id, email, name, last_active_team_id, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u                 domain.User
		email, lastActive sql.NullString
		created, updated  int64
	)
	if err := row.Scan(&u.ID, &email, &u.Name, &lastActive, &created, &updated); err != nil {
		return domain.User{}, mapErr(err)
	}
	u.Email = email.String
	u.LastActiveTeamID = lastActive.String
	u.CreatedAt = fromMillis(created)
	u.UpdatedAt = fromMillis(updated)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.c.queryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.c.queryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email))))
}

func (r *usersRepo) UpsertUser(ctx context.Context, u domain.User) error {
	now := u.UpdatedAt
	if now.IsZero() {
		now = time.Now()
	}
	created := u.CreatedAt
	if created.IsZero() {
		created = now
	}

	_, err := r.c.exec(ctx, `
		INSERT INTO users (id, email, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			email = excluded.email,
			name = excluded.name,
			updated_at = excluded.updated_at`,
		u.ID, nullString(strings.ToLower(u.Email)), u.Name, toMillis(created), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", mapErr(err))
	}
	return nil
}

func (r *usersRepo) SetLastActiveTeam(ctx context.Context, userID, teamID string, at time.Time) error {
	res, err := r.c.exec(ctx,
		`UPDATE users SET last_active_team_id = ?, updated_at = ? WHERE id = ?`,
		nullString(teamID), toMillis(at), userID,
	)
	if err != nil {
		return fmt.Errorf("set last active team: %w", mapErr(err))
	}
	return requireAffected(res)
}
