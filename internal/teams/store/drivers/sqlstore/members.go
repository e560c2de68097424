package sqlstore

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
)

type membersRepo struct {
	c conn
}

// LockTeam takes a row lock on the team in Postgres. SQLite transactions
// already hold the database write lock from BEGIN IMMEDIATE, so there it
// only checks the team exists.
func (r *membersRepo) LockTeam(ctx context.Context, teamID string) error {
	query := `SELECT id FROM teams WHERE id = ?`
	if r.c.dialect == DialectPostgres {
		query += ` FOR UPDATE`
	}
	var id string
	if err := r.c.queryRow(ctx, query, teamID).Scan(&id); err != nil {
		return mapErr(err)
	}
	return nil
}

func scanMember(row interface{ Scan(...any) error }, extra ...any) (domain.Member, error) {
	var (
		m       domain.Member
		role    string
		created int64
	)
	dest := append([]any{&m.ID, &m.TeamID, &m.UserID, &role, &created}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.Member{}, mapErr(err)
	}
	m.Role = domain.Role(role)
	m.CreatedAt = fromMillis(created)
	return m, nil
}

func (r *membersRepo) GetMember(ctx context.Context, teamID, userID string) (domain.Member, error) {
	return scanMember(r.c.queryRow(ctx, `
		SELECT id, team_id, user_id, role, created_at
		FROM team_members
		WHERE team_id = ? AND user_id = ?`,
		teamID, userID,
	))
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	_, err := r.c.exec(ctx, `
		INSERT INTO team_members (id, team_id, user_id, role, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.TeamID, m.UserID, string(m.Role), toMillis(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create member: %w", mapErr(err))
	}
	return nil
}

func (r *membersRepo) UpdateMemberRole(ctx context.Context, teamID, userID string, role domain.Role) error {
	res, err := r.c.exec(ctx,
		`UPDATE team_members SET role = ? WHERE team_id = ? AND user_id = ?`,
		string(role), teamID, userID,
	)
	if err != nil {
		return fmt.Errorf("update member role: %w", mapErr(err))
	}
	return requireAffected(res)
}

func (r *membersRepo) DeleteMember(ctx context.Context, teamID, userID string) error {
	res, err := r.c.exec(ctx,
		`DELETE FROM team_members WHERE team_id = ? AND user_id = ?`,
		teamID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete member: %w", mapErr(err))
	}
	return requireAffected(res)
}

func (r *membersRepo) CountRoles(
	ctx context.Context,
	teamID string,
	roles domain.RoleSet,
	excludeUserID string,
) (int, error) {
	if len(roles) == 0 {
		return 0, nil
	}

	args := make([]any, 0, len(roles)+2)
	args = append(args, teamID, excludeUserID)
	for _, role := range roles {
		args = append(args, string(role))
	}

	var n int
	err := r.c.queryRow(ctx, `
		SELECT COUNT(*)
		FROM team_members
		WHERE team_id = ? AND user_id <> ? AND role IN (`+placeholders(len(roles))+`)`,
		args...,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count roles: %w", err)
	}
	return n, nil
}

func (r *membersRepo) EarliestWithRole(ctx context.Context, teamID string, role domain.Role) (domain.Member, error) {
	return scanMember(r.c.queryRow(ctx, `
		SELECT id, team_id, user_id, role, created_at
		FROM team_members
		WHERE team_id = ? AND role = ?
		ORDER BY created_at, id
		LIMIT 1`,
		teamID, string(role),
	))
}

func (r *membersRepo) ListTeamMembers(ctx context.Context, teamID string) ([]domain.MemberProfile, error) {
	rows, err := r.c.query(ctx, `
		SELECT m.id, m.team_id, m.user_id, m.role, m.created_at, COALESCE(u.email, ''), u.name
		FROM team_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.team_id = ?
		ORDER BY m.created_at, m.id`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var out []domain.MemberProfile
	for rows.Next() {
		var p domain.MemberProfile
		m, err := scanMember(rows, &p.Email, &p.Name)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		p.Member = m
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return out, nil
}

func (r *membersRepo) ListUserTeams(ctx context.Context, userID string) ([]domain.TeamMembership, error) {
	rows, err := r.c.query(ctx, `
		SELECT `+teamColumns+`, m.role, m.created_at
		FROM team_members m
		JOIN teams t ON t.id = m.team_id
		WHERE m.user_id = ?
		ORDER BY m.created_at, m.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list user teams: %w", err)
	}
	defer rows.Close()

	var out []domain.TeamMembership
	for rows.Next() {
		var (
			role   string
			joined int64
		)
		team, err := scanTeam(rows, &role, &joined)
		if err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		out = append(out, domain.TeamMembership{
			Team:     team,
			Role:     domain.Role(role),
			JoinedAt: fromMillis(joined),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list user teams: %w", err)
	}
	return out, nil
}
