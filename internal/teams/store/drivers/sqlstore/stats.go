package sqlstore

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
)

type statsRepo struct {
	c conn
}

func (r *statsRepo) Totals(ctx context.Context) (store.Totals, error) {
	var t store.Totals
	err := r.c.queryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM teams),
			(SELECT COUNT(*) FROM team_members),
			(SELECT COUNT(*) FROM team_invites),
			(SELECT COUNT(*) FROM team_invites WHERE max_uses > 0 AND used_count >= max_uses)`,
	).Scan(&t.Users, &t.Teams, &t.Members, &t.Invites, &t.ExhaustedInvites)
	if err != nil {
		return store.Totals{}, fmt.Errorf("totals: %w", err)
	}
	return t, nil
}
