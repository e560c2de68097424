package http

import (
	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/pkg/teamsdk"
)

func userView(u domain.User) teamsdk.User {
	return teamsdk.User{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		LastActiveTeamID: u.LastActiveTeamID,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func teamView(t domain.Team) teamsdk.Team {
	return teamsdk.Team{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		InboxBase: t.InboxBase,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func memberView(m domain.Member, email, name string) teamsdk.Member {
	return teamsdk.Member{
		UserID:   m.UserID,
		Email:    email,
		Name:     name,
		Role:     string(m.Role),
		JoinedAt: m.CreatedAt,
	}
}

func inviteView(inv domain.Invite, url string) teamsdk.Invite {
	return teamsdk.Invite{
		ID:            inv.ID,
		Token:         inv.Token,
		URL:           url,
		TeamID:        inv.TeamID,
		MaxUses:       inv.MaxUses,
		UsedCount:     inv.UsedCount,
		RemainingUses: inv.RemainingUses(),
		Exhausted:     inv.Exhausted(),
		AllowedDomain: inv.AllowedDomain,
		CreatedBy:     inv.CreatedByUserID,
		CreatedAt:     inv.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
