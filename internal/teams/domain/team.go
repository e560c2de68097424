package domain

import (
	"strings"
	"time"
)

// MaxNameLength bounds team and display names, in runes.
const MaxNameLength = 120

type Team struct {
	ID        string
	Name      string
	Slug      string
	InboxBase string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeamMembership is one of a user's teams together with the role they hold.
type TeamMembership struct {
	Team     Team
	Role     Role
	JoinedAt time.Time
}

// ParseTeamName trims a team name. Whitespace-only input is Unset.
func ParseTeamName(raw string) Field[string] {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Unset[string]()
	}
	if len([]rune(name)) > MaxNameLength {
		return Invalid[string]("name too long")
	}
	return Valid(name)
}
