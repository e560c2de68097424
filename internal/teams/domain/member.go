package domain

import "time"

// Member is a (team, user, role) row. CreatedAt orders succession.
type Member struct {
	ID        string
	TeamID    string
	UserID    string
	Role      Role
	CreatedAt time.Time
}

// MemberProfile is a member joined with the user's public profile.
type MemberProfile struct {
	Member
	Email string
	Name  string
}

// Scope is what the access resolver hands to a guarded operation: the
// acting user, the target team, and the acting user's membership in it.
type Scope struct {
	User   User
	Team   Team
	Member Member
}

// Role is the acting member's role.
func (s Scope) Role() Role { return s.Member.Role }

// Removal is the outcome of removeMember. PromotedUserID is empty when no
// succession took place.
type Removal struct {
	RemovedUserID  string
	PromotedUserID string
}
