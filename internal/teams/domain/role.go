package domain

import (
	"slices"
	"strings"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// ParseRole reads a role name, case-insensitively.
func ParseRole(raw string) Field[Role] {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Unset[Role]()
	}
	r := Role(strings.ToLower(raw))
	if !r.Valid() {
		return Invalid[Role]("unknown role " + raw)
	}
	return Valid(r)
}

// RoleSet is the explicit list of roles an operation admits. There is no
// inheritance: a set that names only owner does not admit admin.
type RoleSet []Role

var (
	// Managers may administer membership and invites.
	Managers = RoleSet{RoleOwner, RoleAdmin}
	// Owners alone may grant ownership.
	Owners = RoleSet{RoleOwner}
	// Anyone on the team.
	AnyMember = RoleSet{RoleOwner, RoleAdmin, RoleMember}
)

func (s RoleSet) Allows(r Role) bool { return slices.Contains(s, r) }

// Authorize returns nil when acting is in required, ErrForbidden otherwise.
func Authorize(acting Role, required RoleSet) error {
	if required.Allows(acting) {
		return nil
	}
	return ErrForbidden
}

// CanManage reports whether the role holds owner or admin.
func (r Role) CanManage() bool { return Managers.Allows(r) }
