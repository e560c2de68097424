package domain

import (
	"errors"
	"net/http"
)

// Kind names a business outcome. It is the "error" field of every error
// response.
type Kind string

const (
	KindMissingAuth      Kind = "missing_auth"
	KindMissingTeam      Kind = "missing_team"
	KindUserNotFound     Kind = "user_not_found"
	KindTeamNotFound     Kind = "team_not_found"
	KindNotAMember       Kind = "not_a_member"
	KindForbidden        Kind = "forbidden"
	KindOwnerLocked      Kind = "owner_locked"
	KindOwnerOnly        Kind = "owner_only"
	KindMemberNotFound   Kind = "member_not_found"
	KindAlreadyMember    Kind = "already_member"
	KindLastAdminOwner   Kind = "last_admin_owner"
	KindInvalidName      Kind = "invalid_name"
	KindInvalidEmail     Kind = "invalid_email"
	KindInvalidRole      Kind = "invalid_role"
	KindInvalidDomain    Kind = "invalid_domain"
	KindMissingToken     Kind = "missing_token"
	KindInviteNotFound   Kind = "invite_not_found"
	KindInviteExhausted  Kind = "invite_exhausted"
	KindDomainRestricted Kind = "domain_restricted"
	KindSlugConflict     Kind = "slug_conflict"
	KindEmailTaken       Kind = "email_taken"
	KindInvalidRequest   Kind = "invalid_request"
)

// Error is the result of an expected business-rule failure. Two errors are
// equal under errors.Is when their kinds match, so a sentinel with a more
// specific description still matches its kind.
type Error struct {
	Status      int
	Kind        Kind
	Description string
}

func (e *Error) Error() string {
	if e.Description == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Description
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// WithDescription returns a copy of e carrying desc.
func (e *Error) WithDescription(desc string) *Error {
	return &Error{Status: e.Status, Kind: e.Kind, Description: desc}
}

// AsError unwraps err to a *Error, if it is one.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

var (
	ErrMissingAuth      = &Error{http.StatusUnauthorized, KindMissingAuth, "authentication required"}
	ErrMissingTeam      = &Error{http.StatusBadRequest, KindMissingTeam, "no team selected"}
	ErrUserNotFound     = &Error{http.StatusNotFound, KindUserNotFound, "user not found"}
	ErrTeamNotFound     = &Error{http.StatusNotFound, KindTeamNotFound, "team not found"}
	ErrNotAMember       = &Error{http.StatusForbidden, KindNotAMember, "not a member of this team"}
	ErrForbidden        = &Error{http.StatusForbidden, KindForbidden, "insufficient role"}
	ErrOwnerLocked      = &Error{http.StatusForbidden, KindOwnerLocked, "owners cannot be changed or removed by others"}
	ErrOwnerOnly        = &Error{http.StatusForbidden, KindOwnerOnly, "only an owner can grant ownership"}
	ErrMemberNotFound   = &Error{http.StatusNotFound, KindMemberNotFound, "member not found"}
	ErrAlreadyMember    = &Error{http.StatusConflict, KindAlreadyMember, "user is already a member"}
	ErrLastAdminOwner   = &Error{http.StatusBadRequest, KindLastAdminOwner, "another owner or admin must remain"}
	ErrInvalidName      = &Error{http.StatusBadRequest, KindInvalidName, "name is required"}
	ErrInvalidEmail     = &Error{http.StatusBadRequest, KindInvalidEmail, "a valid email is required"}
	ErrInvalidRole      = &Error{http.StatusBadRequest, KindInvalidRole, "role must be owner, admin or member"}
	ErrInvalidDomain    = &Error{http.StatusBadRequest, KindInvalidDomain, "allowed domain is not a valid domain"}
	ErrMissingToken     = &Error{http.StatusBadRequest, KindMissingToken, "invite token is required"}
	ErrInviteNotFound   = &Error{http.StatusNotFound, KindInviteNotFound, "invite not found"}
	ErrInviteExhausted  = &Error{http.StatusGone, KindInviteExhausted, "invite has no remaining uses"}
	ErrDomainRestricted = &Error{http.StatusForbidden, KindDomainRestricted, "email domain is not allowed for this invite"}
	ErrSlugConflict     = &Error{http.StatusConflict, KindSlugConflict, "could not allocate a unique identifier"}
	ErrEmailTaken       = &Error{http.StatusConflict, KindEmailTaken, "email is registered to another user"}
	ErrInvalidRequest   = &Error{http.StatusBadRequest, KindInvalidRequest, "invalid request"}
)
