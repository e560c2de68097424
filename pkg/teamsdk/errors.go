package teamsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode  int
	Kind        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("teams api: %s (%d)", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("teams api: %s (%d): %s", e.Kind, e.StatusCode, e.Description)
}

// Is matches on Kind, so errors.Is(err, teamsdk.ErrInviteExhausted) works
// regardless of description.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Kind == e.Kind
}

var (
	ErrMissingAuth      = &APIError{StatusCode: http.StatusUnauthorized, Kind: "missing_auth"}
	ErrMissingTeam      = &APIError{StatusCode: http.StatusBadRequest, Kind: "missing_team"}
	ErrUserNotFound     = &APIError{StatusCode: http.StatusNotFound, Kind: "user_not_found"}
	ErrTeamNotFound     = &APIError{StatusCode: http.StatusNotFound, Kind: "team_not_found"}
	ErrNotAMember       = &APIError{StatusCode: http.StatusForbidden, Kind: "not_a_member"}
	ErrForbidden        = &APIError{StatusCode: http.StatusForbidden, Kind: "forbidden"}
	ErrOwnerLocked      = &APIError{StatusCode: http.StatusForbidden, Kind: "owner_locked"}
	ErrOwnerOnly        = &APIError{StatusCode: http.StatusForbidden, Kind: "owner_only"}
	ErrMemberNotFound   = &APIError{StatusCode: http.StatusNotFound, Kind: "member_not_found"}
	ErrAlreadyMember    = &APIError{StatusCode: http.StatusConflict, Kind: "already_member"}
	ErrLastAdminOwner   = &APIError{StatusCode: http.StatusBadRequest, Kind: "last_admin_owner"}
	ErrMissingToken     = &APIError{StatusCode: http.StatusBadRequest, Kind: "missing_token"}
	ErrInviteNotFound   = &APIError{StatusCode: http.StatusNotFound, Kind: "invite_not_found"}
	ErrInviteExhausted  = &APIError{StatusCode: http.StatusGone, Kind: "invite_exhausted"}
	ErrDomainRestricted = &APIError{StatusCode: http.StatusForbidden, Kind: "domain_restricted"}
	ErrEmailTaken       = &APIError{StatusCode: http.StatusConflict, Kind: "email_taken"}
	ErrRateLimited      = &APIError{StatusCode: http.StatusTooManyRequests, Kind: "rate_limit_exceeded"}
)

// parseErrorResponse turns an error body into an *APIError. Bodies that are
// not JSON still produce an error carrying the status code.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Kind:        "unexpected_response",
			Description: http.StatusText(resp.StatusCode),
		}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Kind:        er.Error,
		Description: er.ErrorDescription,
	}
}
