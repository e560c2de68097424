package teamsdk

import "time"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthChecks reports the state of each dependency probed by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ============================================================================
// Users
// ============================================================================

// ProfileRequest records the caller's email and display name. Empty fields
// keep their stored value.
type ProfileRequest struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// User is the caller's profile.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email,omitempty"`
	Name             string    `json:"name,omitempty"`
	LastActiveTeamID string    `json:"last_active_team_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ============================================================================
// Teams
// ============================================================================

type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	InboxBase string    `json:"inbox_base"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeamMembership is a team together with the caller's role in it.
type TeamMembership struct {
	Team     Team      `json:"team"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at,omitzero"`
}

type TeamsResponse struct {
	Teams []TeamMembership `json:"teams"`
}

// CreateTeamRequest creates a team owned by the caller. Slug, when set,
// replaces the name as the slug base; the final slug may carry a numeric
// suffix.
type CreateTeamRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// RenameTeamRequest changes the name, the slug, or both.
type RenameTeamRequest struct {
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// ============================================================================
// Members
// ============================================================================

type Member struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email,omitempty"`
	Name     string    `json:"name,omitempty"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type MembersResponse struct {
	Members []Member `json:"members"`
}

type AddMemberRequest struct {
	Email string `json:"email"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// RemoveMemberResponse names the removed user and, when the last owner
// left, the admin promoted in their place.
type RemoveMemberResponse struct {
	RemovedUserID  string  `json:"removed_user_id"`
	PromotedUserID *string `json:"promoted_user_id"`
}

// ============================================================================
// Invites
// ============================================================================

// IssueInviteRequest mints an invite. MaxUses of nil or 0 is unlimited;
// larger values are capped server side.
type IssueInviteRequest struct {
	MaxUses       *float64 `json:"max_uses,omitempty"`
	AllowedDomain string   `json:"allowed_domain,omitempty"`
}

// Uses is a helper for IssueInviteRequest.MaxUses.
func Uses(n int) *float64 {
	f := float64(n)
	return &f
}

type Invite struct {
	ID            string    `json:"id"`
	Token         string    `json:"token"`
	URL           string    `json:"url,omitempty"`
	TeamID        string    `json:"team_id"`
	MaxUses       int       `json:"max_uses"`
	UsedCount     int       `json:"used_count"`
	RemainingUses *int      `json:"remaining_uses"`
	Exhausted     bool      `json:"exhausted"`
	AllowedDomain string    `json:"allowed_domain,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

type InvitesResponse struct {
	Invites []Invite `json:"invites"`
}

// InviteLookupResponse describes an invite before it is accepted.
// RemainingUses is null for unlimited invites.
type InviteLookupResponse struct {
	TeamID        string `json:"team_id"`
	TeamName      string `json:"team_name"`
	TeamSlug      string `json:"team_slug"`
	AllowedDomain string `json:"allowed_domain,omitempty"`
	RemainingUses *int   `json:"remaining_uses"`
}

// AcceptInviteRequest takes either a bare token or a full invite link.
type AcceptInviteRequest struct {
	Token string `json:"token"`
}

type AcceptInviteResponse struct {
	TeamID        string `json:"team_id"`
	Joined        bool   `json:"joined"`
	AlreadyMember bool   `json:"already_member"`
	RemainingUses *int   `json:"remaining_uses"`
}
