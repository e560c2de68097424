package teamsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session makes calls on behalf of one authenticated user.
type Session struct {
	client      *Client
	accessToken string
}

func (s *Session) do(ctx context.Context, method, path string, in, out any, expectedStatus int) error {
	return s.client.do(ctx, s.accessToken, method, path, in, out, expectedStatus)
}

func teamPath(teamID string, rest string) string {
	return "/v1/teams/" + url.PathEscape(teamID) + rest
}

// Me returns the caller's profile.
func (s *Session) Me(ctx context.Context) (*User, error) {
	var out User
	if err := s.do(ctx, http.MethodGet, "/v1/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertProfile records the caller's email and name, creating the user row
// on first use.
func (s *Session) UpsertProfile(ctx context.Context, req ProfileRequest) (*User, error) {
	var out User
	if err := s.do(ctx, http.MethodPut, "/v1/me", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTeams returns every team the caller belongs to.
func (s *Session) ListTeams(ctx context.Context) ([]TeamMembership, error) {
	var out TeamsResponse
	if err := s.do(ctx, http.MethodGet, "/v1/me/teams", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Teams, nil
}

func (s *Session) CreateTeam(ctx context.Context, req CreateTeamRequest) (*Team, error) {
	var out Team
	if err := s.do(ctx, http.MethodPost, "/v1/teams", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActiveTeam returns the caller's last active team and role.
func (s *Session) ActiveTeam(ctx context.Context) (*TeamMembership, error) {
	var out TeamMembership
	if err := s.do(ctx, http.MethodGet, "/v1/team", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetTeam(ctx context.Context, teamID string) (*TeamMembership, error) {
	var out TeamMembership
	if err := s.do(ctx, http.MethodGet, teamPath(teamID, ""), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) RenameTeam(ctx context.Context, teamID string, req RenameTeamRequest) (*Team, error) {
	var out Team
	if err := s.do(ctx, http.MethodPatch, teamPath(teamID, ""), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SelectTeam makes teamID the caller's active team.
func (s *Session) SelectTeam(ctx context.Context, teamID string) (*Team, error) {
	var out Team
	if err := s.do(ctx, http.MethodPost, teamPath(teamID, "/select"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListMembers(ctx context.Context, teamID string) ([]Member, error) {
	var out MembersResponse
	if err := s.do(ctx, http.MethodGet, teamPath(teamID, "/members"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Members, nil
}

func (s *Session) AddMember(ctx context.Context, teamID, email string) (*Member, error) {
	var out Member
	err := s.do(ctx, http.MethodPost, teamPath(teamID, "/members"), AddMemberRequest{Email: email}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ChangeRole(ctx context.Context, teamID, userID, role string) (*Member, error) {
	var out Member
	path := teamPath(teamID, "/members/"+url.PathEscape(userID))
	if err := s.do(ctx, http.MethodPatch, path, ChangeRoleRequest{Role: role}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveMember removes userID from the team. Passing the caller's own id
// leaves the team.
func (s *Session) RemoveMember(ctx context.Context, teamID, userID string) (*RemoveMemberResponse, error) {
	var out RemoveMemberResponse
	path := teamPath(teamID, "/members/"+url.PathEscape(userID))
	if err := s.do(ctx, http.MethodDelete, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) IssueInvite(ctx context.Context, teamID string, req IssueInviteRequest) (*Invite, error) {
	var out Invite
	if err := s.do(ctx, http.MethodPost, teamPath(teamID, "/invites"), req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListInvites(ctx context.Context, teamID string) ([]Invite, error) {
	var out InvitesResponse
	if err := s.do(ctx, http.MethodGet, teamPath(teamID, "/invites"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Invites, nil
}

// AcceptInvite redeems a bare token or an invite link.
func (s *Session) AcceptInvite(ctx context.Context, tokenOrLink string) (*AcceptInviteResponse, error) {
	var out AcceptInviteResponse
	err := s.do(ctx, http.MethodPost, "/v1/invites/accept", AcceptInviteRequest{Token: tokenOrLink}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
