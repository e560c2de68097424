package http

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/service"
	"github.com/aussiebroadwan/bartab-teams/pkg/httpx"
	"github.com/aussiebroadwan/bartab-teams/pkg/teamsdk"
)

type InvitesHandler struct {
	InviteService *service.InviteService
}

// issueInviteBody accepts max_uses as any JSON value; see parseMaxUses.
type issueInviteBody struct {
	MaxUses       json.RawMessage `json:"max_uses"`
	AllowedDomain string          `json:"allowed_domain"`
}

// parseMaxUses reads a JSON number or numeric string. Absent is 0 and
// anything non-numeric is NaN, which the invite service clamps to 0.
func parseMaxUses(raw json.RawMessage) float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return math.NaN()
}

// HandleIssue godoc
//
//	@Summary		Issue Invite
//	@Description	Mint an invite link for the team. Owner or admin only.
//	@Description	max_uses of 0 or absent is unlimited; values are clamped to [0, 10000].
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			teamID	path		string						true	"Team ID"
//	@Param			request	body		teamsdk.IssueInviteRequest	true	"Invite options"
//	@Success		201		{object}	teamsdk.Invite				"invite with token and url"
//	@Failure		400		{object}	teamsdk.ErrorResponse		"invalid_domain"
//	@Failure		403		{object}	teamsdk.ErrorResponse		"forbidden"
//	@Security		BearerAuth
//	@Router			/v1/teams/{teamID}/invites [post].
func (h *InvitesHandler) HandleIssue(w http.ResponseWriter, r *http.Request, scope domain.Scope) {
	var req issueInviteBody
	if !decodeBody(w, r, &req) {
		return
	}

	inv, err := h.InviteService.Issue(r.Context(),
		scope.Team.ID,
		scope.Role(),
		scope.User.ID,
		parseMaxUses(req.MaxUses),
		req.AllowedDomain,
	)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, inviteView(inv, h.InviteService.URL(inv.Token)))
}

// HandleList godoc
//
//	@Summary		List Invites
//	@Description	The team's invites, newest first, with remaining uses. Owner or admin only.
//	@Tags			Invites
//	@Produce		json
//	@Param			teamID	path		string					true	"Team ID"
//	@Success		200		{object}	teamsdk.InvitesResponse	"invites"
//	@Failure		403		{object}	teamsdk.ErrorResponse	"forbidden"
//	@Security		BearerAuth
//	@Router			/v1/teams/{teamID}/invites [get].
func (h *InvitesHandler) HandleList(w http.ResponseWriter, r *http.Request, scope domain.Scope) {
	invites, err := h.InviteService.List(r.Context(), scope.Team.ID, scope.Role())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := teamsdk.InvitesResponse{Invites: make([]teamsdk.Invite, 0, len(invites))}
	for _, inv := range invites {
		resp.Invites = append(resp.Invites, inviteView(inv, h.InviteService.URL(inv.Token)))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleLookup godoc
//
//	@Summary		Look Up Invite
//	@Description	Describe the team behind an invite token or link without accepting it. No authentication required.
//	@Tags			Invites
//	@Produce		json
//	@Param			token	query		string							true	"Bare token or full invite link"
//	@Success		200		{object}	teamsdk.InviteLookupResponse	"team and remaining uses"
//	@Failure		400		{object}	teamsdk.ErrorResponse			"missing_token"
//	@Failure		404		{object}	teamsdk.ErrorResponse			"invite_not_found"
//	@Failure		410		{object}	teamsdk.ErrorResponse			"invite_exhausted"
//	@Router			/v1/invites/lookup [get].
func (h *InvitesHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	view, err := h.InviteService.Lookup(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teamsdk.InviteLookupResponse{
		TeamID:        view.TeamID,
		TeamName:      view.TeamName,
		TeamSlug:      view.TeamSlug,
		AllowedDomain: view.AllowedDomain,
		RemainingUses: view.RemainingUses,
	})
}

// HandleAccept godoc
//
//	@Summary		Accept Invite
//	@Description	Join the invite's team and select it. Accepting an invite for a team the caller already belongs to only re-selects it.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		teamsdk.AcceptInviteRequest		true	"Token or invite link"
//	@Success		200		{object}	teamsdk.AcceptInviteResponse	"joined or already_member"
//	@Failure		400		{object}	teamsdk.ErrorResponse			"missing_token"
//	@Failure		401		{object}	teamsdk.ErrorResponse			"missing_auth"
//	@Failure		403		{object}	teamsdk.ErrorResponse			"domain_restricted"
//	@Failure		404		{object}	teamsdk.ErrorResponse			"invite_not_found, user_not_found"
//	@Failure		410		{object}	teamsdk.ErrorResponse			"invite_exhausted"
//	@Security		BearerAuth
//	@Router			/v1/invites/accept [post].
func (h *InvitesHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	var req teamsdk.AcceptInviteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Token == "" {
		req.Token = r.URL.Query().Get("token")
	}

	res, err := h.InviteService.Accept(r.Context(), req.Token, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teamsdk.AcceptInviteResponse{
		TeamID:        res.TeamID,
		Joined:        res.Joined,
		AlreadyMember: res.AlreadyMember,
		RemainingUses: res.RemainingUses,
	})
}
