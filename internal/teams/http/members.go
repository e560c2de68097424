package http

import (
	"net/http"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/service"
	"github.com/aussiebroadwan/bartab-teams/pkg/httpx"
	"github.com/aussiebroadwan/bartab-teams/pkg/teamsdk"
)

type MembersHandler struct {
	MembershipService *service.MembershipService
}

// HandleList godoc
//
//	@Summary		List Members
//	@Description	Members of the team with their roles, in join order.
//	@Tags			Members
//	@Produce		json
//	@Param			teamID	path		string					true	"Team ID"
//	@Success		200		{object}	teamsdk.MembersResponse	"members"
//	@Failure		403		{object}	teamsdk.ErrorResponse	"not_a_member"
//	@Security		BearerAuth
//	@Router			/v1/teams/{teamID}/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request, scope domain.Scope) {
	members, err := h.MembershipService.ListMembers(r.Context(), scope.Team.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := teamsdk.MembersResponse{Members: make([]teamsdk.Member, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, memberView(m.Member, m.Email, m.Name))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleAdd godoc
//
//	@Summary		Add Member
//	@Description	Add a registered user, found by email, as a member. Owner or admin only.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			teamID	path		string						true	"Team ID"
//	@Param			request	body		teamsdk.AddMemberRequest	true	"Email of the user to add"
//	@Success		201		{object}	teamsdk.Member				"new member"
//	@Failure		400		{object}	teamsdk.ErrorResponse		"invalid_email"
//	@Failure		403		{object}	teamsdk.ErrorResponse		"forbidden"
//	@Failure		404		{object}	teamsdk.ErrorResponse		"user_not_found"
//	@Failure		409		{object}	teamsdk.ErrorResponse		"already_member"
//	@Security		BearerAuth
//	@Router			/v1/teams/{teamID}/members [post].
func (h *MembersHandler) HandleAdd(w http.ResponseWriter, r *http.Request, scope domain.Scope) {
	var req teamsdk.AddMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}

	m, err := h.MembershipService.AddMember(r.Context(), scope.Team.ID, scope.Role(), req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	email, _ := domain.ParseEmail(req.Email).Get()
	httpx.WriteJSON(w, http.StatusCreated, memberView(m, email, ""))
}

// HandleChangeRole godoc
//
//	@Summary		Change Role
//	@Description	Set a member's role. Owners cannot be changed; only an owner may grant ownership.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			teamID	path		string						true	"Team ID"
//	@Param			userID	path		string						true	"User ID"
//	@Param			request	body		teamsdk.ChangeRoleRequest	true	"New role"
//	@Success		200		{object}	teamsdk.Member				"updated member"
//	@Failure		400		{object}	teamsdk.ErrorResponse		"invalid_role"
//	@Failure		403		{object}	teamsdk.ErrorResponse		"forbidden, owner_locked, owner_only"
//	@Failure		404		{object}	teamsdk.ErrorResponse		"member_not_found"
//	@Security		BearerAuth
//	@Router			/v1/teams/{teamID}/members/{userID} [patch].
func (h *MembersHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request, scope domain.Scope) {
	var req teamsdk.ChangeRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	parsed := domain.ParseRole(req.Role)
	role, ok := parsed.Get()
	if !ok {
		e := domain.ErrInvalidRole
		if parsed.IsInvalid() {
			e = e.WithDescription(parsed.Reason())
		}
		writeError(w, r, e)
		return
	}

	m, err := h.MembershipService.ChangeRole(r.Context(), scope.Team.ID, scope.Role(), r.PathValue("userID"), role)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, memberView(m, "", ""))
}

// HandleRemove godoc
//
//	@Summary		Remove Member
//	@Description	Remove a member, or leave the team when userID is the caller.
//	@Description	When the last owner leaves, the earliest admin becomes owner and is returned as promoted_user_id.
//	@Tags			Members
//	@Produce		json
//	@Param			teamID	path		string							true	"Team ID"
//	@Param			userID	path		string							true	"User ID"
//	@Success		200		{object}	teamsdk.RemoveMemberResponse	"removed and promoted user ids"
//	@Failure		400		{object}	teamsdk.ErrorResponse			"last_admin_owner"
//	@Failure		403		{object}	teamsdk.ErrorResponse			"forbidden, owner_locked"
//	@Failure		404		{object}	teamsdk.ErrorResponse			"member_not_found"
//	@Security		BearerAuth
//	@Router			/v1/teams/{teamID}/members/{userID} [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request, scope domain.Scope) {
	removal, err := h.MembershipService.RemoveMember(r.Context(), scope.Team.ID, r.PathValue("userID"), scope.User.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teamsdk.RemoveMemberResponse{
		RemovedUserID:  removal.RemovedUserID,
		PromotedUserID: optional(removal.PromotedUserID),
	})
}
