package http

import (
	"net/http"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/service"
	"github.com/aussiebroadwan/bartab-teams/pkg/httpx"
	"github.com/aussiebroadwan/bartab-teams/pkg/teamsdk"
)

type MeHandler struct {
	UserService       *service.UserService
	MembershipService *service.MembershipService
}

// HandleGet godoc
//
//	@Summary		Current User
//	@Description	Return the caller's profile, including the last active team.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	teamsdk.User			"profile"
//	@Failure		401	{object}	teamsdk.ErrorResponse	"missing_auth"
//	@Failure		404	{object}	teamsdk.ErrorResponse	"user_not_found"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	u, err := h.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userView(u))
}

// HandlePut godoc
//
//	@Summary		Upsert Profile
//	@Description	Record the caller's email and display name, creating the user on first call. Omitted fields keep their value.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		teamsdk.ProfileRequest	true	"Profile"
//	@Success		200		{object}	teamsdk.User			"profile"
//	@Failure		400		{object}	teamsdk.ErrorResponse	"invalid_email, invalid_name, invalid_request"
//	@Failure		401		{object}	teamsdk.ErrorResponse	"missing_auth"
//	@Failure		409		{object}	teamsdk.ErrorResponse	"email_taken"
//	@Security		BearerAuth
//	@Router			/v1/me [put].
func (h *MeHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	var req teamsdk.ProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.UserService.UpsertProfile(r.Context(), userID, req.Email, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userView(u))
}

// HandleTeams godoc
//
//	@Summary		List My Teams
//	@Description	Every team the caller belongs to with their role, in join order.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	teamsdk.TeamsResponse	"teams"
//	@Failure		401	{object}	teamsdk.ErrorResponse	"missing_auth"
//	@Security		BearerAuth
//	@Router			/v1/me/teams [get].
func (h *MeHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrMissingAuth)
		return
	}

	teams, err := h.MembershipService.ListTeams(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := teamsdk.TeamsResponse{Teams: make([]teamsdk.TeamMembership, 0, len(teams))}
	for _, t := range teams {
		resp.Teams = append(resp.Teams, teamsdk.TeamMembership{
			Team:     teamView(t.Team),
			Role:     string(t.Role),
			JoinedAt: t.JoinedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
