package http

import (
	"net/http"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/service"
	"github.com/aussiebroadwan/bartab-teams/pkg/httpx"
	"github.com/aussiebroadwan/bartab-teams/pkg/teamsdk"
)

type TeamsHandler struct {
	MembershipService *service.MembershipService
}

// HandleCreate godoc
//
//	@Summary		Create Team
//	@Description	Create a team with the caller as owner and select it as the caller's active team.
//	@Description	The slug is derived from the name (or the optional slug) and suffixed with -1, -2, ... when taken.
//	@Tags			Teams
//	@Accept			json
//	@Produce		json
//	@Param			request	body		teamsdk.CreateTeamRequest	true	"Team"
//	@Success		201		{object}	teamsdk.Team				"created team"
//	@Failure		400		{object}	teamsdk.ErrorResponse		"invalid_name, invalid_request"
//	@Failure		401		{object}	teamsdk.ErrorResponse		"missing_auth"
//	@Failure		404		{object}	teamsdk.ErrorResponse		"user_not_found"
//	@Failure		409		{object}	teamsdk.ErrorResponse		"slug_conflict"
//	@Security		BearerAuth
//	@Router			/v1/teams [post].
func (h *TeamsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrMissingAuth)
		return
	}

	var req teamsdk.CreateTeamRequest
	if !decodeBody(w, r, &req) {
		return
	}

	team, err := h.MembershipService.CreateTeam(r.Context(), userID, req.Name, req.Slug)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, teamView(team))
}

// HandleGet godoc
//
//	@Summary		Get Team
//	@Description	The resolved team and the caller's role in it. /v1/team resolves the caller's last active team.
//	@Tags			Teams
//	@Produce		json
//	@Param			teamID	path		string					true	"Team ID"
//	@Success		200		{object}	teamsdk.TeamMembership	"team and role"
//	@Failure		400		{object}	teamsdk.ErrorResponse	"missing_team"
//	@Failure		403		{object}	teamsdk.ErrorResponse	"not_a_member"
//	@Failure		404		{object}	teamsdk.ErrorResponse	"team_not_found, user_not_found"
//	@Security		BearerAuth
//	@Router			/v1/teams/{teamID} [get].
func (h *TeamsHandler) HandleGet(w http.ResponseWriter, r *http.Request, scope domain.Scope) {
	httpx.WriteJSON(w, http.StatusOK, teamsdk.TeamMembership{
		Team:     teamView(scope.Team),
		Role:     string(scope.Role()),
		JoinedAt: scope.Member.CreatedAt,
	})
}

// HandleRename godoc
//
//	@Summary		Rename Team
//	@Description	Change the team's name and/or slug. A requested slug goes through the same allocation as on create.
//	@Tags			Teams
//	@Accept			json
//	@Produce		json
//	@Param			teamID	path		string						true	"Team ID"
//	@Param			request	body		teamsdk.RenameTeamRequest	true	"New name and/or slug"
//	@Success		200		{object}	teamsdk.Team				"updated team"
//	@Failure		400		{object}	teamsdk.ErrorResponse		"invalid_name, invalid_request"
//	@Failure		403		{object}	teamsdk.ErrorResponse		"forbidden, not_a_member"
//	@Security		BearerAuth
//	@Router			/v1/teams/{teamID} [patch].
func (h *TeamsHandler) HandleRename(w http.ResponseWriter, r *http.Request, scope domain.Scope) {
	var req teamsdk.RenameTeamRequest
	if !decodeBody(w, r, &req) {
		return
	}

	team, err := h.MembershipService.RenameTeam(r.Context(), scope.Team.ID, scope.Role(), req.Name, req.Slug)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teamView(team))
}

// HandleSelect godoc
//
//	@Summary		Select Team
//	@Description	Make the team the caller's active team.
//	@Tags			Teams
//	@Produce		json
//	@Param			teamID	path		string					true	"Team ID"
//	@Success		200		{object}	teamsdk.Team			"selected team"
//	@Failure		403		{object}	teamsdk.ErrorResponse	"not_a_member"
//	@Failure		404		{object}	teamsdk.ErrorResponse	"team_not_found"
//	@Security		BearerAuth
//	@Router			/v1/teams/{teamID}/select [post].
func (h *TeamsHandler) HandleSelect(w http.ResponseWriter, r *http.Request, scope domain.Scope) {
	team, err := h.MembershipService.SelectTeam(r.Context(), scope)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teamView(team))
}
