// Package teamsdk is a Go client for the BarTab teams service.
//
// The service does not issue credentials. Callers obtain a bearer token from
// their identity provider and open a Session with it:
//
//	client := teamsdk.NewClient("http://localhost:8080")
//	sess := client.Session(accessToken)
//
//	me, err := sess.UpsertProfile(ctx, teamsdk.ProfileRequest{Email: "jane@example.com"})
//	team, err := sess.CreateTeam(ctx, teamsdk.CreateTeamRequest{Name: "Core"})
//	invite, err := sess.IssueInvite(ctx, team.ID, teamsdk.IssueInviteRequest{MaxUses: teamsdk.Uses(5)})
//
// Every non-2xx response is returned as an *APIError carrying the service's
// error kind, so callers can branch with errors.Is against the Err* values.
package teamsdk
