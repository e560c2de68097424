package teams_test

import (
	"testing"

	"github.com/aussiebroadwan/bartab-teams/pkg/teamsdk"
)

func TestHealthEndpoints(t *testing.T) {
	client := teamsdk.NewClient(setupTeamsContainer(t))

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	health, err = client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
}
