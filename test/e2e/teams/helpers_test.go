package teams_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/bartab-teams/pkg/jwtx"
	"github.com/aussiebroadwan/bartab-teams/pkg/teamsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and helpers for the teams service end-to-end tests.
 */

const (
	testImageName = "bartab-teams-test:latest"

	jwtSecret   = "e2e-secret-0123456789abcdef0123456789"
	jwtIssuer   = "bartab-auth"
	jwtAudience = "teams"
)

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Teams Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Teams Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/teams/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

func serviceEnv() map[string]string {
	return map[string]string{
		"ENV":                   "test",
		"LOG_LEVEL":             "info",
		"LOG_FORMAT":            "json",
		"TEAMS_JWT_SECRET":      jwtSecret,
		"TEAMS_JWT_ISSUER":      jwtIssuer,
		"TEAMS_JWT_AUDIENCE":    jwtAudience,
		"TEAMS_INVITE_BASE_URL": "https://app.example.com/join",
		// E2E tests make many rapid requests from one address.
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	}
}

// setupTeamsContainer starts the service on SQLite and returns its base URL.
func setupTeamsContainer(t *testing.T) string {
	t.Helper()

	env := serviceEnv()
	env["TEAMS_DATABASE_DRIVER"] = "sqlite"
	env["TEAMS_DATABASE_DSN"] = "/data/teams.db"

	return startTeams(t, testcontainers.ContainerRequest{Env: env})
}

// setupTeamsOnPostgres starts Postgres and the service on a shared network.
func setupTeamsOnPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	nw, err := network.New(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = nw.Remove(ctx) })

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:          "postgres:16-alpine",
			Networks:       []string{nw.Name},
			NetworkAliases: map[string][]string{nw.Name: {"db"}},
			Env: map[string]string{
				"POSTGRES_USER":     "teams",
				"POSTGRES_PASSWORD": "teams",
				"POSTGRES_DB":       "teams",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pg.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres: %v", err)
		}
	})

	env := serviceEnv()
	env["TEAMS_DATABASE_DRIVER"] = "postgres"
	env["TEAMS_DATABASE_DSN"] = "postgres://teams:teams@db:5432/teams?sslmode=disable"

	return startTeams(t, testcontainers.ContainerRequest{
		Env:      env,
		Networks: []string{nw.Name},
	})
}

func startTeams(t *testing.T, req testcontainers.ContainerRequest) string {
	t.Helper()
	ctx := context.Background()

	req.Image = testImageName
	req.ExposedPorts = []string{"8080/tcp"}
	req.WaitingFor = wait.ForHTTP("/readyz").
		WithPort("8080/tcp").
		WithStartupTimeout(60 * time.Second)

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// sessionFor mints a token for userID and registers their profile.
func sessionFor(t *testing.T, client *teamsdk.Client, userID, email string) *teamsdk.Session {
	t.Helper()

	signer, err := jwtx.NewHS256([]byte(jwtSecret), jwtIssuer, nil)
	require.NoError(t, err)
	token, err := signer.Sign(jwtx.NewAccessClaims(userID, jwtIssuer, []string{jwtAudience}, 10*time.Minute, time.Now()))
	require.NoError(t, err)

	sess := client.Session(token)
	_, err = sess.UpsertProfile(t.Context(), teamsdk.ProfileRequest{Email: email, Name: userID})
	require.NoError(t, err)
	return sess
}

func assertHealthy(t *testing.T, health *teamsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
