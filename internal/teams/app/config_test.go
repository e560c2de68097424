package app

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/store/drivers/sqlstore"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TEAMS_JWT_SECRET", secret)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, sqlstore.DialectSQLite, cfg.Dialect())
	require.Equal(t, sqlstore.SQLiteDSN("teams.db"), cfg.DSN())
	require.True(t, cfg.MetricsEnabled)
	require.Empty(t, cfg.OTLPEndpoint)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TEAMS_JWT_SECRET", secret)
	t.Setenv("TEAMS_DATABASE_DRIVER", "Postgres")
	t.Setenv("TEAMS_DATABASE_DSN", "postgres://teams:teams@db:5432/teams")
	t.Setenv("TEAMS_JWT_AUDIENCE", "teams,chat")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, sqlstore.DialectPostgres, cfg.Dialect())
	require.Equal(t, "postgres://teams:teams@db:5432/teams", cfg.DSN())
	require.Equal(t, []string{"teams", "chat"}, cfg.JWTAudience)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 3*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("TEAMS_JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:                8080,
		ShutdownGracePeriod: time.Second,
		DatabaseDriver:      "sqlite",
		DatabaseDSN:         "teams.db",
		JWTSecret:           secret,
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.DatabaseDriver = "mysql"
	bad.JWTSecret = "short"
	bad.Port = 0

	err := bad.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"TEAMS_DATABASE_DRIVER", "TEAMS_JWT_SECRET", "PORT"} {
		require.True(t, strings.Contains(msg, want), "missing %s in %q", want, msg)
	}

	fileDSN := valid
	fileDSN.DatabaseDSN = "file::memory:?cache=shared"
	require.Equal(t, "file::memory:?cache=shared", fileDSN.DSN())
}
