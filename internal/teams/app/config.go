package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/store/drivers/sqlstore"
	"github.com/aussiebroadwan/bartab-teams/pkg/jwtx"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	StatsInterval       time.Duration `env:"TEAMS_STATS_INTERVAL" envDefault:"1m"`

	// DatabaseDriver is sqlite or postgres. For sqlite a plain path is
	// expanded with the service's pragmas; a "file:" DSN is used as is.
	DatabaseDriver string `env:"TEAMS_DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseDSN    string `env:"TEAMS_DATABASE_DSN" envDefault:"teams.db"`

	// JWTSecret verifies bearer tokens (HS256, at least 32 bytes).
	JWTSecret   string   `env:"TEAMS_JWT_SECRET,required"`
	JWTIssuer   string   `env:"TEAMS_JWT_ISSUER" envDefault:"bartab-auth"`
	JWTAudience []string `env:"TEAMS_JWT_AUDIENCE" envSeparator:","`

	// InviteBaseURL, when set, turns invite tokens into shareable links.
	InviteBaseURL string `env:"TEAMS_INVITE_BASE_URL"`

	// OTLPEndpoint enables tracing when set, e.g. http://otel-collector:4318.
	OTLPEndpoint   string `env:"TEAMS_OTLP_ENDPOINT"`
	MetricsEnabled bool   `env:"TEAMS_METRICS_ENABLED" envDefault:"true"`
}

// LoadConfig reads the environment and validates the result.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.Dialect() {
	case sqlstore.DialectSQLite, sqlstore.DialectPostgres:
	default:
		errs = append(errs, fmt.Errorf("TEAMS_DATABASE_DRIVER must be sqlite or postgres, got %q", c.DatabaseDriver))
	}
	if strings.TrimSpace(c.DatabaseDSN) == "" {
		errs = append(errs, errors.New("TEAMS_DATABASE_DSN is required"))
	}
	if len(c.JWTSecret) < jwtx.MinSecretSize {
		errs = append(errs, fmt.Errorf("TEAMS_JWT_SECRET must be at least %d bytes", jwtx.MinSecretSize))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.ShutdownGracePeriod <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_GRACE_PERIOD must be positive"))
	}

	return errors.Join(errs...)
}

func (c Config) Dialect() sqlstore.Dialect {
	return sqlstore.Dialect(strings.ToLower(strings.TrimSpace(c.DatabaseDriver)))
}

// DSN returns the connection string handed to the driver.
func (c Config) DSN() string {
	if c.Dialect() == sqlstore.DialectSQLite && !strings.HasPrefix(c.DatabaseDSN, "file:") {
		return sqlstore.SQLiteDSN(c.DatabaseDSN)
	}
	return c.DatabaseDSN
}
