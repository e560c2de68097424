package sqlstore

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/store/drivers/sqlstore/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations applies the embedded migrations for the store's dialect.
func (s *Store) ApplyMigrations() error {
	var (
		driver database.Driver
		err    error
	)
	switch s.dialect {
	case DialectSQLite:
		driver, err = migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	case DialectPostgres:
		driver, err = migratepgx.WithInstance(s.db, &migratepgx.Config{})
	default:
		err = fmt.Errorf("sqlstore: no migrations for dialect %q", s.dialect)
	}
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations.FS, string(s.dialect))
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", source, string(s.dialect), driver)
	if err != nil {
		return err
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
