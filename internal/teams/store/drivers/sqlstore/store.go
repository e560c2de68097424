// Package sqlstore implements store.Store on database/sql for SQLite
// (modernc.org/sqlite) and Postgres (pgx stdlib). Both dialects share the
// same queries; Postgres placeholders are rebound from '?' to '$n'.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// SQLiteDSN builds a DSN for a database file. Write transactions take the
// database lock at BEGIN, so concurrent writers queue on the busy timeout
// instead of failing on lock upgrade.
func SQLiteDSN(path string) string {
	return "file:" + path +
		"?_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(1)" +
		"&_txlock=immediate"
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn binds a querier to a dialect.
type conn struct {
	q       querier
	dialect Dialect
}

func (c conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.q.ExecContext(ctx, c.rebind(query), args...)
}

func (c conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.q.QueryContext(ctx, c.rebind(query), args...)
}

func (c conn) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.q.QueryRowContext(ctx, c.rebind(query), args...)
}

// rebind rewrites '?' placeholders for Postgres. Queries in this package
// never contain a literal '?'.
func (c conn) rebind(query string) string {
	if c.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

type Store struct {
	db      *sql.DB
	dialect Dialect
	conn    conn
}

// Open connects using the given dialect. For SQLite the DSN is passed as is;
// use SQLiteDSN to build one for a file.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Store, error) {
	var driver string
	switch dialect {
	case DialectSQLite:
		driver = "sqlite"
	case DialectPostgres:
		driver = "pgx"
	default:
		return nil, fmt.Errorf("sqlstore: unsupported dialect %q", dialect)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	return &Store{
		db:      db,
		dialect: dialect,
		conn:    conn{q: db, dialect: dialect},
	}, nil
}

// NewSQLite opens a SQLite database file with the pragmas from SQLiteDSN.
func NewSQLite(ctx context.Context, path string) (*Store, error) {
	return Open(ctx, DialectSQLite, SQLiteDSN(path))
}

func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return newTx(tx, s.dialect), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users     { return &usersRepo{c: s.conn} }
func (s *Store) Teams() store.Teams     { return &teamsRepo{c: s.conn} }
func (s *Store) Members() store.Members { return &membersRepo{c: s.conn} }
func (s *Store) Invites() store.Invites { return &invitesRepo{c: s.conn} }
func (s *Store) Stats() store.Stats     { return &statsRepo{c: s.conn} }

var _ store.Store = (*Store)(nil)

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// mapErr translates driver errors into store sentinels.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

// placeholders returns "?, ?, ..." with n markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
