package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
)

type txStore struct {
	tx   *sql.Tx
	conn conn
}

func newTx(tx *sql.Tx, dialect Dialect) *txStore {
	return &txStore{
		tx:   tx,
		conn: conn{q: tx, dialect: dialect},
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

// Ping is a no-op; the transaction already holds a connection.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users     { return &usersRepo{c: t.conn} }
func (t *txStore) Teams() store.Teams     { return &teamsRepo{c: t.conn} }
func (t *txStore) Members() store.Members { return &membersRepo{c: t.conn} }
func (t *txStore) Invites() store.Invites { return &invitesRepo{c: t.conn} }
func (t *txStore) Stats() store.Stats     { return &statsRepo{c: t.conn} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx

var _ store.Tx = (*txStore)(nil)
