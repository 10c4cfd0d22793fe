package sqlite

import (
	"context"
	"database/sql"

	"github.com/padlockhq/padlock/internal/presets/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the outer DB stays open and the caller commits or rolls
// back.
func (t *txStore) Close() error { return nil }

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if ever needed.
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Presets() store.Presets { return &presetsRepo{db: t.tx} }
func (t *txStore) GeneratedPasswords() store.GeneratedPasswords {
	return &generatedPasswordsRepo{db: t.tx}
}

// ApplyMigrations is a no-op inside a transaction; migrations run at boot.
func (t *txStore) ApplyMigrations() error { return nil }
