package store

import (
	"context"
	"errors"
	"time"

	"github.com/padlockhq/padlock/internal/presets/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep the per-table concerns tidy and let
// services depend on exactly what they touch.
type Store interface {
	Presets() Presets
	GeneratedPasswords() GeneratedPasswords

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST Commit() or Rollback() the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil
	// and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Presets interface {
	// GetPreset fetches a preset by id scoped to its owner. Returns
	// ErrNotFound for a missing id or one owned by another user, so the
	// caller can't tell the difference.
	GetPreset(ctx context.Context, userID, id string) (domain.Preset, error)

	// ListPresets returns all of a user's presets, newest first. When
	// defaultsOnly is set, only presets flagged is_default are returned.
	ListPresets(ctx context.Context, userID string, defaultsOnly bool) ([]domain.Preset, error)

	// CreatePreset inserts a new preset (id is app-generated, ULID).
	CreatePreset(ctx context.Context, p domain.Preset) error

	// UpdatePreset persists a fully-merged preset row by id+owner. Returns
	// ErrNotFound when no owned row matched.
	UpdatePreset(ctx context.Context, p domain.Preset) error

	// DeletePreset removes an owned preset. Generated password records
	// keep their rows; the schema nulls their preset_id.
	DeletePreset(ctx context.Context, userID, id string) error
}

type GeneratedPasswords interface {
	// CreateGeneratedPassword inserts a new record (id is app-generated).
	CreateGeneratedPassword(ctx context.Context, g domain.GeneratedPassword) error

	// ListGeneratedPasswords returns a user's records, newest first,
	// optionally filtered to a single preset id.
	ListGeneratedPasswords(ctx context.Context, userID string, presetID *string) ([]domain.GeneratedPassword, error)

	// DeleteGeneratedPasswordsBefore purges records created before the
	// cutoff, across all users. Housekeeping only. Returns rows removed.
	DeleteGeneratedPasswordsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
