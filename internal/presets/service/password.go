package service

import (
	"context"
	"errors"
	"time"

	"github.com/padlockhq/padlock/internal/presets/domain"
	"github.com/padlockhq/padlock/internal/presets/store"
	"github.com/padlockhq/padlock/pkg/idx"
	"github.com/padlockhq/padlock/pkg/slogx"
)

type PasswordService struct {
	Store store.Store
}

// LogPasswordParams carries the caller-supplied fields for one generation
// event. EncryptedValue is expected to be encrypted by the caller already;
// this service treats it as an opaque blob and never validates the point.
type LogPasswordParams struct {
	PresetID       *string
	EncryptedValue []byte
	HintLabel      *string
	Length         *int64
	WasCopied      *bool
	LastCopiedAt   *time.Time
}

// LogGeneratedPassword records a generation event for userID. When a preset
// id is supplied, ownership is verified first and a foreign or missing
// preset yields ErrPresetNotFound with nothing inserted.
func (s *PasswordService) LogGeneratedPassword(
	ctx context.Context,
	userID string,
	params LogPasswordParams,
) (domain.GeneratedPassword, error) {
	l := slogx.FromContext(ctx)

	record := domain.GeneratedPassword{
		ID:             idx.New().String(),
		UserID:         userID,
		PresetID:       params.PresetID,
		EncryptedValue: params.EncryptedValue,
		HintLabel:      normalizeOptional(params.HintLabel),
		Length:         params.Length,
		WasCopied:      boolOrDefault(params.WasCopied, false),
		LastCopiedAt:   params.LastCopiedAt,
		CreatedAt:      time.Now().UTC(),
	}

	// Ownership check and insert share a transaction so the referenced
	// preset cannot be deleted between the two.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if params.PresetID != nil {
			if _, err := tx.Presets().GetPreset(ctx, userID, *params.PresetID); err != nil {
				return err
			}
		}
		return tx.GeneratedPasswords().CreateGeneratedPassword(ctx, record)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.GeneratedPassword{}, ErrPresetNotFound
		}
		l.Error("failed to log generated password", "error", err)
		return domain.GeneratedPassword{}, err
	}

	l.Info("generated password logged", "record_id", record.ID, "has_preset", record.PresetID != nil)
	return record, nil
}

// ListGeneratedPasswords returns the caller's records, newest first. A
// preset filter is ownership-checked before it is applied.
func (s *PasswordService) ListGeneratedPasswords(
	ctx context.Context,
	userID string,
	presetID *string,
) ([]domain.GeneratedPassword, error) {
	if presetID != nil {
		if _, err := s.Store.Presets().GetPreset(ctx, userID, *presetID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrPresetNotFound
			}
			return nil, err
		}
	}

	return s.Store.GeneratedPasswords().ListGeneratedPasswords(ctx, userID, presetID)
}
