package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/padlockhq/padlock/internal/presets/domain"
	"github.com/padlockhq/padlock/internal/presets/store"
	"github.com/padlockhq/padlock/pkg/idx"
	"github.com/padlockhq/padlock/pkg/slogx"
)

var (
	ErrPresetNotFound   = errors.New("preset not found")
	ErrNameRequired     = errors.New("preset name is required")
	ErrLengthTooShort   = errors.New("preset length must be at least 4")
	ErrNoFieldsToUpdate = errors.New("update requires at least one field")
)

type PresetService struct {
	Store store.Store
}

// CreatePresetParams carries the caller-supplied fields for a new preset.
// Flag pointers distinguish "omitted, use the default" from an explicit
// false.
type CreatePresetParams struct {
	Name   string
	Length int64

	IncludeLowercase *bool
	IncludeUppercase *bool
	IncludeNumbers   *bool
	IncludeSymbols   *bool
	ExcludeSimilar   *bool

	CustomSymbols *string
	Notes         *string
	IsDefault     *bool
}

// UpdatePresetParams carries a partial update. Nil means "leave unchanged";
// at least one field must be non-nil.
type UpdatePresetParams struct {
	Name   *string
	Length *int64

	IncludeLowercase *bool
	IncludeUppercase *bool
	IncludeNumbers   *bool
	IncludeSymbols   *bool
	ExcludeSimilar   *bool

	CustomSymbols *string
	Notes         *string
	IsDefault     *bool
}

func (p UpdatePresetParams) isEmpty() bool {
	return p.Name == nil && p.Length == nil &&
		p.IncludeLowercase == nil && p.IncludeUppercase == nil &&
		p.IncludeNumbers == nil && p.IncludeSymbols == nil &&
		p.ExcludeSimilar == nil && p.CustomSymbols == nil &&
		p.Notes == nil && p.IsDefault == nil
}

// boolOrDefault resolves an optional flag against its documented default.
func boolOrDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

// normalizeOptional treats an explicit empty string as "clear the value" so
// it is stored as NULL rather than "".
func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	if strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}

// CreatePreset validates and inserts a new preset owned by userID. Every
// character-class flag defaults to true except exclude_similar; is_default
// defaults to false. No uniqueness check on the name is performed.
func (s *PresetService) CreatePreset(
	ctx context.Context,
	userID string,
	params CreatePresetParams,
) (domain.Preset, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(params.Name) == "" {
		return domain.Preset{}, ErrNameRequired
	}
	if params.Length < domain.MinPresetLength {
		return domain.Preset{}, ErrLengthTooShort
	}

	now := time.Now().UTC()
	preset := domain.Preset{
		ID:     idx.New().String(),
		UserID: userID,
		Name:   params.Name,
		Length: params.Length,

		IncludeLowercase: boolOrDefault(params.IncludeLowercase, true),
		IncludeUppercase: boolOrDefault(params.IncludeUppercase, true),
		IncludeNumbers:   boolOrDefault(params.IncludeNumbers, true),
		IncludeSymbols:   boolOrDefault(params.IncludeSymbols, true),
		ExcludeSimilar:   boolOrDefault(params.ExcludeSimilar, false),

		CustomSymbols: normalizeOptional(params.CustomSymbols),
		Notes:         normalizeOptional(params.Notes),
		IsDefault:     boolOrDefault(params.IsDefault, false),

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Presets().CreatePreset(ctx, preset); err != nil {
		l.Error("failed to create preset", "error", err)
		return domain.Preset{}, err
	}

	l.Info("preset created", "preset_id", preset.ID)
	return preset, nil
}

// GetPreset returns a single preset owned by userID, or ErrPresetNotFound.
func (s *PresetService) GetPreset(ctx context.Context, userID, id string) (domain.Preset, error) {
	preset, err := s.Store.Presets().GetPreset(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Preset{}, ErrPresetNotFound
		}
		return domain.Preset{}, err
	}
	return preset, nil
}

// UpdatePreset applies a partial update to an owned preset. Fields left nil
// in params are not touched; updated_at is bumped on success. Concurrent
// updates to the same preset are last-write-wins.
func (s *PresetService) UpdatePreset(
	ctx context.Context,
	userID, id string,
	params UpdatePresetParams,
) (domain.Preset, error) {
	l := slogx.FromContext(ctx)

	if params.isEmpty() {
		return domain.Preset{}, ErrNoFieldsToUpdate
	}

	// Fetch-and-verify: scoping the read by owner means a foreign preset id
	// is indistinguishable from a missing one.
	preset, err := s.Store.Presets().GetPreset(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Preset{}, ErrPresetNotFound
		}
		return domain.Preset{}, err
	}

	// Apply each supplied field explicitly; a blanket struct merge would
	// silently lose the zero-vs-absent distinction.
	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return domain.Preset{}, ErrNameRequired
		}
		preset.Name = *params.Name
	}
	if params.Length != nil {
		if *params.Length < domain.MinPresetLength {
			return domain.Preset{}, ErrLengthTooShort
		}
		preset.Length = *params.Length
	}
	if params.IncludeLowercase != nil {
		preset.IncludeLowercase = *params.IncludeLowercase
	}
	if params.IncludeUppercase != nil {
		preset.IncludeUppercase = *params.IncludeUppercase
	}
	if params.IncludeNumbers != nil {
		preset.IncludeNumbers = *params.IncludeNumbers
	}
	if params.IncludeSymbols != nil {
		preset.IncludeSymbols = *params.IncludeSymbols
	}
	if params.ExcludeSimilar != nil {
		preset.ExcludeSimilar = *params.ExcludeSimilar
	}
	if params.CustomSymbols != nil {
		preset.CustomSymbols = normalizeOptional(params.CustomSymbols)
	}
	if params.Notes != nil {
		preset.Notes = normalizeOptional(params.Notes)
	}
	if params.IsDefault != nil {
		preset.IsDefault = *params.IsDefault
	}

	preset.UpdatedAt = time.Now().UTC()

	if err := s.Store.Presets().UpdatePreset(ctx, preset); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Preset{}, ErrPresetNotFound
		}
		l.Error("failed to update preset", "error", err, "preset_id", id)
		return domain.Preset{}, err
	}

	l.Info("preset updated", "preset_id", id)
	return preset, nil
}

// ListPresets returns the caller's presets, optionally only those flagged
// as default.
func (s *PresetService) ListPresets(
	ctx context.Context,
	userID string,
	defaultsOnly bool,
) ([]domain.Preset, error) {
	return s.Store.Presets().ListPresets(ctx, userID, defaultsOnly)
}

// DeletePreset removes an owned preset. Generated password records that
// referenced it keep their rows with preset_id nulled by the schema.
func (s *PresetService) DeletePreset(ctx context.Context, userID, id string) error {
	l := slogx.FromContext(ctx)

	err := s.Store.Presets().DeletePreset(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPresetNotFound
		}
		l.Error("failed to delete preset", "error", err, "preset_id", id)
		return err
	}

	l.Info("preset deleted", "preset_id", id)
	return nil
}
