package service

import (
	"context"
	"testing"
	"time"

	"github.com/padlockhq/padlock/internal/presets/store"
	"github.com/padlockhq/padlock/internal/presets/store/drivers/sqlite"
	"github.com/padlockhq/padlock/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func strPtr(s string) *string       { return &s }
func int64Ptr(v int64) *int64       { return &v }
func boolPtr(b bool) *bool          { return &b }
func timePtr(v time.Time) *time.Time { return &v }

func TestCreatePresetDefaults(t *testing.T) {
	ctx := context.Background()
	svc := &PresetService{Store: newTestStore(t)}
	userID := idx.New().String()

	preset, err := svc.CreatePreset(ctx, userID, CreatePresetParams{
		Name:   "Wi-Fi",
		Length: 12,
	})
	require.NoError(t, err)

	require.NotEmpty(t, preset.ID)
	require.Equal(t, userID, preset.UserID)
	require.Equal(t, "Wi-Fi", preset.Name)
	require.EqualValues(t, 12, preset.Length)
	require.True(t, preset.IncludeLowercase)
	require.True(t, preset.IncludeUppercase)
	require.True(t, preset.IncludeNumbers)
	require.True(t, preset.IncludeSymbols)
	require.False(t, preset.ExcludeSimilar)
	require.False(t, preset.IsDefault)
	require.Nil(t, preset.CustomSymbols)
	require.Nil(t, preset.Notes)
	require.False(t, preset.CreatedAt.IsZero())
	require.Equal(t, preset.CreatedAt, preset.UpdatedAt)

	// Round-trip through the store keeps the same shape.
	got, err := svc.GetPreset(ctx, userID, preset.ID)
	require.NoError(t, err)
	require.Equal(t, preset.ID, got.ID)
	require.True(t, got.IncludeSymbols)
	require.Nil(t, got.Notes)
}

func TestCreatePresetValidation(t *testing.T) {
	ctx := context.Background()
	svc := &PresetService{Store: newTestStore(t)}
	userID := idx.New().String()

	t.Run("name required", func(t *testing.T) {
		_, err := svc.CreatePreset(ctx, userID, CreatePresetParams{Name: "  ", Length: 12})
		require.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("length below minimum", func(t *testing.T) {
		_, err := svc.CreatePreset(ctx, userID, CreatePresetParams{Name: "short", Length: 3})
		require.ErrorIs(t, err, ErrLengthTooShort)
	})

	t.Run("length at minimum accepted", func(t *testing.T) {
		preset, err := svc.CreatePreset(ctx, userID, CreatePresetParams{Name: "pin", Length: 4})
		require.NoError(t, err)
		require.EqualValues(t, 4, preset.Length)
	})
}

func TestCreatePresetExplicitFlags(t *testing.T) {
	ctx := context.Background()
	svc := &PresetService{Store: newTestStore(t)}
	userID := idx.New().String()

	preset, err := svc.CreatePreset(ctx, userID, CreatePresetParams{
		Name:           "numbers-only",
		Length:         8,
		IncludeSymbols: boolPtr(false),
		ExcludeSimilar: boolPtr(true),
		CustomSymbols:  strPtr("!@#"),
		Notes:          strPtr("router admin"),
		IsDefault:      boolPtr(true),
	})
	require.NoError(t, err)

	require.False(t, preset.IncludeSymbols)
	require.True(t, preset.ExcludeSimilar)
	require.True(t, preset.IsDefault)
	require.NotNil(t, preset.CustomSymbols)
	require.Equal(t, "!@#", *preset.CustomSymbols)
	require.NotNil(t, preset.Notes)
	require.Equal(t, "router admin", *preset.Notes)
}

func TestUpdatePresetPartial(t *testing.T) {
	ctx := context.Background()
	svc := &PresetService{Store: newTestStore(t)}
	userID := idx.New().String()

	created, err := svc.CreatePreset(ctx, userID, CreatePresetParams{Name: "Wi-Fi", Length: 12})
	require.NoError(t, err)

	updated, err := svc.UpdatePreset(ctx, userID, created.ID, UpdatePresetParams{
		Length: int64Ptr(20),
	})
	require.NoError(t, err)

	require.EqualValues(t, 20, updated.Length)
	require.Equal(t, "Wi-Fi", updated.Name)
	require.True(t, updated.IncludeLowercase)
	require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	// Persisted, not just echoed back.
	got, err := svc.GetPreset(ctx, userID, created.ID)
	require.NoError(t, err)
	require.EqualValues(t, 20, got.Length)
}

func TestUpdatePresetValidation(t *testing.T) {
	ctx := context.Background()
	svc := &PresetService{Store: newTestStore(t)}
	userID := idx.New().String()

	created, err := svc.CreatePreset(ctx, userID, CreatePresetParams{Name: "Wi-Fi", Length: 12})
	require.NoError(t, err)

	t.Run("empty update rejected", func(t *testing.T) {
		_, err := svc.UpdatePreset(ctx, userID, created.ID, UpdatePresetParams{})
		require.ErrorIs(t, err, ErrNoFieldsToUpdate)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := svc.UpdatePreset(ctx, userID, created.ID, UpdatePresetParams{Name: strPtr(" ")})
		require.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("length below minimum rejected", func(t *testing.T) {
		_, err := svc.UpdatePreset(ctx, userID, created.ID, UpdatePresetParams{Length: int64Ptr(2)})
		require.ErrorIs(t, err, ErrLengthTooShort)
	})

	t.Run("failed update leaves row unchanged", func(t *testing.T) {
		got, err := svc.GetPreset(ctx, userID, created.ID)
		require.NoError(t, err)
		require.EqualValues(t, 12, got.Length)
		require.Equal(t, "Wi-Fi", got.Name)
	})
}

func TestUpdatePresetClearsOptionalFields(t *testing.T) {
	ctx := context.Background()
	svc := &PresetService{Store: newTestStore(t)}
	userID := idx.New().String()

	created, err := svc.CreatePreset(ctx, userID, CreatePresetParams{
		Name:   "with-notes",
		Length: 16,
		Notes:  strPtr("temporary"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePreset(ctx, userID, created.ID, UpdatePresetParams{
		Notes: strPtr(""),
	})
	require.NoError(t, err)
	require.Nil(t, updated.Notes)

	got, err := svc.GetPreset(ctx, userID, created.ID)
	require.NoError(t, err)
	require.Nil(t, got.Notes)
}

func TestPresetOwnershipScoping(t *testing.T) {
	ctx := context.Background()
	svc := &PresetService{Store: newTestStore(t)}

	owner := idx.New().String()
	intruder := idx.New().String()

	created, err := svc.CreatePreset(ctx, owner, CreatePresetParams{Name: "mine", Length: 10})
	require.NoError(t, err)

	t.Run("foreign get looks missing", func(t *testing.T) {
		_, err := svc.GetPreset(ctx, intruder, created.ID)
		require.ErrorIs(t, err, ErrPresetNotFound)
	})

	t.Run("foreign update looks missing", func(t *testing.T) {
		_, err := svc.UpdatePreset(ctx, intruder, created.ID, UpdatePresetParams{Name: strPtr("stolen")})
		require.ErrorIs(t, err, ErrPresetNotFound)
	})

	t.Run("foreign delete looks missing", func(t *testing.T) {
		err := svc.DeletePreset(ctx, intruder, created.ID)
		require.ErrorIs(t, err, ErrPresetNotFound)
	})

	t.Run("owner still sees the row", func(t *testing.T) {
		got, err := svc.GetPreset(ctx, owner, created.ID)
		require.NoError(t, err)
		require.Equal(t, "mine", got.Name)
	})
}

func TestListPresets(t *testing.T) {
	ctx := context.Background()
	svc := &PresetService{Store: newTestStore(t)}
	userID := idx.New().String()

	_, err := svc.CreatePreset(ctx, userID, CreatePresetParams{Name: "first", Length: 8})
	require.NoError(t, err)
	_, err = svc.CreatePreset(ctx, userID, CreatePresetParams{
		Name: "second", Length: 16, IsDefault: boolPtr(true),
	})
	require.NoError(t, err)
	_, err = svc.CreatePreset(ctx, userID, CreatePresetParams{
		Name: "third", Length: 24, IsDefault: boolPtr(true),
	})
	require.NoError(t, err)

	// Someone else's preset must never appear.
	_, err = svc.CreatePreset(ctx, idx.New().String(), CreatePresetParams{Name: "other", Length: 8})
	require.NoError(t, err)

	t.Run("all presets, newest first", func(t *testing.T) {
		presets, err := svc.ListPresets(ctx, userID, false)
		require.NoError(t, err)
		require.Len(t, presets, 3)
		require.Equal(t, "third", presets[0].Name)
		require.Equal(t, "first", presets[2].Name)
	})

	t.Run("defaults only", func(t *testing.T) {
		presets, err := svc.ListPresets(ctx, userID, true)
		require.NoError(t, err)
		require.Len(t, presets, 2)
		for _, p := range presets {
			require.True(t, p.IsDefault)
		}
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		presets, err := svc.ListPresets(ctx, idx.New().String(), false)
		require.NoError(t, err)
		require.Empty(t, presets)
	})
}

func TestDeletePreset(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	presets := &PresetService{Store: st}
	passwords := &PasswordService{Store: st}
	userID := idx.New().String()

	created, err := presets.CreatePreset(ctx, userID, CreatePresetParams{Name: "doomed", Length: 12})
	require.NoError(t, err)

	// A logged password referencing the preset must survive its deletion.
	record, err := passwords.LogGeneratedPassword(ctx, userID, LogPasswordParams{
		PresetID:       strPtr(created.ID),
		EncryptedValue: []byte("ciphertext"),
	})
	require.NoError(t, err)

	require.NoError(t, presets.DeletePreset(ctx, userID, created.ID))

	_, err = presets.GetPreset(ctx, userID, created.ID)
	require.ErrorIs(t, err, ErrPresetNotFound)

	t.Run("delete is not idempotent", func(t *testing.T) {
		err := presets.DeletePreset(ctx, userID, created.ID)
		require.ErrorIs(t, err, ErrPresetNotFound)
	})

	t.Run("orphaned record keeps its row with preset unset", func(t *testing.T) {
		records, err := passwords.ListGeneratedPasswords(ctx, userID, nil)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, record.ID, records[0].ID)
		require.Nil(t, records[0].PresetID)
	})
}
