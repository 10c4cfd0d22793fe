package presets_test

import (
	"testing"

	"github.com/padlockhq/padlock/pkg/presetsdk"
	"github.com/stretchr/testify/require"
)

func requireAPIError(t *testing.T, err error, code string) *presetsdk.APIError {
	t.Helper()

	var apiErr *presetsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(b bool) *bool    { return &b }

func TestPresetLifecycle(t *testing.T) {
	env := setupEnv(t)
	client, _ := env.clientFor(t, allScopes)
	ctx := t.Context()

	created, err := client.CreatePreset(ctx, presetsdk.CreatePresetRequest{
		Name:   "Wi-Fi",
		Length: 12,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Wi-Fi", created.Name)
	require.True(t, created.IncludeSymbols)
	require.False(t, created.ExcludeSimilar)
	require.False(t, created.IsDefault)

	got, err := client.GetPreset(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	updated, err := client.UpdatePreset(ctx, created.ID, presetsdk.UpdatePresetRequest{
		Length:    int64Ptr(20),
		IsDefault: boolPtr(true),
	})
	require.NoError(t, err)
	require.EqualValues(t, 20, updated.Length)
	require.True(t, updated.IsDefault)
	require.Equal(t, "Wi-Fi", updated.Name)

	list, err := client.ListPresets(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	require.Len(t, list.Presets, 1)

	require.NoError(t, client.DeletePreset(ctx, created.ID))

	_, err = client.GetPreset(ctx, created.ID)
	requireAPIError(t, err, presetsdk.ErrorCodeNotFound)
}

func TestPresetValidationErrors(t *testing.T) {
	env := setupEnv(t)
	client, _ := env.clientFor(t, allScopes)
	ctx := t.Context()

	t.Run("missing name", func(t *testing.T) {
		_, err := client.CreatePreset(ctx, presetsdk.CreatePresetRequest{Length: 12})
		requireAPIError(t, err, presetsdk.ErrorCodeValidation)
	})

	t.Run("length too short", func(t *testing.T) {
		_, err := client.CreatePreset(ctx, presetsdk.CreatePresetRequest{Name: "x", Length: 2})
		requireAPIError(t, err, presetsdk.ErrorCodeValidation)
	})

	t.Run("empty update", func(t *testing.T) {
		created, err := client.CreatePreset(ctx, presetsdk.CreatePresetRequest{Name: "k", Length: 8})
		require.NoError(t, err)

		_, err = client.UpdatePreset(ctx, created.ID, presetsdk.UpdatePresetRequest{})
		requireAPIError(t, err, presetsdk.ErrorCodeValidation)
	})
}

func TestPresetDefaultsOnlyFilter(t *testing.T) {
	env := setupEnv(t)
	client, _ := env.clientFor(t, allScopes)
	ctx := t.Context()

	_, err := client.CreatePreset(ctx, presetsdk.CreatePresetRequest{Name: "plain", Length: 8})
	require.NoError(t, err)
	_, err = client.CreatePreset(ctx, presetsdk.CreatePresetRequest{
		Name: "fav", Length: 16, IsDefault: boolPtr(true),
	})
	require.NoError(t, err)

	list, err := client.ListPresets(ctx, true)
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	require.Equal(t, "fav", list.Presets[0].Name)
}

func TestPresetCrossUserIsolation(t *testing.T) {
	env := setupEnv(t)
	owner, _ := env.clientFor(t, allScopes)
	intruder, _ := env.clientFor(t, allScopes)
	ctx := t.Context()

	created, err := owner.CreatePreset(ctx, presetsdk.CreatePresetRequest{Name: "mine", Length: 10})
	require.NoError(t, err)

	_, err = intruder.GetPreset(ctx, created.ID)
	requireAPIError(t, err, presetsdk.ErrorCodeNotFound)

	_, err = intruder.UpdatePreset(ctx, created.ID, presetsdk.UpdatePresetRequest{Name: strPtr("taken")})
	requireAPIError(t, err, presetsdk.ErrorCodeNotFound)

	err = intruder.DeletePreset(ctx, created.ID)
	requireAPIError(t, err, presetsdk.ErrorCodeNotFound)

	list, err := intruder.ListPresets(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 0, list.Count)

	// The intruder must not have left a trace.
	got, err := owner.GetPreset(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "mine", got.Name)
}
