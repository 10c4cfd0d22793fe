package presets_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/padlockhq/padlock/pkg/idx"
	"github.com/padlockhq/padlock/pkg/jwtx"
	"github.com/padlockhq/padlock/pkg/presetsdk"
	"github.com/stretchr/testify/require"
)

func TestRejectsMissingToken(t *testing.T) {
	env := setupEnv(t)
	client := presetsdk.New(env.server.URL, "")
	ctx := t.Context()

	_, err := client.ListPresets(ctx, false)
	requireAPIError(t, err, presetsdk.ErrorCodeUnauthorized)

	_, err = client.CreatePreset(ctx, presetsdk.CreatePresetRequest{Name: "x", Length: 8})
	requireAPIError(t, err, presetsdk.ErrorCodeUnauthorized)

	_, err = client.ListPasswords(ctx, "")
	requireAPIError(t, err, presetsdk.ErrorCodeUnauthorized)
}

func TestRejectsGarbageToken(t *testing.T) {
	env := setupEnv(t)
	client := presetsdk.New(env.server.URL, "not-a-jwt")

	_, err := client.ListPresets(t.Context(), false)
	requireAPIError(t, err, presetsdk.ErrorCodeUnauthorized)
}

func TestRejectsExpiredToken(t *testing.T) {
	env := setupEnv(t)

	claims := jwtx.NewAccessClaims(
		idx.New().String(), allScopes, time.Minute,
		testIssuer, nil, "tester",
		time.Now().Add(-time.Hour),
	)
	token, err := env.signer.Sign(claims)
	require.NoError(t, err)

	client := presetsdk.New(env.server.URL, token)
	_, err = client.ListPresets(t.Context(), false)
	requireAPIError(t, err, presetsdk.ErrorCodeUnauthorized)
}

func TestRejectsWrongIssuer(t *testing.T) {
	env := setupEnv(t)

	claims := jwtx.NewAccessClaims(
		idx.New().String(), allScopes, time.Hour,
		"some-other-issuer", nil, "tester",
		time.Now(),
	)
	token, err := env.signer.Sign(claims)
	require.NoError(t, err)

	client := presetsdk.New(env.server.URL, token)
	_, err = client.ListPresets(t.Context(), false)
	requireAPIError(t, err, presetsdk.ErrorCodeUnauthorized)
}

func TestScopeEnforcement(t *testing.T) {
	env := setupEnv(t)
	ctx := t.Context()

	t.Run("read scope cannot write", func(t *testing.T) {
		client, _ := env.clientFor(t, []string{"presets:read"})

		_, err := client.CreatePreset(ctx, presetsdk.CreatePresetRequest{Name: "x", Length: 8})
		requireAPIError(t, err, presetsdk.ErrorCodeForbidden)

		_, err = client.ListPresets(ctx, false)
		require.NoError(t, err)
	})

	t.Run("preset scopes do not grant password access", func(t *testing.T) {
		client, _ := env.clientFor(t, []string{"presets:read", "presets:write"})

		_, err := client.ListPasswords(ctx, "")
		requireAPIError(t, err, presetsdk.ErrorCodeForbidden)

		_, err = client.LogPassword(ctx, presetsdk.LogPasswordRequest{EncryptedValue: []byte("x")})
		requireAPIError(t, err, presetsdk.ErrorCodeForbidden)
	})
}

func TestUnauthorizedResponseShape(t *testing.T) {
	env := setupEnv(t)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, env.server.URL+"/v1/presets", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get("WWW-Authenticate"), "Bearer"))

	var env2 struct {
		Success bool `json:"success"`
		Err     *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env2))
	require.False(t, env2.Success)
	require.NotNil(t, env2.Err)
	require.Equal(t, presetsdk.ErrorCodeUnauthorized, env2.Err.Code)
}

func TestRejectsUnknownJSONFields(t *testing.T) {
	env := setupEnv(t)
	token := env.mintToken(t, idx.New().String(), allScopes)

	body := strings.NewReader(`{"name":"x","length":8,"bogus_field":true}`)
	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, env.server.URL+"/v1/presets", body)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
