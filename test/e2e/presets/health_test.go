package presets_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/padlockhq/padlock/pkg/presetsdk"
	"github.com/stretchr/testify/require"
)

func getHealth(t *testing.T, url string) (int, presetsdk.HealthResponse) {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var health presetsdk.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	return resp.StatusCode, health
}

func TestLivez(t *testing.T) {
	env := setupEnv(t)

	status, health := getHealth(t, env.server.URL+"/livez")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Uptime)
	require.Equal(t, "test", health.Version)
}

func TestReadyz(t *testing.T) {
	env := setupEnv(t)

	status, health := getHealth(t, env.server.URL+"/readyz")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Verifier)
}

func TestHealthRequiresNoAuth(t *testing.T) {
	env := setupEnv(t)

	for _, path := range []string{"/livez", "/readyz"} {
		status, _ := getHealth(t, env.server.URL+path)
		require.Equal(t, http.StatusOK, status, path)
	}
}
