package presets_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "github.com/padlockhq/padlock/internal/presets/http"
	"github.com/padlockhq/padlock/internal/presets/service"
	"github.com/padlockhq/padlock/internal/presets/store/drivers/sqlite"
	"github.com/padlockhq/padlock/pkg/idx"
	"github.com/padlockhq/padlock/pkg/jwtx"
	"github.com/padlockhq/padlock/pkg/presetsdk"
	"github.com/stretchr/testify/require"
)

const testIssuer = "padlock-auth-test"

var allScopes = []string{"presets:read", "presets:write", "passwords:read", "passwords:write"}

// env wires a full service stack against an in-memory database, with a
// local signing key standing in for the auth service.
type env struct {
	server *httptest.Server
	signer *jwtx.EdDSASigner
}

func setupEnv(t *testing.T) *env {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer := jwtx.NewSignerEdDSA(idx.New().String(), priv)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(signer.PublicJWK()))

	verifier := jwtx.NewVerifier(keys, testIssuer, nil)

	router := httpapi.NewRouter(keys, verifier, "test", st, slog.Default())
	router.PresetService = &service.PresetService{Store: st}
	router.PasswordService = &service.PasswordService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &env{server: server, signer: signer}
}

// mintToken issues an access token for the given subject and scopes.
func (e *env) mintToken(t *testing.T, subject string, scopes []string) string {
	t.Helper()

	claims := jwtx.NewAccessClaims(subject, scopes, time.Hour, testIssuer, nil, "tester", time.Now())
	token, err := e.signer.Sign(claims)
	require.NoError(t, err)
	return token
}

// clientFor returns an SDK client authenticated as a fresh user with the
// given scopes, along with that user's id.
func (e *env) clientFor(t *testing.T, scopes []string) (*presetsdk.Client, string) {
	t.Helper()

	userID := idx.New().String()
	return presetsdk.New(e.server.URL, e.mintToken(t, userID, scopes)), userID
}
