package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/padlockhq/padlock/pkg/jwtx"
)

// InitVerificationKeys builds the KeySet used to verify access tokens.
//
// The preset service never signs tokens itself; it trusts the auth service's
// published JWKS. Sources, in order of preference:
//   - AUTH_JWKS_FILE: a JWKS document on disk (bind-mounted secret, dev fixture)
//   - AUTH_JWKS_URL: fetched once at startup from the auth service
//
// Missing both is allowed so the service can boot before the auth service is
// reachable; /readyz reports the key set as not ready until keys are loaded.
func InitVerificationKeys(cfg Config, logger *slog.Logger) (*jwtx.KeySet, error) {
	keys := jwtx.NewKeySet()

	switch {
	case cfg.JWKSFile != "":
		jwks, err := readJWKSFile(cfg.JWKSFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load JWKS from file: %w", err)
		}
		if err := keys.ResetFromJWKS(jwks); err != nil {
			return nil, fmt.Errorf("failed to parse JWKS from file: %w", err)
		}
		logger.Info("verification keys loaded", "source", "file", "path", cfg.JWKSFile, "keys", len(jwks.Keys))

	case cfg.JWKSURL != "":
		jwks, err := fetchJWKS(cfg.JWKSURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch JWKS: %w", err)
		}
		if err := keys.ResetFromJWKS(jwks); err != nil {
			return nil, fmt.Errorf("failed to parse fetched JWKS: %w", err)
		}
		logger.Info("verification keys loaded", "source", "url", "url", cfg.JWKSURL, "keys", len(jwks.Keys))

	default:
		logger.Warn("no JWKS source configured; all authenticated requests will be rejected")
	}

	return keys, nil
}

func readJWKSFile(path string) (jwtx.JWKS, error) {
	var jwks jwtx.JWKS

	data, err := os.ReadFile(path)
	if err != nil {
		return jwks, err
	}

	if err := json.Unmarshal(data, &jwks); err != nil {
		return jwks, err
	}
	return jwks, nil
}

func fetchJWKS(url string) (jwtx.JWKS, error) {
	var jwks jwtx.JWKS

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return jwks, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return jwks, fmt.Errorf("jwks endpoint returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return jwks, err
	}

	if err := json.Unmarshal(body, &jwks); err != nil {
		return jwks, err
	}
	return jwks, nil
}
