package jwtx

import (
	"crypto/ed25519"
	"encoding/base64"

	"github.com/golang-jwt/jwt/v5"
)

// EdDSASigner signs claims with an Ed25519 key. The presets service itself
// never signs tokens in production; this exists for tests and local tooling
// that need to mint tokens the verifier will accept.
type EdDSASigner struct {
	kid  string
	priv ed25519.PrivateKey
}

// NewSignerEdDSA wraps an Ed25519 private key as a signer under the given
// kid.
func NewSignerEdDSA(kid string, priv ed25519.PrivateKey) *EdDSASigner {
	return &EdDSASigner{kid: kid, priv: priv}
}

// KID returns the key identifier stamped into signed token headers.
func (s *EdDSASigner) KID() string { return s.kid }

// Sign produces a compact JWT for the given claims.
func (s *EdDSASigner) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, c)
	token.Header["kid"] = s.kid
	return token.SignedString(s.priv)
}

// PublicJWK returns the matching verification key in JWK form, ready to be
// added to a KeySet.
func (s *EdDSASigner) PublicJWK() JWK {
	pub := s.priv.Public().(ed25519.PublicKey)
	return JWK{
		Kty: "OKP",
		Crv: "Ed25519",
		Kid: s.kid,
		Alg: "EdDSA",
		Use: "sig",
		X:   base64.RawURLEncoding.EncodeToString(pub),
	}
}
