package jwtx

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/artistportal/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
)

// Signer issues session tokens under one key id.
type Signer interface {
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
}

// SessionSigner signs session tokens with an Ed25519 key.
type SessionSigner struct {
	kid string
	key ed25519.PrivateKey
}

// NewSigner wraps key under kid.
func NewSigner(kid string, key ed25519.PrivateKey) (*SessionSigner, error) {
	if kid == "" {
		return nil, errors.New("jwtx: signer needs a kid")
	}
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("jwtx: Ed25519 private key is %d bytes, want %d", len(key), ed25519.PrivateKeySize)
	}
	return &SessionSigner{kid: kid, key: key}, nil
}

// NewSignerFromPEM loads a PKCS8 encoded Ed25519 key.
func NewSignerFromPEM(kid string, data []byte) (*SessionSigner, error) {
	key, err := cryptox.DecodeEd25519PEM(data)
	if err != nil {
		return nil, err
	}
	return NewSigner(kid, key)
}

func (s *SessionSigner) KID() string { return s.kid }

// Sign encodes claims as a compact JWS with the kid header set.
func (s *SessionSigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// PublicJWK is the verification half of the key, as served from the JWKS
// endpoint.
func (s *SessionSigner) PublicJWK() JWK {
	return NewEd25519JWK(s.kid, s.key.Public().(ed25519.PublicKey))
}
