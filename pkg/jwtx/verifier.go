package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks a session token and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrUnknownKID = errors.New("jwtx: unknown kid")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrAudience    = errors.New("jwtx: audience mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// SessionVerifier accepts EdDSA tokens signed by any key in its KeySet.
type SessionVerifier struct {
	keys     *KeySet
	issuer   string
	audience []string
	parser   *jwt.Parser
}

// NewVerifier returns a verifier for tokens from issuer. An empty audience
// disables the aud check.
func NewVerifier(keys *KeySet, issuer string, audience []string) *SessionVerifier {
	return &SessionVerifier{
		keys:     keys,
		issuer:   issuer,
		audience: audience,
		parser:   jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()})),
	}
}

func (v *SessionVerifier) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := v.parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("%w: missing kid", ErrMalformed)
		}

		pub, err := v.keys.Get(kid)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrUnknownKID, kid, err)
		}
		return pub, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}
	if !parsed.Valid {
		return Claims{}, errors.New("jwtx: invalid token claims")
	}

	if err := claims.checkParty(v.issuer, v.audience); err != nil {
		return Claims{}, err
	}
	if err := claims.CheckTime(time.Now(), 0); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
