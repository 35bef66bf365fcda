package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL applies when a Grant has no TTL.
const DefaultSessionTTL = 24 * time.Hour

// Claims are carried by a portal session token.
type Claims struct {
	jwt.RegisteredClaims

	// SID names the server-side session, which logout revokes.
	SID        string   `json:"sid,omitempty"`
	Scopes     []string `json:"scopes,omitempty"`
	Username   string   `json:"username,omitempty"`
	ArtistName string   `json:"artist_name,omitempty"`
}

// Grant describes the session a signed-in user is being given.
type Grant struct {
	Subject    string
	SessionID  string
	Username   string
	ArtistName string
	Scopes     []string
	TTL        time.Duration
}

// Claims stamps g with issuer and a fresh jti, valid from now.
func (g Grant) Claims(issuer string, now time.Time) Claims {
	ttl := g.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   g.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        newJTI(),
		},
		SID:        g.SessionID,
		Scopes:     slices.Clone(g.Scopes),
		Username:   g.Username,
		ArtistName: g.ArtistName,
	}
}

func newJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// HasScope reports whether the session grants scope.
func (c Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// CheckTime fails with ErrExpired or ErrNotYetValid when now falls outside
// the token's validity window widened by leeway.
func (c Claims) CheckTime(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}

// checkParty enforces issuer and, when audience is non-empty, that at
// least one of its values is present.
func (c Claims) checkParty(issuer string, audience []string) error {
	if issuer != "" && c.Issuer != issuer {
		return ErrIssuer
	}
	if len(audience) == 0 {
		return nil
	}
	if slices.ContainsFunc(audience, func(a string) bool { return slices.Contains(c.Audience, a) }) {
		return nil
	}
	return ErrAudience
}
