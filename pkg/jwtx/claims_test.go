package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGrantClaims(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	scopes := []string{"profile:read"}
	g := Grant{Subject: "1", SessionID: "sid-1", Username: "alexj", ArtistName: "Alex J", Scopes: scopes, TTL: time.Hour}

	c := g.Claims("artist-portal", now)
	require.Equal(t, "1", c.Subject)
	require.Equal(t, "sid-1", c.SID)
	require.Equal(t, "artist-portal", c.Issuer)
	require.Equal(t, "alexj", c.Username)
	require.Equal(t, "Alex J", c.ArtistName)
	require.Equal(t, now.Add(time.Hour), c.ExpiresAt.Time)
	require.Equal(t, now, c.NotBefore.Time)
	require.True(t, c.HasScope("profile:read"))
	require.False(t, c.HasScope("profile:write"))

	scopes[0] = "mutated"
	require.True(t, c.HasScope("profile:read"), "claims must not alias the grant's scopes")

	other := g.Claims("artist-portal", now)
	require.NotEmpty(t, c.ID)
	require.NotEqual(t, c.ID, other.ID)
}

func TestGrantClaims_DefaultTTL(t *testing.T) {
	now := time.Now()
	c := Grant{Subject: "1"}.Claims("iss", now)
	require.WithinDuration(t, now.Add(DefaultSessionTTL), c.ExpiresAt.Time, time.Second)
}

func TestCheckTime(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := Grant{Subject: "1", TTL: time.Minute}.Claims("iss", now)

	require.NoError(t, c.CheckTime(now, 0))
	require.NoError(t, c.CheckTime(now.Add(time.Minute), 0))
	require.ErrorIs(t, c.CheckTime(now.Add(time.Minute+time.Second), 0), ErrExpired)
	require.NoError(t, c.CheckTime(now.Add(time.Minute+time.Second), 30*time.Second))
	require.ErrorIs(t, c.CheckTime(now.Add(-time.Second), 0), ErrNotYetValid)
	require.NoError(t, c.CheckTime(now.Add(-time.Second), 5*time.Second))

	require.NoError(t, Claims{}.CheckTime(now, 0), "claims without exp or nbf never expire")
}

func TestCheckParty(t *testing.T) {
	c := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:   "artist-portal",
		Audience: jwt.ClaimStrings{"portal", "sdk"},
	}}

	tests := []struct {
		name     string
		issuer   string
		audience []string
		want     error
	}{
		{"match", "artist-portal", []string{"sdk"}, nil},
		{"no constraints", "", nil, nil},
		{"any audience", "artist-portal", []string{"admin", "portal"}, nil},
		{"wrong issuer", "someone-else", nil, ErrIssuer},
		{"wrong audience", "artist-portal", []string{"admin"}, ErrAudience},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.checkParty(tt.issuer, tt.audience)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}
