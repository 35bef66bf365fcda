package jwtx_test

import (
	"crypto/ed25519"
	"testing"
	"time"

	"github.com/aussiebroadwan/artistportal/pkg/cryptox"
	"github.com/aussiebroadwan/artistportal/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "artist-portal"

func newTestSigner(t *testing.T, kid string) *jwtx.SessionSigner {
	t.Helper()

	key, err := cryptox.NewEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSigner(kid, key)
	require.NoError(t, err)
	return signer
}

func newTestKeySet(t *testing.T, signers ...jwtx.Signer) *jwtx.KeySet {
	t.Helper()

	ks := jwtx.NewKeySet()
	for _, s := range signers {
		require.NoError(t, ks.AddSigner(s))
	}
	return ks
}

func TestSignAndVerify(t *testing.T) {
	signer := newTestSigner(t, "portal-k1")
	require.Equal(t, "portal-k1", signer.KID())

	claims := jwtx.Grant{
		Subject:    "42",
		SessionID:  "session-1",
		Username:   "alexj",
		ArtistName: "Alex J",
		Scopes:     []string{"profile:read", "profile:write"},
		TTL:        5 * time.Minute,
	}.Claims(exampleIssuer, time.Now())

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	parsed, err := jwtx.NewVerifier(newTestKeySet(t, signer), exampleIssuer, nil).Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Issuer, parsed.Issuer)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.ElementsMatch(t, claims.Scopes, parsed.Scopes)
	require.Equal(t, claims.SID, parsed.SID)
	require.Equal(t, claims.Username, parsed.Username)
	require.Equal(t, claims.ArtistName, parsed.ArtistName)
	require.NotEmpty(t, parsed.ID)
}

var sevenGrant = jwtx.Grant{Subject: "7", SessionID: "sid", TTL: time.Minute}

func TestVerifyRejects(t *testing.T) {
	signer := newTestSigner(t, "k1")
	other := newTestSigner(t, "k2")
	keys := newTestKeySet(t, signer)

	sign := func(t *testing.T, s jwtx.Signer, issuedAt time.Time) string {
		t.Helper()
		claims := sevenGrant.Claims(exampleIssuer, issuedAt)
		token, err := s.Sign(claims)
		require.NoError(t, err)
		return token
	}

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := jwtx.NewVerifier(keys, "someone-else", nil).Verify(sign(t, signer, time.Now()))
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := jwtx.NewVerifier(keys, exampleIssuer, nil).Verify(sign(t, other, time.Now()))
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := jwtx.NewVerifier(keys, exampleIssuer, nil).Verify(sign(t, signer, time.Now().Add(-time.Hour)))
		require.Error(t, err)
	})

	t.Run("missing kid", func(t *testing.T) {
		claims := sevenGrant.Claims(exampleIssuer, time.Now())
		key, err := cryptox.NewEd25519Key()
		require.NoError(t, err)
		token, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(key)
		require.NoError(t, err)

		_, err = jwtx.NewVerifier(keys, exampleIssuer, nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("hs256", func(t *testing.T) {
		claims := sevenGrant.Claims(exampleIssuer, time.Now())
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tok.Header["kid"] = "k1"
		token, err := tok.SignedString([]byte("not-a-real-secret"))
		require.NoError(t, err)

		_, err = jwtx.NewVerifier(keys, exampleIssuer, nil).Verify(token)
		require.Error(t, err)
	})

	t.Run("tampered", func(t *testing.T) {
		token := sign(t, signer, time.Now())
		_, err := jwtx.NewVerifier(keys, exampleIssuer, nil).Verify(token[:len(token)-4] + "AAAA")
		require.Error(t, err)
	})
}

func TestNewSigner_Validation(t *testing.T) {
	key, err := cryptox.NewEd25519Key()
	require.NoError(t, err)

	_, err = jwtx.NewSigner("", key)
	require.Error(t, err)

	_, err = jwtx.NewSigner("k1", ed25519.PrivateKey(key[:10]))
	require.ErrorContains(t, err, "want 64")
}

func TestNewSignerFromPEM(t *testing.T) {
	key, err := cryptox.NewEd25519Key()
	require.NoError(t, err)
	data, err := cryptox.EncodeEd25519PEM(key)
	require.NoError(t, err)

	signer, err := jwtx.NewSignerFromPEM("k1", data)
	require.NoError(t, err)
	require.True(t, key.Public().(ed25519.PublicKey).Equal(mustPublicKey(t, signer.PublicJWK())))

	_, err = jwtx.NewSignerFromPEM("k1", []byte("not-a-pem-key"))
	require.ErrorContains(t, err, "invalid PEM")
}

func mustPublicKey(t *testing.T, j jwtx.JWK) ed25519.PublicKey {
	t.Helper()
	pub, err := j.PublicKey()
	require.NoError(t, err)
	return pub
}
