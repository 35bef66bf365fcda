package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/artistportal/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewEphemeralKeyManager(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  exampleIssuer,
		NumKeys: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, km.Verifier)
	require.NotNil(t, km.KeySet)
	require.NotNil(t, km.GetSigner())
	require.Equal(t, jwtx.AlgorithmEdDSA, km.Algorithm())
	require.True(t, km.IsReady())
	require.Equal(t, 1, km.NumSigners())
}

func TestNewEphemeralKeyManager_ErrorCases(t *testing.T) {
	_, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Issuer is required")
}

func TestKeyManager_SignAndVerifyRoundTrip(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer})
	require.NoError(t, err)

	claims := jwtx.Grant{Subject: "1", SessionID: "sid", Scopes: []string{"profile:read"}, TTL: time.Minute, Username: "alexj"}.Claims(exampleIssuer, time.Now())

	token, err := km.GetSigner().Sign(claims)
	require.NoError(t, err)

	parsed, err := km.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "1", parsed.Subject)
	require.Equal(t, "alexj", parsed.Username)
}

func TestKeyManager_NumKeys(t *testing.T) {
	tests := []struct {
		name    string
		numKeys int
		want    int
	}{
		{"zero defaults to one", 0, 1},
		{"negative defaults to one", -3, 1},
		{"three keys", 3, 3},
		{"capped at ten", 25, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
				Issuer:  exampleIssuer,
				NumKeys: tt.numKeys,
			})
			require.NoError(t, err)
			require.Equal(t, tt.want, km.NumSigners())
			require.Len(t, km.KeySet.PublicJWKS().Keys, tt.want)
		})
	}
}

func TestKeyManager_MultiKeyVerify(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  exampleIssuer,
		NumKeys: 3,
	})
	require.NoError(t, err)

	// Whichever key signs, the shared key set must verify it.
	for range 20 {
		claims := jwtx.Grant{Subject: "9", SessionID: "sid", TTL: time.Minute}.Claims(exampleIssuer, time.Now())
		token, err := km.GetSigner().Sign(claims)
		require.NoError(t, err)

		_, err = km.Verifier.Verify(token)
		require.NoError(t, err)
	}
}

func TestKeyManager_SignersRotate(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer, NumKeys: 3})
	require.NoError(t, err)

	seen := map[string]int{}
	for range 6 {
		seen[km.GetSigner().KID()]++
	}
	require.Len(t, seen, 3)
	for kid, n := range seen {
		require.Equal(t, 2, n, kid)
		require.Contains(t, kid, "portal-")
	}
}
