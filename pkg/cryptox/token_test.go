package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomString(t *testing.T) {
	for _, n := range []int{KeyIDBytes, PepperBytes, 5} {
		a, err := RandomString(n)
		require.NoError(t, err)
		b, err := RandomString(n)
		require.NoError(t, err)
		require.NotEqual(t, a, b)

		raw, err := base64.RawURLEncoding.DecodeString(a)
		require.NoError(t, err)
		require.Len(t, raw, n)
	}
}

func TestRandomString_RejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -4} {
		s, err := RandomString(n)
		require.Error(t, err)
		require.Empty(t, s)
	}
}
