package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Entropy, in bytes, for the random strings the portal generates.
const (
	KeyIDBytes  = 16
	PepperBytes = 32
)

// RandomString returns n random bytes encoded as unpadded base64url.
func RandomString(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("cryptox: random length must be positive, got %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("cryptox: read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
