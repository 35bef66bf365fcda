package jwtx

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/aussiebroadwan/artistportal/pkg/cryptox"
)

// AlgorithmEdDSA is the only signing algorithm portal sessions use.
const AlgorithmEdDSA = "EdDSA"

const maxSigningKeys = 10

// KeyManager owns the signing keys of one portal process together with
// the KeySet and Verifier that accept tokens signed by any of them.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	signers []Signer
	next    atomic.Uint64
}

// KeyManagerOptions configures NewEphemeralKeyManager.
type KeyManagerOptions struct {
	Issuer string

	// Audience, when set, must intersect a token's aud claim.
	Audience []string

	// NumKeys is clamped to [1, 10].
	NumKeys int
}

// NewEphemeralKeyManager generates fresh Ed25519 keys in memory. Tokens
// it signs stop verifying once the process exits.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, errors.New("jwtx: issuer is required")
	}

	n := min(max(opts.NumKeys, 1), maxSigningKeys)
	km := &KeyManager{KeySet: NewKeySet(), signers: make([]Signer, 0, n)}

	for i := range n {
		s, err := newEphemeralSigner()
		if err != nil {
			return nil, fmt.Errorf("jwtx: signing key %d: %w", i+1, err)
		}
		if err := km.KeySet.AddSigner(s); err != nil {
			return nil, fmt.Errorf("jwtx: publish key %d: %w", i+1, err)
		}
		km.signers = append(km.signers, s)
	}

	km.Verifier = NewVerifier(km.KeySet, opts.Issuer, opts.Audience)
	return km, nil
}

func newEphemeralSigner() (Signer, error) {
	suffix, err := cryptox.RandomString(cryptox.KeyIDBytes)
	if err != nil {
		return nil, err
	}
	key, err := cryptox.NewEd25519Key()
	if err != nil {
		return nil, err
	}
	return NewSigner("portal-"+suffix, key)
}

// Algorithm returns the JWS alg of every token this manager signs.
func (km *KeyManager) Algorithm() string { return AlgorithmEdDSA }

// IsReady reports whether any verification key is published.
func (km *KeyManager) IsReady() bool { return km.KeySet.IsReady() }

// NumSigners returns how many signing keys are in rotation.
func (km *KeyManager) NumSigners() int { return len(km.signers) }

// GetSigner hands out the signing keys in turn.
func (km *KeyManager) GetSigner() Signer {
	if len(km.signers) == 0 {
		return nil
	}
	i := km.next.Add(1) - 1
	return km.signers[i%uint64(len(km.signers))]
}
