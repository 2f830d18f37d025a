// Package local holds the collator's own identity.
package local

import (
	"crypto/rand"
	"fmt"

	"github.com/onflow/flow-go/crypto"
	"github.com/onflow/flow-go/crypto/hash"
)

// SigningAlgorithm is the algorithm of collator keys.
const SigningAlgorithm = crypto.ECDSAP256

// SeedLen is the length of the seed collator keys are derived from.
const SeedLen = 48

// Local is the collator's identity. The private key never leaves it; only
// the public key is exposed.
type Local struct {
	sk crypto.PrivateKey
}

// New derives the collator key from the given seed.
func New(seed []byte) (*Local, error) {
	sk, err := crypto.GeneratePrivateKey(SigningAlgorithm, seed)
	if err != nil {
		return nil, fmt.Errorf("could not generate collator key: %w", err)
	}
	return &Local{sk: sk}, nil
}

// Ephemeral creates a collator identity from a random seed. The identity is
// lost when the process exits.
func Ephemeral() (*Local, error) {
	seed := make([]byte, SeedLen)
	_, err := rand.Read(seed)
	if err != nil {
		return nil, fmt.Errorf("could not read seed: %w", err)
	}
	return New(seed)
}

// PublicKey returns the public key of the collator.
func (l *Local) PublicKey() crypto.PublicKey {
	return l.sk.PublicKey()
}

// CollatorID returns the encoded public key, as announced to the relay chain.
func (l *Local) CollatorID() []byte {
	return l.sk.PublicKey().Encode()
}

// Sign signs the message with the collator key.
func (l *Local) Sign(msg []byte) (crypto.Signature, error) {
	return l.sk.Sign(msg, hash.NewSHA3_256())
}

// Verify checks a signature of msg against an encoded collator ID.
func Verify(collatorID []byte, msg []byte, sig []byte) (bool, error) {
	pk, err := crypto.DecodePublicKey(SigningAlgorithm, collatorID)
	if err != nil {
		return false, fmt.Errorf("could not decode collator id: %w", err)
	}
	return pk.Verify(sig, msg, hash.NewSHA3_256())
}
