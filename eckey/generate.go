package eckey

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/bluesky-social/nkey/internal/secp"
	"github.com/bluesky-social/nkey/nkey"
)

// Creates a secure new key pair from scratch, using the system randomness source.
func Generate() (*KeyPair, error) {
	return GenerateFromReader(rand.Reader)
}

// Creates a new key pair, drawing 32-byte candidates from the reader until one is a valid scalar. The public point is derived and held in compressed encoding.
//
// A failing reader is fatal: the error wraps [nkey.ErrRandomnessFailure] and is not retried. The reader must be a cryptographically secure source.
func GenerateFromReader(rand io.Reader) (*KeyPair, error) {
	scalar, err := secp.GenerateScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("%w: K-256/secp256k1 key generation failed: %w", nkey.ErrRandomnessFailure, err)
	}
	return fromScalar(scalar), nil
}
