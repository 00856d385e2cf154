package secp

import (
	"errors"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Length in bytes of a serialized private scalar.
const ScalarLen = secp256k1.PrivKeyBytesLen

var (
	ErrInvalidScalar = errors.New("secp256k1 scalar out of range [1, n-1]")
	ErrInvalidPoint  = errors.New("invalid secp256k1 public point")
)

// Draws 32-byte candidates from the reader until one is a valid scalar in [1, n-1].
//
// The loop essentially never runs twice (about 1 in 2^128), but a candidate outside the range must never be accepted. Reader errors are returned as-is and not retried.
func GenerateScalar(rand io.Reader) (*secp256k1.PrivateKey, error) {
	var b32 [ScalarLen]byte
	defer clear(b32[:])

	var k secp256k1.ModNScalar
	for {
		if _, err := io.ReadFull(rand, b32[:]); err != nil {
			return nil, err
		}
		if ValidScalar(b32[:]) {
			k.SetBytes(&b32)
			return secp256k1.NewPrivateKey(&k), nil
		}
	}
}

// Checks that b is exactly 32 bytes and, read as a big-endian integer, lies in [1, n-1].
func ValidScalar(b []byte) bool {
	if len(b) != ScalarLen {
		return false
	}
	var b32 [ScalarLen]byte
	copy(b32[:], b)
	defer clear(b32[:])

	var k secp256k1.ModNScalar
	overflow := k.SetBytes(&b32)
	valid := overflow == 0 && !k.IsZero()
	k.Zero()
	return valid
}

// Loads a private scalar from raw 32-byte big-endian form. Unlike [secp256k1.PrivKeyFromBytes], values outside [1, n-1] are rejected rather than reduced.
func ParseScalar(b []byte) (*secp256k1.PrivateKey, error) {
	if len(b) != ScalarLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidScalar, ScalarLen, len(b))
	}
	if !ValidScalar(b) {
		return nil, ErrInvalidScalar
	}
	return secp256k1.PrivKeyFromBytes(b), nil
}

// Scalar multiplication with the curve generator. Deterministic: the same scalar always yields the same point.
func DerivePublic(priv *secp256k1.PrivateKey) *secp256k1.PublicKey {
	return priv.PubKey()
}

// Parses a public point from compressed (33 byte) or uncompressed (65 byte) encoding, checking that it is on the curve.
func ParsePoint(b []byte) (*secp256k1.PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPoint, err)
	}
	return pub, nil
}
