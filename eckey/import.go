package eckey

import (
	"fmt"
	"strings"

	"github.com/bluesky-social/nkey/internal/secp"
	"github.com/bluesky-social/nkey/nkey"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Both private and public material were supplied, but the public point is not the one derived from the private scalar.
var ErrKeyMismatch = fmt.Errorf("%w: public key does not match private key", nkey.ErrInvalidInput)

// Existing key material to load with [Import]. At least one of the fields must be set.
type Options struct {
	// Private scalar: either the raw 32-byte big-endian value, or a SEC 1 ECPrivateKey DER structure as exported in records.
	Priv nkey.Input

	// Public point, compressed (33 bytes) or uncompressed (65 bytes).
	Pub nkey.Input
}

// Loads a [KeyPair] from existing material.
//
//   - with only Priv, the public point is derived (compressed encoding)
//   - with only Pub, the pair is public-only and can not sign
//   - with both, the public point must match the one derived from Priv, else [ErrKeyMismatch]. The supplied encoding is kept.
//
// Returns an error wrapping [nkey.ErrInvalidInput] if neither is set, or if either fails to parse.
func Import(opts Options) (*KeyPair, error) {
	privBytes, err := nkey.ToBytes(opts.Priv)
	if err != nil {
		return nil, fmt.Errorf("%w: private key: %w", nkey.ErrInvalidInput, err)
	}
	pubBytes, err := nkey.ToBytes(opts.Pub)
	if err != nil {
		return nil, fmt.Errorf("%w: public key: %w", nkey.ErrInvalidInput, err)
	}
	if privBytes == nil && pubBytes == nil {
		return nil, fmt.Errorf("%w: expected private or public key", nkey.ErrInvalidInput)
	}

	var pub *point
	if pubBytes != nil {
		pub, err = parsePoint(pubBytes)
		if err != nil {
			return nil, err
		}
	}
	if privBytes == nil {
		return newKeyPair(&publicOnly{point: *pub}), nil
	}

	scalar, embedded, err := parsePrivate(privBytes)
	if err != nil {
		return nil, err
	}
	if pub == nil && embedded != nil {
		pub, err = parsePoint(embedded)
		if err != nil {
			return nil, err
		}
	}
	if pub == nil {
		return fromScalar(scalar), nil
	}
	if !secp.DerivePublic(scalar).IsEqual(pub.key) {
		return nil, ErrKeyMismatch
	}
	return newKeyPair(&fullKey{point: *pub, scalar: scalar}), nil
}

// Loads a [KeyPair] from a serialized record, as produced by [KeyPair.Record].
//
// The record type must be "ec", and the curve (if set) "secp256k1". If the record includes a fingerprint, it must match the one recomputed from the public key.
func FromRecord(rec *nkey.Record) (*KeyPair, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil key record", nkey.ErrInvalidInput)
	}
	if rec.Type != TypeName {
		return nil, fmt.Errorf("%w: expected key type %q, got %q", nkey.ErrInvalidInput, TypeName, rec.Type)
	}
	if rec.Curve != "" && rec.Curve != CurveName {
		return nil, fmt.Errorf("%w: unsupported curve: %s", nkey.ErrInvalidInput, rec.Curve)
	}
	k, err := Import(Options{Priv: nkey.Hex(rec.Priv), Pub: nkey.Hex(rec.Pub)})
	if err != nil {
		return nil, err
	}
	if rec.Fingerprint != "" && !strings.EqualFold(rec.Fingerprint, k.Fingerprint()) {
		return nil, fmt.Errorf("%w: record fingerprint does not match public key", nkey.ErrInvalidInput)
	}
	return k, nil
}

func fromScalar(scalar *secp256k1.PrivateKey) *KeyPair {
	pub := secp.DerivePublic(scalar)
	return newKeyPair(&fullKey{
		point:  point{key: pub, raw: pub.SerializeCompressed()},
		scalar: scalar,
	})
}

func parsePoint(b []byte) (*point, error) {
	pub, err := secp.ParsePoint(b)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid K-256/secp256k1 public key: %w", nkey.ErrInvalidInput, err)
	}
	return &point{key: pub, raw: append([]byte(nil), b...)}, nil
}

// Raw 32-byte scalars and SEC 1 DER are told apart by length: the DER structure is always longer.
func parsePrivate(b []byte) (*secp256k1.PrivateKey, []byte, error) {
	if len(b) == secp.ScalarLen {
		scalar, err := secp.ParseScalar(b)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid K-256/secp256k1 private key: %w", nkey.ErrInvalidInput, err)
		}
		return scalar, nil, nil
	}
	scalar, embedded, err := secp.ParsePrivateKey(b)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid K-256/secp256k1 private key: %w", nkey.ErrInvalidInput, err)
	}
	return scalar, embedded, nil
}
