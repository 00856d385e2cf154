package secp

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Longest digest which can be signed without truncation.
const MaxDigestLen = 32

var (
	ErrDigestTooLong = errors.New("digest longer than 32 bytes")
	ErrInvalidDER    = errors.New("malformed DER signature")
)

// Produces an ECDSA signature over digest, which is signed as-is (no hashing here). The result is already low-S.
//
// Digests longer than [MaxDigestLen] are refused, since ECDSA would silently ignore the extra bytes.
func Sign(priv *secp256k1.PrivateKey, digest []byte) (*ecdsa.Signature, error) {
	if len(digest) > MaxDigestLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrDigestTooLong, len(digest))
	}
	return Normalize(ecdsa.Sign(priv, digest)), nil
}

// Checks an ECDSA signature over digest. Signatures with a high S value are rejected (return false), like libsecp256k1.
func Verify(pub *secp256k1.PublicKey, digest []byte, sig *ecdsa.Signature) (bool, error) {
	if len(digest) > MaxDigestLen {
		return false, fmt.Errorf("%w: got %d bytes", ErrDigestTooLong, len(digest))
	}
	if !IsLowS(sig) {
		return false, nil
	}
	return sig.Verify(digest, pub), nil
}

// Checks if the 'S' value of a signature is "low-S", ie s <= n/2.
func IsLowS(sig *ecdsa.Signature) bool {
	s := sig.S()
	return !s.IsOverHalfOrder()
}

// Returns the "low-S" variant of the signature: if s > n/2, s is replaced with n - s. Both are valid for the same (r, message), so this removes malleability.
func Normalize(sig *ecdsa.Signature) *ecdsa.Signature {
	if IsLowS(sig) {
		return sig
	}
	r, s := sig.R(), sig.S()
	s.Negate()
	return ecdsa.NewSignature(&r, &s)
}

// DER encodes the signature. The encoder also enforces low-S.
func EncodeDER(sig *ecdsa.Signature) []byte {
	return sig.Serialize()
}

// Strict DER decoding of an (r, s) pair. Both values must be in [1, n-1]; high-S values decode fine and are only rejected by [Verify].
func DecodeDER(b []byte) (*ecdsa.Signature, error) {
	sig, err := ecdsa.ParseDERSignature(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDER, err)
	}
	return sig, nil
}
