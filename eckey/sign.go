package eckey

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/bluesky-social/nkey/internal/secp"
	"github.com/bluesky-social/nkey/nkey"
)

// The signing half of a [KeyPair], as returned by [KeyPair.Signer].
type PrivateKey struct {
	pair *KeyPair
	key  *fullKey
}

// The pair this private key belongs to.
func (p *PrivateKey) KeyPair() *KeyPair {
	return p.pair
}

// Signs msg, which is used directly as the ECDSA digest (it is not hashed here), returning the DER-encoded "low-S" signature.
//
// Messages longer than 32 bytes are refused with [nkey.ErrInvalidInput].
func (p *PrivateKey) SignDER(msg []byte) ([]byte, error) {
	sig, err := secp.Sign(p.key.scalar, msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", nkey.ErrInvalidInput, err)
	}
	return secp.EncodeDER(secp.Normalize(sig)), nil
}

// Same as SignDER, with the signature as a lowercase hex string.
func (p *PrivateKey) Sign(msg []byte) (string, error) {
	der, err := p.SignDER(msg)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(der), nil
}

// Serializes the private scalar in to a raw 32-byte big-endian format, with no enclosing structure.
func (p *PrivateKey) Bytes() []byte {
	return p.key.scalar.Serialize()
}

// Serializes the private scalar as a SEC 1 ECPrivateKey DER structure, including the curve and the public point. This is the "priv" format of records.
func (p *PrivateKey) SEC1() ([]byte, error) {
	return secp.MarshalPrivateKey(p.key.scalar, p.key.raw)
}

// Signs msg, see [PrivateKey.SignDER]. Returns [nkey.ErrNoPrivateKey] for a public-only pair.
func (k *KeyPair) Sign(msg []byte) (string, error) {
	signer, err := k.Signer()
	if err != nil {
		return "", err
	}
	return signer.Sign(msg)
}

// Signatures are not guaranteed to be reproducible: callers must not compare two signatures over the same message to each other, only verify them.
func (k *KeyPair) HasDeterministicSig() bool {
	return false
}

// Checks a DER-encoded signature (raw bytes, or hex string) over msg, which is used directly as the ECDSA digest.
//
// Returns false with no error for a well-formed signature which does not match, including "high-S" signatures. Returns an error wrapping [nkey.ErrInvalidSignatureEncoding] if the signature is not valid hex or DER, and [nkey.ErrInvalidInput] for messages longer than 32 bytes.
func (k *KeyPair) Verify(msg []byte, sig nkey.Input) (bool, error) {
	sigBytes, err := nkey.ToBytes(sig)
	if err != nil {
		return false, fmt.Errorf("%w: %w", nkey.ErrInvalidSignatureEncoding, err)
	}
	if sigBytes == nil {
		return false, fmt.Errorf("%w: empty signature", nkey.ErrInvalidSignatureEncoding)
	}
	parsed, err := secp.DecodeDER(sigBytes)
	if err != nil {
		return false, fmt.Errorf("%w: %w", nkey.ErrInvalidSignatureEncoding, err)
	}
	ok, err := secp.Verify(k.material.pubPoint().key, msg, parsed)
	if errors.Is(err, secp.ErrDigestTooLong) {
		return false, fmt.Errorf("%w: %w", nkey.ErrInvalidInput, err)
	}
	if err != nil {
		return false, err
	}
	return ok, nil
}
