package eckey

import (
	"encoding/hex"
	"fmt"

	"github.com/bluesky-social/nkey/nkey"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// Registered name of this key type, as found in the "type" field of records.
	TypeName = "ec"

	// The only supported curve.
	CurveName = "secp256k1"
)

var _ nkey.Key = (*KeyPair)(nil)

func init() {
	nkey.Register(nkey.Type{
		Name: TypeName,
		Generate: func() (nkey.Key, error) {
			k, err := Generate()
			if err != nil {
				return nil, err
			}
			return k, nil
		},
		FromRecord: func(rec *nkey.Record) (nkey.Key, error) {
			k, err := FromRecord(rec)
			if err != nil {
				return nil, err
			}
			return k, nil
		},
	})
}

// Public curve point, in the encoding it was supplied or derived with.
type point struct {
	key *secp256k1.PublicKey
	raw []byte
}

func (p *point) pubPoint() *point {
	return p
}

// The key material held by a pair: exactly one of [publicOnly] or [fullKey].
type material interface {
	pubPoint() *point
}

// Material for a pair which can only verify.
type publicOnly struct {
	point
}

// Material for a pair which can sign.
type fullKey struct {
	point
	scalar *secp256k1.PrivateKey
}

// A secp256k1 key pair. Implements [nkey.Key].
//
// Secret key material is naively stored in memory.
type KeyPair struct {
	material    material
	fingerprint string
}

func newKeyPair(m material) *KeyPair {
	return &KeyPair{
		material:    m,
		fingerprint: fingerprint(m.pubPoint().raw),
	}
}

func (k *KeyPair) Type() string {
	return TypeName
}

func (k *KeyPair) Curve() string {
	return CurveName
}

// Lowercase hex SHA-256 digest of [KeyPair.PublicKeyBytes]. Computed once, at construction.
func (k *KeyPair) Fingerprint() string {
	return k.fingerprint
}

// Raw public point bytes, compressed or uncompressed. Returns a copy.
func (k *KeyPair) PublicKeyBytes() []byte {
	return append([]byte(nil), k.material.pubPoint().raw...)
}

func (k *KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(k.material.pubPoint().raw)
}

// Public point in 33-byte compressed encoding, regardless of the held encoding.
func (k *KeyPair) CompressedBytes() []byte {
	return k.material.pubPoint().key.SerializeCompressed()
}

// Public point in 65-byte uncompressed encoding, regardless of the held encoding.
func (k *KeyPair) UncompressedBytes() []byte {
	return k.material.pubPoint().key.SerializeUncompressed()
}

func (k *KeyPair) HasPrivate() bool {
	_, ok := k.material.(*fullKey)
	return ok
}

// Returns a view of the pair which is statically known to be able to sign, or [nkey.ErrNoPrivateKey] for a public-only pair.
func (k *KeyPair) Signer() (*PrivateKey, error) {
	m, ok := k.material.(*fullKey)
	if !ok {
		return nil, nkey.ErrNoPrivateKey
	}
	return &PrivateKey{pair: k, key: m}, nil
}

// Returns a public-only copy of the pair. The public point encoding, and so the fingerprint, is unchanged.
func (k *KeyPair) Public() *KeyPair {
	if _, ok := k.material.(*publicOnly); ok {
		return k
	}
	return &KeyPair{
		material:    &publicOnly{point: *k.material.pubPoint()},
		fingerprint: k.fingerprint,
	}
}

// Checks if the two pairs hold the same public point. Point encodings (compressed or not) are not compared.
func (k *KeyPair) Equal(other *KeyPair) bool {
	if other == nil {
		return false
	}
	return k.material.pubPoint().key.IsEqual(other.material.pubPoint().key)
}

// Identifies the pair without revealing key material, so that formatting a pair with fmt is safe.
func (k *KeyPair) String() string {
	return fmt.Sprintf("%s/%s:%s", TypeName, CurveName, k.fingerprint)
}

// Same as String; covers the %#v verb.
func (k *KeyPair) GoString() string {
	return k.String()
}
