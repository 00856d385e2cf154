package eckey

import (
	"fmt"
	"strings"

	"github.com/bluesky-social/nkey/nkey"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"
)

const (
	// multicodec secp256k1-pub, code 0xE7, varint bytes: [0xE7, 0x01]
	multicodecSecp256k1Pub = 0xE7
	// multicodec secp256k1-priv, code 0x1301, varint bytes: [0x81, 0x26]
	multicodecSecp256k1Priv = 0x1301

	didKeyPrefix = "did:key:"
)

// Returns a multibase string encoding of the public key, including a multicodec indicator and compressed curve bytes serialization.
func (k *KeyPair) Multibase() string {
	return encodeMultikey(multicodecSecp256k1Pub, k.CompressedBytes())
}

// Returns a did:key string encoding of the public key:
//
//   - compressed / compacted binary representation
//   - prefix with the secp256k1-pub multicodec bytes
//   - encode bytes with base58btc
//   - add "z" prefix to indicate encoding
//   - add "did:key:" prefix
func (k *KeyPair) DIDKey() string {
	return didKeyPrefix + k.Multibase()
}

// Multibase string encoding of the private key, including a multicodec indicator.
func (p *PrivateKey) Multibase() string {
	return encodeMultikey(multicodecSecp256k1Priv, p.Bytes())
}

// Loads a public-only [KeyPair] from a multibase string, as returned by [KeyPair.Multibase]. The pair holds the compressed encoding.
func ParsePublicMultibase(encoded string) (*KeyPair, error) {
	data, err := decodeMultikey(encoded, multicodecSecp256k1Pub)
	if err != nil {
		return nil, err
	}
	return Import(Options{Pub: nkey.Raw(data)})
}

// Loads a public-only [KeyPair] from a did:key string, as returned by [KeyPair.DIDKey].
func ParsePublicDIDKey(didKey string) (*KeyPair, error) {
	if !strings.HasPrefix(didKey, didKeyPrefix) {
		return nil, fmt.Errorf("%w: did:key string does not start with 'did:key:' prefix", nkey.ErrInvalidInput)
	}
	return ParsePublicMultibase(didKey[len(didKeyPrefix):])
}

// Loads a [KeyPair] from a private key multibase string, as returned by [PrivateKey.Multibase].
func ParsePrivateMultibase(encoded string) (*KeyPair, error) {
	data, err := decodeMultikey(encoded, multicodecSecp256k1Priv)
	if err != nil {
		return nil, err
	}
	defer clear(data)
	return Import(Options{Priv: nkey.Raw(data)})
}

func encodeMultikey(code uint64, kbytes []byte) string {
	buf := append(varint.ToUvarint(code), kbytes...)
	return multibase.MustNewEncoder(multibase.Base58BTC).Encode(buf)
}

func decodeMultikey(encoded string, code uint64) ([]byte, error) {
	enc, data, err := multibase.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid multibase: %w", nkey.ErrInvalidInput, err)
	}
	if enc != multibase.Base58BTC {
		return nil, fmt.Errorf("%w: expected base58btc multibase encoding", nkey.ErrInvalidInput)
	}
	got, n, err := varint.FromUvarint(data)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid multicodec prefix: %w", nkey.ErrInvalidInput, err)
	}
	if got != code {
		return nil, fmt.Errorf("%w: unexpected multicodec 0x%x", nkey.ErrInvalidInput, got)
	}
	return data[n:], nil
}
