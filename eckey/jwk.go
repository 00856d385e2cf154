package eckey

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/bluesky-social/nkey/nkey"

	secp256k1 "gitlab.com/yawning/secp256k1-voi"
	secp256k1secec "gitlab.com/yawning/secp256k1-voi/secec"
)

// Representation of a public JSON Web Key (JWK), as relevant to this key type.
//
// Expected to be marshalled/unmarshalled as JSON.
type JWK struct {
	KeyType string  `json:"kty"`
	Curve   string  `json:"crv"`
	X       string  `json:"x"` // base64url, no padding
	Y       string  `json:"y"` // base64url, no padding
	Use     string  `json:"use,omitempty"`
	KeyID   *string `json:"kid,omitempty"`
}

// Exports the public key as a JWK.
func (k *KeyPair) JWK() (*JWK, error) {
	raw := k.UncompressedBytes()
	if len(raw) != 65 {
		return nil, fmt.Errorf("unexpected K-256 bytes size")
	}
	return &JWK{
		KeyType: "EC",
		Curve:   CurveName,
		X:       base64.RawURLEncoding.EncodeToString(raw[1:33]),
		Y:       base64.RawURLEncoding.EncodeToString(raw[33:65]),
	}, nil
}

// Loads a public-only [KeyPair] from JWK (serialized as JSON bytes).
func ParsePublicJWKBytes(jwkBytes []byte) (*KeyPair, error) {
	var jwk JWK
	if err := json.Unmarshal(jwkBytes, &jwk); err != nil {
		return nil, fmt.Errorf("%w: parsing JWK JSON: %w", nkey.ErrInvalidInput, err)
	}
	return ParsePublicJWK(jwk)
}

// Loads a public-only [KeyPair] from JWK struct. The pair holds the compressed encoding, so it has the same fingerprint as a generated pair with the same point.
func ParsePublicJWK(jwk JWK) (*KeyPair, error) {
	if jwk.KeyType != "EC" {
		return nil, fmt.Errorf("%w: unsupported JWK key type: %s", nkey.ErrInvalidInput, jwk.KeyType)
	}
	if jwk.Curve != CurveName {
		return nil, fmt.Errorf("%w: unsupported JWK cryptography: %s", nkey.ErrInvalidInput, jwk.Curve)
	}

	// base64url with no padding
	xbuf, err := base64.RawURLEncoding.DecodeString(jwk.X)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWK base64 encoding: %w", nkey.ErrInvalidInput, err)
	}
	ybuf, err := base64.RawURLEncoding.DecodeString(jwk.Y)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWK base64 encoding: %w", nkey.ErrInvalidInput, err)
	}
	if len(xbuf) != 32 || len(ybuf) != 32 {
		return nil, fmt.Errorf("%w: invalid K-256 coordinates", nkey.ErrInvalidInput)
	}

	xarr := ([32]byte)(xbuf[:32])
	yarr := ([32]byte)(ybuf[:32])
	p, err := secp256k1.NewPointFromCoords(&xarr, &yarr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid K-256 coordinates: %w", nkey.ErrInvalidInput, err)
	}
	pubK, err := secp256k1secec.NewPublicKeyFromPoint(p)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid K-256/secp256k1 public key: %w", nkey.ErrInvalidInput, err)
	}
	return Import(Options{Pub: nkey.Raw(pubK.Point().CompressedBytes())})
}
