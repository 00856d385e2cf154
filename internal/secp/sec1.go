package secp

import (
	"encoding/asn1"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const ecPrivKeyVersion = 1

// OID for the secp256k1 named curve, per SEC 2.
var oidNamedCurveSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}

var ErrInvalidSEC1 = errors.New("malformed SEC1 private key")

// ASN.1 structure of an elliptic curve private key, per RFC 5915 / SEC 1.
type ecPrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey     asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

// Encodes the private scalar as a SEC 1 ECPrivateKey DER structure, with the named curve and the given public point encoding.
func MarshalPrivateKey(priv *secp256k1.PrivateKey, pub []byte) ([]byte, error) {
	scalar := priv.Serialize()
	defer clear(scalar)
	return asn1.Marshal(ecPrivateKey{
		Version:       ecPrivKeyVersion,
		PrivateKey:    scalar,
		NamedCurveOID: oidNamedCurveSecp256k1,
		PublicKey: asn1.BitString{
			Bytes:     pub,
			BitLength: 8 * len(pub),
		},
	})
}

// Parses a SEC 1 ECPrivateKey DER structure. Returns the scalar, and the embedded public point encoding if there is one (nil otherwise).
func ParsePrivateKey(der []byte) (*secp256k1.PrivateKey, []byte, error) {
	var k ecPrivateKey
	rest, err := asn1.Unmarshal(der, &k)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidSEC1, err)
	}
	if len(rest) != 0 {
		return nil, nil, fmt.Errorf("%w: trailing data", ErrInvalidSEC1)
	}
	if k.Version != ecPrivKeyVersion {
		return nil, nil, fmt.Errorf("%w: unknown version %d", ErrInvalidSEC1, k.Version)
	}
	if len(k.NamedCurveOID) != 0 && !k.NamedCurveOID.Equal(oidNamedCurveSecp256k1) {
		return nil, nil, fmt.Errorf("%w: unsupported curve %s", ErrInvalidSEC1, k.NamedCurveOID)
	}
	if len(k.PrivateKey) > ScalarLen {
		return nil, nil, fmt.Errorf("%w: private key too long", ErrInvalidSEC1)
	}

	// some encoders strip leading zero bytes
	scalar := make([]byte, ScalarLen)
	copy(scalar[ScalarLen-len(k.PrivateKey):], k.PrivateKey)
	defer clear(scalar)
	clear(k.PrivateKey)

	priv, err := ParseScalar(scalar)
	if err != nil {
		return nil, nil, err
	}
	var pub []byte
	if k.PublicKey.BitLength > 0 {
		pub = k.PublicKey.RightAlign()
	}
	return priv, pub, nil
}
