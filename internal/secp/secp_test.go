package secp

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/asn1"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"
	"testing/iotest"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	curveOrderHex    = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	generatorCompHex = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
)

func scalarOne() []byte {
	b := make([]byte, ScalarLen)
	b[ScalarLen-1] = 1
	return b
}

func TestValidScalar(t *testing.T) {
	assert := assert.New(t)

	order, _ := hex.DecodeString(curveOrderHex)
	orderMinusOne := new(big.Int).Sub(new(big.Int).SetBytes(order), big.NewInt(1)).FillBytes(make([]byte, 32))

	assert.True(ValidScalar(scalarOne()))
	assert.True(ValidScalar(orderMinusOne))
	assert.False(ValidScalar(make([]byte, 32)), "zero")
	assert.False(ValidScalar(order), "n")
	assert.False(ValidScalar(bytes.Repeat([]byte{0xff}, 32)), "above n")
	assert.False(ValidScalar([]byte{1}), "short")
	assert.False(ValidScalar(append(scalarOne(), 0)), "long")

	_, err := ParseScalar(order)
	assert.ErrorIs(err, ErrInvalidScalar)
	_, err = ParseScalar([]byte{1, 2, 3})
	assert.ErrorIs(err, ErrInvalidScalar)
}

func TestGenerateScalarRejection(t *testing.T) {
	assert := assert.New(t)

	// first candidate overflows, second is zero, third is 1
	var src []byte
	src = append(src, bytes.Repeat([]byte{0xff}, 32)...)
	src = append(src, make([]byte, 32)...)
	src = append(src, scalarOne()...)

	priv, err := GenerateScalar(bytes.NewReader(src))
	require.NoError(t, err)
	assert.Equal(scalarOne(), priv.Serialize())
	assert.Equal(generatorCompHex, hex.EncodeToString(DerivePublic(priv).SerializeCompressed()))
}

func TestGenerateScalarReaderFailure(t *testing.T) {
	boom := errors.New("entropy gone")
	_, err := GenerateScalar(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)

	// short read is a failure too, not a retry
	_, err = GenerateScalar(bytes.NewReader(make([]byte, 10)))
	assert.Error(t, err)
}

func TestDeriveDeterministic(t *testing.T) {
	assert := assert.New(t)

	priv, err := GenerateScalar(rand.Reader)
	require.NoError(t, err)
	a := DerivePublic(priv).SerializeCompressed()
	b := DerivePublic(priv).SerializeCompressed()
	assert.Equal(a, b)
	assert.Equal(33, len(a))

	pub, err := ParsePoint(a)
	assert.NoError(err)
	assert.True(pub.IsEqual(DerivePublic(priv)))

	_, err = ParsePoint([]byte{0x02, 0x01})
	assert.ErrorIs(err, ErrInvalidPoint)
}

func TestSignVerify(t *testing.T) {
	assert := assert.New(t)

	priv, err := GenerateScalar(rand.Reader)
	require.NoError(t, err)
	pub := DerivePublic(priv)
	digest := sha256.Sum256([]byte("test-message"))

	sig, err := Sign(priv, digest[:])
	require.NoError(t, err)
	assert.True(IsLowS(sig))

	der := EncodeDER(sig)
	decoded, err := DecodeDER(der)
	require.NoError(t, err)
	assert.True(decoded.IsEqual(sig))

	ok, err := Verify(pub, digest[:], decoded)
	assert.NoError(err)
	assert.True(ok)

	other := sha256.Sum256([]byte("other-message"))
	ok, err = Verify(pub, other[:], decoded)
	assert.NoError(err)
	assert.False(ok)

	_, err = Sign(priv, make([]byte, 33))
	assert.ErrorIs(err, ErrDigestTooLong)
	_, err = Verify(pub, make([]byte, 33), decoded)
	assert.ErrorIs(err, ErrDigestTooLong)
}

func TestHighS(t *testing.T) {
	assert := assert.New(t)

	priv, err := GenerateScalar(rand.Reader)
	require.NoError(t, err)
	pub := DerivePublic(priv)
	digest := sha256.Sum256([]byte("malleable"))

	sig, err := Sign(priv, digest[:])
	require.NoError(t, err)

	r, s := sig.R(), sig.S()
	s.Negate()
	high := ecdsa.NewSignature(&r, &s)
	assert.False(IsLowS(high))

	// mathematically valid, but rejected
	ok, err := Verify(pub, digest[:], high)
	assert.NoError(err)
	assert.False(ok)

	norm := Normalize(high)
	assert.True(IsLowS(norm))
	assert.True(norm.IsEqual(sig))
	ok, err = Verify(pub, digest[:], norm)
	assert.NoError(err)
	assert.True(ok)

	// the DER codec accepts high-S on the way in
	rb, sb := r.Bytes(), s.Bytes()
	der, err := asn1.Marshal(struct{ R, S *big.Int }{
		R: new(big.Int).SetBytes(rb[:]),
		S: new(big.Int).SetBytes(sb[:]),
	})
	require.NoError(t, err)
	decoded, err := DecodeDER(der)
	require.NoError(t, err)
	assert.False(IsLowS(decoded))
	assert.True(Normalize(decoded).IsEqual(sig))
}

func TestDecodeDERMalformed(t *testing.T) {
	for _, raw := range [][]byte{
		nil,
		{0x30},
		{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01},
		bytes.Repeat([]byte{0xaa}, 70),
		{0x30, 0x06, 0x02, 0x01, 0x00, 0x02, 0x01, 0x01}, // r == 0
	} {
		_, err := DecodeDER(raw)
		assert.ErrorIs(t, err, ErrInvalidDER, "input=%x", raw)
	}
}

func TestSEC1(t *testing.T) {
	assert := assert.New(t)

	priv, err := ParseScalar(scalarOne())
	require.NoError(t, err)
	pub := DerivePublic(priv).SerializeCompressed()

	der, err := MarshalPrivateKey(priv, pub)
	require.NoError(t, err)
	assert.Equal(
		"3054020101"+
			"0420"+hex.EncodeToString(scalarOne())+
			"a00706052b8104000a"+
			"a124032200"+generatorCompHex,
		hex.EncodeToString(der))

	parsed, embedded, err := ParsePrivateKey(der)
	require.NoError(t, err)
	assert.Equal(priv.Serialize(), parsed.Serialize())
	assert.Equal(pub, embedded)

	_, _, err = ParsePrivateKey(der[:len(der)-1])
	assert.ErrorIs(err, ErrInvalidSEC1)
	_, _, err = ParsePrivateKey(append(der, 0x00))
	assert.ErrorIs(err, ErrInvalidSEC1)
}

func TestSEC1ShortScalar(t *testing.T) {
	assert := assert.New(t)

	// leading zeros stripped, no public key
	der, err := asn1.Marshal(ecPrivateKey{
		Version:       1,
		PrivateKey:    []byte{0x01},
		NamedCurveOID: oidNamedCurveSecp256k1,
	})
	require.NoError(t, err)

	priv, embedded, err := ParsePrivateKey(der)
	require.NoError(t, err)
	assert.Nil(embedded)
	assert.Equal(scalarOne(), priv.Serialize())

	der, err = asn1.Marshal(ecPrivateKey{
		Version:       1,
		PrivateKey:    scalarOne(),
		NamedCurveOID: asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7},
	})
	require.NoError(t, err)
	_, _, err = ParsePrivateKey(der)
	assert.ErrorIs(err, ErrInvalidSEC1)
}
