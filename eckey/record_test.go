package eckey

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bluesky-social/nkey/nkey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFailClosed(t *testing.T) {
	assert := assert.New(t)

	priv, err := Generate()
	require.NoError(t, err)

	rec, err := priv.Record(false)
	require.NoError(t, err)
	assert.Equal("ec", rec.Type)
	assert.Equal("secp256k1", rec.Curve)
	assert.Equal(priv.PublicKeyHex(), rec.Pub)
	assert.Equal(priv.Fingerprint(), rec.Fingerprint)
	assert.Empty(rec.Priv)
	assert.False(rec.HasPrivate())

	// default JSON form has no private field at all
	b, err := json.Marshal(priv)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.NotContains(fields, "priv")
	assert.Equal(map[string]any{
		"type":        "ec",
		"curve":       "secp256k1",
		"pub":         priv.PublicKeyHex(),
		"fingerprint": priv.Fingerprint(),
	}, fields)

	full, err := priv.Record(true)
	require.NoError(t, err)
	assert.True(full.HasPrivate())

	// public-only pairs fail explicitly rather than omitting the field
	_, err = priv.Public().Record(true)
	assert.ErrorIs(err, nkey.ErrNoPrivateKey)
}

func TestRecordRoundTrip(t *testing.T) {
	assert := assert.New(t)

	priv, err := Generate()
	require.NoError(t, err)
	msg := []byte("round trip")

	rec, err := priv.Record(true)
	require.NoError(t, err)
	b, err := json.Marshal(rec)
	require.NoError(t, err)

	parsed, err := nkey.ParseRecord(b)
	require.NoError(t, err)
	loaded, err := FromRecord(parsed)
	require.NoError(t, err)
	assert.True(loaded.HasPrivate())
	assert.Equal(priv.Fingerprint(), loaded.Fingerprint())
	assert.Equal(priv.PublicKeyHex(), loaded.PublicKeyHex())

	sig, err := loaded.Sign(msg)
	require.NoError(t, err)
	ok, err := priv.Verify(msg, nkey.Hex(sig))
	assert.NoError(err)
	assert.True(ok)

	// public record loads as public-only
	pubRec, err := priv.Record(false)
	require.NoError(t, err)
	pub, err := FromRecord(pubRec)
	require.NoError(t, err)
	assert.False(pub.HasPrivate())
	assert.True(pub.Equal(priv))
}

func TestRecordUncompressed(t *testing.T) {
	assert := assert.New(t)

	k, err := Import(Options{Priv: nkey.Hex(scalarOneHex), Pub: nkey.Hex(generatorFullHex)})
	require.NoError(t, err)

	rec, err := k.Record(true)
	require.NoError(t, err)
	assert.Equal(generatorFullHex, rec.Pub)

	// the SEC 1 structure carries the uncompressed point, so priv alone keeps the encoding
	loaded, err := FromRecord(&nkey.Record{Type: "ec", Priv: rec.Priv})
	require.NoError(t, err)
	assert.Equal(generatorFullHex, loaded.PublicKeyHex())
	assert.Equal(generatorFPFull, loaded.Fingerprint())
}

func TestFromRecordErrors(t *testing.T) {
	assert := assert.New(t)

	priv, err := Generate()
	require.NoError(t, err)
	good, err := priv.Record(true)
	require.NoError(t, err)

	for _, rec := range []*nkey.Record{
		nil,
		{Type: "ec"},
		{Type: "rsa", Pub: good.Pub},
		{Type: "ec", Curve: "P-256", Pub: good.Pub},
		{Type: "ec", Pub: good.Pub, Fingerprint: generatorFPComp},
		{Type: "ec", Pub: "zz"},
		{Type: "ec", Priv: "00"},
	} {
		_, err := FromRecord(rec)
		assert.ErrorIs(err, nkey.ErrInvalidInput, "record=%+v", rec)
	}

	// fingerprint is checked case-insensitively
	upper := *good
	upper.Fingerprint = strings.ToUpper(good.Fingerprint)
	_, err = FromRecord(&upper)
	assert.NoError(err)
}

func TestRegistered(t *testing.T) {
	assert := assert.New(t)

	assert.Contains(nkey.Types(), TypeName)

	k, err := nkey.Generate(TypeName)
	require.NoError(t, err)
	assert.Equal("ec", k.Type())
	assert.True(k.HasPrivate())

	sig, err := k.Sign([]byte("hello"))
	require.NoError(t, err)

	rec, err := k.Record(false)
	require.NoError(t, err)
	b, err := json.Marshal(rec)
	require.NoError(t, err)

	pub, err := nkey.FromRecordJSON(b)
	require.NoError(t, err)
	assert.IsType(&KeyPair{}, pub)
	assert.Equal(k.Fingerprint(), pub.Fingerprint())
	ok, err := pub.Verify([]byte("hello"), nkey.Hex(sig))
	assert.NoError(err)
	assert.True(ok)
}
