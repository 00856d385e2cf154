package eckey

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/bluesky-social/nkey/nkey"
)

// Exports the pair as a [nkey.Record].
//
// Private material is only included when includePrivate is true, as the hex of the SEC 1 DER encoding (see [PrivateKey.SEC1]). Asking for it from a public-only pair fails with [nkey.ErrNoPrivateKey] instead of silently leaving it out.
func (k *KeyPair) Record(includePrivate bool) (*nkey.Record, error) {
	rec := &nkey.Record{
		Type:        TypeName,
		Curve:       CurveName,
		Pub:         k.PublicKeyHex(),
		Fingerprint: k.fingerprint,
	}
	if !includePrivate {
		return rec, nil
	}
	signer, err := k.Signer()
	if err != nil {
		return nil, fmt.Errorf("exporting private key: %w", err)
	}
	der, err := signer.SEC1()
	if err != nil {
		return nil, fmt.Errorf("exporting private key: %w", err)
	}
	rec.Priv = hex.EncodeToString(der)
	return rec, nil
}

// Marshals the public record. Private material is never included; use [KeyPair.Record] to export it.
func (k *KeyPair) MarshalJSON() ([]byte, error) {
	rec, err := k.Record(false)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}
