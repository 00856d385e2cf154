package nkey

import (
	"encoding/json"
	"fmt"
)

// Serialized form of a key, as exchanged on the wire or kept at rest by callers.
//
// Expected to be marshalled/unmarshalled as JSON. Priv is only ever populated when private export was explicitly requested.
type Record struct {
	Type        string `json:"type"`
	Curve       string `json:"curve,omitempty"`
	Pub         string `json:"pub,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Priv        string `json:"priv,omitempty"`
}

// Parses a [Record] from JSON bytes. Does not check the contents beyond requiring a type.
func ParseRecord(b []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("%w: parsing key record JSON: %w", ErrInvalidInput, err)
	}
	if rec.Type == "" {
		return nil, fmt.Errorf("%w: key record missing type", ErrInvalidInput)
	}
	return &rec, nil
}

// True if the record carries private key material.
func (r *Record) HasPrivate() bool {
	return r.Priv != ""
}
