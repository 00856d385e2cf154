package nkey

import (
	"encoding/hex"
	"fmt"
)

// Key material or signature bytes, as accepted at public entry points. Either [Raw] bytes or a [Hex] string.
//
// Implementations decode once with [ToBytes]; nothing past the entry point handles hex.
type Input interface {
	isInput()
}

// Raw binary input, used as-is.
type Raw []byte

// Hex-encoded input. Upper and lower case are both accepted.
type Hex string

func (Raw) isInput() {}
func (Hex) isInput() {}

// Normalizes an [Input] to raw bytes. A nil input, empty [Raw], or empty [Hex] returns nil with no error, meaning "absent".
func ToBytes(in Input) ([]byte, error) {
	switch v := in.(type) {
	case nil:
		return nil, nil
	case Raw:
		if len(v) == 0 {
			return nil, nil
		}
		return []byte(v), nil
	case Hex:
		if v == "" {
			return nil, nil
		}
		b, err := hex.DecodeString(string(v))
		if err != nil {
			return nil, fmt.Errorf("decoding hex: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported input type: %T", in)
	}
}
