package nkey

import (
	"fmt"
	"sort"
	"sync"
)

// Common interface over all registered key types.
//
// Implementations are immutable once constructed, and safe for concurrent use.
type Key interface {
	// Name of the registered key type, eg "ec".
	Type() string

	// Lowercase hex SHA-256 digest of the public key bytes.
	Fingerprint() string

	// Lowercase hex encoding of the public key bytes.
	PublicKeyHex() string

	// Whether the key holds private material and can sign.
	HasPrivate() bool

	// Whether repeated signatures over the same message are guaranteed to be identical.
	HasDeterministicSig() bool

	// Signs the message, returning a hex-encoded signature. Returns [ErrNoPrivateKey] for public-only keys.
	Sign(msg []byte) (string, error)

	// Checks a signature. Returns false (and no error) for a well-formed signature which does not match; an error only for structurally invalid input.
	Verify(msg []byte, sig Input) (bool, error)

	// Exports the key as a [Record]. Private material is only included when includePrivate is true.
	Record(includePrivate bool) (*Record, error)
}

// Registration entry for a key type.
type Type struct {
	Name       string
	Generate   func() (Key, error)
	FromRecord func(rec *Record) (Key, error)
}

var (
	typesMu sync.RWMutex
	types   = make(map[string]Type)
)

// Makes a key type available by name. Intended to be called from the init function of the package implementing the type.
//
// Panics if the entry is incomplete, or if the name is already registered.
func Register(t Type) {
	typesMu.Lock()
	defer typesMu.Unlock()
	if t.Name == "" || t.Generate == nil || t.FromRecord == nil {
		panic("nkey: Register called with incomplete key type")
	}
	if _, dup := types[t.Name]; dup {
		panic("nkey: Register called twice for key type " + t.Name)
	}
	types[t.Name] = t
}

// Returns the registered key type with the given name.
func Lookup(name string) (Type, error) {
	typesMu.RLock()
	defer typesMu.RUnlock()
	t, ok := types[name]
	if !ok {
		return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}

// Sorted names of all registered key types.
func Types() []string {
	typesMu.RLock()
	defer typesMu.RUnlock()
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Creates a new random key of the named type.
func Generate(name string) (Key, error) {
	t, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return t.Generate()
}

// Loads a key from a [Record], dispatching on the record's type field.
func FromRecord(rec *Record) (Key, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil key record", ErrInvalidInput)
	}
	t, err := Lookup(rec.Type)
	if err != nil {
		return nil, err
	}
	return t.FromRecord(rec)
}

// Parses JSON record bytes and loads the key, see [FromRecord].
func FromRecordJSON(b []byte) (Key, error) {
	rec, err := ParseRecord(b)
	if err != nil {
		return nil, err
	}
	return FromRecord(rec)
}
