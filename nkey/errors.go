package nkey

import "errors"

var (
	// Neither private nor public key material was supplied, or the supplied material could not be used.
	ErrInvalidInput = errors.New("nkey: invalid key input")

	// A signature was requested from a key which only holds public material.
	ErrNoPrivateKey = errors.New("nkey: no private key")

	// Signature bytes could not be decoded (bad hex, or malformed DER). Distinct from a signature which decodes but does not verify.
	ErrInvalidSignatureEncoding = errors.New("nkey: invalid signature encoding")

	// The entropy source failed while generating a key. Not retried.
	ErrRandomnessFailure = errors.New("nkey: randomness source failure")

	// No key type is registered under the requested name.
	ErrUnknownType = errors.New("nkey: unknown key type")
)
