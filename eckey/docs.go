// The "ec" key type: secp256k1 key pairs behind the [nkey.Key] interface.
//
// A [KeyPair] always holds a public point, and optionally the private scalar. Pairs are created once, either randomly with [Generate] or from existing material with [Import] and [FromRecord], and are immutable afterwards. They are safe for concurrent use.
//
// Conventions, which are relied on by other implementations of this key type:
//
//   - the message passed to Sign and Verify is used directly as the ECDSA digest. Callers are responsible for hashing. Messages longer than 32 bytes are refused instead of being silently truncated.
//   - signatures are DER-encoded, always "low-S", and exchanged as lowercase hex. Verification rejects high-S signatures.
//   - signatures are not guaranteed to be reproducible across calls; see [KeyPair.HasDeterministicSig].
//   - the fingerprint is the lowercase hex SHA-256 digest of the public point bytes, in whichever encoding (compressed or uncompressed) the pair holds. Points derived from a private scalar use the compressed encoding.
//   - private material is only ever exported when explicitly requested; JSON marshalling of a [KeyPair] never includes it.
//
// Importing this package registers the type with [nkey.Register].
package eckey
