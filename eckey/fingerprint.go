package eckey

import (
	"encoding/hex"

	sha256 "github.com/minio/sha256-simd"
)

// Lowercase hex SHA-256 digest of the public point bytes, exactly as held.
func fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:])
}
