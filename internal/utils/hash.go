package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex computes the SHA-256 digest of data and returns it hex-encoded.
//
// This is the real hashing primitive behind the audit chain and the sealer's
// content fingerprints (the only genuine cryptography in the system).
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SHA256HexString is a convenience wrapper over [SHA256Hex] for string input.
func SHA256HexString(data string) string {
	return SHA256Hex([]byte(data))
}
