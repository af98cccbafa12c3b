// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the evidence sealing primitives.
//
// Only the hashing is real cryptography (SHA-256 content fingerprints for
// the integrity check). The "encryption" is an explicit placeholder: the sealer
// produces an opaque token that looks like a ciphertext blob but carries no
// cryptographic guarantee. The simulation is intentional and must not be
// silently upgraded; see [NewSealer].
package crypto

// SealedData is the result of sealing a raw evidence frame.
type SealedData struct {
	// Ciphertext is the placeholder blob token stored in the vault.
	Ciphertext string

	// Key is the simulated decryption key issued to the requester when the
	// item is unlocked.
	Key string
}

// Sealer turns raw evidence bytes into a vault-ready placeholder ciphertext
// and computes real content fingerprints.
type Sealer interface {
	// Seal produces the placeholder ciphertext token and a fresh simulated
	// decryption key for the given raw data.
	Seal(data []byte) (SealedData, error)

	// IssueKey generates a fresh simulated decryption key. Called when an
	// approved evidence item is unlocked; the key sealed at capture time is
	// discarded and never reused.
	IssueKey() (string, error)

	// Fingerprint returns the hex-encoded SHA-256 digest of data. Recorded
	// on every item at capture time and recomputed by the integrity check.
	Fingerprint(data []byte) string
}
