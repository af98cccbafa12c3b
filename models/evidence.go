package models

import "time"

// EvidenceStatus is the custody state of an evidence item.
// Legal transitions: LOCKED → REQUESTED → {APPROVED | DENIED};
// APPROVED → UNLOCKED; UNLOCKED → LOCKED (revoke).
type EvidenceStatus string

const (
	StatusLocked    EvidenceStatus = "LOCKED"
	StatusRequested EvidenceStatus = "REQUESTED"
	StatusApproved  EvidenceStatus = "APPROVED"
	StatusUnlocked  EvidenceStatus = "UNLOCKED"
	StatusDenied    EvidenceStatus = "DENIED"
)

// IntegrityStatus reports whether an admin has run the integrity check on an
// evidence item. The value is monotonic: once verified it never reverts.
type IntegrityStatus string

const (
	IntegrityUnchecked IntegrityStatus = "unchecked"
	IntegrityVerified  IntegrityStatus = "verified"
)

// EvidenceItem is one captured incident record held in the evidence vault.
//
// Items are created exclusively by the capture pipeline, mutated only through
// the custody transitions, and never deleted for the lifetime of the session.
type EvidenceItem struct {
	// ID uniquely identifies the item, generated at capture time.
	ID string `json:"id"`

	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`

	// EncryptedData is the opaque ciphertext token produced by the sealer.
	// The vault stores only this placeholder; it is not real ciphertext.
	EncryptedData string `json:"encryptedData"`

	// Checksum is the hex SHA-256 of the raw frame, recorded at capture
	// time and recomputed by the integrity check.
	Checksum string `json:"checksum"`

	// OriginalData is the raw captured frame. It is retained in the record
	// regardless of lock state (faithful to the simulated vault) but must
	// only be handed out while the item is UNLOCKED.
	OriginalData []byte `json:"-"`

	// BlurredPreview is the anonymized thumbnail, safe to display in any
	// custody state.
	BlurredPreview []byte `json:"blurredPreview"`

	Status EvidenceStatus `json:"status"`

	// DecryptionKey is present only while the item is UNLOCKED and is
	// cleared on revoke.
	DecryptionKey string `json:"decryptionKey,omitempty"`

	// AIAnalysis is the scene analyzer output at capture time. Immutable
	// once set.
	AIAnalysis AnalysisResult `json:"aiAnalysis"`

	// RequesterName and RequestReason are populated when the item enters
	// REQUESTED and identify the pending access request.
	RequesterName string `json:"requesterName,omitempty"`
	RequestReason string `json:"requestReason,omitempty"`

	IntegrityStatus IntegrityStatus `json:"integrityStatus"`
}
