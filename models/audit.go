package models

import "time"

// Custody actions recorded in the audit chain.
const (
	ActionGenesis         = "GENESIS_BLOCK"
	ActionEvidenceCapture = "EVIDENCE_CAPTURE"
	ActionAccessRequest   = "ACCESS_REQUEST"
	ActionAccessApprove   = "ACCESS_APPROVE"
	ActionAccessDeny      = "ACCESS_DENY"
	ActionEvidenceUnlock  = "EVIDENCE_UNLOCK"
	ActionAccessRevoke    = "ACCESS_REVOKE"
	ActionIntegrityVerify = "INTEGRITY_VERIFY"
)

// SystemActor is the actor recorded on blocks created by the service itself
// rather than an operator (genesis, automatic captures).
const SystemActor = "SYSTEM"

// AuditBlock is one entry of the hash-linked custody log.
//
// Blocks are append-only: never mutated, reordered, or deleted. Each block's
// Hash covers its own fields plus PreviousHash, so a broken link between two
// blocks is detectable by walking the chain.
type AuditBlock struct {
	// Index is monotonic and starts at 0 for the genesis block.
	Index      int       `json:"index"`
	Timestamp  time.Time `json:"timestamp"`
	Action     string    `json:"action"`
	Actor      string    `json:"actor"`
	ResourceID string    `json:"resourceId"`

	// PreviousHash is the Hash of the preceding block; "0" on genesis.
	PreviousHash string `json:"previousHash"`

	// Hash is the hex-encoded SHA-256 of
	// index ∥ timestamp ∥ action ∥ actor ∥ resourceId ∥ previousHash.
	Hash string `json:"hash"`
}
