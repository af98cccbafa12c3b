// SPDX-License-Identifier: Apache-2.0

// Package service implements the application core: the login gate, the live
// feed lifecycle, the capture pipeline, the evidence custody state machine,
// the autonomous sentry loop, and read access to the audit chain, alert feed
// and workforce roster.
package service

import (
	"context"

	"github.com/verdantlabs/wastesentry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the simulated authentication gate.
type AuthService interface {
	// Login accepts any non-empty username and password after a fixed
	// simulated delay and issues a signed session token carrying the
	// operator's role capability. There is no credential store.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a compact session token string and returns the
	// parsed token with the operator login and role populated.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// AuthorizeFeedStop checks the secondary PIN confirmation required to
	// tear down the live feed. Returns ErrInvalidPIN on mismatch.
	AuthorizeFeedStop(ctx context.Context, pin string) error
}

// FeedService owns the live feed lifecycle and the static image override.
type FeedService interface {
	// Start acquires the simulated camera and begins producing frames.
	Start(ctx context.Context) error

	// Stop tears the feed down after the PIN confirmation passes. Stopping
	// the feed also disarms the sentry loop.
	Stop(ctx context.Context, pin string) error

	// UploadFrame replaces the current frame source with a single uploaded
	// image, releasing the camera if it was active.
	UploadFrame(ctx context.Context, data []byte, source string) error

	// CurrentFrame returns the latest frame from the active source.
	CurrentFrame() (models.Frame, error)

	// Active reports whether any frame source is currently available.
	Active() bool
}

// CaptureService runs the capture pipeline. At most one pipeline execution
// may be in flight system-wide.
type CaptureService interface {
	// Capture turns a raw frame into a vaulted evidence item, or a no-op
	// when the detection gate does not pass. A pre-computed analysis result
	// may be supplied to avoid re-invoking the scene analyzer.
	// Returns ErrCaptureInProgress when another run is in flight.
	Capture(ctx context.Context, frame models.Frame, precomputed *models.AnalysisResult) (models.CaptureOutcome, error)

	// InProgress reports whether a pipeline run is currently executing.
	InProgress() bool
}

// CustodyService is the evidence custody state machine. Every applied
// transition appends exactly one audit block; invalid transitions return
// ErrInvalidTransition and leave the item untouched.
type CustodyService interface {
	RequestAccess(ctx context.Context, req models.AccessRequest) (models.EvidenceItem, error)
	Approve(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error)
	Deny(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error)

	// Unlock issues a decryption key for an approved item. Unlocking an
	// already unlocked item is idempotent.
	Unlock(ctx context.Context, evidenceID string) (models.EvidenceItem, error)

	// Revoke returns an unlocked item to LOCKED and clears its key.
	Revoke(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error)

	// VerifyIntegrity marks the item's integrity as verified after a
	// simulated confirmation latency. Monotonic and idempotent.
	VerifyIntegrity(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error)

	// Inspect returns one item. Raw frame data and the decryption key are
	// stripped unless the item is UNLOCKED.
	Inspect(ctx context.Context, evidenceID string) (models.EvidenceItem, error)

	// List returns all items newest-first, stripped the same way as Inspect.
	List(ctx context.Context) ([]models.EvidenceItem, error)
}

// SentryService is the autonomous periodic capture controller.
type SentryService interface {
	// Start arms the scanning loop. Each tick grabs the current frame,
	// analyzes it, and on an active dumping detection disarms the loop and
	// hands the frame plus result to the capture pipeline.
	Start(ctx context.Context)

	// Stop deterministically cancels the scan timer and waits for any
	// in-flight tick to finish.
	Stop()

	// Status reports the controller state and tick count.
	Status() models.SentryStatus
}

// AuditService exposes read access to the custody audit chain.
type AuditService interface {
	Blocks(ctx context.Context) ([]models.AuditBlock, error)

	// Validate walks the chain links and reports the diagnostic. A broken
	// chain is reported, never auto-repaired.
	Validate(ctx context.Context) (models.ChainStatus, error)
}

// AppInfoService reports application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AlertService exposes the dashboard notification feed, newest-first.
type AlertService interface {
	List(ctx context.Context) ([]models.Alert, error)
}

// RosterService lists the municipal field workforce.
type RosterService interface {
	List(ctx context.Context) ([]models.FieldWorker, error)
}
