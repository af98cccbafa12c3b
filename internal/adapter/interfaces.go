// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the wastesentry server.
//
// The primary abstraction is [ServerAdapter], which decouples the console
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/verdantlabs/wastesentry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// wastesentry server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates the operator. On success it stores the returned
	// bearer token via SetToken and returns the session subject with the
	// role the server granted.
	Login(ctx context.Context, user models.User) (models.User, error)

	// ServerVersion fetches the server's version string.
	ServerVersion(ctx context.Context) (string, error)

	// ListEvidence retrieves all evidence items, newest-first. Raw frame
	// data and decryption keys are present only on UNLOCKED items.
	ListEvidence(ctx context.Context) ([]models.EvidenceItem, error)

	// InspectEvidence retrieves a single evidence item by ID.
	InspectEvidence(ctx context.Context, evidenceID string) (models.EvidenceItem, error)

	// RequestAccess submits an access request for a LOCKED item.
	RequestAccess(ctx context.Context, req models.AccessRequest) (models.EvidenceItem, error)

	// Approve, Deny, Revoke and VerifyIntegrity run the admin custody
	// transitions. The server rejects them for non-admin sessions.
	Approve(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error)
	Deny(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error)
	Revoke(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error)
	VerifyIntegrity(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error)

	// Unlock decrypts an APPROVED item and returns it with its key.
	Unlock(ctx context.Context, evidenceID string) (models.EvidenceItem, error)

	// AuditBlocks retrieves the full custody audit chain.
	AuditBlocks(ctx context.Context) ([]models.AuditBlock, error)

	// ValidateChain asks the server to walk the chain links.
	ValidateChain(ctx context.Context) (models.ChainStatus, error)

	// ListAlerts retrieves the dashboard notification feed, newest-first.
	ListAlerts(ctx context.Context) ([]models.Alert, error)

	// ListRoster retrieves the municipal field workforce.
	ListRoster(ctx context.Context) ([]models.FieldWorker, error)
}
