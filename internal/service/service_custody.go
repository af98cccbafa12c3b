// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/verdantlabs/wastesentry/internal/audit"
	"github.com/verdantlabs/wastesentry/internal/config"
	"github.com/verdantlabs/wastesentry/internal/crypto"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/store"
	"github.com/verdantlabs/wastesentry/internal/utils"
	"github.com/verdantlabs/wastesentry/models"
)

// custodyService is the concrete implementation of CustodyService.
//
// Transitions are serialized by a single mutex: the custody table is small
// and the single-writer assumption keeps the read-modify-write on the vault
// and the audit append atomic with respect to each other.
type custodyService struct {
	vault  store.EvidenceVault
	chain  *audit.Chain
	sealer crypto.Sealer

	// allowRerequest re-opens RequestAccess for DENIED items. Off by
	// default; DENIED is terminal in the original workflow.
	allowRerequest bool

	// verifyLatency is the simulated confirmation delay before an integrity
	// verification commits.
	verifyLatency time.Duration

	mu     sync.Mutex
	logger *logger.Logger
}

// NewCustodyService constructs a CustodyService over the given vault, audit
// chain and sealer.
func NewCustodyService(vault store.EvidenceVault, chain *audit.Chain, sealer crypto.Sealer, cfg config.Capture, logger *logger.Logger) CustodyService {
	return &custodyService{
		vault:          vault,
		chain:          chain,
		sealer:         sealer,
		allowRerequest: cfg.AllowRerequest,
		verifyLatency:  cfg.VerifyLatency,
		logger:         logger,
	}
}

// RequestAccess implements [CustodyService].
func (c *custodyService) RequestAccess(ctx context.Context, req models.AccessRequest) (models.EvidenceItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, err := c.vault.Get(ctx, req.EvidenceID)
	if err != nil {
		return models.EvidenceItem{}, fmt.Errorf("access request lookup failed: %w", err)
	}

	allowed := item.Status == models.StatusLocked ||
		(c.allowRerequest && item.Status == models.StatusDenied)
	if !allowed {
		return models.EvidenceItem{}, c.rejectTransition(ctx, "request-access", item)
	}

	item.Status = models.StatusRequested
	item.RequesterName = req.Requester
	item.RequestReason = req.Reason

	return c.commit(ctx, item, models.ActionAccessRequest, req.Requester)
}

// Approve implements [CustodyService]. Admin capability required.
func (c *custodyService) Approve(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	return c.adminTransition(ctx, decision, "approve",
		models.StatusRequested, models.ActionAccessApprove,
		func(item *models.EvidenceItem) { item.Status = models.StatusApproved })
}

// Deny implements [CustodyService]. Admin capability required. DENIED is
// terminal unless re-request is enabled.
func (c *custodyService) Deny(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	return c.adminTransition(ctx, decision, "deny",
		models.StatusRequested, models.ActionAccessDeny,
		func(item *models.EvidenceItem) { item.Status = models.StatusDenied })
}

// Unlock implements [CustodyService].
func (c *custodyService) Unlock(ctx context.Context, evidenceID string) (models.EvidenceItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, err := c.vault.Get(ctx, evidenceID)
	if err != nil {
		return models.EvidenceItem{}, fmt.Errorf("unlock lookup failed: %w", err)
	}

	// idempotent: viewing an already unlocked item is not a transition
	if item.Status == models.StatusUnlocked {
		return item, nil
	}
	if item.Status != models.StatusApproved {
		return models.EvidenceItem{}, c.rejectTransition(ctx, "unlock", item)
	}

	key, err := c.sealer.IssueKey()
	if err != nil {
		return models.EvidenceItem{}, fmt.Errorf("decryption key issue failed: %w", err)
	}

	item.Status = models.StatusUnlocked
	item.DecryptionKey = key

	return c.commit(ctx, item, models.ActionEvidenceUnlock, c.actor(ctx, item.RequesterName))
}

// Revoke implements [CustodyService]. Admin capability required. The
// decryption key is cleared; a subsequent access request is valid again.
func (c *custodyService) Revoke(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	return c.adminTransition(ctx, decision, "revoke",
		models.StatusUnlocked, models.ActionAccessRevoke,
		func(item *models.EvidenceItem) {
			item.Status = models.StatusLocked
			item.DecryptionKey = ""
		})
}

// VerifyIntegrity implements [CustodyService].
//
// The check recomputes the content checksum recorded at capture time;
// a mismatch reports ErrChecksumMismatch and leaves the item unchecked.
// The confirmation waits out the simulated latency before committing, so
// the verified flag appears on the item only after the delay. Calling it on
// an already verified item is a no-op: no status change, no audit block.
func (c *custodyService) VerifyIntegrity(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	if err := c.requireAdmin(ctx); err != nil {
		return models.EvidenceItem{}, err
	}

	item, err := c.vault.Get(ctx, decision.EvidenceID)
	if err != nil {
		return models.EvidenceItem{}, fmt.Errorf("integrity verification lookup failed: %w", err)
	}
	if item.IntegrityStatus == models.IntegrityVerified {
		return sanitize(item), nil
	}

	// simulated verification latency, outside the transition lock so other
	// custody actions are not blocked while it runs
	if c.verifyLatency > 0 {
		select {
		case <-ctx.Done():
			return models.EvidenceItem{}, ctx.Err()
		case <-time.After(c.verifyLatency):
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	item, err = c.vault.Get(ctx, decision.EvidenceID)
	if err != nil {
		return models.EvidenceItem{}, fmt.Errorf("integrity verification lookup failed: %w", err)
	}
	if item.IntegrityStatus == models.IntegrityVerified {
		return sanitize(item), nil
	}
	if c.sealer.Fingerprint(item.OriginalData) != item.Checksum {
		return models.EvidenceItem{}, ErrChecksumMismatch
	}

	item.IntegrityStatus = models.IntegrityVerified
	return c.commit(ctx, item, models.ActionIntegrityVerify, c.actor(ctx, decision.Admin))
}

// Inspect implements [CustodyService].
func (c *custodyService) Inspect(ctx context.Context, evidenceID string) (models.EvidenceItem, error) {
	item, err := c.vault.Get(ctx, evidenceID)
	if err != nil {
		return models.EvidenceItem{}, fmt.Errorf("evidence lookup failed: %w", err)
	}
	return sanitize(item), nil
}

// List implements [CustodyService].
func (c *custodyService) List(ctx context.Context) ([]models.EvidenceItem, error) {
	items, err := c.vault.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("evidence listing failed: %w", err)
	}
	for i := range items {
		items[i] = sanitize(items[i])
	}
	return items, nil
}

// adminTransition runs one admin-gated transition: capability check, state
// precondition, mutation, vault update and audit append under the lock.
func (c *custodyService) adminTransition(
	ctx context.Context,
	decision models.CustodyDecision,
	name string,
	precondition models.EvidenceStatus,
	action string,
	mutate func(*models.EvidenceItem),
) (models.EvidenceItem, error) {
	if err := c.requireAdmin(ctx); err != nil {
		return models.EvidenceItem{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	item, err := c.vault.Get(ctx, decision.EvidenceID)
	if err != nil {
		return models.EvidenceItem{}, fmt.Errorf("%s lookup failed: %w", name, err)
	}
	if item.Status != precondition {
		return models.EvidenceItem{}, c.rejectTransition(ctx, name, item)
	}

	mutate(&item)
	return c.commit(ctx, item, action, c.actor(ctx, decision.Admin))
}

// commit persists the mutated item and appends the matching audit block.
// Caller holds the transition lock.
func (c *custodyService) commit(ctx context.Context, item models.EvidenceItem, action, actor string) (models.EvidenceItem, error) {
	log := logger.FromContext(ctx)

	if err := c.vault.Update(ctx, item); err != nil {
		return models.EvidenceItem{}, fmt.Errorf("custody update failed: %w", err)
	}

	block := c.chain.Append(action, actor, item.ID)
	log.Info().
		Str("evidenceID", item.ID).
		Str("action", action).
		Str("actor", actor).
		Int("blockIndex", block.Index).
		Str("status", string(item.Status)).
		Msg("custody transition applied")

	return sanitize(item), nil
}

func (c *custodyService) rejectTransition(ctx context.Context, name string, item models.EvidenceItem) error {
	logger.FromContext(ctx).Warn().
		Str("evidenceID", item.ID).
		Str("transition", name).
		Str("status", string(item.Status)).
		Msg("custody transition rejected")
	return ErrInvalidTransition
}

// requireAdmin rejects the call when the context carries an operator
// without the admin capability. Contexts without an operator (internal
// callers, already authorized upstream) pass.
func (c *custodyService) requireAdmin(ctx context.Context) error {
	user, ok := utils.GetUserFromContext(ctx)
	if ok && user.Role != models.RoleAdmin {
		return ErrAdminRequired
	}
	return nil
}

// actor resolves the audit actor: the authenticated operator when present,
// the fallback name otherwise, SYSTEM as a last resort.
func (c *custodyService) actor(ctx context.Context, fallback string) string {
	if user, ok := utils.GetUserFromContext(ctx); ok && user.Login != "" {
		return user.Login
	}
	if fallback != "" {
		return fallback
	}
	return models.SystemActor
}

// sanitize strips material that must not leave the vault while an item is
// locked: the raw frame and any decryption key.
func sanitize(item models.EvidenceItem) models.EvidenceItem {
	if item.Status != models.StatusUnlocked {
		item.OriginalData = nil
		item.DecryptionKey = ""
	}
	return item
}
