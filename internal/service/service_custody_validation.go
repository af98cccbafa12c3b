// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/verdantlabs/wastesentry/internal/validators"
	"github.com/verdantlabs/wastesentry/models"
)

// CustodyValidationService wraps a CustodyService with payload validation so
// malformed input never reaches the state machine.
type CustodyValidationService struct {
	inner     CustodyService
	validator validators.Validator
}

func NewCustodyValidationService(inner CustodyService) CustodyService {
	return &CustodyValidationService{
		inner:     inner,
		validator: validators.NewCustodyValidator(),
	}
}

func (v *CustodyValidationService) RequestAccess(ctx context.Context, req models.AccessRequest) (models.EvidenceItem, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.EvidenceItem{}, fmt.Errorf("access request validation failed: %w", err)
	}
	return v.inner.RequestAccess(ctx, req)
}

func (v *CustodyValidationService) Approve(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	if err := v.validator.Validate(ctx, decision); err != nil {
		return models.EvidenceItem{}, fmt.Errorf("approve validation failed: %w", err)
	}
	return v.inner.Approve(ctx, decision)
}

func (v *CustodyValidationService) Deny(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	if err := v.validator.Validate(ctx, decision); err != nil {
		return models.EvidenceItem{}, fmt.Errorf("deny validation failed: %w", err)
	}
	return v.inner.Deny(ctx, decision)
}

func (v *CustodyValidationService) Unlock(ctx context.Context, evidenceID string) (models.EvidenceItem, error) {
	if err := v.validator.Validate(ctx, models.CustodyDecision{EvidenceID: evidenceID}); err != nil {
		return models.EvidenceItem{}, fmt.Errorf("unlock validation failed: %w", err)
	}
	return v.inner.Unlock(ctx, evidenceID)
}

func (v *CustodyValidationService) Revoke(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	if err := v.validator.Validate(ctx, decision); err != nil {
		return models.EvidenceItem{}, fmt.Errorf("revoke validation failed: %w", err)
	}
	return v.inner.Revoke(ctx, decision)
}

func (v *CustodyValidationService) VerifyIntegrity(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	if err := v.validator.Validate(ctx, decision); err != nil {
		return models.EvidenceItem{}, fmt.Errorf("integrity verification validation failed: %w", err)
	}
	return v.inner.VerifyIntegrity(ctx, decision)
}

func (v *CustodyValidationService) Inspect(ctx context.Context, evidenceID string) (models.EvidenceItem, error) {
	if err := v.validator.Validate(ctx, models.CustodyDecision{EvidenceID: evidenceID}); err != nil {
		return models.EvidenceItem{}, fmt.Errorf("inspect validation failed: %w", err)
	}
	return v.inner.Inspect(ctx, evidenceID)
}

func (v *CustodyValidationService) List(ctx context.Context) ([]models.EvidenceItem, error) {
	return v.inner.List(ctx)
}
