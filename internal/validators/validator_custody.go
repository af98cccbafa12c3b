// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"strings"

	"github.com/verdantlabs/wastesentry/models"
)

// Field names accepted for scoped validation.
const (
	FieldEvidenceID = "evidence_id"
	FieldRequester  = "requester"
	FieldReason     = "reason"
	FieldAdmin      = "admin"
)

// CustodyValidator implements the Validator interface for the custody
// workflow payloads: AccessRequest and CustodyDecision. Value and pointer
// receivers are both accepted.
type CustodyValidator struct {
}

// NewCustodyValidator constructs a new CustodyValidator
// and returns it as the Validator interface.
func NewCustodyValidator() Validator {
	return &CustodyValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *CustodyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccessRequest:
		return v.validateAccessRequest(ctx, value, fields...)
	case *models.AccessRequest:
		return v.validateAccessRequest(ctx, *value, fields...)

	case models.CustodyDecision:
		return v.validateCustodyDecision(ctx, value, fields...)
	case *models.CustodyDecision:
		return v.validateCustodyDecision(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CustodyValidator) validateAccessRequest(_ context.Context, req models.AccessRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEvidenceID, FieldRequester, FieldReason}
	}

	for _, field := range fields {
		switch field {
		case FieldEvidenceID:
			if strings.TrimSpace(req.EvidenceID) == "" {
				return ErrEmptyEvidenceID
			}
		case FieldRequester:
			if strings.TrimSpace(req.Requester) == "" {
				return ErrEmptyRequester
			}
		case FieldReason:
			if strings.TrimSpace(req.Reason) == "" {
				return ErrEmptyReason
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateCustodyDecision(_ context.Context, decision models.CustodyDecision, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEvidenceID}
	}

	for _, field := range fields {
		switch field {
		case FieldEvidenceID:
			if strings.TrimSpace(decision.EvidenceID) == "" {
				return ErrEmptyEvidenceID
			}
		case FieldAdmin:
			if strings.TrimSpace(decision.Admin) == "" {
				return ErrEmptyAdmin
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
