// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/verdantlabs/wastesentry/internal/audit"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/models"
)

// auditService is the read-only view over the custody audit chain.
type auditService struct {
	chain *audit.Chain

	logger *logger.Logger
}

func NewAuditService(chain *audit.Chain, logger *logger.Logger) AuditService {
	return &auditService{chain: chain, logger: logger}
}

// Blocks implements [AuditService].
func (s *auditService) Blocks(_ context.Context) ([]models.AuditBlock, error) {
	return s.chain.Blocks(), nil
}

// Validate implements [AuditService]. A broken chain is logged and reported;
// no corrective action is defined.
func (s *auditService) Validate(ctx context.Context) (models.ChainStatus, error) {
	status := models.ChainStatus{
		Valid:  s.chain.Validate(),
		Length: s.chain.Length(),
	}

	if !status.Valid {
		logger.FromContext(ctx).Error().Int("length", status.Length).Msg("audit chain integrity broken")
	}
	return status, nil
}
