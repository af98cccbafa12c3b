// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/store"
	"github.com/verdantlabs/wastesentry/models"
)

type rosterService struct {
	roster store.Roster

	logger *logger.Logger
}

func NewRosterService(roster store.Roster, logger *logger.Logger) RosterService {
	return &rosterService{roster: roster, logger: logger}
}

// List implements [RosterService].
func (s *rosterService) List(ctx context.Context) ([]models.FieldWorker, error) {
	workers, err := s.roster.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("roster listing failed: %w", err)
	}
	return workers, nil
}
