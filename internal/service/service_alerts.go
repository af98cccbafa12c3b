// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/store"
	"github.com/verdantlabs/wastesentry/models"
)

type alertService struct {
	feed store.AlertFeed

	logger *logger.Logger
}

func NewAlertService(feed store.AlertFeed, logger *logger.Logger) AlertService {
	return &alertService{feed: feed, logger: logger}
}

// List implements [AlertService].
func (s *alertService) List(ctx context.Context) ([]models.Alert, error) {
	alerts, err := s.feed.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("alert listing failed: %w", err)
	}
	return alerts, nil
}
