// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/verdantlabs/wastesentry/models"
)

type memoryAlertFeed struct {
	mu     sync.RWMutex
	alerts []models.Alert
}

// NewAlertFeed creates an [AlertFeed] pre-seeded with the standing incident
// notices from earlier in the shift, newest-first.
func NewAlertFeed() AlertFeed {
	today := time.Now().Truncate(24 * time.Hour)

	return &memoryAlertFeed{alerts: []models.Alert{
		{
			ID:        "init-2",
			Type:      models.AlertTypeRoad,
			Severity:  models.SeverityHigh,
			Message:   "Blocked pathway reported",
			Location:  "Sector 7 Access Road",
			Timestamp: today.Add(9*time.Hour + 15*time.Minute),
		},
		{
			ID:        "init-1",
			Type:      models.AlertTypeWaste,
			Severity:  models.SeverityMedium,
			Message:   "Bin overflow detected near School Zone",
			Location:  "Camera 04 - School St",
			Timestamp: today.Add(8*time.Hour + 30*time.Minute),
		},
	}}
}

// Add implements [AlertFeed]. Alerts are immutable once added.
func (f *memoryAlertFeed) Add(_ context.Context, alert models.Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.alerts = append([]models.Alert{alert}, f.alerts...)
	return nil
}

func (f *memoryAlertFeed) List(_ context.Context) ([]models.Alert, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return slices.Clone(f.alerts), nil
}
