// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/verdantlabs/wastesentry/models"
)

type memoryEvidenceVault struct {
	mu    sync.RWMutex
	items []models.EvidenceItem
}

// NewEvidenceVault creates an empty in-memory [EvidenceVault].
func NewEvidenceVault() EvidenceVault {
	return &memoryEvidenceVault{}
}

// Add implements [EvidenceVault]. New items go to the front so List stays
// newest-first without sorting.
func (v *memoryEvidenceVault) Add(_ context.Context, item models.EvidenceItem) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.items = append([]models.EvidenceItem{item}, v.items...)
	return nil
}

func (v *memoryEvidenceVault) Get(_ context.Context, id string) (models.EvidenceItem, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, item := range v.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.EvidenceItem{}, ErrEvidenceNotFound
}

func (v *memoryEvidenceVault) Update(_ context.Context, item models.EvidenceItem) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.items {
		if v.items[i].ID == item.ID {
			v.items[i] = item
			return nil
		}
	}
	return ErrEvidenceNotFound
}

func (v *memoryEvidenceVault) List(_ context.Context) ([]models.EvidenceItem, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return slices.Clone(v.items), nil
}
