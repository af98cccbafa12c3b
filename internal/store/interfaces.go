// SPDX-License-Identifier: Apache-2.0

// Package store holds the in-memory session state: the evidence vault, the
// alert feed and the workforce roster. Nothing is persisted; every store is
// seeded at construction and discarded when the process exits.
package store

import (
	"context"

	"github.com/verdantlabs/wastesentry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EvidenceVault is the in-memory evidence repository. Listings are
// newest-first. Implementations must be safe for concurrent use.
type EvidenceVault interface {
	// Add prepends a freshly captured item to the vault.
	Add(ctx context.Context, item models.EvidenceItem) error

	// Get returns the item with the given ID or ErrEvidenceNotFound.
	Get(ctx context.Context, id string) (models.EvidenceItem, error)

	// Update replaces the stored item with the same ID, keeping its position.
	// Returns ErrEvidenceNotFound if no such item exists.
	Update(ctx context.Context, item models.EvidenceItem) error

	// List returns a newest-first snapshot of all items.
	List(ctx context.Context) ([]models.EvidenceItem, error)
}

// AlertFeed is the append-only dashboard notification feed, newest-first.
type AlertFeed interface {
	Add(ctx context.Context, alert models.Alert) error
	List(ctx context.Context) ([]models.Alert, error)
}

// Roster lists the municipal field workforce.
type Roster interface {
	List(ctx context.Context) ([]models.FieldWorker, error)
}
