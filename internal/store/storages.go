// SPDX-License-Identifier: Apache-2.0

package store

// Storages aggregates the in-memory session stores.
type Storages struct {
	EvidenceVault EvidenceVault
	AlertFeed     AlertFeed
	Roster        Roster
}

// NewStorages constructs all session stores with their seeds.
func NewStorages() Storages {
	return Storages{
		EvidenceVault: NewEvidenceVault(),
		AlertFeed:     NewAlertFeed(),
		Roster:        NewRoster(),
	}
}
