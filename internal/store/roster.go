// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"slices"

	"github.com/verdantlabs/wastesentry/models"
)

type staticRoster struct {
	workers []models.FieldWorker
}

// NewRoster creates a [Roster] seeded with the current municipal workforce
// assignments. The roster is read-only for the lifetime of the session.
func NewRoster() Roster {
	return &staticRoster{workers: []models.FieldWorker{
		{ID: "1", Name: "Thabo M.", Role: "IoT Installer", Status: models.WorkerActive, Location: "Zone A - North"},
		{ID: "2", Name: "Lerato K.", Role: "Monitor", Status: models.WorkerActive, Location: "Zone B - Central"},
		{ID: "3", Name: "Sipho Z.", Role: "Data Asst.", Status: models.WorkerOnBreak, Location: "HQ"},
		{ID: "4", Name: "Nandi P.", Role: "Maintenance", Status: models.WorkerActive, Location: "Zone A - South"},
		{ID: "5", Name: "David L.", Role: "IoT Installer", Status: models.WorkerOffline, Location: "Zone C"},
	}}
}

func (r *staticRoster) List(_ context.Context) ([]models.FieldWorker, error) {
	return slices.Clone(r.workers), nil
}
