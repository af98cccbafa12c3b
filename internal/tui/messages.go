package tui

import (
	"github.com/verdantlabs/wastesentry/models"
)

type loginDoneMsg struct {
	session models.User
	err     error
}

type evidenceLoadedMsg struct {
	items []models.EvidenceItem
	err   error
}

type evidenceUpdatedMsg struct {
	item   models.EvidenceItem
	action string
	err    error
}

type auditLoadedMsg struct {
	blocks []models.AuditBlock
	err    error
}

type chainValidatedMsg struct {
	status models.ChainStatus
	err    error
}

type alertsLoadedMsg struct {
	alerts []models.Alert
	err    error
}

type rosterLoadedMsg struct {
	workers []models.FieldWorker
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
