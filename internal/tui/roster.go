package tui

import (
	"fmt"
	"strings"

	"github.com/verdantlabs/wastesentry/models"
)

type rosterModel struct {
	workers []models.FieldWorker
	loading bool
	lastErr error
}

func workerMark(status string) string {
	switch status {
	case models.WorkerActive:
		return "●"
	case models.WorkerOnBreak:
		return "◐"
	default:
		return "○"
	}
}

func (m rosterModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading roster...\n")
	} else if len(m.workers) == 0 {
		b.WriteString("No field workers registered\n")
	} else {
		for _, worker := range m.workers {
			b.WriteString(fmt.Sprintf("%s %-12s %-14s %-9s %s\n",
				workerMark(worker.Status),
				fitText(worker.Name, 12),
				fitText(worker.Role, 14),
				worker.Status,
				worker.Location,
			))
		}
	}

	if m.lastErr != nil {
		b.WriteString("\nError: " + humanizeServerUnavailableError(m.lastErr) + "\n")
	}

	return renderPage("FIELD WORKFORCE", strings.TrimRight(b.String(), "\n"), "r: refresh │ esc: back")
}
