package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/verdantlabs/wastesentry/models"
)

type listModel struct {
	items   []models.EvidenceItem
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	lastErr error
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.EvidenceItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.EvidenceItem{}, false
	}
	return m.items[m.idx], true
}

func statusIcon(s models.EvidenceStatus) string {
	switch s {
	case models.StatusLocked:
		return "[L]"
	case models.StatusRequested:
		return "[R]"
	case models.StatusApproved:
		return "[A]"
	case models.StatusUnlocked:
		return "[U]"
	case models.StatusDenied:
		return "[D]"
	default:
		return "[?]"
	}
}

func (m listModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading evidence...\n")
	} else if len(m.items) == 0 {
		b.WriteString("No evidence captured yet\n")
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s %s  %s  waste %d%%  %s\n",
				cursor,
				statusIcon(item.Status),
				item.ID,
				item.Timestamp.Format("2006-01-02 15:04"),
				item.AIAnalysis.WasteLevel,
				fitText(item.Location, 24),
			))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.lastErr != nil {
		b.WriteString("\nError: " + humanizeServerUnavailableError(m.lastErr) + "\n")
	}

	return renderPage("EVIDENCE VAULT",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ r: refresh │ g: audit │ w: alerts │ f: roster │ o: logout │ q: quit")
}
