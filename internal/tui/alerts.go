package tui

import (
	"fmt"
	"strings"

	"github.com/verdantlabs/wastesentry/models"
)

type alertsModel struct {
	alerts  []models.Alert
	loading bool
	lastErr error
}

func severityTag(severity string) string {
	switch severity {
	case models.SeverityHigh:
		return "[!!!]"
	case models.SeverityMedium:
		return "[!! ]"
	default:
		return "[!  ]"
	}
}

func (m alertsModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading alerts...\n")
	} else if len(m.alerts) == 0 {
		b.WriteString("No alerts\n")
	} else {
		for _, alert := range m.alerts {
			b.WriteString(fmt.Sprintf("%s %s %-7s %s\n",
				severityTag(alert.Severity),
				alert.Timestamp.Format("15:04:05"),
				alert.Type,
				fitText(alert.Message, 64),
			))
			if alert.Location != "" {
				b.WriteString("      at " + alert.Location + "\n")
			}
		}
	}

	if m.lastErr != nil {
		b.WriteString("\nError: " + humanizeServerUnavailableError(m.lastErr) + "\n")
	}

	return renderPage("ALERTS", strings.TrimRight(b.String(), "\n"), "r: refresh │ esc: back")
}
