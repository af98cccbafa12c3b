package tui

import (
	"fmt"
	"strings"

	"github.com/verdantlabs/wastesentry/models"
)

type detailModel struct {
	item   models.EvidenceItem
	admin  bool
	status string
}

func (m detailModel) View() string {
	item := m.item
	var b strings.Builder

	b.WriteString(fmt.Sprintf("ID          %s\n", item.ID))
	b.WriteString(fmt.Sprintf("Captured    %s\n", item.Timestamp.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Location    %s\n", valueOrDash(item.Location)))
	b.WriteString(fmt.Sprintf("Status      %s %s\n", statusIcon(item.Status), item.Status))
	b.WriteString(fmt.Sprintf("Integrity   %s\n", item.IntegrityStatus))

	if item.RequesterName != "" {
		b.WriteString(fmt.Sprintf("Requester   %s\n", item.RequesterName))
		b.WriteString(fmt.Sprintf("Reason      %s\n", valueOrDash(item.RequestReason)))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Waste level %d%%   Safety %d\n", item.AIAnalysis.WasteLevel, item.AIAnalysis.SafetyScore))
	b.WriteString(fmt.Sprintf("Hazards     %s\n", valueOrDash(strings.Join(item.AIAnalysis.Hazards, ", "))))
	if item.AIAnalysis.IsDumpingDetected {
		b.WriteString("Dumping     detected in progress\n")
	}
	b.WriteString(fmt.Sprintf("Summary     %s\n", fitText(valueOrDash(item.AIAnalysis.Description), 96)))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Sealed data %s\n", fitText(item.EncryptedData, 48)))
	if item.Status == models.StatusUnlocked && item.DecryptionKey != "" {
		b.WriteString(fmt.Sprintf("Key         %s\n", item.DecryptionKey))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("EVIDENCE "+item.ID, strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

// hotKeys lists only the custody actions that can succeed from the item's
// current state with the session's capabilities.
func (m detailModel) hotKeys() string {
	parts := []string{}

	switch m.item.Status {
	case models.StatusLocked:
		parts = append(parts, "n: request access")
	case models.StatusDenied:
		parts = append(parts, "n: request again")
	case models.StatusRequested:
		if m.admin {
			parts = append(parts, "a: approve", "d: deny")
		}
	case models.StatusApproved:
		parts = append(parts, "u: unlock")
	case models.StatusUnlocked:
		if m.admin {
			parts = append(parts, "x: revoke")
		}
		parts = append(parts, "y: copy key")
	}

	if m.admin {
		parts = append(parts, "v: verify")
	}
	parts = append(parts, "c: copy id", "esc: back")

	return strings.Join(parts, " │ ")
}
