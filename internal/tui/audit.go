package tui

import (
	"fmt"
	"strings"

	"github.com/verdantlabs/wastesentry/models"
)

type auditModel struct {
	blocks  []models.AuditBlock
	chain   *models.ChainStatus
	loading bool
	lastErr error
}

func (m auditModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading audit chain...\n")
	} else if len(m.blocks) == 0 {
		b.WriteString("Audit chain is empty\n")
	} else {
		// Newest last on the wire; show newest first like the alert feed.
		for i := len(m.blocks) - 1; i >= 0; i-- {
			block := m.blocks[i]
			b.WriteString(fmt.Sprintf("#%-3d %s  %-17s %-12s %s\n",
				block.Index,
				block.Timestamp.Format("15:04:05"),
				block.Action,
				fitText(block.Actor, 12),
				valueOrDash(block.ResourceID),
			))
		}
	}

	if m.chain != nil {
		if m.chain.Valid {
			b.WriteString(fmt.Sprintf("\nChain valid, %d blocks\n", m.chain.Length))
		} else {
			b.WriteString(errorStyle.Render(fmt.Sprintf("\nCHAIN BROKEN (%d blocks)", m.chain.Length)) + "\n")
		}
	}
	if m.lastErr != nil {
		b.WriteString("\nError: " + humanizeServerUnavailableError(m.lastErr) + "\n")
	}

	return renderPage("CUSTODY AUDIT CHAIN",
		strings.TrimRight(b.String(), "\n"),
		"v: validate chain │ r: refresh │ esc: back")
}
