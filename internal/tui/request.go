package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// requestModel is the one-field prompt asking the operator why the evidence
// should be decrypted. The requester is the logged-in operator.
type requestModel struct {
	evidenceID string
	reason     textinput.Model
	submitting bool
	errMsg     string
}

func newRequestModel(evidenceID string) requestModel {
	reason := textinput.New()
	reason.Placeholder = "reason for access"
	reason.CharLimit = 120
	reason.Width = 48
	reason.Focus()

	return requestModel{evidenceID: evidenceID, reason: reason}
}

func (m requestModel) View() string {
	var b strings.Builder
	b.WriteString("Evidence  " + m.evidenceID + "\n\n")
	b.WriteString("Reason    [")
	b.WriteString(m.reason.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Submitting...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("REQUEST ACCESS", strings.TrimRight(b.String(), "\n"), "enter: submit │ esc: cancel")
}
