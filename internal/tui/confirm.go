package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Revoke access to \"" + m.message + "\"?\n"
	content += "The decryption key will be discarded.\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
