package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	body := errorStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter/esc: close")
	return overlayBoxStyle.Render(body)
}
