// SPDX-License-Identifier: Apache-2.0

package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
