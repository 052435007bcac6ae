package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakezan/internal/ui/theme"
)

const (
	minCardWidth = 20
	maxCardWidth = 64
)

// ContentWidth is the width shared by stacked cards inside a body of the
// given width, leaving room for the panel border and padding.
func ContentWidth(bodyWidth int) int {
	return max(minCardWidth, min(bodyWidth-6, maxCardWidth))
}

// Panel fills the body with a double-bordered box and centres content
// in it.
func Panel(content string, width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary)
	return box.Render(lipgloss.Place(width-2, height-2, lipgloss.Center, lipgloss.Center, content))
}

// Card boxes content at card width cw.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(cw - 2).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}
