package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/ui/components"
	"github.com/abhisek/kakezan/internal/ui/layout"
	"github.com/abhisek/kakezan/internal/ui/theme"
)

const banner = `╔═╗ ╔═╗   ┬┌─ ┌─┐ ┬┌─ ┌─┐ ┌─┐ ┌─┐ ┌┐┌
║ ║ ║ ║   ├┴┐ ├─┤ ├┴┐ ├┤  ┌─┘ ├─┤ │││
╚═╝×╚═╝   ┴ ┴ ┴ ┴ ┴ ┴ └─┘ └─┘ ┴ ┴ ┘└┘`

const bannerShort = "九 × 九  か け ざ ん"

// shortHeight is the body height below which the banner and buttons
// collapse to single lines.
const shortHeight = 22

func (h *HomeScreen) View(width, height int) string {
	compact := layout.Compact(width) || height < shortHeight
	cw := components.ContentWidth(width)

	title := banner
	if compact {
		title = bannerShort
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		layout.Center(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render(title), cw),
		"",
		phraseStrip(h.phrase, cw),
		"",
		h.menu.Buttons(cw, compact),
	)
	return components.Panel(body, width, height)
}

// phraseStrip shows one kuku reading with its equation.
func phraseStrip(p catalog.Phrase, cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("きょうの くく")
	text := fmt.Sprintf("%s  %s  %d × %d = %d", label, theme.Reading.Render(p.Reading), p.Dan, p.Multiplier, p.Result)
	return lipgloss.NewStyle().
		Width(cw-2).
		Padding(0, 1).
		Align(lipgloss.Center).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Sky).
		Render(text)
}
