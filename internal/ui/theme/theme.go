// Package theme holds the palette and shared styles. Colours are chosen
// to read well on dark terminals.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#6D5BD0") // indigo
	Secondary = lipgloss.Color("#2BB3A3") // mint
	Accent    = lipgloss.Color("#F08A3C") // persimmon
	Gold      = lipgloss.Color("#F5C542")
	Sky       = lipgloss.Color("#4CC9F0")

	Success = lipgloss.Color("#3FBF6E")
	Error   = lipgloss.Color("#E5484D")

	Text    = lipgloss.Color("#F4F4F5")
	TextDim = lipgloss.Color("#9CA3AF")
	Ink     = lipgloss.Color("#111827")
	BgCard  = lipgloss.Color("#1F2433")
	Border  = lipgloss.Color("#3A4256")
)

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

var (
	Title   = fg(Primary).Bold(true).Align(lipgloss.Center)
	Body    = fg(Text)
	Hint    = fg(TextDim).Italic(true)
	Prompt  = fg(Gold).Bold(true)
	Reading = fg(Sky).Bold(true)

	Selected  = fg(Primary).Bold(true)
	Correct   = fg(Success).Bold(true)
	Incorrect = fg(Error).Bold(true)
)

// Times-table grid.
var (
	Cell       = fg(Text).Width(5).Align(lipgloss.Right)
	HeaderCell = Cell.Foreground(TextDim)
	HoleCell   = Cell.Foreground(Accent).Bold(true)
)

var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)
