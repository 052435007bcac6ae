// Package layout draws the chrome shared by every screen: a title bar,
// the active screen's body and a key hint bar.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakezan/internal/ui/theme"
)

// Terminals smaller than this get a resize notice instead of the app.
const (
	MinWidth  = 60
	MinHeight = 20
)

// Screens narrower than compactWidth drop decorations.
const compactWidth = 80

const brand = "九九 かけざん"

// KeyHint is one "key action" pair in the hint bar.
type KeyHint struct {
	Key         string
	Description string
}

// Compact reports whether a body of this width should use the dense layout.
func Compact(width int) bool {
	return width < compactWidth
}

// Frame is the chrome around one screen for the current terminal size.
type Frame struct {
	Width, Height int
	Title         string
	Status        string
	Hints         []KeyHint
}

// Fits reports whether the terminal is large enough to draw the frame.
func (f Frame) Fits() bool {
	return f.Width >= MinWidth && f.Height >= MinHeight
}

// BodyHeight is the number of rows left for the screen once the bars
// are drawn.
func (f Frame) BodyHeight() int {
	return max(f.Height-lipgloss.Height(f.titleBar())-lipgloss.Height(f.hintBar()), 0)
}

// Render wraps body in the title and hint bars. When the terminal is too
// small it returns the resize notice instead.
func (f Frame) Render(body string) string {
	if !f.Fits() {
		return f.resizeNotice()
	}
	body = lipgloss.NewStyle().Width(f.Width).Height(f.BodyHeight()).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, f.titleBar(), body, f.hintBar())
}

func (f Frame) bar() lipgloss.Style {
	return lipgloss.NewStyle().
		Width(f.Width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// titleBar puts the brand left, the screen title centred and the status
// (usually the running tally) right.
func (f Frame) titleBar() string {
	brandCell := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" " + brand)
	titleCell := lipgloss.NewStyle().Foreground(theme.Text).Render(f.Title)
	statusCell := lipgloss.NewStyle().Foreground(theme.Accent).Render(f.Status + " ")

	inner := max(f.Width-4, 0)
	third := inner / 3
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(third, lipgloss.Left, brandCell),
		lipgloss.PlaceHorizontal(inner-2*third, lipgloss.Center, titleCell),
		lipgloss.PlaceHorizontal(third, lipgloss.Right, statusCell),
	)
	return f.bar().Render(row)
}

func (f Frame) hintBar() string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, h := range f.Hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(key.Render(h.Key) + " " + desc.Render(h.Description))
	}
	return f.bar().Render(" " + b.String())
}

func (f Frame) resizeNotice() string {
	return lipgloss.Place(f.Width, f.Height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(fmt.Sprintf(
			"がめんが ちいさすぎます\n\n%d x %d いじょうに ひろげてください\n\nいま: %d x %d",
			MinWidth, MinHeight, f.Width, f.Height,
		)))
}

// Center places s in the middle of a width-wide line.
func Center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
