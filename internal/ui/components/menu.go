package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakezan/internal/ui/theme"
)

// MenuItem is one choice. Action runs when the item is chosen.
type MenuItem struct {
	Label    string
	Note     string
	Action   func() tea.Cmd
	Disabled bool
}

var menuKeys = struct {
	Prev, Next, Choose key.Binding
}{
	Prev:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "うえ")),
	Next:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "した")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "けってい")),
}

// Menu is a vertical list that skips disabled items. Digits 1-9 choose
// the matching item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(+1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// move steps the cursor by dir to the next enabled item, staying put
// when there is none.
func (m *Menu) move(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(kmsg, menuKeys.Prev):
		m.move(-1)
	case key.Matches(kmsg, menuKeys.Next):
		m.move(+1)
	case key.Matches(kmsg, menuKeys.Choose):
		return m, m.choose(m.Selected)
	default:
		if s := kmsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(m.Items) {
				return m, m.choose(i)
			}
		}
	}
	return m, nil
}

func (m *Menu) choose(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Disabled {
		return nil
	}
	m.Selected = i
	if m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

// View renders one line per item with a cursor on the selection.
func (m Menu) View() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	off := lipgloss.NewStyle().Foreground(theme.Border)

	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			lines[i] = off.Render("    " + item.Label)
		case i == m.Selected:
			lines[i] = theme.Selected.Render("  ▸ " + item.Label)
		default:
			lines[i] = theme.Body.Render("    " + item.Label)
		}
		if item.Note != "" {
			lines[i] += "  " + dim.Render(item.Note)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

const buttonWidth = 28

// Buttons renders the items as a centred stack of fixed-width buttons.
// Flat drops the borders for short terminals.
func (m Menu) Buttons(width int, flat bool) string {
	base := lipgloss.NewStyle().Width(buttonWidth).Align(lipgloss.Center).Padding(0, 1)
	if !flat {
		base = base.Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border)
	}
	chosen := base.Bold(true).
		Foreground(theme.Ink).
		Background(theme.Gold).
		BorderForeground(theme.Gold)

	buttons := make([]string, len(m.Items))
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			buttons[i] = base.Foreground(theme.TextDim).Render(item.Label)
		case i == m.Selected:
			buttons[i] = chosen.Render("▸ " + item.Label)
		default:
			buttons[i] = base.Foreground(theme.Text).Render(item.Label)
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, buttons...))
}
