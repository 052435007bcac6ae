package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chosen string

func item(label string, disabled bool) MenuItem {
	return MenuItem{Label: label, Disabled: disabled, Action: func() tea.Cmd {
		return func() tea.Msg { return chosen(label) }
	}}
}

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{item("a", true), item("b", false), item("c", true), item("d", false)})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected, "no enabled item below")
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)
}

func TestMenuChoose(t *testing.T) {
	m := NewMenu([]MenuItem{item("a", false), item("b", true), item("c", false)})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, chosen("a"), cmd())

	m, cmd = m.Update(press('3'))
	require.NotNil(t, cmd)
	assert.Equal(t, chosen("c"), cmd())
	assert.Equal(t, 2, m.Selected)

	_, cmd = m.Update(press('2'))
	assert.Nil(t, cmd, "disabled items cannot be chosen")
	_, cmd = m.Update(press('9'))
	assert.Nil(t, cmd)
}

func TestMenuRender(t *testing.T) {
	m := NewMenu([]MenuItem{item("たしざん", false), item("ひきざん", true)})
	assert.Contains(t, m.View(), "▸ たしざん")
	assert.Contains(t, m.Buttons(40, false), "▸ たしざん")
	assert.Contains(t, m.Buttons(40, true), "ひきざん")
}
