package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kakezan/internal/router"
	"github.com/abhisek/kakezan/internal/screen"
	"github.com/abhisek/kakezan/internal/screens/home"
)

type stubScreen struct {
	escapes int
	keepEsc bool
	closed  bool
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "esc" {
		s.escapes++
	}
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "stub" }
func (s *stubScreen) Title() string        { return "Stub" }
func (s *stubScreen) Status() string       { return "○ 2  × 1" }
func (s *stubScreen) HandlesEscape() bool  { return s.keepEsc }
func (s *stubScreen) Close()               { s.closed = true }

func esc() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEscape} }

func TestEscapePopsUnlessHandled(t *testing.T) {
	m := newAppModel(Options{})
	stub := &stubScreen{keepEsc: true}
	m.router.Push(stub)

	_, cmd := m.Update(esc())
	assert.Equal(t, 1, stub.escapes, "screen should receive Esc")
	if cmd != nil {
		_, isPop := cmd().(router.PopScreenMsg)
		assert.False(t, isPop)
	}

	stub.keepEsc = false
	_, cmd = m.Update(esc())
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(t, router.PopScreenMsg{}, msg)

	m.Update(msg)
	assert.Equal(t, 1, m.router.Depth())
	assert.True(t, stub.closed, "popped screen should be closed")

	// Esc on the home screen does nothing.
	_, cmd = m.Update(esc())
	assert.Nil(t, cmd)
}

func TestQuitClosesScreens(t *testing.T) {
	m := newAppModel(Options{})
	stub := &stubScreen{}
	m.router.Push(stub)

	_, cmd := m.Update(home.QuitMsg{})
	require.NotNil(t, cmd)
	assert.True(t, stub.closed)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCtrlCClosesScreens(t *testing.T) {
	m := newAppModel(Options{})
	stub := &stubScreen{}
	m.router.Push(stub)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.True(t, stub.closed)
}

func TestFooterHintsFallback(t *testing.T) {
	m := newAppModel(Options{})
	hints := m.footerHints(m.router.Active())
	require.NotEmpty(t, hints)
	assert.Equal(t, "けってい", hints[1].Description)

	stub := &stubScreen{}
	m.router.Push(stub)
	hints = m.footerHints(stub)
	assert.Equal(t, "もどる", hints[0].Description)
}
