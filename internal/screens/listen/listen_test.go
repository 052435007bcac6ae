package listen

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kakezan/internal/playback"
)

// holdClips blocks every clip until its context ends, so no step ever
// completes and the state stays where the keys put it.
type holdClips struct{}

func (holdClips) Play(ctx context.Context, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

func newScreen(t *testing.T) *Screen {
	t.Helper()
	e := playback.New(holdClips{}, nil, playback.DefaultSettings())
	s := New(e)
	t.Cleanup(s.Close)
	return s
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func press(s *Screen, msgs ...tea.KeyPressMsg) {
	for _, m := range msgs {
		s.Update(m)
	}
}

func TestPickerSelectsDan(t *testing.T) {
	s := newScreen(t)
	assert.False(t, s.HandlesEscape())
	assert.Contains(t, s.View(80, 30), "だんを えらんでね")
	assert.Empty(t, s.Status())

	press(s, specialKey(tea.KeyDown), specialKey(tea.KeyDown), specialKey(tea.KeyEnter))

	require.Equal(t, playback.PhasePlaying, s.state.Phase)
	assert.Equal(t, 3, s.state.Dan)
	assert.True(t, s.HandlesEscape())
	assert.Contains(t, s.Status(), "▶")

	view := s.View(80, 30)
	assert.Contains(t, view, "さんいち が さん")
	assert.Contains(t, view, "3 × 1 = 3")
}

func TestPlayingKeys(t *testing.T) {
	s := newScreen(t)
	press(s, keyPress('2')) // number keys jump straight to a dan

	require.Equal(t, 2, s.state.Dan)

	press(s, keyPress('n'))
	assert.Equal(t, 1, s.state.Index)

	press(s, specialKey(tea.KeyRight))
	assert.Equal(t, 2, s.state.Index)

	press(s, keyPress('r'))
	assert.NoError(t, s.err)
	assert.Equal(t, 2, s.state.Index)

	press(s, specialKey(tea.KeySpace))
	assert.False(t, s.state.AutoPlay)
	assert.Contains(t, s.Status(), "⏸")
	assert.Contains(t, s.View(80, 30), "ていし")

	press(s, specialKey(tea.KeySpace))
	assert.True(t, s.state.AutoPlay)

	press(s, specialKey(tea.KeyEscape))
	assert.Equal(t, playback.PhaseSelecting, s.state.Phase)
	assert.False(t, s.HandlesEscape())
}

func TestRateKeysClamp(t *testing.T) {
	s := newScreen(t)
	press(s, keyPress('1'))
	start := s.state.Settings.Rate

	press(s, keyPress('+'))
	assert.InDelta(t, start+RateStep, s.state.Settings.Rate, 1e-9)

	for range 20 {
		press(s, keyPress('+'))
	}
	assert.Equal(t, playback.MaxRate, s.state.Settings.Rate)

	for range 20 {
		press(s, keyPress('-'))
	}
	assert.Equal(t, playback.MinRate, s.state.Settings.Rate)
	assert.Contains(t, s.View(80, 30), "はやさ 0.70")
}

func TestUpdatesLoopEndsOnClose(t *testing.T) {
	s := newScreen(t)
	press(s, keyPress('4'))

	cmd := s.Init()
	msg := cmd()
	st, ok := msg.(stateMsg)
	require.True(t, ok, "expected a state update, got %T", msg)
	assert.Equal(t, 4, st.state.Dan)

	_, next := s.Update(msg)
	require.NotNil(t, next)

	s.Close()
	// Drain buffered updates until the closed channel is observed.
	for {
		msg = next()
		if _, done := msg.(closedMsg); done {
			break
		}
		_, next = s.Update(msg)
		require.NotNil(t, next)
	}

	_, cmd = s.Update(msg)
	assert.Nil(t, cmd)

	// Updates from another engine are ignored.
	other := newScreen(t)
	_, cmd = s.Update(stateMsg{engine: other.engine, state: playback.State{Dan: 9}})
	assert.Nil(t, cmd)
	assert.NotEqual(t, 9, s.state.Dan)

	// Keys after Close are ignored.
	press(s, keyPress('n'))
	assert.True(t, strings.Contains(s.View(80, 30), "4"))
}
