// Package listen is the kuku listening screen. It owns one playback
// engine for the lifetime of the screen and renders the states the engine
// publishes.
package listen

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/playback"
	"github.com/abhisek/kakezan/internal/screen"
	"github.com/abhisek/kakezan/internal/ui/components"
	"github.com/abhisek/kakezan/internal/ui/layout"
)

// RateStep is how much + and - change the speaking rate.
const RateStep = 0.05

// stateMsg carries one engine update into the Bubble Tea loop. Messages
// are tagged with their engine because a late update from a screen that
// has already left the stack may reach a newer listening screen.
type stateMsg struct {
	engine *playback.Engine
	state  playback.State
}

// closedMsg reports that the engine closed its update channel.
type closedMsg struct {
	engine *playback.Engine
}

// Screen drives a playback.Engine from key presses.
type Screen struct {
	engine *playback.Engine
	picker components.Menu
	state  playback.State
	closed bool
	err    error
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.StatusProvider  = (*Screen)(nil)
	_ screen.EscapeHandler   = (*Screen)(nil)
	_ screen.Closer          = (*Screen)(nil)
)

// New wraps engine. The screen closes the engine when it leaves the stack.
func New(engine *playback.Engine) *Screen {
	s := &Screen{engine: engine, state: engine.Snapshot()}

	set := s.state.Settings
	var items []components.MenuItem
	for dan := set.MinDan; dan <= set.MaxDan; dan++ {
		items = append(items, components.MenuItem{
			Label: catalog.DanName(dan),
			Action: func() tea.Cmd {
				s.selectDan(dan)
				return nil
			},
		})
	}
	s.picker = components.NewMenu(items)
	return s
}

// waitForState blocks for the next update from e.
func waitForState(e *playback.Engine) tea.Cmd {
	ch := e.Updates()
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return closedMsg{engine: e}
		}
		return stateMsg{engine: e, state: st}
	}
}

func (s *Screen) Init() tea.Cmd {
	return waitForState(s.engine)
}

func (s *Screen) Title() string {
	return "おとで おぼえる"
}

// Status shows the dan and whether auto-play is paused.
func (s *Screen) Status() string {
	if s.state.Phase != playback.PhasePlaying {
		return ""
	}
	mark := "▶"
	if !s.state.AutoPlay {
		mark = "⏸"
	}
	return fmt.Sprintf("%s %s", mark, catalog.DanName(s.state.Dan))
}

// HandlesEscape keeps Esc inside the screen while a dan is playing.
func (s *Screen) HandlesEscape() bool {
	return s.state.Phase == playback.PhasePlaying
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.state.Phase != playback.PhasePlaying {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "えらぶ"},
			{Key: "Enter", Description: "きく"},
			{Key: "Esc", Description: "もどる"},
		}
	}
	pause := "とめる"
	if !s.state.AutoPlay {
		pause = "つづける"
	}
	return []layout.KeyHint{
		{Key: "Space", Description: pause},
		{Key: "R", Description: "もういちど"},
		{Key: "N", Description: "つぎ"},
		{Key: "+/-", Description: "はやさ"},
		{Key: "Esc", Description: "だんを えらぶ"},
	}
}

// Close stops playback and releases the engine.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if err := s.engine.Close(); err != nil {
		slog.Warn("closing playback engine", "error", err)
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		if msg.engine != s.engine {
			return s, nil
		}
		s.state = msg.state
		return s, waitForState(s.engine)

	case closedMsg:
		return s, nil

	case tea.KeyPressMsg:
		if s.closed {
			return s, nil
		}
		if s.state.Phase != playback.PhasePlaying {
			var cmd tea.Cmd
			s.picker, cmd = s.picker.Update(msg)
			return s, cmd
		}
		s.handlePlayingKey(msg)
		return s, nil
	}
	return s, nil
}

func (s *Screen) handlePlayingKey(msg tea.KeyPressMsg) {
	s.err = nil
	switch msg.String() {
	case "esc":
		s.engine.BackToSelect()
	case "space", " ", "p":
		s.engine.TogglePause()
	case "r":
		s.err = s.engine.Replay()
	case "n", "right":
		s.err = s.engine.Skip()
	case "+", "=":
		s.changeRate(RateStep)
	case "-", "_":
		s.changeRate(-RateStep)
	default:
		return
	}
	s.refresh()
}

func (s *Screen) selectDan(dan int) {
	s.err = s.engine.Select(dan)
	s.refresh()
}

// changeRate nudges the speaking rate within its allowed range. Rounding
// keeps repeated steps from drifting off the 0.05 grid.
func (s *Screen) changeRate(delta float64) {
	set := s.engine.Snapshot().Settings
	rate := math.Round((set.Rate+delta)*100) / 100
	rate = max(playback.MinRate, min(rate, playback.MaxRate))
	if rate == set.Rate {
		return
	}
	set.Rate = rate
	s.engine.UpdateSettings(set)
}

// refresh reads the engine state directly so the view reflects a key
// press before the matching update arrives.
func (s *Screen) refresh() {
	s.state = s.engine.Snapshot()
	if errors.Is(s.err, playback.ErrClosed) {
		s.closed = true
	}
}
