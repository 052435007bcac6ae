package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kakezan/internal/playback"
	"github.com/abhisek/kakezan/internal/router"
	"github.com/abhisek/kakezan/internal/screen"
	"github.com/abhisek/kakezan/internal/screens/home"
	"github.com/abhisek/kakezan/internal/store"
	"github.com/abhisek/kakezan/internal/story"
	"github.com/abhisek/kakezan/internal/ui/layout"
)

// Options holds the dependencies handed to the screens.
type Options struct {
	// Journal records sessions, answers and hints. Nil disables journaling.
	Journal store.EventRepo

	// Teller narrates concept-trainer questions. Nil uses the template.
	Teller story.Teller

	// NewEngine builds a playback engine for one visit to the listening
	// drill; the screen closes it on exit. Nil hides the drill.
	NewEngine func() *playback.Engine
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	if opts.Teller == nil {
		opts.Teller = story.Template{}
	}
	return AppModel{
		router: router.New(home.New(home.Deps{
			Journal:   opts.Journal,
			Teller:    opts.Teller,
			NewEngine: opts.NewEngine,
		})),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.CloseAll()
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Back
			}
			return m, nil
		}

	case home.QuitMsg:
		m.router.CloseAll()
		return m, tea.Quit
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	active := m.router.Active()
	frame := layout.Frame{Width: m.width, Height: m.height, Hints: m.footerHints(active)}
	if active != nil {
		frame.Title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			frame.Status = sp.Status()
		}
	}
	if !frame.Fits() {
		v.SetContent(frame.Render(""))
		return v
	}
	v.SetContent(frame.Render(m.router.View(m.width, frame.BodyHeight())))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "もどる"},
			{Key: "Ctrl+C", Description: "おわる"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "えらぶ"},
		{Key: "Enter", Description: "けってい"},
		{Key: "Ctrl+C", Description: "おわる"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		slog.Error("program exited with error", "error", err)
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
