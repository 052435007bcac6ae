// Package journal shows the most recent journal entries across drills,
// listening and story generation.
package journal

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakezan/internal/screen"
	"github.com/abhisek/kakezan/internal/store"
	"github.com/abhisek/kakezan/internal/ui/layout"
	"github.com/abhisek/kakezan/internal/ui/theme"
)

// Limit is how many entries the screen loads.
const Limit = 50

type loadedMsg struct {
	Entries []store.JournalEntry
	Err     error
}

type totalsMsg struct {
	SessionID string
	Totals    store.SessionTotals
	Err       error
}

// Screen lists journal entries newest first. Enter on a drill entry
// shows the totals of its session.
type Screen struct {
	repo     store.EventRepo
	entries  []store.JournalEntry
	totals   map[string]store.SessionTotals
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a journal screen reading from repo.
func New(repo store.EventRepo) *Screen {
	return &Screen{
		repo:     repo,
		totals:   make(map[string]store.SessionTotals),
		expanded: make(map[int]bool),
	}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.repo.Recent(context.Background(), store.QueryOpts{Limit: Limit})
		return loadedMsg{Entries: entries, Err: err}
	}
}

func (s *Screen) Title() string {
	return "きろく"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "くわしく"},
		{Key: "↑↓", Description: "えらぶ"},
		{Key: "Esc", Description: "もどる"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case totalsMsg:
		if msg.Err == nil {
			s.totals[msg.SessionID] = msg.Totals
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "enter":
			if s.selected >= len(s.entries) {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, s.loadTotals(s.entries[s.selected].SessionID)
		}
	}
	return s, nil
}

func (s *Screen) loadTotals(sessionID string) tea.Cmd {
	if sessionID == "" {
		return nil
	}
	if _, ok := s.totals[sessionID]; ok {
		return nil
	}
	return func() tea.Msg {
		t, err := s.repo.SessionTotals(context.Background(), sessionID)
		return totalsMsg{SessionID: sessionID, Totals: t, Err: err}
	}
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nエラー: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  よみこみちゅう…")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  まだ きろくが ありません")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Keep the selection on screen when the list is taller than the view.
	rows := max(height-2, 1)
	first := 0
	if s.selected >= rows {
		first = s.selected - rows + 1
	}

	for i := first; i < len(s.entries) && i < first+rows; i++ {
		e := s.entries[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %-8s  %s", prefix, e.Timestamp.Local().Format("01/02 15:04"), e.Kind, e.Summary)

		style := lipgloss.NewStyle().Foreground(kindColor(e.Kind))
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(s.detail(e))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *Screen) detail(e store.JournalEntry) string {
	if e.SessionID == "" {
		return fmt.Sprintf("    #%d", e.Sequence)
	}
	t, ok := s.totals[e.SessionID]
	if !ok {
		return "    …"
	}
	return fmt.Sprintf("    セッション %s  こたえ %d  せいかい %d  ヒント %d",
		shortID(e.SessionID), t.Answers, t.Correct, t.HintsUsed)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func kindColor(kind string) color.Color {
	switch kind {
	case "session":
		return theme.Secondary
	case "answer":
		return theme.Text
	case "hint":
		return theme.Gold
	case "playback":
		return theme.Sky
	case "llm":
		return theme.Accent
	default:
		return theme.TextDim
	}
}
