// Package drill is the answer-typing screen shared by the concept trainer
// and the shape drills. All state lives in a session.Session; the screen
// only forwards key presses and renders snapshots.
package drill

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/llm"
	"github.com/abhisek/kakezan/internal/problemgen"
	"github.com/abhisek/kakezan/internal/screen"
	"github.com/abhisek/kakezan/internal/session"
	"github.com/abhisek/kakezan/internal/store"
	"github.com/abhisek/kakezan/internal/story"
	"github.com/abhisek/kakezan/internal/ui/components"
	"github.com/abhisek/kakezan/internal/ui/layout"
)

// storyMsg delivers narration for one item of one session.
type storyMsg struct {
	sessionID string
	itemKey   string
	story     story.Story
}

// Screen runs one drill mode.
type Screen struct {
	mode   session.Mode
	title  string
	sess   *session.Session
	picker components.Menu
	input  components.AnswerInput

	// Concept mode narration.
	teller  story.Teller
	profile catalog.Profile
	story   story.Story
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.StatusProvider  = (*Screen)(nil)
	_ screen.EscapeHandler   = (*Screen)(nil)
)

func newScreen(mode session.Mode, title string, journal store.EventRepo) *Screen {
	var opts []session.Option
	if journal != nil {
		opts = append(opts, session.WithJournal(journal))
	}
	return &Screen{
		mode:  mode,
		title: title,
		sess:  session.New(opts...),
		input: components.NewAnswerInput("こたえ", 3),
	}
}

// NewConcept builds the concept trainer: pick a step, then answer
// "b containers of a items" questions.
func NewConcept(journal store.EventRepo, teller story.Teller) *Screen {
	s := newScreen(session.ModeConcept, "かけざんの いみ", journal)
	if teller == nil {
		teller = story.Template{}
	}
	s.teller = teller

	var items []components.MenuItem
	for _, p := range catalog.Profiles() {
		items = append(items, components.MenuItem{
			Label: p.Label,
			Note:  fmt.Sprintf("%d〜%d × %d〜%d", p.AMin, p.AMax, p.BMin, p.BMax),
			Action: func() tea.Cmd {
				s.profile = p
				return s.choose(session.ProfileDeck{Profile: p})
			},
		})
	}
	s.picker = components.NewMenu(items)
	return s
}

// NewShape builds the hole-fill drills: pick a dan, then fill in masked
// digits, factors and table cells.
func NewShape(journal store.EventRepo) *Screen {
	s := newScreen(session.ModeShape, "かたちで おぼえる", journal)

	var items []components.MenuItem
	for dan := catalog.MinDan + 1; dan <= catalog.MaxDan; dan++ {
		items = append(items, components.MenuItem{
			Label: catalog.DanName(dan),
			Action: func() tea.Cmd {
				return s.choose(session.PuzzleDeck{Dan: dan})
			},
		})
	}
	s.picker = components.NewMenu(items)
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Title() string {
	return s.title
}

// Status shows the running tally while a run is in progress.
func (s *Screen) Status() string {
	snap := s.sess.Snapshot()
	if snap.Phase == session.PhaseSelecting {
		return ""
	}
	return fmt.Sprintf("○ %d  × %d", snap.Tally.Correct, snap.Tally.Wrong)
}

// HandlesEscape keeps Esc inside the screen until the picker is showing.
func (s *Screen) HandlesEscape() bool {
	return s.sess.Phase() != session.PhaseSelecting
}

func (s *Screen) KeyHints() []layout.KeyHint {
	snap := s.sess.Snapshot()
	switch snap.Phase {
	case session.PhaseActive:
		if snap.Result == session.ResultCorrect {
			return []layout.KeyHint{
				{Key: "Enter", Description: "つぎへ"},
				{Key: "Esc", Description: "やめる"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "こたえる"},
			{Key: "H", Description: "ヒント"},
			{Key: "Esc", Description: "やめる"},
		}
	case session.PhaseComplete:
		return []layout.KeyHint{
			{Key: "R", Description: "もういちど"},
			{Key: "Enter", Description: "えらびなおす"},
			{Key: "Esc", Description: "もどる"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "えらぶ"},
			{Key: "Enter", Description: "はじめる"},
			{Key: "Esc", Description: "もどる"},
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case storyMsg:
		snap := s.sess.Snapshot()
		if snap.Phase == session.PhaseActive && msg.sessionID == snap.SessionID && snap.Item != nil && msg.itemKey == snap.Item.Key() {
			s.story = msg.story
		}
		return s, nil

	case tea.KeyPressMsg:
		switch s.sess.Phase() {
		case session.PhaseSelecting:
			var cmd tea.Cmd
			s.picker, cmd = s.picker.Update(msg)
			return s, cmd
		case session.PhaseActive:
			return s.handleActiveKey(msg)
		case session.PhaseComplete:
			return s.handleCompleteKey(msg)
		}
	}

	if s.sess.Phase() == session.PhaseActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleActiveKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.sess.Exit()
		s.input.Clear()
		return s, nil

	case "h", "?":
		_, _ = s.sess.HintUp()
		return s, nil

	case "enter":
		snap := s.sess.Snapshot()
		if snap.Result == session.ResultCorrect {
			_ = s.sess.Advance()
			s.input.Clear()
			return s, s.narrate()
		}
		if s.input.Value() == "" {
			return s, nil
		}
		res, _ := s.sess.Submit(s.input.Value())
		switch res {
		case session.ResultCorrect:
			s.input.Mark(true)
		case session.ResultWrong:
			s.input.Mark(false)
			s.input.Model.Reset()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) handleCompleteKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r":
		if err := s.sess.Restart(); err != nil {
			return s, nil
		}
		s.input.Clear()
		return s, s.narrate()
	case "enter", "esc":
		s.sess.Exit()
	}
	return s, nil
}

func (s *Screen) choose(deck session.Deck) tea.Cmd {
	if err := s.sess.Choose(deck); err != nil {
		return nil
	}
	s.input.Clear()
	return s.narrate()
}

// narrate shows the template story at once and asks the teller for a
// richer one in the background. Shape drills have no narration.
func (s *Screen) narrate() tea.Cmd {
	snap := s.sess.Snapshot()
	q, ok := snap.Item.(problemgen.Question)
	if s.mode != session.ModeConcept || snap.Phase != session.PhaseActive || !ok {
		s.story = story.Story{}
		return nil
	}

	s.story = story.Template{}.Tell(context.Background(), s.profile, q)
	if _, isTemplate := s.teller.(story.Template); isTemplate {
		return nil
	}

	teller, profile, id, key := s.teller, s.profile, snap.SessionID, q.Key()
	return func() tea.Msg {
		return storyMsg{
			sessionID: id,
			itemKey:   key,
			story:     teller.Tell(llm.WithSession(context.Background(), id), profile, q),
		}
	}
}
