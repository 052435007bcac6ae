package drill

import (
	"context"
	"strconv"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/problemgen"
	"github.com/abhisek/kakezan/internal/session"
	"github.com/abhisek/kakezan/internal/story"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// run executes cmd and feeds narration back into the screen.
func run(t *testing.T, s *Screen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			run(t, s, c)
		}
		return
	}
	if _, ok := msg.(storyMsg); ok {
		s.Update(msg)
	}
}

func press(t *testing.T, s *Screen, msgs ...tea.KeyPressMsg) {
	t.Helper()
	for _, m := range msgs {
		_, cmd := s.Update(m)
		run(t, s, cmd)
	}
}

func typeAnswer(t *testing.T, s *Screen, n int) {
	t.Helper()
	for _, r := range strconv.Itoa(n) {
		press(t, s, keyPress(r))
	}
	press(t, s, specialKey(tea.KeyEnter))
}

func TestConcept_PickAndAnswer(t *testing.T) {
	s := NewConcept(nil, nil)
	if !strings.Contains(s.View(80, 30), "ステップ") {
		t.Fatal("picker should list steps")
	}
	if s.HandlesEscape() {
		t.Fatal("Esc should leave the screen from the picker")
	}

	press(t, s, specialKey(tea.KeyEnter)) // step A
	snap := s.sess.Snapshot()
	if snap.Phase != session.PhaseActive {
		t.Fatalf("expected active, got %v", snap.Phase)
	}
	if !s.HandlesEscape() {
		t.Fatal("Esc should be handled while drilling")
	}
	if !strings.Contains(s.story.Text, "あめ") {
		t.Fatalf("expected template story, got %q", s.story.Text)
	}

	q := snap.Item.(problemgen.Question)
	typeAnswer(t, s, q.Product())
	if got := s.sess.Snapshot().Result; got != session.ResultCorrect {
		t.Fatalf("expected correct, got %v", got)
	}
	if !strings.Contains(s.View(80, 40), "せいかい") {
		t.Fatal("view should show correct feedback")
	}

	press(t, s, specialKey(tea.KeyEnter))
	if got := s.sess.Snapshot().Index; got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if s.input.Value() != "" {
		t.Fatal("input should be cleared on advance")
	}
}

func TestConcept_WrongAnswerAndHints(t *testing.T) {
	s := NewConcept(nil, nil)
	press(t, s, specialKey(tea.KeyEnter))

	q := s.sess.Snapshot().Item.(problemgen.Question)
	typeAnswer(t, s, q.Product()+1)

	snap := s.sess.Snapshot()
	if snap.Result != session.ResultWrong || snap.Tally.Wrong != 1 {
		t.Fatalf("expected one wrong answer, got %+v", snap)
	}
	if s.Status() != "○ 0  × 1" {
		t.Fatalf("unexpected status %q", s.Status())
	}

	// Letters never reach the answer field; h raises the hint.
	press(t, s, keyPress('h'), keyPress('h'), keyPress('x'))
	if got := s.sess.Snapshot().HintLevel; got != 2 {
		t.Fatalf("expected hint level 2, got %d", got)
	}
	if s.input.Value() != "" {
		t.Fatalf("unexpected input %q", s.input.Value())
	}
	if !strings.Contains(s.View(80, 40), "ヒント2") {
		t.Fatal("scaffold should be visible")
	}
}

func TestConcept_EmptyEnterIgnored(t *testing.T) {
	s := NewConcept(nil, nil)
	press(t, s, specialKey(tea.KeyEnter))
	press(t, s, specialKey(tea.KeyEnter))

	snap := s.sess.Snapshot()
	if snap.Result != session.ResultIdle || snap.Tally != (session.Tally{}) {
		t.Fatalf("empty submit must not change state: %+v", snap)
	}
}

func TestConcept_EscReturnsToPicker(t *testing.T) {
	s := NewConcept(nil, nil)
	press(t, s, specialKey(tea.KeyEnter))
	press(t, s, specialKey(tea.KeyEscape))

	if s.sess.Phase() != session.PhaseSelecting {
		t.Fatalf("expected selecting, got %v", s.sess.Phase())
	}
	if s.Status() != "" {
		t.Fatal("status should be empty while selecting")
	}
}

func TestConcept_CompleteAndRestart(t *testing.T) {
	s := NewConcept(nil, nil)
	press(t, s, specialKey(tea.KeyEnter))

	for s.sess.Phase() == session.PhaseActive {
		q := s.sess.Snapshot().Item.(problemgen.Question)
		typeAnswer(t, s, q.Product())
		press(t, s, specialKey(tea.KeyEnter))
	}

	snap := s.sess.Snapshot()
	if snap.Phase != session.PhaseComplete {
		t.Fatalf("expected complete, got %v", snap.Phase)
	}
	if snap.Tally.Correct != snap.Total {
		t.Fatalf("expected %d correct, got %d", snap.Total, snap.Tally.Correct)
	}
	if !strings.Contains(s.View(80, 40), "ぜんぶ できたね") {
		t.Fatal("completion view expected")
	}

	firstID := snap.SessionID
	press(t, s, keyPress('r'))
	snap = s.sess.Snapshot()
	if snap.Phase != session.PhaseActive || snap.SessionID == firstID || snap.Tally.Correct != 0 {
		t.Fatalf("restart should begin a fresh run: %+v", snap)
	}
}

func TestConcept_LLMStory(t *testing.T) {
	s := NewConcept(nil, &fixedTeller{})
	press(t, s, specialKey(tea.KeyEnter))

	if s.story.Source != story.SourceLLM || !strings.HasPrefix(s.story.Text, "くまさん") {
		t.Fatalf("expected generated story, got %+v", s.story)
	}

	// A story for an old item is dropped.
	s.Update(storyMsg{sessionID: "old", itemKey: "2x2", story: story.Story{Text: "stale"}})
	if s.story.Text == "stale" {
		t.Fatal("stale story must be ignored")
	}
}

type fixedTeller struct{}

func (fixedTeller) Tell(_ context.Context, _ catalog.Profile, q problemgen.Question) story.Story {
	return story.Story{Text: "くまさん " + q.Key(), Source: story.SourceLLM}
}

func TestShape_MiniTableRendering(t *testing.T) {
	s := NewShape(nil)
	press(t, s, keyPress('2')) // 3のだん

	snap := s.sess.Snapshot()
	if snap.Mode != session.ModeShape || snap.Total != problemgen.PuzzlesPerRound {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if s.story.Text != "" {
		t.Fatal("shape drills have no narration")
	}

	// Rows 2-4 by columns 3-5; the center cell 3×4 is the hole.
	lines := strings.Split(renderMiniTable(problemgen.NewMiniTable(3)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	middle := lines[2]
	if !strings.Contains(middle, "□") || strings.Contains(middle, "12") {
		t.Fatalf("center cell must be masked: %q", middle)
	}
	if !strings.Contains(middle, "9") || !strings.Contains(middle, "15") {
		t.Fatalf("neighbouring cells should be shown: %q", middle)
	}
	if strings.Contains(lines[1], "□") || strings.Contains(lines[3], "□") {
		t.Fatal("only the center row has a hole")
	}
}

func TestShape_AnswerAllPuzzles(t *testing.T) {
	s := NewShape(nil)
	press(t, s, keyPress('5')) // 6のだん

	for s.sess.Phase() == session.PhaseActive {
		item := s.sess.Snapshot().Item
		if p := item.(problemgen.Puzzle); p.Dan != 6 {
			t.Fatalf("unexpected dan %d", p.Dan)
		}
		typeAnswer(t, s, item.Expected())
		press(t, s, specialKey(tea.KeyEnter))
	}
	if s.sess.Phase() != session.PhaseComplete {
		t.Fatalf("expected complete, got %v", s.sess.Phase())
	}

	press(t, s, specialKey(tea.KeyEnter))
	if s.sess.Phase() != session.PhaseSelecting {
		t.Fatal("Enter on the summary should return to the picker")
	}
}
