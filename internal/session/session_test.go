package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/problemgen"
	"github.com/abhisek/kakezan/internal/store"
)

// fixedDeck deals the same items every time and counts deals.
type fixedDeck struct {
	items []problemgen.Item
	deals int
}

func (d *fixedDeck) Mode() Mode    { return ModeConcept }
func (d *fixedDeck) Label() string { return "fixed" }
func (d *fixedDeck) Deal() []problemgen.Item {
	d.deals++
	return append([]problemgen.Item(nil), d.items...)
}

func questions(pairs ...[2]int) *fixedDeck {
	d := &fixedDeck{}
	for _, p := range pairs {
		d.items = append(d.items, problemgen.Question{A: p[0], B: p[1]})
	}
	return d
}

// mockJournal records events and optionally fails every append.
type mockJournal struct {
	sessions []store.SessionEventData
	answers  []store.AnswerEventData
	hints    []store.HintEventData
	err      error
}

func (m *mockJournal) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return m.err
}

func (m *mockJournal) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return m.err
}

func (m *mockJournal) AppendHintEvent(_ context.Context, data store.HintEventData) error {
	m.hints = append(m.hints, data)
	return m.err
}

func activeSession(t *testing.T, deck Deck, opts ...Option) *Session {
	t.Helper()
	s := New(opts...)
	if err := s.Choose(deck); err != nil {
		t.Fatalf("Choose: %v", err)
	}
	return s
}

func TestChoose_StartsActive(t *testing.T) {
	s := activeSession(t, questions([2]int{3, 4}, [2]int{2, 5}))

	snap := s.Snapshot()
	if snap.Phase != PhaseActive {
		t.Fatalf("Phase = %s, want active", snap.Phase)
	}
	if snap.Index != 0 || snap.Total != 2 {
		t.Errorf("Index/Total = %d/%d, want 0/2", snap.Index, snap.Total)
	}
	if snap.HintLevel != 0 || snap.Result != ResultIdle || snap.Tally != (Tally{}) {
		t.Errorf("unexpected initial state: %+v", snap)
	}
	if snap.SessionID == "" {
		t.Error("expected a session ID")
	}
}

func TestChoose_OnlyFromSelecting(t *testing.T) {
	s := activeSession(t, questions([2]int{3, 4}))
	if err := s.Choose(questions([2]int{2, 2})); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Choose while active: err = %v, want ErrInvalidTransition", err)
	}
	if err := New().Choose(nil); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Choose(nil): err = %v, want ErrInvalidTransition", err)
	}
}

func TestSubmit_Correct(t *testing.T) {
	s := activeSession(t, questions([2]int{3, 4}))

	res, err := s.Submit("12")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res != ResultCorrect {
		t.Errorf("Result = %s, want correct", res)
	}
	snap := s.Snapshot()
	if snap.Tally.Correct != 1 || snap.Tally.Wrong != 0 {
		t.Errorf("Tally = %+v, want 1 correct", snap.Tally)
	}
	if q := snap.Item.(problemgen.Question); q.Product() != 12 {
		t.Errorf("Product = %d, want 12", q.Product())
	}
}

func TestSubmit_MalformedIsIgnored(t *testing.T) {
	s := activeSession(t, questions([2]int{3, 4}))

	for _, raw := range []string{"abc", "", "  ", "-12", "1.5"} {
		res, err := s.Submit(raw)
		if err != nil {
			t.Fatalf("Submit(%q): %v", raw, err)
		}
		if res != ResultIdle {
			t.Errorf("Submit(%q) result = %s, want idle", raw, res)
		}
	}
	if snap := s.Snapshot(); snap.Tally != (Tally{}) {
		t.Errorf("Tally = %+v, want zero", snap.Tally)
	}
}

func TestSubmit_CorrectIsIdempotent(t *testing.T) {
	j := &mockJournal{}
	s := activeSession(t, questions([2]int{3, 4}, [2]int{2, 2}), WithJournal(j))

	s.Submit("12")
	s.Submit("12")
	s.Submit("99")

	snap := s.Snapshot()
	if snap.Tally.Correct != 1 || snap.Tally.Wrong != 0 {
		t.Errorf("Tally = %+v, want exactly one correct", snap.Tally)
	}
	if snap.Result != ResultCorrect {
		t.Errorf("Result = %s, want correct", snap.Result)
	}
	if len(j.answers) != 1 {
		t.Errorf("journal answers = %d, want 1", len(j.answers))
	}
}

func TestSubmit_WrongThenRetry(t *testing.T) {
	s := activeSession(t, questions([2]int{3, 4}))

	if res, _ := s.Submit("11"); res != ResultWrong {
		t.Fatalf("Result = %s, want wrong", res)
	}
	if err := s.Advance(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Advance after wrong: err = %v, want ErrInvalidTransition", err)
	}
	s.Submit("13")
	if res, _ := s.Submit("12"); res != ResultCorrect {
		t.Fatalf("Result = %s, want correct", res)
	}

	snap := s.Snapshot()
	if snap.Tally.Wrong != 2 || snap.Tally.Correct != 1 {
		t.Errorf("Tally = %+v, want 2 wrong 1 correct", snap.Tally)
	}
}

func TestSubmit_LongAnswersAreScored(t *testing.T) {
	tests := []struct {
		raw  string
		want Result
	}{
		{"0000012", ResultCorrect},
		{"1234567", ResultWrong},
		{"99999999999999999999", ResultWrong},
	}
	for _, tc := range tests {
		s := activeSession(t, questions([2]int{3, 4}))
		res, err := s.Submit(tc.raw)
		if err != nil {
			t.Fatalf("Submit(%q): %v", tc.raw, err)
		}
		if res != tc.want {
			t.Errorf("Submit(%q) result = %s, want %s", tc.raw, res, tc.want)
		}
		want := Tally{Correct: 1}
		if tc.want == ResultWrong {
			want = Tally{Wrong: 1}
		}
		if snap := s.Snapshot(); snap.Tally != want {
			t.Errorf("Submit(%q) tally = %+v, want %+v", tc.raw, snap.Tally, want)
		}
	}
}

func TestSubmit_NotActive(t *testing.T) {
	s := New()
	if _, err := s.Submit("12"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestHintUp_CappedAndMonotonic(t *testing.T) {
	s := activeSession(t, questions([2]int{3, 4}, [2]int{2, 5}))

	prev := 0
	for i := 0; i < 6; i++ {
		lv, err := s.HintUp()
		if err != nil {
			t.Fatalf("HintUp: %v", err)
		}
		if lv < prev {
			t.Fatalf("hint level decreased from %d to %d", prev, lv)
		}
		if lv > problemgen.MaxHintLevel {
			t.Fatalf("hint level %d exceeds cap", lv)
		}
		prev = lv
	}
	if prev != problemgen.MaxHintLevel {
		t.Errorf("hint level = %d, want %d", prev, problemgen.MaxHintLevel)
	}

	snap := s.Snapshot()
	if len(snap.Hints) != 3 || snap.Hints[2] != "3 × 4 = 12" {
		t.Errorf("Hints = %q", snap.Hints)
	}

	// Hints never change the expected answer.
	if res, _ := s.Submit("12"); res != ResultCorrect {
		t.Errorf("Result = %s, want correct", res)
	}

	s.Advance()
	if lv := s.Snapshot().HintLevel; lv != 0 {
		t.Errorf("hint level after Advance = %d, want 0", lv)
	}
}

func TestHintUp_NoOpAfterCorrect(t *testing.T) {
	s := activeSession(t, questions([2]int{3, 4}))
	s.HintUp()
	s.Submit("12")

	if lv, _ := s.HintUp(); lv != 1 {
		t.Errorf("hint level = %d, want 1 (frozen after correct)", lv)
	}
}

func TestShowScaffold(t *testing.T) {
	s := activeSession(t, questions([2]int{3, 4}, [2]int{2, 5}))
	if s.Snapshot().ShowScaffold {
		t.Error("scaffold shown before any hint or answer")
	}

	s.Submit("7")
	if !s.Snapshot().ShowScaffold {
		t.Error("scaffold hidden after wrong answer")
	}

	s.Submit("12")
	s.Advance()
	if s.Snapshot().ShowScaffold {
		t.Error("scaffold shown on fresh item")
	}

	s.HintUp()
	if !s.Snapshot().ShowScaffold {
		t.Error("scaffold hidden after hint")
	}
}

func TestAdvance_CompletesAfterLastItem(t *testing.T) {
	j := &mockJournal{}
	deck := questions([2]int{3, 4}, [2]int{2, 5}, [2]int{6, 6})
	s := activeSession(t, deck, WithJournal(j))

	answers := []string{"12", "10", "36"}
	for i, a := range answers {
		if got := s.Snapshot().Index; got != i {
			t.Fatalf("Index = %d, want %d", got, i)
		}
		s.Submit(a)
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
	}

	snap := s.Snapshot()
	if snap.Phase != PhaseComplete {
		t.Fatalf("Phase = %s, want complete", snap.Phase)
	}
	if snap.Tally.Correct != len(answers) {
		t.Errorf("Correct = %d, want one per item", snap.Tally.Correct)
	}
	if snap.Item != nil {
		t.Error("Item should be nil once complete")
	}

	if err := s.Advance(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Advance after complete: err = %v", err)
	}

	if len(j.sessions) != 2 || j.sessions[0].Action != "start" || j.sessions[1].Action != "complete" {
		t.Fatalf("session events = %+v, want start then complete", j.sessions)
	}
	if j.sessions[1].Correct != 3 || j.sessions[1].Items != 3 {
		t.Errorf("complete event = %+v", j.sessions[1])
	}
}

func TestRestart_DealsFreshRun(t *testing.T) {
	deck := questions([2]int{2, 2})
	s := activeSession(t, deck)

	if err := s.Restart(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Restart while active: err = %v", err)
	}

	s.Submit("1")
	s.Submit("4")
	s.Advance()
	firstID := s.Snapshot().SessionID

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	snap := s.Snapshot()
	if snap.Phase != PhaseActive || snap.Index != 0 || snap.Tally != (Tally{}) || snap.HintLevel != 0 {
		t.Errorf("state after restart = %+v", snap)
	}
	if deck.deals != 2 {
		t.Errorf("deals = %d, want 2", deck.deals)
	}
	if snap.SessionID == firstID {
		t.Error("restart should start a new session ID")
	}
}

func TestRestart_ProfileDeckRegenerates(t *testing.T) {
	deck := ProfileDeck{
		Profile: catalog.ProfileOrDefault(catalog.StepD),
		Rand:    rand.New(rand.NewPCG(1, 2)),
	}
	s := activeSession(t, deck)

	var first []problemgen.Item
	for s.Phase() == PhaseActive {
		item := s.Snapshot().Item
		first = append(first, item)
		s.Submit(itoa(item.Expected()))
		s.Advance()
	}
	if len(first) != 8 {
		t.Fatalf("ran %d items, want 8", len(first))
	}

	s.Restart()
	same := true
	for i := 0; s.Phase() == PhaseActive; i++ {
		item := s.Snapshot().Item
		if item != first[i] {
			same = false
		}
		s.Submit(itoa(item.Expected()))
		s.Advance()
	}
	if same {
		t.Error("restart replayed the identical question order")
	}
}

func TestExit_FromAnyPhase(t *testing.T) {
	exits := 0
	j := &mockJournal{}
	s := activeSession(t, questions([2]int{3, 4}), WithExit(func() { exits++ }), WithJournal(j))

	s.HintUp()
	s.Submit("1")
	s.Exit()

	snap := s.Snapshot()
	if snap.Phase != PhaseSelecting {
		t.Errorf("Phase = %s, want selecting", snap.Phase)
	}
	if snap.Result != ResultIdle || snap.HintLevel != 0 || snap.Tally != (Tally{}) {
		t.Errorf("stale state after exit: %+v", snap)
	}
	if exits != 1 {
		t.Errorf("exit collaborator called %d times, want 1", exits)
	}
	if last := j.sessions[len(j.sessions)-1]; last.Action != "exit" {
		t.Errorf("last session event = %q, want exit", last.Action)
	}

	// Exiting from selecting is allowed and does not journal.
	before := len(j.sessions)
	s.Exit()
	if len(j.sessions) != before {
		t.Error("exit from selecting should not journal")
	}
	if err := s.Choose(questions([2]int{2, 2})); err != nil {
		t.Errorf("Choose after exit: %v", err)
	}
}

func TestEmptyDeckCompletesImmediately(t *testing.T) {
	s := activeSession(t, &fixedDeck{})
	if s.Phase() != PhaseComplete {
		t.Errorf("Phase = %s, want complete", s.Phase())
	}
}

func TestJournalFailureDoesNotAffectState(t *testing.T) {
	j := &mockJournal{err: errors.New("disk full")}
	s := activeSession(t, questions([2]int{3, 4}), WithJournal(j))

	if res, err := s.Submit("12"); err != nil || res != ResultCorrect {
		t.Errorf("Submit = (%s, %v), want (correct, nil)", res, err)
	}
}

func TestAnswerEventTiming(t *testing.T) {
	now := time.Unix(1000, 0)
	clock := func() time.Time { return now }
	j := &mockJournal{}
	s := activeSession(t, questions([2]int{3, 4}), WithJournal(j), WithClock(clock))

	now = now.Add(2500 * time.Millisecond)
	s.HintUp()
	s.Submit("12")

	if len(j.answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(j.answers))
	}
	a := j.answers[0]
	if a.TimeMs != 2500 || a.HintLevel != 1 || !a.Correct || a.ItemKey != "3x4" || a.Expected != 12 {
		t.Errorf("answer event = %+v", a)
	}
	if len(j.hints) != 1 || j.hints[0].Level != 1 || j.hints[0].Mode != "concept" || j.hints[0].Index != 0 {
		t.Errorf("hint events = %+v", j.hints)
	}
}

func TestPuzzleDeck_RoundOfEight(t *testing.T) {
	deck := PuzzleDeck{Dan: 6, Rand: rand.New(rand.NewPCG(3, 4))}
	s := activeSession(t, deck)

	n := 0
	for s.Phase() == PhaseActive {
		snap := s.Snapshot()
		if snap.Mode != ModeShape {
			t.Fatalf("Mode = %s, want shape", snap.Mode)
		}
		s.Submit(itoa(snap.Item.Expected()))
		s.Advance()
		n++
	}
	if n != problemgen.PuzzlesPerRound {
		t.Errorf("round length = %d, want %d", n, problemgen.PuzzlesPerRound)
	}
	if err := s.Restart(); err != nil {
		t.Errorf("Restart: %v", err)
	}
	if got := s.Snapshot().Total; got != problemgen.PuzzlesPerRound {
		t.Errorf("Total after restart = %d", got)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	return string(b)
}
