package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/kakezan/internal/problemgen"
	"github.com/abhisek/kakezan/internal/store"
)

// Journal receives session events. store.EventRepo satisfies it.
type Journal interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
	AppendHintEvent(ctx context.Context, data store.HintEventData) error
}

// Session is the drill state machine shared by the concept trainer and the
// shape drills:
//
//	selecting --Choose--> active --Advance(last)--> complete
//	complete --Restart--> active
//	any --Exit--> selecting
//
// All operations are synchronous. A Session is driven from a single
// goroutine (the UI update loop) and is not safe for concurrent use.
type Session struct {
	id    string
	deck  Deck
	items []problemgen.Item

	phase  Phase
	index  int
	hint   int
	result Result
	tally  Tally

	itemStart time.Time

	journal Journal
	onExit  func()
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithJournal records session events. Journal errors are logged and never
// affect session state.
func WithJournal(j Journal) Option {
	return func(s *Session) { s.journal = j }
}

// WithExit installs the collaborator notified by Exit, for sessions embedded
// in a larger navigation flow.
func WithExit(fn func()) Option {
	return func(s *Session) { s.onExit = fn }
}

// WithClock overrides the time source used for answer timings.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New creates a session in PhaseSelecting.
func New(opts ...Option) *Session {
	s := &Session{
		phase:  PhaseSelecting,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Choose deals a fresh run from deck and enters PhaseActive.
// Allowed only while selecting.
func (s *Session) Choose(deck Deck) error {
	if s.phase != PhaseSelecting || deck == nil {
		return ErrInvalidTransition
	}
	s.start(deck)
	return nil
}

// Restart deals a fresh, independent run from the same deck.
// Allowed only once the run is complete.
func (s *Session) Restart() error {
	if s.phase != PhaseComplete || s.deck == nil {
		return ErrInvalidTransition
	}
	s.start(s.deck)
	return nil
}

func (s *Session) start(deck Deck) {
	s.id = uuid.New().String()
	s.deck = deck
	s.items = deck.Deal()
	s.index = 0
	s.tally = Tally{}
	s.resetItem()
	s.phase = PhaseActive

	s.record(func(ctx context.Context, j Journal) error {
		return j.AppendSessionEvent(ctx, s.sessionEvent("start"))
	})

	// A deck that dealt nothing has nothing to drill.
	if len(s.items) == 0 {
		s.complete()
	}
}

// Submit evaluates raw input against the current item.
//
// Malformed input (empty, non-numeric, negative) is ignored: no tally change,
// no result change. Once the current item is answered correctly, further
// submissions are no-ops until Advance, so a correct answer is never counted
// twice. A wrong answer may be retried; each wrong submission is tallied.
func (s *Session) Submit(raw string) (Result, error) {
	if s.phase != PhaseActive {
		return s.result, ErrInvalidTransition
	}
	if s.result == ResultCorrect {
		return s.result, nil
	}

	item := s.items[s.index]
	given, ok := problemgen.ParseAnswer(raw)
	if !ok {
		return s.result, nil
	}

	correct := given == item.Expected()
	if correct {
		s.tally.Correct++
		s.result = ResultCorrect
	} else {
		s.tally.Wrong++
		s.result = ResultWrong
	}

	answer := store.AnswerEventData{
		SessionID: s.id,
		Mode:      string(s.deck.Mode()),
		ItemKey:   item.Key(),
		Index:     s.index,
		Expected:  item.Expected(),
		Given:     given,
		Correct:   correct,
		HintLevel: s.hint,
		TimeMs:    int(s.now().Sub(s.itemStart).Milliseconds()),
	}
	s.record(func(ctx context.Context, j Journal) error {
		return j.AppendAnswerEvent(ctx, answer)
	})

	return s.result, nil
}

// HintUp raises the hint level by one, up to problemgen.MaxHintLevel.
// It is a no-op at the cap and once the current item is answered correctly.
// The expected answer never depends on the hint level.
func (s *Session) HintUp() (int, error) {
	if s.phase != PhaseActive {
		return s.hint, ErrInvalidTransition
	}
	if s.hint >= problemgen.MaxHintLevel || s.result == ResultCorrect {
		return s.hint, nil
	}
	s.hint++

	hint := store.HintEventData{
		SessionID: s.id,
		Mode:      string(s.deck.Mode()),
		Index:     s.index,
		ItemKey:   s.items[s.index].Key(),
		Level:     s.hint,
	}
	s.record(func(ctx context.Context, j Journal) error {
		return j.AppendHintEvent(ctx, hint)
	})
	return s.hint, nil
}

// Advance moves past a correctly answered item. On the last item the
// session completes; otherwise the next item starts with hint and result
// reset.
func (s *Session) Advance() error {
	if s.phase != PhaseActive || s.result != ResultCorrect {
		return ErrInvalidTransition
	}
	if s.index+1 >= len(s.items) {
		s.complete()
		return nil
	}
	s.index++
	s.resetItem()
	return nil
}

// Exit abandons the session from any phase and returns to selecting.
// The exit collaborator, when installed, is notified afterwards.
func (s *Session) Exit() {
	if s.phase == PhaseActive {
		s.record(func(ctx context.Context, j Journal) error {
			return j.AppendSessionEvent(ctx, s.sessionEvent("exit"))
		})
	}
	s.phase = PhaseSelecting
	s.items = nil
	s.index = 0
	s.tally = Tally{}
	s.resetItem()

	if s.onExit != nil {
		s.onExit()
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Snapshot returns a copy of the renderable state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:    s.id,
		Phase:        s.phase,
		Index:        s.index,
		Total:        len(s.items),
		HintLevel:    s.hint,
		Result:       s.result,
		Tally:        s.tally,
		ShowScaffold: s.hint > 0 || s.result != ResultIdle,
	}
	if s.deck != nil {
		snap.Mode = s.deck.Mode()
		snap.Label = s.deck.Label()
	}
	if s.phase == PhaseActive {
		item := s.items[s.index]
		snap.Item = item
		snap.Hints = append([]string(nil), item.Hints()[:s.hint]...)
	}
	return snap
}

func (s *Session) complete() {
	s.phase = PhaseComplete
	s.resetItem()
	s.record(func(ctx context.Context, j Journal) error {
		return j.AppendSessionEvent(ctx, s.sessionEvent("complete"))
	})
}

func (s *Session) resetItem() {
	s.hint = 0
	s.result = ResultIdle
	s.itemStart = s.now()
}

func (s *Session) sessionEvent(action string) store.SessionEventData {
	return store.SessionEventData{
		SessionID: s.id,
		Mode:      string(s.deck.Mode()),
		Deck:      s.deck.Label(),
		Action:    action,
		Items:     len(s.items),
		Correct:   s.tally.Correct,
		Wrong:     s.tally.Wrong,
	}
}

// record writes to the journal, logging failures without surfacing them.
func (s *Session) record(fn func(context.Context, Journal) error) {
	if s.journal == nil {
		return
	}
	if err := fn(context.Background(), s.journal); err != nil {
		s.logger.Warn("journal write failed", "session_id", s.id, "error", err)
	}
}
