package playback

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/store"
)

// Engine sequences the spoken phrases of one dan:
//
//	[intro → pause] → phrase → gap → phrase → gap → … → last phrase
//
// Every run holds a token. Each user action that changes what should be
// heard invalidates the live token first: the token is bumped, the gap
// timer stopped, the run's context cancelled and pending speech dropped,
// all under one lock. A run re-checks its token before every visible
// effect (starting audio, moving the index, scheduling a timer), so work
// belonging to an old token unwinds without side effects.
//
// Engine is safe for concurrent use.
type Engine struct {
	clips   ClipPlayer
	synth   Synthesizer
	clock   clockwork.Clock
	journal Journal
	onStep  func(StepEvent)
	logger  *slog.Logger

	mu          sync.Mutex
	settings    Settings
	phase       Phase
	dan         int
	list        []catalog.Phrase
	index       int
	autoPlay    bool
	introPlayed bool
	running     bool
	last        *StepEvent
	closed      bool

	token  uint64
	cancel context.CancelFunc
	timer  clockwork.Timer

	updates chan State
	wg      sync.WaitGroup
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used for the intro pause and the gap.
// Tests pass a clockwork.FakeClock.
func WithClock(c clockwork.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithJournal records every completed step.
func WithJournal(j Journal) Option {
	return func(e *Engine) { e.journal = j }
}

// WithStepHook calls fn after every completed step, outside the engine lock.
func WithStepHook(fn func(StepEvent)) Option {
	return func(e *Engine) { e.onStep = fn }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine in PhaseSelecting with auto-play on.
// A nil synth behaves as unavailable speech.
func New(clips ClipPlayer, synth Synthesizer, settings Settings, opts ...Option) *Engine {
	e := &Engine{
		clips:    clips,
		synth:    synth,
		clock:    clockwork.NewRealClock(),
		logger:   slog.Default(),
		settings: settings.Normalize(),
		phase:    PhaseSelecting,
		autoPlay: true,
		updates:  make(chan State, 16),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Updates delivers a State after every change. Slow readers miss
// intermediate states but always see the newest one. The channel is closed
// by Close.
func (e *Engine) Updates() <-chan State {
	return e.updates
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// Select starts listening to dan from its first phrase. The intro plays
// again because the round is new.
func (e *Engine) Select(dan int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if dan < e.settings.MinDan || dan > e.settings.MaxDan || !catalog.ValidDan(dan) {
		return ErrDanOutOfRange
	}

	e.invalidateLocked()
	e.phase = PhasePlaying
	e.dan = dan
	e.list = catalog.PhrasesForDan(dan)
	e.index = 0
	e.introPlayed = false
	e.last = nil
	if e.autoPlay {
		e.startLocked(false)
	}
	e.notifyLocked()
	return nil
}

// BackToSelect stops playback and returns to dan selection.
func (e *Engine) BackToSelect() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.invalidateLocked()
	e.phase = PhaseSelecting
	e.index = 0
	e.introPlayed = false
	e.notifyLocked()
}

// Pause turns auto-play off and silences the current run.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.closed && e.autoPlay {
		e.pauseLocked()
	}
}

// Resume turns auto-play on and continues from the current phrase.
// It is a no-op while auto-play is already on, so repeated presses never
// start a second stream.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.closed && !e.autoPlay {
		e.resumeLocked()
	}
}

// TogglePause pauses when auto-playing and resumes otherwise. The choice
// and the switch happen under one lock hold, so N toggles always flip
// auto-play N times.
func (e *Engine) TogglePause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case e.closed:
	case e.autoPlay:
		e.pauseLocked()
	default:
		e.resumeLocked()
	}
}

func (e *Engine) pauseLocked() {
	e.autoPlay = false
	e.invalidateLocked()
	e.notifyLocked()
}

func (e *Engine) resumeLocked() {
	e.autoPlay = true
	if e.phase == PhasePlaying {
		e.invalidateLocked()
		e.startLocked(false)
	}
	e.notifyLocked()
}

// Replay speaks the current phrase again. With auto-play on, the sequence
// continues from there.
func (e *Engine) Replay() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if e.phase != PhasePlaying {
		return ErrNotPlaying
	}
	e.invalidateLocked()
	e.startLocked(true)
	e.notifyLocked()
	return nil
}

// Skip moves to the next phrase. On the last phrase it only silences the
// current run. With auto-play on, the new phrase plays immediately.
func (e *Engine) Skip() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if e.phase != PhasePlaying {
		return ErrNotPlaying
	}
	e.invalidateLocked()
	if e.index < len(e.list)-1 {
		e.index++
		if e.autoPlay {
			e.startLocked(false)
		}
	}
	e.notifyLocked()
	return nil
}

// UpdateSettings applies new settings. A run in progress restarts the
// current step under a new token so the change is heard immediately.
func (e *Engine) UpdateSettings(s Settings) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.settings = s.Normalize()
	if e.phase == PhasePlaying && e.autoPlay {
		e.invalidateLocked()
		e.startLocked(false)
	}
	e.notifyLocked()
}

// Close invalidates the live token, waits for in-flight steps to unwind
// and closes the Updates channel.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.invalidateLocked()
	e.mu.Unlock()

	e.wg.Wait()
	close(e.updates)
	return nil
}

// invalidateLocked retires the live token. After it returns no older run
// can produce a visible effect.
func (e *Engine) invalidateLocked() {
	e.token++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	if e.synth != nil {
		e.synth.CancelAll()
	}
	e.running = false
}

// startLocked launches a run holding the current token.
func (e *Engine) startLocked(replay bool) {
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.running = true
	tok := e.token

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.run(ctx, tok, replay)
	}()
}

func (e *Engine) liveLocked(tok uint64) bool {
	return !e.closed && e.token == tok
}

func (e *Engine) live(tok uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.liveLocked(tok)
}

// run plays from the current index: the intro when due, the phrase, then
// the gap timer that advances to the next phrase.
func (e *Engine) run(ctx context.Context, tok uint64, replay bool) {
	e.mu.Lock()
	if !e.liveLocked(tok) {
		e.mu.Unlock()
		return
	}
	dan, s := e.dan, e.settings
	introDue := !replay && e.index == 0 && !e.introPlayed
	if introDue {
		// Marked before playing: an interrupted intro is not repeated.
		e.introPlayed = true
	}
	e.mu.Unlock()

	if introDue && s.IntroEnabled {
		e.step(ctx, tok, s, StepIntro, dan, 0)
		if !e.live(tok) {
			return
		}
		if !sleep(ctx, e.clock, s.IntroPause) {
			return
		}
	}

	e.mu.Lock()
	if !e.liveLocked(tok) {
		e.mu.Unlock()
		return
	}
	phrase := e.list[e.index]
	s = e.settings
	e.mu.Unlock()

	e.step(ctx, tok, s, StepPhrase, phrase.Dan, phrase.Multiplier)

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.liveLocked(tok) {
		return
	}
	if !e.autoPlay || e.index >= len(e.list)-1 {
		e.running = false
		e.notifyLocked()
		return
	}
	e.timer = e.clock.AfterFunc(s.Gap, func() { e.advance(tok) })
}

// advance fires when the gap after a phrase elapses.
func (e *Engine) advance(tok uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.liveLocked(tok) {
		return
	}
	e.timer = nil
	if e.index >= len(e.list)-1 {
		e.running = false
		e.notifyLocked()
		return
	}
	e.index++
	e.invalidateLocked()
	e.startLocked(false)
	e.notifyLocked()
}

// step voices one phrase: the clip first, speech on failure, silence when
// speech fails too. Nothing is reported if the token dies on the way.
func (e *Engine) step(ctx context.Context, tok uint64, s Settings, kind StepKind, dan, multiplier int) {
	var clipPath, text string
	if kind == StepIntro {
		clipPath = s.IntroPath(dan)
		text = catalog.IntroText(dan)
	} else {
		clipPath = s.PhrasePath(dan, multiplier)
		if p, ok := catalog.LookupPhrase(dan, multiplier); ok {
			text = p.Reading
		}
	}

	ev := StepEvent{Token: tok, Kind: kind, Dan: dan, Multiplier: multiplier, Source: SourceClip}

	if !e.live(tok) {
		return
	}
	err := e.play(ctx, clipPath)
	if err != nil {
		if !e.live(tok) {
			return
		}
		e.logger.Debug("clip unavailable, falling back to speech", "path", clipPath, "error", err)

		ev.Source = SourceSpeech
		ev.Err = err
		if serr := e.speak(ctx, text, s); serr != nil {
			e.logger.Debug("speech unavailable", "text", text, "error", serr)
			ev.Source = SourceSilent
			ev.Err = serr
		}
	}

	e.mu.Lock()
	if !e.liveLocked(tok) {
		e.mu.Unlock()
		return
	}
	e.last = &ev
	e.notifyLocked()
	e.mu.Unlock()

	e.report(ev)
}

func (e *Engine) play(ctx context.Context, clipPath string) error {
	if e.clips == nil {
		return errNoClips
	}
	return e.clips.Play(ctx, clipPath)
}

func (e *Engine) speak(ctx context.Context, text string, s Settings) error {
	if e.synth == nil {
		return errNoSpeech
	}
	return e.synth.Speak(ctx, Utterance{Text: text, Lang: s.Lang, Rate: s.Rate, Pitch: s.Pitch})
}

func (e *Engine) report(ev StepEvent) {
	if e.onStep != nil {
		e.onStep(ev)
	}
	if e.journal == nil {
		return
	}
	data := store.PlaybackEventData{
		Token:      int64(ev.Token),
		Kind:       ev.Kind.String(),
		Dan:        ev.Dan,
		Multiplier: ev.Multiplier,
		Source:     ev.Source.String(),
	}
	if ev.Err != nil {
		data.ErrorMessage = ev.Err.Error()
	}
	if err := e.journal.AppendPlaybackEvent(context.Background(), data); err != nil {
		e.logger.Warn("journal write failed", "error", err)
	}
}

func (e *Engine) stateLocked() State {
	st := State{
		Phase:    e.phase,
		Dan:      e.dan,
		Index:    e.index,
		Total:    len(e.list),
		AutoPlay: e.autoPlay,
		Running:  e.running,
		Token:    e.token,
		Settings: e.settings,
	}
	if e.phase == PhasePlaying && e.index < len(e.list) {
		st.Current = e.list[e.index]
		st.AtEnd = e.index >= len(e.list)-1
	}
	if e.last != nil {
		ev := *e.last
		st.Last = &ev
	}
	return st
}

// notifyLocked publishes the current state without blocking. When the
// buffer is full the oldest pending state is dropped.
func (e *Engine) notifyLocked() {
	if e.closed {
		return
	}
	st := e.stateLocked()
	select {
	case e.updates <- st:
		return
	default:
	}
	select {
	case <-e.updates:
	default:
	}
	select {
	case e.updates <- st:
	default:
	}
}
