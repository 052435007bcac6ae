package playback

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/abhisek/kakezan/internal/store"
)

// testClock is a clockwork fake clock that also counts live timers, so
// tests can assert that a pause or skip left no gap timer behind.
type testClock struct {
	*clockwork.FakeClock

	mu   sync.Mutex
	live map[*liveTimer]struct{}
}

func newTestClock() *testClock {
	return &testClock{
		FakeClock: clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		live:      map[*liveTimer]struct{}{},
	}
}

type liveTimer struct {
	clockwork.Timer
	clock *testClock
}

func (c *testClock) AfterFunc(d time.Duration, f func()) clockwork.Timer {
	lt := &liveTimer{clock: c}
	c.mu.Lock()
	c.live[lt] = struct{}{}
	c.mu.Unlock()

	lt.Timer = c.FakeClock.AfterFunc(d, func() {
		c.forget(lt)
		f()
	})
	return lt
}

func (t *liveTimer) Stop() bool {
	stopped := t.Timer.Stop()
	if stopped {
		t.clock.forget(t)
	}
	return stopped
}

func (c *testClock) forget(t *liveTimer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.live, t)
}

// Pending counts timers that have neither fired nor been stopped.
func (c *testClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}

// fakeClips records every Play call. Paths in missing fail; a path in gates
// blocks until its channel is closed, ignoring cancellation, to model a slow
// resource that resolves after the user moved on.
type fakeClips struct {
	mu      sync.Mutex
	played  []string
	missing map[string]bool
	gates   map[string]chan struct{}
}

var errMissing = errors.New("resource not found")

func (f *fakeClips) Play(ctx context.Context, path string) error {
	f.mu.Lock()
	f.played = append(f.played, path)
	gate := f.gates[path]
	delete(f.gates, path)
	missing := f.missing[path]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if missing {
		return errMissing
	}
	return nil
}

func (f *fakeClips) Played() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.played...)
}

func (f *fakeClips) gate(path string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gates == nil {
		f.gates = map[string]chan struct{}{}
	}
	ch := make(chan struct{})
	f.gates[path] = ch
	return ch
}

// fakeSynth records utterances and cancellations.
type fakeSynth struct {
	mu      sync.Mutex
	spoken  []Utterance
	cancels int
	err     error
}

func (f *fakeSynth) Speak(_ context.Context, u Utterance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, u)
	return f.err
}

func (f *fakeSynth) CancelAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
}

func (f *fakeSynth) Spoken() []Utterance {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Utterance(nil), f.spoken...)
}

func (f *fakeSynth) Cancels() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancels
}

// stepLog collects reported steps.
type stepLog struct {
	mu     sync.Mutex
	events []StepEvent
}

func (l *stepLog) record(ev StepEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *stepLog) Events() []StepEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]StepEvent(nil), l.events...)
}

type fakeJournal struct {
	mu   sync.Mutex
	data []store.PlaybackEventData
}

func (j *fakeJournal) AppendPlaybackEvent(_ context.Context, d store.PlaybackEventData) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.data = append(j.data, d)
	return nil
}

func (j *fakeJournal) Data() []store.PlaybackEventData {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]store.PlaybackEventData(nil), j.data...)
}
