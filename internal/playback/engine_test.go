package playback

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = time.Second
	tick    = time.Millisecond
)

type harness struct {
	e     *Engine
	clock *testClock
	clips *fakeClips
	synth *fakeSynth
	steps *stepLog
}

func newHarness(t *testing.T, s Settings, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		clock: newTestClock(),
		clips: &fakeClips{missing: map[string]bool{}},
		synth: &fakeSynth{},
		steps: &stepLog{},
	}
	opts = append([]Option{WithClock(h.clock), WithStepHook(h.steps.record)}, opts...)
	h.e = New(h.clips, h.synth, s, opts...)
	t.Cleanup(func() { h.e.Close() })
	return h
}

func noIntro() Settings {
	s := DefaultSettings()
	s.IntroEnabled = false
	return s
}

func (h *harness) waitPlayed(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return len(h.clips.Played()) == n }, waitFor, tick,
		"want %d plays, got %v", n, h.clips.Played())
}

func (h *harness) waitPending(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.clock.Pending() == n }, waitFor, tick)
}

func TestSelect_IntroFallsBackToSpeech(t *testing.T) {
	s := DefaultSettings()
	h := newHarness(t, s)
	h.clips.missing["kuku/intro-6.wav"] = true

	require.NoError(t, h.e.Select(6))
	tok := h.e.Snapshot().Token

	// Intro clip fails, speech speaks the intro, then the pause timer waits.
	require.Eventually(t, func() bool {
		return len(h.synth.Spoken()) == 1 && h.clock.Pending() == 1
	}, waitFor, tick)

	assert.Equal(t, []string{"kuku/intro-6.wav"}, h.clips.Played(), "phrase must wait for the pause")
	u := h.synth.Spoken()[0]
	assert.Equal(t, "ろくのだん、いくよ", u.Text)
	assert.Equal(t, "ja-JP", u.Lang)
	assert.Equal(t, 0.95, u.Rate)
	assert.Equal(t, 1.0, u.Pitch)

	h.clock.Advance(249 * time.Millisecond)
	assert.Len(t, h.clips.Played(), 1)

	h.clock.Advance(time.Millisecond)
	h.waitPlayed(t, 2)
	h.waitPending(t, 1) // gap timer
	assert.Equal(t, "kuku/6-1.wav", h.clips.Played()[1])

	require.Eventually(t, func() bool { return len(h.steps.Events()) == 2 }, waitFor, tick)
	evs := h.steps.Events()
	assert.Equal(t, StepIntro, evs[0].Kind)
	assert.Equal(t, SourceSpeech, evs[0].Source)
	assert.ErrorIs(t, evs[0].Err, errMissing)
	assert.Equal(t, StepPhrase, evs[1].Kind)
	assert.Equal(t, SourceClip, evs[1].Source)
	assert.Equal(t, 1, evs[1].Multiplier)
	for _, ev := range evs {
		assert.Equal(t, tok, ev.Token, "every step of the run holds the same token")
	}
	assert.Empty(t, h.synth.Spoken()[1:], "phrase clip succeeded, no extra speech")
}

func TestSequence_AdvancesAfterGap(t *testing.T) {
	h := newHarness(t, noIntro())

	require.NoError(t, h.e.Select(3))
	h.waitPlayed(t, 1)
	h.waitPending(t, 1)

	h.clock.Advance(449 * time.Millisecond)
	assert.Equal(t, 0, h.e.Snapshot().Index)

	h.clock.Advance(time.Millisecond)
	h.waitPlayed(t, 2)
	h.waitPending(t, 1)

	st := h.e.Snapshot()
	assert.Equal(t, 1, st.Index)
	assert.Equal(t, 2, st.Current.Multiplier)
	assert.Equal(t, []string{"kuku/3-1.wav", "kuku/3-2.wav"}, h.clips.Played())
}

func TestPauseMidGapThenResume_SingleAdvance(t *testing.T) {
	h := newHarness(t, noIntro())

	require.NoError(t, h.e.Select(6))
	h.waitPlayed(t, 1)
	h.waitPending(t, 1)

	h.e.Pause()
	assert.Equal(t, 0, h.clock.Pending(), "pause stops the gap timer")
	assert.False(t, h.e.Snapshot().AutoPlay)

	// Time passing while paused changes nothing.
	h.clock.Advance(time.Second)
	assert.Equal(t, 0, h.e.Snapshot().Index)

	h.e.Resume()
	tok := h.e.Snapshot().Token
	h.e.Resume() // already auto-playing: no second stream
	assert.Equal(t, tok, h.e.Snapshot().Token)

	h.waitPlayed(t, 2)
	h.waitPending(t, 1)

	h.clock.Advance(450 * time.Millisecond)
	h.waitPlayed(t, 3)
	h.waitPending(t, 1)

	assert.Equal(t, 1, h.e.Snapshot().Index, "exactly one increment for the gap")
	assert.Equal(t, []string{"kuku/6-1.wav", "kuku/6-1.wav", "kuku/6-2.wav"}, h.clips.Played())
}

func TestStaleSlowClip_NoStateChange(t *testing.T) {
	h := newHarness(t, noIntro())
	gate := h.clips.gate("kuku/6-1.wav")

	require.NoError(t, h.e.Select(6))
	h.waitPlayed(t, 1) // first run is stuck inside Play

	require.NoError(t, h.e.Skip())
	h.waitPlayed(t, 2)
	h.waitPending(t, 1)

	// The slow resource resolves after the user moved on. Both runs have
	// returned once wg drains; the engine is still open, so only the token
	// check can have kept the stale run quiet.
	close(gate)
	h.e.wg.Wait()

	st := h.e.Snapshot()
	assert.Equal(t, PhasePlaying, st.Phase)
	assert.Equal(t, 1, st.Index)
	assert.Equal(t, 1, h.clock.Pending(), "the stale run must not schedule a second gap")
	evs := h.steps.Events()
	require.Len(t, evs, 1, "the stale step must not be reported")
	assert.Equal(t, 2, evs[0].Multiplier)
	require.NotNil(t, st.Last)
	assert.Equal(t, 2, st.Last.Multiplier)

	h.clock.Advance(450 * time.Millisecond)
	h.waitPlayed(t, 3)
	assert.Equal(t, 2, h.e.Snapshot().Index)
	assert.Equal(t, "kuku/6-3.wav", h.clips.Played()[2])
}

func TestStaleAdvance_Ignored(t *testing.T) {
	h := newHarness(t, noIntro())

	require.NoError(t, h.e.Select(6))
	h.waitPending(t, 1)
	tok := h.e.Snapshot().Token

	h.e.Pause()
	h.e.advance(tok) // a gap callback that raced with Pause

	st := h.e.Snapshot()
	assert.Equal(t, 0, st.Index)
	assert.False(t, st.Running)
	assert.Len(t, h.clips.Played(), 1)
}

func TestSpeechUnavailable_CompletesSilently(t *testing.T) {
	h := newHarness(t, noIntro())
	h.clips.missing["kuku/4-1.wav"] = true
	h.synth.err = errors.New("no japanese voice")

	require.NoError(t, h.e.Select(4))
	h.waitPending(t, 1) // sequence continues despite both tiers failing

	require.Eventually(t, func() bool { return len(h.steps.Events()) == 1 }, waitFor, tick)
	assert.Equal(t, SourceSilent, h.steps.Events()[0].Source)

	h.clock.Advance(450 * time.Millisecond)
	require.Eventually(t, func() bool { return h.e.Snapshot().Index == 1 }, waitFor, tick)
}

func TestLastPhrase_StopsSequence(t *testing.T) {
	h := newHarness(t, noIntro())

	require.NoError(t, h.e.Select(6))
	h.waitPending(t, 1)
	h.e.Pause()

	for i := 0; i < 12; i++ {
		require.NoError(t, h.e.Skip())
	}
	st := h.e.Snapshot()
	assert.Equal(t, 8, st.Index)
	assert.True(t, st.AtEnd)
	assert.Len(t, h.clips.Played(), 1, "skipping while paused plays nothing")

	h.e.Resume()
	h.waitPlayed(t, 2)
	require.Eventually(t, func() bool { return !h.e.Snapshot().Running }, waitFor, tick)
	assert.Equal(t, 0, h.clock.Pending(), "no timer after the last phrase")
	assert.Equal(t, "kuku/6-9.wav", h.clips.Played()[1])
}

func TestBackToSelect_ResetsIntro(t *testing.T) {
	s := DefaultSettings()
	s.IntroPause = 0
	h := newHarness(t, s)

	require.NoError(t, h.e.Select(6))
	h.waitPlayed(t, 2)
	h.waitPending(t, 1)

	h.e.BackToSelect()
	st := h.e.Snapshot()
	assert.Equal(t, PhaseSelecting, st.Phase)
	assert.Equal(t, 0, st.Index)
	assert.Equal(t, 0, h.clock.Pending())

	require.NoError(t, h.e.Select(6))
	h.waitPlayed(t, 4)
	assert.Equal(t, []string{
		"kuku/intro-6.wav", "kuku/6-1.wav",
		"kuku/intro-6.wav", "kuku/6-1.wav",
	}, h.clips.Played())
}

func TestIntroPlaysOncePerRound(t *testing.T) {
	s := DefaultSettings()
	s.IntroPause = 0
	h := newHarness(t, s)

	require.NoError(t, h.e.Select(2))
	h.waitPlayed(t, 2)
	h.waitPending(t, 1)

	// Resuming at index 0 does not repeat the intro.
	h.e.Pause()
	h.e.Resume()
	h.waitPlayed(t, 3)
	assert.Equal(t, "kuku/2-1.wav", h.clips.Played()[2])
}

func TestReplay(t *testing.T) {
	h := newHarness(t, noIntro())

	require.ErrorIs(t, h.e.Replay(), ErrNotPlaying)
	require.ErrorIs(t, h.e.Skip(), ErrNotPlaying)

	require.NoError(t, h.e.Select(5))
	h.waitPending(t, 1)
	h.e.Pause()

	// Paused: replay speaks once and schedules nothing.
	require.NoError(t, h.e.Replay())
	h.waitPlayed(t, 2)
	require.Eventually(t, func() bool { return !h.e.Snapshot().Running }, waitFor, tick)
	assert.Equal(t, 0, h.clock.Pending())

	// Auto-playing: replay continues the sequence.
	h.e.Resume()
	h.waitPending(t, 1)
	require.NoError(t, h.e.Replay())
	h.waitPlayed(t, 4)
	h.waitPending(t, 1)
	assert.Equal(t, 0, h.e.Snapshot().Index)
}

func TestSelect_OutOfRange(t *testing.T) {
	s := noIntro()
	s.MinDan, s.MaxDan = 2, 5
	h := newHarness(t, s)

	assert.ErrorIs(t, h.e.Select(1), ErrDanOutOfRange)
	assert.ErrorIs(t, h.e.Select(6), ErrDanOutOfRange)
	assert.ErrorIs(t, h.e.Select(0), ErrDanOutOfRange)
	assert.Equal(t, PhaseSelecting, h.e.Snapshot().Phase)
	assert.NoError(t, h.e.Select(5))
}

func TestSelect_SwitchDanResetsIndex(t *testing.T) {
	h := newHarness(t, noIntro())

	require.NoError(t, h.e.Select(6))
	h.waitPending(t, 1)
	h.clock.Advance(450 * time.Millisecond)
	require.Eventually(t, func() bool { return h.e.Snapshot().Index == 1 }, waitFor, tick)

	require.NoError(t, h.e.Select(7))
	st := h.e.Snapshot()
	assert.Equal(t, 7, st.Dan)
	assert.Equal(t, 0, st.Index)
	assert.Equal(t, 9, st.Total)
}

func TestUpdateSettings_RestartsStep(t *testing.T) {
	s := noIntro()
	h := newHarness(t, s)

	require.NoError(t, h.e.Select(6))
	h.waitPending(t, 1)

	s.Gap = 800 * time.Millisecond
	h.e.UpdateSettings(s)
	h.waitPlayed(t, 2)
	h.waitPending(t, 1)

	h.clock.Advance(450 * time.Millisecond)
	assert.Equal(t, 0, h.e.Snapshot().Index, "old gap no longer applies")

	h.clock.Advance(350 * time.Millisecond)
	require.Eventually(t, func() bool { return h.e.Snapshot().Index == 1 }, waitFor, tick)
}

func TestInvalidationCancelsSpeech(t *testing.T) {
	h := newHarness(t, noIntro())

	require.NoError(t, h.e.Select(6))
	before := h.synth.Cancels()
	h.e.Pause()
	require.NoError(t, h.e.Skip())
	assert.Equal(t, before+2, h.synth.Cancels())
}

func TestJournalRecordsSteps(t *testing.T) {
	j := &fakeJournal{}
	h := newHarness(t, noIntro(), WithJournal(j))
	h.clips.missing["kuku/8-1.wav"] = true

	require.NoError(t, h.e.Select(8))
	require.Eventually(t, func() bool { return len(j.Data()) == 1 }, waitFor, tick)

	d := j.Data()[0]
	assert.Equal(t, "phrase", d.Kind)
	assert.Equal(t, "speech", d.Source)
	assert.Equal(t, 8, d.Dan)
	assert.Equal(t, 1, d.Multiplier)
	assert.Equal(t, errMissing.Error(), d.ErrorMessage)
}

func TestUpdatesAndClose(t *testing.T) {
	h := newHarness(t, noIntro())

	require.NoError(t, h.e.Select(9))
	select {
	case st := <-h.e.Updates():
		assert.Equal(t, PhasePlaying, st.Phase)
	case <-time.After(waitFor):
		t.Fatal("no state update after Select")
	}

	require.NoError(t, h.e.Close())
	require.NoError(t, h.e.Close())
	assert.ErrorIs(t, h.e.Select(2), ErrClosed)

	deadline := time.After(waitFor)
	for {
		select {
		case _, ok := <-h.e.Updates():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("updates channel not closed")
		}
	}
}

func TestTogglePause_ConcurrentTogglesAllFlip(t *testing.T) {
	h := newHarness(t, noIntro())
	require.NoError(t, h.e.Select(6))
	h.waitPending(t, 1)

	const toggles = 64
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.e.TogglePause()
		}()
	}
	wg.Wait()
	assert.True(t, h.e.Snapshot().AutoPlay, "an even number of toggles ends where it started")

	h.e.TogglePause()
	assert.False(t, h.e.Snapshot().AutoPlay)
	require.Eventually(t, func() bool { return !h.e.Snapshot().Running }, waitFor, tick)
	assert.Equal(t, 0, h.clock.Pending())
}

func TestConcurrentControls(t *testing.T) {
	h := newHarness(t, noIntro())
	require.NoError(t, h.e.Select(6))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				switch (i + j) % 4 {
				case 0:
					h.e.Skip()
				case 1:
					h.e.Replay()
				case 2:
					h.e.TogglePause()
				case 3:
					h.clock.Advance(450 * time.Millisecond)
				}
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, h.e.Close())

	st := h.e.Snapshot()
	assert.GreaterOrEqual(t, st.Index, 0)
	assert.Less(t, st.Index, 9)
	for _, ev := range h.steps.Events() {
		assert.LessOrEqual(t, ev.Token, st.Token)
	}
}
