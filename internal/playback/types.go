package playback

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/store"
)

var (
	// ErrDanOutOfRange is returned by Select for a dan outside the
	// configured range.
	ErrDanOutOfRange = errors.New("dan out of range")

	// ErrNotPlaying is returned by operations that need a selected dan.
	ErrNotPlaying = errors.New("no dan selected")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("playback engine closed")
)

// Phase is the top-level state of the listening screen.
type Phase int

const (
	PhaseSelecting Phase = iota
	PhasePlaying
)

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhasePlaying:
		return "playing"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// StepKind distinguishes the introductory phrase from a table phrase.
type StepKind int

const (
	StepIntro StepKind = iota
	StepPhrase
)

func (k StepKind) String() string {
	if k == StepIntro {
		return "intro"
	}
	return "phrase"
}

// Source reports how a step was voiced.
type Source int

const (
	SourceClip   Source = iota // pre-recorded resource
	SourceSpeech               // synthesized fallback
	SourceSilent               // both tiers failed; completed as a no-op
)

func (s Source) String() string {
	switch s {
	case SourceClip:
		return "clip"
	case SourceSpeech:
		return "speech"
	default:
		return "silent"
	}
}

// StepEvent describes one completed step. Steps abandoned by invalidation
// are never reported.
type StepEvent struct {
	Token      uint64
	Kind       StepKind
	Dan        int
	Multiplier int // zero for intro steps
	Source     Source

	// Err is the last collaborator error when the step fell back.
	Err error
}

// Utterance is one speech-synthesis request.
type Utterance struct {
	Text  string
	Lang  string
	Rate  float64
	Pitch float64
}

// ClipPlayer plays a pre-recorded resource and returns when playback ends.
// A missing or undecodable resource is an error. Play must stop early and
// return when ctx is cancelled.
type ClipPlayer interface {
	Play(ctx context.Context, path string) error
}

// Synthesizer speaks text. Speak returns when the utterance finishes or
// fails; CancelAll drops the current and any pending utterances.
type Synthesizer interface {
	Speak(ctx context.Context, u Utterance) error
	CancelAll()
}

// Journal receives completed steps. store.EventRepo satisfies it.
type Journal interface {
	AppendPlaybackEvent(ctx context.Context, data store.PlaybackEventData) error
}

// State is a read-only view of the engine for rendering.
type State struct {
	Phase    Phase
	Dan      int
	Index    int
	Total    int
	Current  catalog.Phrase // zero while selecting
	AtEnd    bool
	AutoPlay bool

	// Running is true while a run holds the live token: a step is in
	// flight or the gap timer is pending.
	Running bool

	Token    uint64
	Settings Settings

	// Last is the most recent completed step, nil until one completes.
	Last *StepEvent
}

var (
	errNoClips  = errors.New("no clip player")
	errNoSpeech = errors.New("no speech synthesizer")
)
