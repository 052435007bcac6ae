// Package speech provides the synthesized-speech fallback for the listening
// drill. A Synth fetches audio for an utterance from a backend, caches it on
// disk and plays it through a Sink.
package speech

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/abhisek/kakezan/internal/playback"
)

// ErrUnavailable reports that no speech backend is configured.
var ErrUnavailable = errors.New("speech synthesis unavailable")

// Encoding identifies the container of fetched audio.
type Encoding string

const (
	EncodingMP3 Encoding = "mp3"
	EncodingPCM Encoding = "pcm" // s16le mono
)

// Clip is synthesized audio ready to play.
type Clip struct {
	Encoding   Encoding
	SampleRate int // PCM only
	Data       []byte
}

// Backend turns an utterance into audio.
type Backend interface {
	Name() string
	Fetch(ctx context.Context, u playback.Utterance) (Clip, error)
}

// Sink plays synthesized audio. *audio.Output satisfies it.
type Sink interface {
	PlayMP3(ctx context.Context, data []byte) error
	PlayPCM(ctx context.Context, data []byte, sampleRate int) error
}

// Synth implements playback.Synthesizer on top of a Backend.
type Synth struct {
	backend Backend
	sink    Sink
	cache   *Cache

	mu      sync.Mutex
	next    int
	pending map[int]context.CancelFunc
}

// New creates a Synth. cache may be nil to disable caching.
func New(backend Backend, sink Sink, cache *Cache) *Synth {
	return &Synth{
		backend: backend,
		sink:    sink,
		cache:   cache,
		pending: make(map[int]context.CancelFunc),
	}
}

// Speak fetches (or loads from cache) and plays u, returning when playback
// ends. CancelAll aborts it.
func (s *Synth) Speak(ctx context.Context, u playback.Utterance) error {
	ctx, done := s.track(ctx)
	defer done()

	key := cacheKey(s.backend.Name(), u)
	clip, ok := s.cache.Get(key)
	if !ok {
		var err error
		clip, err = s.backend.Fetch(ctx, u)
		if err != nil {
			return fmt.Errorf("%s: %w", s.backend.Name(), err)
		}
		// A failed cache write only costs a refetch next time.
		_ = s.cache.Put(key, clip)
	}

	switch clip.Encoding {
	case EncodingMP3:
		return s.sink.PlayMP3(ctx, clip.Data)
	case EncodingPCM:
		return s.sink.PlayPCM(ctx, clip.Data, clip.SampleRate)
	default:
		return fmt.Errorf("%s: unknown encoding %q", s.backend.Name(), clip.Encoding)
	}
}

// CancelAll aborts every utterance currently being fetched or played.
func (s *Synth) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, cancel := range s.pending {
		cancel()
		delete(s.pending, id)
	}
}

func (s *Synth) track(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	id := s.next
	s.next++
	s.pending[id] = cancel
	s.mu.Unlock()

	return ctx, func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
		cancel()
	}
}

// Silent is the synthesizer used when speech is switched off: every
// utterance reports ErrUnavailable and the step completes silently.
type Silent struct{}

func (Silent) Speak(context.Context, playback.Utterance) error { return ErrUnavailable }
func (Silent) CancelAll()                                      {}
