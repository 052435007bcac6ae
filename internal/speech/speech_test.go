package speech

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kakezan/internal/playback"
)

type fakeBackend struct {
	mu    sync.Mutex
	calls int
	clip  Clip
	err   error
	block bool
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Fetch(ctx context.Context, _ playback.Utterance) (Clip, error) {
	f.mu.Lock()
	f.calls++
	block := f.block
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return Clip{}, ctx.Err()
	}
	return f.clip, f.err
}

func (f *fakeBackend) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeSink struct {
	mp3  [][]byte
	pcm  [][]byte
	rate int
}

func (s *fakeSink) PlayMP3(_ context.Context, data []byte) error {
	s.mp3 = append(s.mp3, data)
	return nil
}

func (s *fakeSink) PlayPCM(_ context.Context, data []byte, rate int) error {
	s.pcm = append(s.pcm, data)
	s.rate = rate
	return nil
}

var utter = playback.Utterance{Text: "にご じゅう", Lang: "ja-JP", Rate: 0.95, Pitch: 1}

func TestSynth_PlaysByEncoding(t *testing.T) {
	sink := &fakeSink{}

	mp3 := New(&fakeBackend{clip: Clip{Encoding: EncodingMP3, Data: []byte("ID3")}}, sink, nil)
	require.NoError(t, mp3.Speak(context.Background(), utter))
	assert.Len(t, sink.mp3, 1)

	pcm := New(&fakeBackend{clip: Clip{Encoding: EncodingPCM, SampleRate: 24000, Data: []byte{0, 1}}}, sink, nil)
	require.NoError(t, pcm.Speak(context.Background(), utter))
	assert.Len(t, sink.pcm, 1)
	assert.Equal(t, 24000, sink.rate)

	bad := New(&fakeBackend{clip: Clip{Encoding: "ogg"}}, sink, nil)
	assert.Error(t, bad.Speak(context.Background(), utter))
}

func TestSynth_BackendError(t *testing.T) {
	s := New(&fakeBackend{err: errors.New("quota exceeded")}, &fakeSink{}, nil)
	err := s.Speak(context.Background(), utter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fake")
}

func TestSynth_CacheAvoidsRefetch(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	backend := &fakeBackend{clip: Clip{Encoding: EncodingPCM, SampleRate: 24000, Data: []byte{1, 2, 3, 4}}}
	sink := &fakeSink{}
	s := New(backend, sink, cache)

	require.NoError(t, s.Speak(context.Background(), utter))
	require.NoError(t, s.Speak(context.Background(), utter))
	assert.Equal(t, 1, backend.Calls())
	require.Len(t, sink.pcm, 2)
	assert.Equal(t, []byte{1, 2, 3, 4}, sink.pcm[1])
	assert.Equal(t, 24000, sink.rate)

	// A different rate is a different clip.
	slow := utter
	slow.Rate = 0.7
	require.NoError(t, s.Speak(context.Background(), slow))
	assert.Equal(t, 2, backend.Calls())
}

func TestNilCache(t *testing.T) {
	var c *Cache
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.NoError(t, c.Put("k", Clip{}))
	assert.NoError(t, c.Clear())
}

func TestCache_RoundTripAndClear(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir)
	require.NoError(t, err)

	key := cacheKey("openai", utter)
	_, ok := c.Get(key)
	assert.False(t, ok)

	require.NoError(t, c.Put(key, Clip{Encoding: EncodingMP3, Data: []byte("ID3\n\x00")}))
	clip, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, EncodingMP3, clip.Encoding)
	assert.Equal(t, []byte("ID3\n\x00"), clip.Data, "newlines in audio survive the header split")

	// A second cache over the same directory sees the entry on disk.
	again, err := NewCache(dir)
	require.NoError(t, err)
	_, ok = again.Get(key)
	assert.True(t, ok)

	require.NoError(t, c.Put("ffee", Clip{Encoding: "ogg", Data: []byte{1}}))
	_, ok = c.Get("ffee")
	assert.False(t, ok, "unknown encodings are misses")

	require.NoError(t, c.Clear())
	_, ok = c.Get(key)
	assert.False(t, ok)
	require.NoError(t, c.Put(key, Clip{Encoding: EncodingPCM, SampleRate: 16000, Data: []byte{9}}))
	clip, ok = c.Get(key)
	require.True(t, ok)
	assert.Equal(t, 16000, clip.SampleRate)
}

func TestSynth_CancelAll(t *testing.T) {
	backend := &fakeBackend{block: true}
	s := New(backend, &fakeSink{}, nil)

	errc := make(chan error, 1)
	go func() { errc <- s.Speak(context.Background(), utter) }()

	require.Eventually(t, func() bool { return backend.Calls() == 1 }, time.Second, time.Millisecond)
	s.CancelAll()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Speak did not return after CancelAll")
	}
}

func TestSilent(t *testing.T) {
	var s playback.Synthesizer = Silent{}
	assert.ErrorIs(t, s.Speak(context.Background(), utter), ErrUnavailable)
	s.CancelAll()
}

func TestGoogleTranslate_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != utter.Text || q.Get("tl") != "ja" || q.Get("client") != "tw-ob" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("User-Agent") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte("ID3-audio"))
	}))
	defer server.Close()

	clip, err := NewGoogleTranslate(server.URL).Fetch(context.Background(), utter)
	require.NoError(t, err)
	assert.Equal(t, EncodingMP3, clip.Encoding)
	assert.Equal(t, "ID3-audio", string(clip.Data))
}

func TestGoogleTranslate_Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewGoogleTranslate(server.URL).Fetch(context.Background(), utter)
	assert.ErrorContains(t, err, "503")
}

func TestOpenAI_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/speech" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("ID3-openai"))
	}))
	defer server.Close()

	o, err := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)

	clip, err := o.Fetch(context.Background(), utter)
	require.NoError(t, err)
	assert.Equal(t, EncodingMP3, clip.Encoding)
	assert.Equal(t, "ID3-openai", string(clip.Data))
}

func TestNewSynthesizer(t *testing.T) {
	ctx := context.Background()

	s, err := NewSynthesizer(ctx, Config{Backend: "none"}, &fakeSink{})
	require.NoError(t, err)
	assert.IsType(t, Silent{}, s)

	s, err = NewSynthesizer(ctx, Config{Backend: "google", CacheDir: "-"}, &fakeSink{})
	require.NoError(t, err)
	assert.IsType(t, &Synth{}, s)

	_, err = NewSynthesizer(ctx, Config{Backend: "openai"}, &fakeSink{})
	assert.ErrorContains(t, err, "API key")

	_, err = NewSynthesizer(ctx, Config{Backend: "espeak"}, &fakeSink{})
	assert.ErrorContains(t, err, "unknown speech backend")
}
