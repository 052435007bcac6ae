package audio

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// countingSink drains the stream and records what it saw.
type countingSink struct {
	samples int
	format  beep.Format
}

func (c *countingSink) Play(_ context.Context, s beep.Streamer, format beep.Format) error {
	c.format = format
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		c.samples += n
		if !ok {
			return s.Err()
		}
	}
}

func encodeSilence(t *testing.T, samples int) []byte {
	t.Helper()
	p := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 22050, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, beep.Silence(samples), format); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
	f.Close()

	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestPlayer_PlaysWav(t *testing.T) {
	fsys := fstest.MapFS{
		"kuku/2-5.wav": {Data: encodeSilence(t, 1000)},
	}
	sink := &countingSink{}
	p := NewPlayer(fsys, sink)

	if err := p.Play(context.Background(), "kuku/2-5.wav"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if sink.samples != 1000 {
		t.Errorf("samples = %d, want 1000", sink.samples)
	}
	if sink.format.SampleRate != 22050 {
		t.Errorf("sample rate = %d, want 22050", sink.format.SampleRate)
	}
}

func TestPlayer_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"kuku/bad.wav":   {Data: []byte("not a wav file")},
		"kuku/clip.ogg":  {Data: []byte("OggS")},
		"kuku/empty.mp3": {Data: nil},
	}
	p := NewPlayer(fsys, &countingSink{})

	tests := []struct {
		name   string
		target error
	}{
		{"kuku/missing.wav", fs.ErrNotExist},
		{"kuku/bad.wav", nil},
		{"kuku/clip.ogg", ErrUnsupportedFormat},
		{"kuku/empty.mp3", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Play(context.Background(), tt.name)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestPlayer_CancelledContext(t *testing.T) {
	fsys := fstest.MapFS{"kuku/1-1.wav": {Data: encodeSilence(t, 10)}}
	sink := &countingSink{}
	p := NewPlayer(fsys, sink)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Play(ctx, "kuku/1-1.wav"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if sink.samples != 0 {
		t.Error("cancelled play must not reach the sink")
	}
}

func TestPlayer_Exists(t *testing.T) {
	p := NewPlayer(fstest.MapFS{"kuku/intro-3.wav": {}}, &countingSink{})
	if !p.Exists("kuku/intro-3.wav") {
		t.Error("expected clip to exist")
	}
	if p.Exists("kuku/intro-4.wav") {
		t.Error("expected clip to be missing")
	}
}

func TestPCMStreamer(t *testing.T) {
	// Two samples: 0x4000 (0.5) and 0xC000 (-0.5), plus a dangling byte.
	s := NewPCMStreamer([]byte{0x00, 0x40, 0x00, 0xC0, 0x01})

	buf := make([][2]float64, 4)
	n, ok := s.Stream(buf)
	if !ok || n != 2 {
		t.Fatalf("Stream = (%d, %v), want (2, true)", n, ok)
	}
	if buf[0] != [2]float64{0.5, 0.5} || buf[1] != [2]float64{-0.5, -0.5} {
		t.Errorf("samples = %v", buf[:2])
	}
	if n, ok := s.Stream(buf); ok || n != 0 {
		t.Errorf("drained Stream = (%d, %v), want (0, false)", n, ok)
	}
}
