package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"
)

// ErrUnsupportedFormat is returned for resources that are neither WAV nor MP3.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// StreamSink plays a decoded stream. *Output satisfies it.
type StreamSink interface {
	Play(ctx context.Context, s beep.Streamer, format beep.Format) error
}

// Player plays pre-recorded clips from a file tree. Every failure (missing
// file, bad encoding, no sound device) is returned so the caller can fall
// back to speech.
type Player struct {
	fsys fs.FS
	sink StreamSink
}

// NewPlayer creates a player reading clips from fsys.
func NewPlayer(fsys fs.FS, sink StreamSink) *Player {
	return &Player{fsys: fsys, sink: sink}
}

// Play decodes the clip at name and blocks until it has played.
func (p *Player) Play(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := p.fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open clip: %w", err)
	}
	defer f.Close()

	s, format, err := decode(name, f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	defer s.Close()

	return p.sink.Play(ctx, s, format)
}

// Exists reports whether a clip is present without decoding it.
func (p *Player) Exists(name string) bool {
	_, err := fs.Stat(p.fsys, name)
	return err == nil
}

func decode(name string, r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".wav":
		return wav.Decode(r)
	case ".mp3":
		return mp3.Decode(r)
	default:
		return nil, beep.Format{}, ErrUnsupportedFormat
	}
}
