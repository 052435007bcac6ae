package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the speaker rate; streams at other rates are resampled.
const DefaultSampleRate beep.SampleRate = 44100

// Output plays decoded streams through the system speaker. The speaker is
// initialized on first use so that commands which never play audio never
// touch the sound device.
type Output struct {
	rate beep.SampleRate

	once    sync.Once
	initErr error
}

// NewOutput creates an output at rate. Zero selects DefaultSampleRate.
func NewOutput(rate beep.SampleRate) *Output {
	if rate == 0 {
		rate = DefaultSampleRate
	}
	return &Output{rate: rate}
}

func (o *Output) init() error {
	o.once.Do(func() {
		if err := speaker.Init(o.rate, o.rate.N(100*time.Millisecond)); err != nil {
			o.initErr = fmt.Errorf("init speaker: %w", err)
		}
	})
	return o.initErr
}

// Play streams s to the speaker and blocks until it drains. Cancelling ctx
// silences only this stream.
func (o *Output) Play(ctx context.Context, s beep.Streamer, format beep.Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.init(); err != nil {
		return err
	}

	src := s
	if format.SampleRate != o.rate {
		src = beep.Resample(4, format.SampleRate, o.rate, s)
	}

	done := make(chan struct{})
	ctrl := &beep.Ctrl{Streamer: beep.Seq(src, beep.Callback(func() { close(done) }))}
	speaker.Play(ctrl)

	select {
	case <-done:
		return s.Err()
	case <-ctx.Done():
		speaker.Lock()
		ctrl.Streamer = nil
		speaker.Unlock()
		return ctx.Err()
	}
}

// PlayMP3 decodes an in-memory MP3 and plays it.
func (o *Output) PlayMP3(ctx context.Context, data []byte) error {
	s, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode mp3: %w", err)
	}
	defer s.Close()
	return o.Play(ctx, s, format)
}

// PlayPCM plays signed 16-bit little-endian mono samples.
func (o *Output) PlayPCM(ctx context.Context, data []byte, sampleRate int) error {
	format := beep.Format{SampleRate: beep.SampleRate(sampleRate), NumChannels: 1, Precision: 2}
	return o.Play(ctx, NewPCMStreamer(data), format)
}
