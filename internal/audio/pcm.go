package audio

import (
	"encoding/binary"

	"github.com/gopxl/beep/v2"
)

// pcmStreamer streams raw signed 16-bit little-endian mono samples, the
// format returned by speech APIs that do not wrap audio in a container.
type pcmStreamer struct {
	data []byte
	pos  int
}

// NewPCMStreamer wraps raw s16le mono samples. A trailing odd byte is ignored.
func NewPCMStreamer(data []byte) beep.Streamer {
	return &pcmStreamer{data: data}
}

func (p *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && p.pos+1 < len(p.data) {
		v := float64(int16(binary.LittleEndian.Uint16(p.data[p.pos:]))) / 32768
		samples[n] = [2]float64{v, v}
		p.pos += 2
		n++
	}
	return n, n > 0
}

func (p *pcmStreamer) Err() error { return nil }
