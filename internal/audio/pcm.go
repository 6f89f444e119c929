// Package audio synthesizes the arena's sound effects and ambient drone and
// plays them through a lazily opened output device.
package audio

import (
	"io"
	"math"
	"time"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	// 32-bit float little endian stereo frames.
	bytesPerFrame = 8
)

// frames converts a duration to a whole number of sample frames.
func frames(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Round(d.Seconds() * SampleRate))
}

func makeBuf(n int) []byte { return make([]byte, n*bytesPerFrame) }

// putStereo writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereo(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * bytesPerFrame
	buf[o] = byte(v)
	buf[o+1] = byte(v >> 8)
	buf[o+2] = byte(v >> 16)
	buf[o+3] = byte(v >> 24)
	copy(buf[o+4:o+8], buf[o:o+4])
}

// mixStereo adds sample to frame i, clamping to [-1,1].
func mixStereo(buf []byte, i int, sample float64) {
	putStereo(buf, i, clampSample(frameAt(buf, i)+sample))
}

// frameAt returns the left channel sample of frame i.
func frameAt(buf []byte, i int) float64 {
	o := i * bytesPerFrame
	v := uint32(buf[o]) | uint32(buf[o+1])<<8 | uint32(buf[o+2])<<16 | uint32(buf[o+3])<<24
	return float64(math.Float32frombits(v))
}

func clampSample(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// pcmReader streams a finished buffer to a device voice.
type pcmReader struct {
	data []byte
	pos  int
}

func newPCMReader(data []byte) *pcmReader {
	return &pcmReader{data: data}
}

func (r *pcmReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
