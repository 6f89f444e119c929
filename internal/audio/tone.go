package audio

import (
	"fmt"
	"math"
	"time"
)

// Waveform is the oscillator shape of a tone.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Triangle
	Noise
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	case Noise:
		return "noise"
	default:
		return fmt.Sprintf("waveform(%d)", int(w))
	}
}

const (
	attackTime = 10 * time.Millisecond
	// Gain the exponential decay reaches at the end of a tone.
	decayFloor = 0.001
)

// ToneRequest describes one synthesized note.
type ToneRequest struct {
	Frequency float64 // Hz
	Duration  time.Duration
	Waveform  Waveform
	Volume    float64 // [0,1], before the session's sfx and master gains
	// SweepTo, when non-zero, is the frequency reached at the end of the
	// note (exponential glide). For Noise it is the low-pass cutoff target.
	SweepTo float64
	// Delay offsets the note inside a multi-note figure.
	Delay time.Duration
}

// osc returns the waveform value for a phase measured in cycles.
func osc(w Waveform, phase float64) float64 {
	frac := phase - math.Floor(phase)
	switch w {
	case Square:
		if frac < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*frac - 1
	case Triangle:
		return 1 - 4*math.Abs(frac-0.5)
	default:
		return math.Sin(2 * math.Pi * frac)
	}
}

// envelope returns the gain at time t of a note lasting dur: a linear attack
// to vol, then an exponential decay to decayFloor at dur.
func envelope(t, dur, vol float64) float64 {
	attack := attackTime.Seconds()
	if vol <= 0 || t >= dur {
		return 0
	}
	if t < attack {
		return vol * t / attack
	}
	if vol <= decayFloor || dur <= attack {
		return vol
	}
	p := (t - attack) / (dur - attack)
	return vol * math.Pow(decayFloor/vol, p)
}

// glide returns the instantaneous frequency of an exponential sweep.
func glide(from, to, p float64) float64 {
	if to <= 0 || from <= 0 || to == from {
		return from
	}
	return from * math.Pow(to/from, p)
}

// RenderTone renders req (ignoring Delay) at the given output gain.
// The result is float32 stereo PCM at SampleRate.
func RenderTone(req ToneRequest, gain float64) []byte {
	n := frames(req.Duration)
	buf := makeBuf(n)
	renderInto(buf, 0, req, gain)
	return buf
}

// renderInto mixes req into buf starting at frame offset.
func renderInto(buf []byte, offset int, req ToneRequest, gain float64) {
	n := frames(req.Duration)
	total := len(buf) / bytesPerFrame
	dur := req.Duration.Seconds()
	vol := req.Volume * gain

	var (
		phase float64
		seed  uint64 = 0x9e3779b97f4a7c15
		lp    float64
	)
	for i := 0; i < n && offset+i < total; i++ {
		t := float64(i) / SampleRate
		p := t / dur
		var s float64
		if req.Waveform == Noise {
			// One-pole low-pass with a gliding cutoff.
			cutoff := glide(req.Frequency, req.SweepTo, p)
			a := 1 - math.Exp(-2*math.Pi*cutoff/SampleRate)
			lp += a * (lcg(&seed) - lp)
			s = lp
		} else {
			phase += glide(req.Frequency, req.SweepTo, p) / SampleRate
			s = osc(req.Waveform, phase)
		}
		mixStereo(buf, offset+i, s*envelope(t, dur, vol))
	}
}

// RenderFigure renders notes at their Delay offsets into one buffer.
func RenderFigure(notes []ToneRequest, gain float64) []byte {
	var end time.Duration
	for _, n := range notes {
		end = max(end, n.Delay+n.Duration)
	}
	buf := makeBuf(frames(end))
	for _, n := range notes {
		renderInto(buf, frames(n.Delay), n, gain)
	}
	return buf
}
