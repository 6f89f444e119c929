package audio

import "math"

const (
	droneFreq     = 55.0 // low A
	droneLFORate  = 0.1
	droneLFODepth = 5.0
	droneCutoff   = 200.0
	droneFadeIn   = 1.0 // seconds
)

// droneReader is the endless ambient bed: a sawtooth at 55 Hz, vibrato from
// a slow LFO, through a one-pole low-pass whose cutoff drifts around 200 Hz.
type droneReader struct {
	t     float64
	phase float64
	lp    float64
}

func (d *droneReader) Read(p []byte) (int, error) {
	n := len(p) / bytesPerFrame
	for i := 0; i < n; i++ {
		lfo := math.Sin(2 * math.Pi * droneLFORate * d.t)
		d.phase += (droneFreq + droneLFODepth*lfo) / SampleRate
		raw := osc(Sawtooth, d.phase)

		cutoff := droneCutoff * (1 + 0.3*math.Sin(2*math.Pi*0.03*d.t))
		a := 1 - math.Exp(-2*math.Pi*cutoff/SampleRate)
		d.lp += a * (raw - d.lp)

		fade := math.Min(1, d.t/droneFadeIn)
		putStereo(p, i, d.lp*fade)
		d.t += 1.0 / SampleRate
	}
	return n * bytesPerFrame, nil
}
