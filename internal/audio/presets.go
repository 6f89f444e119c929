package audio

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Cue names a preset sound effect.
type Cue int

const (
	CueClick Cue = iota
	CueSuccess
	CueError
	CuePowerUp
	CueGameOver
	CueCollect
	CueJump
	CueHit
	CueBounce
	CueExplosion
	CueMenu
	CueLevelUp
)

var cueNames = map[Cue]string{
	CueClick:     "click",
	CueSuccess:   "success",
	CueError:     "error",
	CuePowerUp:   "power-up",
	CueGameOver:  "game-over",
	CueCollect:   "collect",
	CueJump:      "jump",
	CueHit:       "hit",
	CueBounce:    "bounce",
	CueExplosion: "explosion",
	CueMenu:      "menu",
	CueLevelUp:   "level-up",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// ParseCue resolves a cue by its name.
func ParseCue(name string) (Cue, error) {
	for c, n := range cueNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("audio: unknown cue %q", name)
}

// CueNames returns every preset name, sorted.
func CueNames() []string {
	names := make([]string, 0, len(cueNames))
	for _, n := range cueNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// arpeggio spaces equal notes stagger apart.
func arpeggio(freqs []float64, dur, stagger time.Duration, w Waveform, vol float64) []ToneRequest {
	notes := make([]ToneRequest, len(freqs))
	for i, f := range freqs {
		notes[i] = ToneRequest{
			Frequency: f,
			Duration:  dur,
			Waveform:  w,
			Volume:    vol,
			Delay:     time.Duration(i) * stagger,
		}
	}
	return notes
}

// Figure returns the notes making up a cue.
func (c Cue) Figure() []ToneRequest {
	switch c {
	case CueClick:
		return []ToneRequest{{Frequency: 800, Duration: ms(100), Waveform: Square, Volume: 0.3}}
	case CueSuccess:
		return arpeggio([]float64{262, 330, 392, 523}, ms(200), ms(100), Sine, 0.4)
	case CueError:
		return []ToneRequest{{Frequency: 150, Duration: ms(300), Waveform: Sawtooth, Volume: 0.5}}
	case CuePowerUp:
		return []ToneRequest{{Frequency: 200, SweepTo: 800, Duration: ms(500), Waveform: Sine, Volume: 1}}
	case CueGameOver:
		return arpeggio([]float64{523, 415, 330, 262}, ms(400), ms(150), Triangle, 0.4)
	case CueCollect:
		return []ToneRequest{{Frequency: 1047, Duration: ms(100), Waveform: Sine, Volume: 0.3}}
	case CueJump:
		return []ToneRequest{{Frequency: 400, SweepTo: 600, Duration: ms(100), Waveform: Square, Volume: 0.3}}
	case CueHit:
		return []ToneRequest{{Frequency: 200, Duration: ms(150), Waveform: Sawtooth, Volume: 0.4}}
	case CueBounce:
		return []ToneRequest{{Frequency: 300, Duration: ms(50), Waveform: Triangle, Volume: 0.2}}
	case CueExplosion:
		return []ToneRequest{{Frequency: 1000, SweepTo: 100, Duration: ms(300), Waveform: Noise, Volume: 0.5}}
	case CueMenu:
		return []ToneRequest{{Frequency: 523, Duration: ms(100), Waveform: Sine, Volume: 0.2}}
	case CueLevelUp:
		return arpeggio([]float64{262, 294, 330, 349, 392, 440, 494, 523}, ms(150), ms(80), Sine, 0.3)
	}
	return nil
}

// ComboTone returns the rising tone for a combo counter.
func ComboTone(n int) ToneRequest {
	return ToneRequest{
		Frequency: 440 + 50*float64(n),
		Duration:  ms(100),
		Waveform:  Sine,
		Volume:    math.Min(0.5, 0.2+0.1*float64(n)),
	}
}

// Length returns how long the cue's figure plays.
func (c Cue) Length() time.Duration {
	var end time.Duration
	for _, n := range c.Figure() {
		end = max(end, n.Delay+n.Duration)
	}
	return end
}
