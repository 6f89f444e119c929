// Package memory is a four-pad sequence memory game.
package memory

import (
	"fmt"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

const (
	Pads = 4

	padW = 14
	padH = 5
	// Ticks between finishing a sequence and the next replay.
	extendTicks = 2
)

// PadTones are the pad frequencies in Hz.
var PadTones = [Pads]float64{330, 262, 294, 220}

// State is one memory round.
type State struct {
	Sequence []int
	Entered  int  // Pads entered correctly in the current attempt
	Showing  bool // Replaying the sequence
	ShowAt   int  // Next sequence index to replay
	Lit      int  // Highlighted pad, -1 for none
	Wait     int  // Ticks until the sequence grows
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("memory", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "memory",
		Title:       "Memory Pads",
		Description: "Repeat the growing light and tone sequence",
		Controls:    "1-4 or click pads",
		Tick:        600 * time.Millisecond,
	}
}

func (Rules) Init(env *session.Env) State {
	return State{
		Sequence: []int{env.Rand.Intn(Pads)},
		Showing:  true,
		Lit:      -1,
	}
}

func padTone(i int) audio.ToneRequest {
	return audio.ToneRequest{
		Frequency: PadTones[i],
		Duration:  300 * time.Millisecond,
		Waveform:  audio.Sine,
		Volume:    0.3,
	}
}

func (Rules) Step(s *State, env *session.Env) {
	s.Lit = -1
	if s.Wait > 0 {
		s.Wait--
		if s.Wait == 0 {
			s.Sequence = append(s.Sequence, env.Rand.Intn(Pads))
			s.Showing = true
			s.ShowAt = 0
		}
		return
	}
	if !s.Showing {
		return
	}
	if s.ShowAt < len(s.Sequence) {
		pad := s.Sequence[s.ShowAt]
		s.Lit = pad
		env.Tone(padTone(pad))
		s.ShowAt++
		return
	}
	s.Showing = false
}

// Accepting reports whether the player may press pads.
func (s *State) Accepting() bool {
	return !s.Showing && s.Wait == 0
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	pad := -1
	switch in.Action {
	case core.ActionSelect:
		pad = in.Index - 1
	case core.ActionPointer:
		pad = padAt(env.ViewW, env.ViewH, in.X, in.Y)
	}
	if pad < 0 || pad >= Pads || !s.Accepting() {
		return
	}

	s.Lit = pad
	env.Tone(padTone(pad))
	if s.Sequence[s.Entered] != pad {
		env.End()
		return
	}
	s.Entered++
	if s.Entered == len(s.Sequence) {
		env.AddScore(1)
		s.Entered = 0
		s.Wait = extendTicks
	}
}

// padRects lays the pads out 2x2 centered in a w x h playfield.
func padRects(w, h int) [Pads]core.Rect {
	ox := (w - 2*padW - 2) / 2
	oy := (h-2*padH-1)/2 + 1
	var rects [Pads]core.Rect
	for i := range rects {
		rects[i] = core.NewRect(ox+(i%2)*(padW+2), oy+(i/2)*(padH+1), padW, padH)
	}
	return rects
}

func padAt(w, h, x, y int) int {
	for i, r := range padRects(w, h) {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (Rules) Render(s *State, r *core.Region) {
	r.TextCentered(0, fmt.Sprintf("LEVEL %d", len(s.Sequence)), core.ColorNeonBlue)
	for i, rect := range padRects(r.Width(), r.Height()) {
		c := core.PadColors[i]
		fill := '░'
		if s.Lit == i {
			fill = '█'
		}
		r.Fill(rect, fill, c)
		r.Box(rect, core.ColorWhite)
		r.Text(rect.X+rect.W/2, rect.Y+rect.H/2, fmt.Sprint(i+1), core.ColorWhite)
	}
	status := "YOUR TURN"
	if !s.Accepting() {
		status = "WATCH"
	}
	r.TextCentered(r.Height()-1, status, core.ColorYellow)
}
