// Package platformer is an auto-running platformer: jump the pits and
// spikes for as long as you can.
package platformer

import (
	"fmt"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

// Physics constants, tuned for a 50 ms tick
const (
	Gravity      = 0.35
	JumpImpulse  = 1.6
	PlayerX      = 8
	ColumnsPerPt = 10
)

// Visual characters for rendering
const (
	PlayerBody = '█'
	PlayerHead = '◆'
	SpikeChar  = '▲'
	GroundChar = '▀'
)

// State is one platformer run.
type State struct {
	W, GroundY int
	Height     float64 // Feet above the ground, 0 when standing
	Vel        float64 // Upward velocity
	Grounded   bool
	Distance   int // Columns travelled
	Terrain    Terrain
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("platformer", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "platformer",
		Title:       "Neon Runner",
		Description: "Run forever, jump the pits and spikes",
		Controls:    "space/up jump",
		Tick:        50 * time.Millisecond,
	}
}

func (Rules) Init(env *session.Env) State {
	w := max(env.W, 40)
	return State{
		W:        w,
		GroundY:  max(env.H-3, 8),
		Grounded: true,
		Terrain:  newTerrain(w),
	}
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	switch in.Action {
	case core.ActionFire, core.ActionUp:
		if s.Grounded {
			s.Vel = JumpImpulse
			s.Grounded = false
			env.Play(audio.CueJump)
		}
	}
}

func (Rules) Step(s *State, env *session.Env) {
	s.Terrain.Scroll(env.Rand)
	s.Distance++
	if s.Distance%ColumnsPerPt == 0 {
		env.AddScore(1)
	}

	if !s.Grounded {
		s.Height += s.Vel
		s.Vel -= Gravity
		if s.Height <= 0 {
			s.Height, s.Vel = 0, 0
			s.Grounded = true
		}
	}

	h, ok := s.Terrain.At(PlayerX)
	if !ok || !s.Grounded {
		return
	}
	// Standing on a pit or spikes.
	if h.Kind == Spikes {
		env.Play(audio.CueHit)
	}
	env.End()
}

func (Rules) Render(s *State, r *core.Region) {
	for x := 0; x < s.W; x++ {
		h, ok := s.Terrain.At(x)
		switch {
		case !ok:
			r.Set(x, s.GroundY, GroundChar, core.ColorNeonPurple)
			for y := s.GroundY + 1; y < s.GroundY+3; y++ {
				r.Set(x, y, '░', core.ColorNeonPurple)
			}
		case h.Kind == Spikes:
			r.Set(x, s.GroundY, GroundChar, core.ColorNeonPurple)
			r.Set(x, s.GroundY-1, SpikeChar, core.ColorNeonRed)
		}
	}
	feet := s.GroundY - 1 - int(s.Height+0.5)
	r.Set(PlayerX, feet, PlayerBody, core.ColorNeonBlue)
	r.Set(PlayerX, feet-1, PlayerHead, core.ColorCyan)
	r.Text(s.W-12, 0, fmt.Sprintf("%6dm", s.Distance), core.ColorWhite)
}
