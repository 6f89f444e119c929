// Package flappy is a flap-through-the-pipes game.
package flappy

import (
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

// Physics constants, tuned for a 50 ms tick
const (
	Gravity      = 0.25
	FlapImpulse  = -1.4
	MaxFallSpeed = 1.5
	PlayerX      = 10
	PlayerWidth  = 2
	PlayerHeight = 1
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// State is one flappy round.
type State struct {
	W, GroundY int
	Y          float64 // Bird top
	Vel        float64
	Pipes      PipeManager
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("flappy", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "flappy",
		Title:       "Neon Flap",
		Description: "Flap through the gaps between the pipes",
		Controls:    "space/up flap",
		Tick:        50 * time.Millisecond,
	}
}

func (Rules) Init(env *session.Env) State {
	w := max(env.W, PlayerX+PipeSpacing)
	ground := max(env.H-1, MaxGap+2*gapMargin+1)
	pm := NewPipeManager(w+spawnLeadIn, ground)
	return State{
		W:       w,
		GroundY: ground,
		Y:       float64(ground) / 2,
		Pipes:   pm,
	}
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	switch in.Action {
	case core.ActionFire, core.ActionUp, core.ActionPointer:
		s.Vel = FlapImpulse
		env.Play(audio.CueJump)
	}
}

func (s *State) rect() core.Rect {
	return core.NewRect(PlayerX, int(s.Y), PlayerWidth, PlayerHeight)
}

func (Rules) Step(s *State, env *session.Env) {
	s.Vel = min(s.Vel+Gravity, MaxFallSpeed)
	s.Y += s.Vel

	if passed := s.Pipes.Update(env.Rand, PlayerX); passed > 0 {
		env.AddScore(passed)
		env.Play(audio.CueCollect)
	}

	switch {
	case s.Y < 0:
		s.Y = 0
		env.End()
	case int(s.Y)+PlayerHeight > s.GroundY:
		s.Y = float64(s.GroundY - PlayerHeight)
		env.End()
	case s.Pipes.Collides(s.rect()):
		env.End()
	}
}

func (Rules) Render(s *State, r *core.Region) {
	for x := 0; x < s.W; x++ {
		r.Set(x, s.GroundY, GroundChar, core.ColorNeonPurple)
	}
	for _, p := range s.Pipes.Pipes {
		drawPipe(r, p, s.GroundY)
	}
	r.Text(PlayerX, int(s.Y), "●▶", core.ColorYellow)
}

func drawPipe(r *core.Region, p Pipe, groundY int) {
	bottom := p.GapY + p.GapHeight
	for x := p.X; x < p.X+PipeWidth; x++ {
		for y := 0; y < p.GapY; y++ {
			r.Set(x, y, PipeChar, core.ColorNeonGreen)
		}
		if p.GapY > 0 {
			r.Set(x, p.GapY-1, PipeCapTop, core.ColorNeonGreen)
		}
		for y := bottom; y < groundY; y++ {
			r.Set(x, y, PipeChar, core.ColorNeonGreen)
		}
		if bottom < groundY {
			r.Set(x, bottom, PipeCapBottom, core.ColorNeonGreen)
		}
	}
}
