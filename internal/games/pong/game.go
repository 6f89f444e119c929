// Package pong implements classic Pong against a CPU opponent.
// The player controls the left paddle, the CPU the right one.
package pong

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

const (
	PaddleOffset = 2 // Distance from edge
	BallSpeed    = 1.0
	PaddleStep   = 2.0 // Cells per key press
	WinScore     = 5
	ServeTicks   = 30
	cpuSkillMin  = 0.55 // CPU paddle speed relative to the ball
	cpuSkillMax  = 0.85
)

// State is one pong match.
type State struct {
	W, H         int
	PaddleHeight int
	Paddle1Y     float64 // Player paddle top
	Paddle2Y     float64 // CPU paddle top

	BallX, BallY   float64
	BallVX, BallVY float64

	Score1, Score2 int
	Serving        int // Ticks left before the ball moves
	CPUSkill       float64
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("pong", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "pong",
		Title:       "Pong",
		Description: "First to five against the CPU",
		Controls:    "up/down move paddle",
		Tick:        33 * time.Millisecond,
	}
}

func (Rules) Init(env *session.Env) State {
	s := State{
		W:        max(env.W, 20),
		H:        max(env.H, 8),
		CPUSkill: cpuSkillMin,
	}
	s.PaddleHeight = core.Clamp(s.H/5, 3, 7)
	center := float64(s.H)/2 - float64(s.PaddleHeight)/2
	s.Paddle1Y, s.Paddle2Y = center, center
	s.serve(env, 1)
	return s
}

// serve centers the ball and sends it toward the side that just conceded.
func (s *State) serve(env *session.Env, toward int) {
	s.Serving = ServeTicks
	s.BallX = float64(s.W) / 2
	s.BallY = float64(s.H) / 2
	s.BallVX = BallSpeed
	if toward == 1 {
		s.BallVX = -BallSpeed
	}
	s.BallVY = BallSpeed * (env.Rand.Float64() - 0.5) * 0.8
}

func (s *State) maxPaddleY() float64 {
	return float64(s.H - s.PaddleHeight)
}

func (Rules) Input(s *State, in core.Input, _ *session.Env) {
	switch in.Action {
	case core.ActionUp:
		s.Paddle1Y -= PaddleStep
	case core.ActionDown:
		s.Paddle1Y += PaddleStep
	default:
		return
	}
	s.Paddle1Y = core.ClampF(s.Paddle1Y, 0, s.maxPaddleY())
}

func (Rules) Step(s *State, env *session.Env) {
	s.updateCPU()
	if s.Serving > 0 {
		s.Serving--
		return
	}
	s.updateBall(env)
	if env.Ticks()%300 == 0 && s.CPUSkill < cpuSkillMax {
		s.CPUSkill += 0.02
	}
}

// updateCPU tracks the ball imperfectly while it approaches.
func (s *State) updateCPU() {
	if s.BallVX <= 0 {
		return
	}
	target := s.BallY - float64(s.PaddleHeight)/2
	diff := target - s.Paddle2Y
	speed := BallSpeed * s.CPUSkill
	if math.Abs(diff) > speed {
		s.Paddle2Y += math.Copysign(speed, diff)
	}
	s.Paddle2Y = core.ClampF(s.Paddle2Y, 0, s.maxPaddleY())
}

func (s *State) updateBall(env *session.Env) {
	s.BallX += s.BallVX
	s.BallY += s.BallVY

	// Walls bounce.
	if s.BallY < 0 {
		s.BallY = -s.BallY
		s.BallVY = -s.BallVY
		env.Play(audio.CueBounce)
	}
	if bottom := float64(s.H - 1); s.BallY > bottom {
		s.BallY = 2*bottom - s.BallY
		s.BallVY = -s.BallVY
		env.Play(audio.CueBounce)
	}

	paddle1X := float64(PaddleOffset + 1)
	paddle2X := float64(s.W - PaddleOffset - 1)

	if s.BallVX < 0 && s.BallX <= paddle1X && s.BallX > paddle1X-2 && s.onPaddle(s.Paddle1Y) {
		s.BallX = paddle1X
		s.deflect(s.Paddle1Y)
		env.Play(audio.CueHit)
	}
	if s.BallVX > 0 && s.BallX >= paddle2X && s.BallX < paddle2X+2 && s.onPaddle(s.Paddle2Y) {
		s.BallX = paddle2X
		s.deflect(s.Paddle2Y)
		env.Play(audio.CueHit)
	}

	switch {
	case s.BallX < 0:
		s.Score2++
		env.Play(audio.CueError)
		if s.Score2 >= WinScore {
			env.End()
			return
		}
		s.serve(env, 1)
	case s.BallX >= float64(s.W):
		s.Score1++
		env.AddScore(1)
		env.Play(audio.CueSuccess)
		if s.Score1 >= WinScore {
			env.End()
			return
		}
		s.serve(env, 2)
	}
}

func (s *State) onPaddle(top float64) bool {
	return s.BallY >= top-0.5 && s.BallY <= top+float64(s.PaddleHeight)+0.5
}

// deflect reverses the ball with spin from where it met the paddle.
func (s *State) deflect(top float64) {
	hit := (s.BallY - top) / float64(s.PaddleHeight)
	s.BallVX = -s.BallVX * 1.03
	s.BallVY += (hit - 0.5) * 0.6

	limit := BallSpeed * 2
	if math.Abs(s.BallVX) > limit {
		s.BallVX = math.Copysign(limit, s.BallVX)
	}
	s.BallVY = core.ClampF(s.BallVY, -limit/2, limit/2)
}

func (Rules) Render(s *State, r *core.Region) {
	center := s.W / 2
	for y := 0; y < s.H; y += 2 {
		r.Set(center, y, NetChar, core.ColorGray)
	}
	for i := 0; i < s.PaddleHeight; i++ {
		r.Set(PaddleOffset, int(s.Paddle1Y)+i, PaddleChar, core.ColorNeonBlue)
		r.Set(s.W-PaddleOffset-1, int(s.Paddle2Y)+i, PaddleChar, core.ColorNeonRed)
	}
	if s.Serving == 0 || (s.Serving/5)%2 == 0 {
		r.Set(int(s.BallX), int(math.Round(s.BallY)), BallChar, core.ColorWhite)
	}
	r.Text(center-6, 0, fmt.Sprintf("%2d", s.Score1), core.ColorNeonBlue)
	r.Text(center+4, 0, fmt.Sprintf("%d", s.Score2), core.ColorNeonRed)
	r.Text(1, 0, "YOU", core.ColorNeonBlue)
	r.Text(s.W-4, 0, "CPU", core.ColorNeonRed)
}
