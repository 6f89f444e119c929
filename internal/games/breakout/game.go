// Package breakout is brick breaking with a paddle, one ball and three lives.
package breakout

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

const (
	Rows       = 5
	Cols       = 10
	BrickWidth = 6
	FieldW     = Cols * BrickWidth
	brickTop   = 2

	PaddleWidth = 9
	paddleStep  = 3
	BallSpeed   = Fixed(550)
	BrickPoints = 10
	StartLives  = 3
)

var rowColors = [Rows]core.Color{
	core.ColorNeonRed, core.ColorOrange, core.ColorYellow, core.ColorNeonGreen, core.ColorNeonBlue,
}

// State is one breakout round.
type State struct {
	H      int
	Bricks [Rows][Cols]bool
	Alive  int
	Ball   Ball
	Paddle Paddle
	Lives  int
	Walls  int // Walls cleared
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("breakout", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "breakout",
		Title:       "Breakout",
		Description: "Smash the brick wall, keep the ball alive",
		Controls:    "left/right move, space launch",
		Tick:        33 * time.Millisecond,
	}
}

func (Rules) Init(env *session.Env) State {
	s := State{
		H:     max(env.H, brickTop+Rows+6),
		Lives: StartLives,
	}
	s.Paddle = Paddle{X: ToFixed((FieldW - PaddleWidth) / 2), Y: s.H - 1, Width: PaddleWidth}
	s.buildWall()
	s.stickBall()
	return s
}

func (s *State) buildWall() {
	for r := range s.Bricks {
		for c := range s.Bricks[r] {
			s.Bricks[r][c] = true
		}
	}
	s.Alive = Rows * Cols
}

// stickBall parks the ball on top of the paddle.
func (s *State) stickBall() {
	s.Ball = Ball{
		X:     s.Paddle.CenterX(),
		Y:     ToFixed(s.Paddle.Y - 1),
		Stuck: true,
	}
}

func (s *State) launch(env *session.Env) {
	if !s.Ball.Stuck {
		return
	}
	s.Ball.Stuck = false
	s.Ball.VY = -BallSpeed
	s.Ball.VX = BallSpeed / 2
	if env.Rand.Intn(2) == 0 {
		s.Ball.VX = -s.Ball.VX
	}
	env.Play(audio.CueJump)
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	switch in.Action {
	case core.ActionLeft:
		s.movePaddle(-paddleStep)
	case core.ActionRight:
		s.movePaddle(paddleStep)
	case core.ActionFire, core.ActionUp:
		s.launch(env)
	}
}

func (s *State) movePaddle(dx int) {
	x := s.Paddle.X.ToCell() + dx
	s.Paddle.X = ToFixed(core.Clamp(x, 0, FieldW-PaddleWidth))
	if s.Ball.Stuck {
		s.Ball.X = s.Paddle.CenterX()
	}
}

func (Rules) Step(s *State, env *session.Env) {
	if s.Ball.Stuck {
		return
	}
	b := &s.Ball
	b.Move()

	hit, fell := bounceWalls(b, FieldW, s.H)
	if fell {
		s.miss(env)
		return
	}
	if hit {
		env.Play(audio.CueBounce)
	}
	if bouncePaddle(b, &s.Paddle, BallSpeed) {
		env.Play(audio.CueBounce)
		return
	}
	s.hitBricks(env)
}

// hitBricks breaks at most one brick per tick, the first one found.
func (s *State) hitBricks(env *session.Env) {
	b := &s.Ball
	row := b.Y.ToCell() - brickTop
	col := b.X.ToCell() / BrickWidth
	if row < 0 || row >= Rows || col < 0 || col >= Cols || !s.Bricks[row][col] {
		return
	}
	s.Bricks[row][col] = false
	s.Alive--
	applyBounce(b, hitSide(b, col*BrickWidth, brickTop+row, BrickWidth))
	env.AddScore(BrickPoints)
	env.Play(audio.CueHit)

	if s.Alive == 0 {
		s.Walls++
		s.buildWall()
		s.stickBall()
		env.Play(audio.CueLevelUp)
	}
}

func (s *State) miss(env *session.Env) {
	s.Lives--
	if s.Lives <= 0 {
		env.End()
		return
	}
	env.Play(audio.CueError)
	s.stickBall()
}

func (Rules) Render(s *State, r *core.Region) {
	field := r.Centered(FieldW+2, s.H)
	for y := 0; y < s.H; y++ {
		field.Set(0, y, '│', core.ColorGray)
		field.Set(FieldW+1, y, '│', core.ColorGray)
	}
	inner := field.Sub(1, 0, FieldW, s.H)

	brick := strings.Repeat("▆", BrickWidth-1)
	for row := range s.Bricks {
		for col, alive := range s.Bricks[row] {
			if alive {
				inner.Text(col*BrickWidth, brickTop+row, brick, rowColors[row])
			}
		}
	}
	inner.Text(s.Paddle.X.ToCell(), s.Paddle.Y, strings.Repeat("▀", s.Paddle.Width), core.ColorNeonBlue)
	inner.Set(s.Ball.X.ToCell(), s.Ball.Y.ToCell(), '●', core.ColorWhite)
	inner.Text(0, 0, fmt.Sprintf("LIVES %s", strings.Repeat("♥", s.Lives)), core.ColorNeonRed)
}
