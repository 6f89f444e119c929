// Package snake is the classic snake on a fixed 20x20 board.
package snake

import (
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

const (
	GridW = 20
	GridH = 20

	foodPoints = 10
)

var (
	startHead = core.Pt(10, 10)
	startFood = core.Pt(15, 15)
)

// State is one round of snake.
type State struct {
	Body []core.Point // Head at index 0
	Dir  core.Point   // Direction of the last move
	Next core.Point   // Direction applied on the next move
	Food core.Point
}

// Head returns the head segment.
func (s *State) Head() core.Point {
	return s.Body[0]
}

// Rules implements session.Rules for snake.
type Rules struct{}

// New creates a snake session.
func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("snake", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "snake",
		Title:       "Snake",
		Description: "Eat, grow, avoid the walls and yourself",
		Controls:    "arrows/WASD steer",
		Tick:        150 * time.Millisecond,
	}
}

func (Rules) Init(*session.Env) State {
	return State{
		Body: []core.Point{startHead},
		Dir:  core.DirRight,
		Next: core.DirRight,
		Food: startFood,
	}
}

func (Rules) Input(s *State, in core.Input, _ *session.Env) {
	d, ok := in.Direction()
	if !ok {
		return
	}
	// No reversing into the neck.
	if d.Add(s.Dir) == (core.Point{}) {
		return
	}
	s.Next = d
}

func (Rules) Step(s *State, env *session.Env) {
	s.Dir = s.Next
	head := s.Head().Add(s.Dir)

	if !head.In(GridW, GridH) {
		env.End()
		return
	}
	for _, seg := range s.Body {
		if seg == head {
			env.End()
			return
		}
	}

	s.Body = append([]core.Point{head}, s.Body...)
	if head == s.Food {
		env.AddScore(foodPoints)
		env.Play(audio.CueCollect)
		// Uniform over the board; may land on the body.
		s.Food = env.RandomCell(GridW, GridH)
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

func (Rules) Render(s *State, r *core.Region) {
	board := r.Centered(GridW*2+2, GridH+2)
	board.Box(core.NewRect(0, 0, GridW*2+2, GridH+2), core.ColorNeonBlue)

	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			board.Text(1+x*2, 1+y, "· ", core.ColorGray)
		}
	}
	board.Text(1+s.Food.X*2, 1+s.Food.Y, "◆ ", core.ColorNeonRed)
	for i, seg := range s.Body {
		c := core.ColorNeonBlue
		if i == 0 {
			c = core.ColorCyan
		}
		board.Text(1+seg.X*2, 1+seg.Y, "██", c)
	}
}
