// Package maze is a timed maze run through randomly generated mazes.
package maze

import (
	"fmt"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

const (
	CellsW = 15
	CellsH = 9

	tick        = 250 * time.Millisecond
	TimeLimit   = 60 * time.Second
	ExitPoints  = 100
	ticksPerSec = int(time.Second / tick)
)

// State is one maze run.
type State struct {
	Grid      Grid
	Player    core.Point
	Exit      core.Point
	TicksLeft int
	Solved    int
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("maze", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "maze",
		Title:       "Neon Maze",
		Description: "Find the exit before the clock runs out",
		Controls:    "arrows/WASD move",
		Tick:        tick,
	}
}

func (Rules) Init(env *session.Env) State {
	var s State
	s.next(env)
	return s
}

// next generates a fresh maze and resets the clock.
func (s *State) next(env *session.Env) {
	s.Grid = Generate(CellsW, CellsH, env.Rand)
	s.Player = core.Pt(0, 0)
	s.Exit = core.Pt(CellsW-1, CellsH-1)
	s.TicksLeft = int(TimeLimit / tick)
}

// SecondsLeft is the whole seconds remaining on the clock.
func (s *State) SecondsLeft() int {
	return s.TicksLeft / ticksPerSec
}

func (Rules) Step(s *State, env *session.Env) {
	s.TicksLeft--
	if s.TicksLeft <= 0 {
		s.TicksLeft = 0
		env.End()
	}
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	d, ok := in.Direction()
	if !ok {
		return
	}
	if !s.Grid.Open(s.Player, dirIndex(d)) {
		env.Play(audio.CueBounce)
		return
	}
	s.Player = s.Player.Add(d)
	if s.Player != s.Exit {
		return
	}
	env.AddScore(ExitPoints + s.SecondsLeft())
	env.Play(audio.CueSuccess)
	s.Solved++
	s.next(env)
}

func (Rules) Render(s *State, r *core.Region) {
	w, h := 2*CellsW+1, 2*CellsH+1
	board := r.Centered(w*2, h+1)
	wall := func(x, y int) {
		board.Text(x*2, y, "██", core.ColorNeonPurple)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%2 == 0 && y%2 == 0 {
				wall(x, y)
			}
		}
	}
	for cy := 0; cy < CellsH; cy++ {
		for cx := 0; cx < CellsW; cx++ {
			c := s.Grid.Cells[cy][cx]
			x, y := 2*cx+1, 2*cy+1
			if c&WallN != 0 {
				wall(x, y-1)
			}
			if c&WallW != 0 {
				wall(x-1, y)
			}
			if cx == CellsW-1 && c&WallE != 0 {
				wall(x+1, y)
			}
			if cy == CellsH-1 && c&WallS != 0 {
				wall(x, y+1)
			}
		}
	}
	board.Text((2*s.Exit.X+1)*2, 2*s.Exit.Y+1, "◎ ", core.ColorNeonGreen)
	board.Text((2*s.Player.X+1)*2, 2*s.Player.Y+1, "● ", core.ColorCyan)

	clock := core.ColorWhite
	if s.SecondsLeft() < 10 {
		clock = core.ColorNeonRed
	}
	board.Text(0, h, fmt.Sprintf("TIME %2ds  SOLVED %d", s.SecondsLeft(), s.Solved), clock)
}
