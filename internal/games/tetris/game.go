// Package tetris is falling-block line clearing on a 10x20 well.
package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

const (
	Width  = 10
	Height = 20
)

// lineScores indexes points by lines cleared at once.
var lineScores = [5]int{0, 100, 300, 500, 800}

// Board holds locked cells; 0 is empty, otherwise piece index + 1.
type Board [Height][Width]uint8

// State is one tetris round.
type State struct {
	Board    Board
	Kind     int // Index into pieces
	Rot      int
	Pos      core.Point // Top-left of the rotation box
	NextKind int
	Lines    int
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("tetris", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "tetris",
		Title:       "Neon Blocks",
		Description: "Stack falling tetrominoes and clear lines",
		Controls:    "left/right move, up rotate, down soft drop, space hard drop",
		Tick:        500 * time.Millisecond,
	}
}

func (Rules) Init(env *session.Env) State {
	s := State{NextKind: env.Rand.Intn(len(pieces))}
	s.spawn(env)
	return s
}

// cells returns the board coordinates of the falling piece.
func (s *State) cells(pos core.Point, rot int) [4]core.Point {
	c := pieces[s.Kind].rotated(rot)
	for i := range c {
		c[i] = c[i].Add(pos)
	}
	return c
}

func (s *State) fits(pos core.Point, rot int) bool {
	for _, c := range s.cells(pos, rot) {
		if c.X < 0 || c.X >= Width || c.Y >= Height {
			return false
		}
		if c.Y >= 0 && s.Board[c.Y][c.X] != 0 {
			return false
		}
	}
	return true
}

// spawn brings in the next piece. A blocked spawn ends the round.
func (s *State) spawn(env *session.Env) bool {
	s.Kind = s.NextKind
	s.NextKind = env.Rand.Intn(len(pieces))
	s.Rot = 0
	s.Pos = core.Pt((Width-pieces[s.Kind].Size)/2, 0)
	if !s.fits(s.Pos, s.Rot) {
		env.End()
		return false
	}
	return true
}

func (s *State) move(d core.Point) bool {
	next := s.Pos.Add(d)
	if !s.fits(next, s.Rot) {
		return false
	}
	s.Pos = next
	return true
}

// lock merges the piece into the board, clears lines and spawns the next.
func (s *State) lock(env *session.Env) {
	cells := s.cells(s.Pos, s.Rot)
	// A piece locking above the top ends the round and stays out of the board.
	for _, c := range cells {
		if c.Y < 0 {
			env.End()
			return
		}
	}
	for _, c := range cells {
		s.Board[c.Y][c.X] = uint8(s.Kind + 1)
	}
	cleared := s.clearLines()
	if cleared > 0 {
		s.Lines += cleared
		env.AddScore(lineScores[cleared])
		env.Play(audio.CueSuccess)
	} else {
		env.Play(audio.CueBounce)
	}
	s.spawn(env)
}

func (s *State) clearLines() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		full := true
		for x := 0; x < Width; x++ {
			if s.Board[y][x] == 0 {
				full = false
				break
			}
		}
		if !full {
			y--
			continue
		}
		for yy := y; yy > 0; yy-- {
			s.Board[yy] = s.Board[yy-1]
		}
		s.Board[0] = [Width]uint8{}
		cleared++
	}
	return cleared
}

func (Rules) Step(s *State, env *session.Env) {
	if !s.move(core.DirDown) {
		s.lock(env)
	}
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	switch in.Action {
	case core.ActionLeft:
		s.move(core.DirLeft)
	case core.ActionRight:
		s.move(core.DirRight)
	case core.ActionDown:
		if !s.move(core.DirDown) {
			s.lock(env)
		}
	case core.ActionUp:
		rot := s.Rot + 1
		// Simple wall kicks: in place, then one cell either side.
		for _, dx := range []int{0, -1, 1} {
			pos := s.Pos.Add(core.Pt(dx, 0))
			if s.fits(pos, rot) {
				s.Pos, s.Rot = pos, rot%4
				return
			}
		}
	case core.ActionFire:
		for s.move(core.DirDown) {
		}
		s.lock(env)
	}
}

func (Rules) Render(s *State, r *core.Region) {
	well := r.Centered(Width*2+2+14, Height+2)
	well.Box(core.NewRect(0, 0, Width*2+2, Height+2), core.ColorNeonBlue)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if k := s.Board[y][x]; k != 0 {
				well.Text(1+x*2, 1+y, "██", pieces[k-1].Color)
			} else {
				well.Text(1+x*2, 1+y, " .", core.ColorGray)
			}
		}
	}
	for _, c := range s.cells(s.Pos, s.Rot) {
		if c.Y >= 0 {
			well.Text(1+c.X*2, 1+c.Y, "██", pieces[s.Kind].Color)
		}
	}

	side := Width*2 + 4
	well.Text(side, 1, "NEXT", core.ColorWhite)
	next := pieces[s.NextKind]
	for _, c := range next.Cells {
		well.Text(side+c.X*2, 3+c.Y, "██", next.Color)
	}
	well.Text(side, 8, fmt.Sprintf("LINES %d", s.Lines), core.ColorWhite)
}
