// Package puzzle is the 4x4 sliding fifteen puzzle.
package puzzle

import (
	"fmt"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

const (
	Size = 4

	shuffleMoves = 200
	solvePoints  = 100
	moveBudget   = 300 // Moves under the budget are added as a bonus

	cellW = 5
	cellH = 2
)

// Board holds tile numbers row by row; 0 is the blank.
type Board [Size][Size]int

// Solved returns the goal board.
func Solved() Board {
	var b Board
	for i := 0; i < Size*Size-1; i++ {
		b[i/Size][i%Size] = i + 1
	}
	return b
}

// IsSolved reports whether b is in goal order.
func (b *Board) IsSolved() bool {
	return *b == Solved()
}

// Blank returns the position of the empty slot.
func (b *Board) Blank() core.Point {
	for y := range b {
		for x := range b[y] {
			if b[y][x] == 0 {
				return core.Pt(x, y)
			}
		}
	}
	return core.Point{}
}

// Slide moves the tile at p into the blank if they are adjacent.
func (b *Board) Slide(p core.Point) bool {
	if !p.In(Size, Size) {
		return false
	}
	blank := b.Blank()
	if core.Abs(p.X-blank.X)+core.Abs(p.Y-blank.Y) != 1 {
		return false
	}
	b[blank.Y][blank.X], b[p.Y][p.X] = b[p.Y][p.X], 0
	return true
}

var dirs = [...]core.Point{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

// shuffle scrambles b with n random legal slides, never undoing the
// previous one. The result is always solvable.
func (b *Board) shuffle(env *session.Env, n int) {
	var last core.Point
	for i := 0; i < n || b.IsSolved(); i++ {
		blank := b.Blank()
		var options []core.Point
		for _, d := range dirs {
			p := blank.Add(d)
			if p.In(Size, Size) && p != last {
				options = append(options, p)
			}
		}
		p := options[env.Rand.Intn(len(options))]
		b.Slide(p)
		last = blank
	}
}

// State is one puzzle session; Solves counts completed boards.
type State struct {
	Board  Board
	Moves  int
	Solves int
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("puzzle", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "puzzle",
		Title:       "Slide 15",
		Description: "Put the tiles back in order, fewer moves earn a bonus",
		Controls:    "arrows slide into the gap, click a tile",
		Tick:        time.Second,
	}
}

func (Rules) Init(env *session.Env) State {
	s := State{Board: Solved()}
	s.Board.shuffle(env, shuffleMoves)
	return s
}

func (Rules) Step(*State, *session.Env) {}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	var target core.Point
	if d, ok := in.Direction(); ok {
		// The tile on the far side of the gap slides in direction d.
		blank := s.Board.Blank()
		target = core.Pt(blank.X-d.X, blank.Y-d.Y)
	} else if in.Action == core.ActionPointer {
		origin := boardOrigin(env.ViewW, env.ViewH)
		if in.X <= origin.X || in.Y <= origin.Y {
			return
		}
		target = core.Pt((in.X-origin.X-1)/cellW, (in.Y-origin.Y-1)/cellH)
	} else {
		return
	}

	if !s.Board.Slide(target) {
		env.Play(audio.CueError)
		return
	}
	s.Moves++
	env.Play(audio.CueClick)

	if s.Board.IsSolved() {
		s.Solves++
		env.AddScore(solvePoints + max(moveBudget-s.Moves, 0))
		env.Play(audio.CueSuccess)
		s.Moves = 0
		s.Board.shuffle(env, shuffleMoves)
	}
}

func boardSize() (int, int) {
	return Size*cellW + 2, Size*cellH + 2
}

func boardOrigin(w, h int) core.Point {
	bw, bh := boardSize()
	return core.Pt(max((w-bw)/2, 0), max((h-bh)/2, 0))
}

func (Rules) Render(s *State, r *core.Region) {
	bw, bh := boardSize()
	f := r.Centered(bw, bh)
	f.Box(core.NewRect(0, 0, bw, bh), core.ColorNeonPurple)
	for y := range s.Board {
		for x, v := range s.Board[y] {
			if v == 0 {
				continue
			}
			c := core.ColorNeonBlue
			// Tiles already in place glow green.
			if v == y*Size+x+1 {
				c = core.ColorNeonGreen
			}
			f.Text(1+x*cellW, 1+y*cellH, fmt.Sprintf("[%2d]", v), c)
		}
	}
	f.Text(1, bh-1, fmt.Sprintf(" moves %d ", s.Moves), core.ColorGray)
}
