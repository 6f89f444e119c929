// Package match3 is a gem-swapping puzzle on an 8x8 board. Matches clear
// and cascade one step per tick; the round ends when no swap can match.
package match3

import (
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

const gemPoints = 10

var gemColors = [Kinds + 1]core.Color{
	core.ColorDefault,
	core.ColorNeonRed,
	core.ColorNeonBlue,
	core.ColorNeonGreen,
	core.ColorNeonPurple,
	core.ColorYellow,
	core.ColorOrange,
}

var gemRunes = [Kinds + 1]rune{' ', '●', '◆', '▲', '■', '★', '♥'}

// State is one match-3 round.
type State struct {
	Board    Board
	Cursor   core.Point
	Grabbed  bool
	Cascades int // Chain length of the running cascade, 0 when settled
	Settling bool
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("match3", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "match3",
		Title:       "Gem Fusion",
		Description: "Swap gems to line up three or more",
		Controls:    "arrows move, space grab then arrow to swap",
		Tick:        250 * time.Millisecond,
	}
}

func (Rules) Init(env *session.Env) State {
	return State{
		Board:  fill(env.Rand),
		Cursor: core.Pt(Size/2, Size/2),
	}
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	if s.Settling {
		return
	}
	if in.Action == core.ActionFire || in.Action == core.ActionConfirm {
		s.Grabbed = !s.Grabbed
		return
	}
	if in.Action == core.ActionPointer {
		o := origin(env.ViewW, env.ViewH)
		if in.X < o.X || in.Y < o.Y {
			return
		}
		p := core.Pt((in.X-o.X)/2, in.Y-o.Y)
		if p.In(Size, Size) {
			s.Cursor = p
		}
		return
	}
	d, ok := in.Direction()
	if !ok {
		return
	}
	next := s.Cursor.Add(d)
	if !next.In(Size, Size) {
		return
	}
	if !s.Grabbed {
		s.Cursor = next
		return
	}

	s.Grabbed = false
	s.Board.swap(s.Cursor.X, s.Cursor.Y, next.X, next.Y)
	if _, n := s.Board.Matches(); n == 0 {
		s.Board.swap(s.Cursor.X, s.Cursor.Y, next.X, next.Y)
		env.Play(audio.CueError)
		return
	}
	s.Cursor = next
	s.Settling = true
}

func (Rules) Step(s *State, env *session.Env) {
	if !s.Settling {
		return
	}
	if s.Board.collapse(env.Rand) {
		return
	}
	if marked, n := s.Board.Matches(); n > 0 {
		s.Cascades++
		for y := range marked {
			for x, m := range marked[y] {
				if m {
					s.Board[y][x] = 0
				}
			}
		}
		env.AddScore(n * gemPoints * s.Cascades)
		env.Combo(s.Cascades)
		return
	}

	s.Settling = false
	s.Cascades = 0
	if !s.Board.HasMove() {
		env.End()
	}
}

const frameW, frameH = Size*2 + 2, Size + 2

// origin is the playfield position of the top-left gem cell.
func origin(w, h int) core.Point {
	return core.Pt(max((w-frameW)/2, 0)+1, max((h-frameH)/2, 0)+1)
}

func (Rules) Render(s *State, r *core.Region) {
	f := r.Centered(frameW, frameH)
	f.Box(core.NewRect(0, 0, frameW, frameH), core.ColorNeonPurple)
	for y := range s.Board {
		for x, g := range s.Board[y] {
			f.Set(1+x*2, 1+y, gemRunes[g], gemColors[g])
		}
	}
	cur := '['
	if s.Grabbed {
		cur = '<'
	}
	cx, cy := s.Cursor.X*2, 1+s.Cursor.Y
	f.Set(cx, cy, cur, core.ColorWhite)
	if s.Grabbed {
		f.Set(cx+2, cy, '>', core.ColorWhite)
	} else {
		f.Set(cx+2, cy, ']', core.ColorWhite)
	}
}
