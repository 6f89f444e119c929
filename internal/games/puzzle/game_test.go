package puzzle

import (
	"testing"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/session"
)

func newGame(seed int64) *session.Session[State] {
	g := New(audio.Silent)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	g.Start()
	return g
}

func TestShuffleIsAPermutation(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		b := newGame(seed).Data().Board
		if b.IsSolved() {
			t.Errorf("seed %d: board should start shuffled", seed)
		}
		seen := map[int]bool{}
		for y := range b {
			for _, v := range b[y] {
				seen[v] = true
			}
		}
		if len(seen) != Size*Size {
			t.Errorf("seed %d: board has %d distinct tiles", seed, len(seen))
		}
	}
}

func TestSlide(t *testing.T) {
	b := Solved()
	tests := []struct {
		name string
		p    core.Point
		ok   bool
	}{
		{"left neighbour", core.Pt(2, 3), true},
		{"diagonal", core.Pt(2, 2), false},
		{"far", core.Pt(0, 0), false},
		{"outside", core.Pt(4, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := b
			if got := c.Slide(tt.p); got != tt.ok {
				t.Errorf("Slide(%v) = %v, expected %v", tt.p, got, tt.ok)
			}
		})
	}
}

func TestArrowSlidesTileIntoGap(t *testing.T) {
	g := newGame(1)
	s := g.Data()
	s.Board = Solved()
	s.Board.Slide(core.Pt(3, 2)) // gap at (3,2)
	s.Board.Slide(core.Pt(2, 2)) // gap at (2,2), two moves from solved
	s.Moves = 0
	tile := s.Board[2][3]

	// Left moves the tile right of the gap into it.
	g.HandleInput(core.Press(core.ActionLeft))
	if got := s.Board.Blank(); got != core.Pt(3, 2) {
		t.Fatalf("Blank() = %v, expected (3,2)", got)
	}
	if s.Board[2][2] != tile {
		t.Errorf("Board[2][2] = %d, expected %d", s.Board[2][2], tile)
	}
	if s.Moves != 1 || s.Solves != 0 || s.Board.IsSolved() {
		t.Errorf("Moves=%d Solves=%d solved=%v, expected one move on an unsolved board", s.Moves, s.Solves, s.Board.IsSolved())
	}
}

func TestSolvingScoresAndReshuffles(t *testing.T) {
	g := newGame(2)
	s := g.Data()
	s.Board = Solved()
	s.Board.Slide(core.Pt(2, 3))
	s.Moves = 9

	g.HandleInput(core.Press(core.ActionLeft))
	if s.Solves != 1 {
		t.Errorf("Solves = %d, expected 1", s.Solves)
	}
	if want := solvePoints + moveBudget - 10; g.State().Score != want {
		t.Errorf("score = %d, expected %d", g.State().Score, want)
	}
	if s.Board.IsSolved() || s.Moves != 0 {
		t.Error("a solved board should be reshuffled with the move count reset")
	}
}

func TestClickTile(t *testing.T) {
	g := newGame(3)
	s := g.Data()
	s.Board = Solved()
	env := g.Env()
	o := boardOrigin(env.W, env.H)

	// Tile 15 sits left of the gap.
	g.HandleInput(core.Click(o.X+1+2*cellW, o.Y+1+3*cellH))
	if s.Board[3][3] != 15 || s.Moves != 1 {
		t.Errorf("click did not slide tile 15: %v", s.Board)
	}
}

func TestClickTileAfterResize(t *testing.T) {
	g := newGame(3)
	s := g.Data()
	s.Board = Solved()
	g.Resize(120, 40)
	env := g.Env()
	o := boardOrigin(env.ViewW, env.ViewH)
	if o == boardOrigin(env.W, env.H) {
		t.Fatal("resize should move the board")
	}

	g.HandleInput(core.Click(o.X+1+2*cellW, o.Y+1+3*cellH))
	if s.Board[3][3] != 15 || s.Moves != 1 {
		t.Errorf("click on the redrawn board did not slide tile 15: %v", s.Board)
	}
}
