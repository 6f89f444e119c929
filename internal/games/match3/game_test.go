package match3

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/session"
)

func newGame() *session.Session[State] {
	g := New(audio.Silent)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 21})
	g.Start()
	return g
}

// stripes builds a board with no matches and no moves.
func stripes() Board {
	var b Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b[y][x] = uint8((x+2*y)%4 + 1)
		}
	}
	return b
}

func TestFillHasNoMatchesAndAMove(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := fill(rand.New(rand.NewSource(seed)))
		if _, n := b.Matches(); n != 0 {
			t.Errorf("seed %d: fresh board has %d matched gems", seed, n)
		}
		if !b.HasMove() {
			t.Errorf("seed %d: fresh board has no move", seed)
		}
	}
}

func TestStripesHaveNoMove(t *testing.T) {
	b := stripes()
	if _, n := b.Matches(); n != 0 {
		t.Fatalf("stripes has %d matched gems", n)
	}
	if b.HasMove() {
		t.Error("HasMove() = true, expected false")
	}
}

func TestMatches(t *testing.T) {
	b := stripes()
	b[0][0], b[0][1], b[0][2] = 6, 6, 6
	b[1][2], b[2][2] = 6, 6
	if _, n := b.Matches(); n != 5 {
		t.Errorf("Matches() n = %d, expected 5 for an L shape", n)
	}
}

func TestSwapWithoutMatchReverts(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Board = stripes()
	s.Cursor = core.Pt(0, 0)
	before := s.Board

	g.HandleInput(core.Press(core.ActionFire))
	g.HandleInput(core.Press(core.ActionRight))
	if s.Board != before || s.Settling {
		t.Error("a swap that matches nothing must be undone")
	}
	if s.Cursor != core.Pt(0, 0) {
		t.Errorf("Cursor = %v, expected (0,0)", s.Cursor)
	}
}

func TestSwapCascadesAndScores(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Board = stripes()
	// Row 0 becomes 6 6 x 6; swapping (2,0) with (3,0) completes three.
	s.Board[0][0], s.Board[0][1], s.Board[0][3] = 6, 6, 6
	s.Cursor = core.Pt(3, 0)

	g.HandleInput(core.Press(core.ActionFire))
	g.HandleInput(core.Press(core.ActionLeft))
	if !s.Settling {
		t.Fatal("a matching swap should start settling")
	}
	g.Tick()
	if g.State().Score < 3*gemPoints {
		t.Errorf("score = %d after first cascade step, expected at least %d", g.State().Score, 3*gemPoints)
	}
	for i := 0; i < 50 && s.Settling; i++ {
		g.Tick()
	}
	if s.Settling && g.State().Running() {
		t.Error("board never settled")
	}
	for y := range s.Board {
		for x, v := range s.Board[y] {
			if v == 0 {
				t.Errorf("empty cell at (%d,%d) after settling", x, y)
			}
		}
	}
}

func TestInputIgnoredWhileSettling(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Settling = true
	c := s.Cursor
	g.HandleInput(core.Press(core.ActionUp))
	if s.Cursor != c {
		t.Error("cursor moved during a cascade")
	}
}

func TestNoMoveEnds(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Board = stripes()
	s.Settling = true
	g.Tick()
	if g.State().Phase != core.PhaseOver {
		t.Errorf("Phase = %v, expected over", g.State().Phase)
	}
}

func TestPointerFollowsResize(t *testing.T) {
	g := newGame()
	s := g.Data()
	g.Resize(120, 40)
	env := g.Env()
	o := origin(env.ViewW, env.ViewH)

	g.HandleInput(core.Click(o.X+2*5, o.Y+3))
	if s.Cursor != core.Pt(5, 3) {
		t.Errorf("Cursor = %v, expected (5,3)", s.Cursor)
	}
}
