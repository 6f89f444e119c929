package snake

import (
	"testing"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/session"
)

func newGame(t *testing.T) *session.Session[State] {
	t.Helper()
	g := New(audio.Silent)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
	g.Start()
	return g
}

func TestInitialState(t *testing.T) {
	g := newGame(t)
	s := g.Data()

	if len(s.Body) != 1 || s.Head() != core.Pt(10, 10) {
		t.Errorf("Body = %v, expected [(10,10)]", s.Body)
	}
	if s.Dir != core.DirRight {
		t.Errorf("Dir = %v, expected right", s.Dir)
	}
	if s.Food != core.Pt(15, 15) {
		t.Errorf("Food = %v, expected (15,15)", s.Food)
	}
}

func TestFourRightMoves(t *testing.T) {
	g := newGame(t)
	for i := 0; i < 4; i++ {
		g.HandleInput(core.Press(core.ActionRight))
		g.Tick()
	}
	if got := g.Data().Head(); got != core.Pt(14, 10) {
		t.Errorf("Head() = %v, expected (14,10)", got)
	}
	if g.State().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected running", g.State().Phase)
	}
}

func TestWallEndsRound(t *testing.T) {
	g := newGame(t)
	// Head at x=10 reaches x=19 after 9 moves; the 10th crosses the wall.
	for i := 0; i < 9; i++ {
		g.Tick()
	}
	if g.State().Phase != core.PhaseRunning || g.Data().Head().X != 19 {
		t.Fatalf("after 9 moves: phase %v head %v", g.State().Phase, g.Data().Head())
	}
	g.Tick()
	if g.State().Phase != core.PhaseOver {
		t.Errorf("Phase = %v, expected over at the crossing tick", g.State().Phase)
	}
}

func TestSelfCollisionEndsRound(t *testing.T) {
	g := newGame(t)
	s := g.Data()
	// Heading left with the body wrapped above the head: turning up bites it.
	s.Body = []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 4}}
	s.Dir = core.DirLeft
	s.Next = core.DirLeft
	g.HandleInput(core.Press(core.ActionUp))
	g.Tick()

	if g.State().Phase != core.PhaseOver {
		t.Errorf("Phase = %v, expected over after biting the body", g.State().Phase)
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g := newGame(t)
	var reported int
	g.OnScoreChange(func(v int) { reported = v })

	for i := 0; i < 5; i++ {
		g.Tick()
	}
	g.HandleInput(core.Press(core.ActionDown))
	for i := 0; i < 5; i++ {
		g.Tick()
	}

	s := g.Data()
	if s.Head() != core.Pt(15, 15) {
		t.Fatalf("Head() = %v, expected (15,15)", s.Head())
	}
	if len(s.Body) != 2 {
		t.Errorf("len(Body) = %d, expected 2", len(s.Body))
	}
	if g.State().Score != 10 || reported != 10 {
		t.Errorf("score = %d reported %d, expected 10", g.State().Score, reported)
	}
	if !s.Food.In(GridW, GridH) {
		t.Errorf("Food = %v outside the board", s.Food)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newGame(t)
	g.HandleInput(core.Press(core.ActionLeft))
	g.Tick()
	if got := g.Data().Head(); got != core.Pt(11, 10) {
		t.Errorf("Head() = %v, expected (11,10): reversal should be ignored", got)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() State {
		g := newGame(t)
		for i := 0; i < 5; i++ {
			g.Tick()
		}
		g.HandleInput(core.Press(core.ActionDown))
		for i := 0; i < 5; i++ {
			g.Tick()
		}
		return *g.Data()
	}
	a, b := run(), run()
	if a.Food != b.Food || len(a.Body) != len(b.Body) {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
}
