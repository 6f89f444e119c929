package racing

import (
	"testing"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/session"
)

func newGame() *session.Session[State] {
	g := New(audio.Silent)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 8})
	g.Start()
	return g
}

func TestLaneChangeClamped(t *testing.T) {
	g := newGame()
	for i := 0; i < 5; i++ {
		g.HandleInput(core.Press(core.ActionLeft))
	}
	if g.Data().Lane != 0 {
		t.Errorf("Lane = %d, expected 0", g.Data().Lane)
	}
	for i := 0; i < 5; i++ {
		g.HandleInput(core.Press(core.ActionRight))
	}
	if g.Data().Lane != Lanes-1 {
		t.Errorf("Lane = %d, expected %d", g.Data().Lane, Lanes-1)
	}
}

func TestPassingCarScores(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Lane = 0
	s.SinceSpawn = -1 << 20
	s.Cars = []Car{{Lane: 2, Y: s.PlayerY()}}
	for i := 0; i < startInterval*CarHeight; i++ {
		g.Tick()
	}
	if s.Passed != 1 || g.State().Score != 1 {
		t.Errorf("Passed=%d score=%d, expected 1", s.Passed, g.State().Score)
	}
}

func TestCollisionEnds(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.SinceSpawn = -1 << 20
	s.Cars = []Car{{Lane: s.Lane, Y: s.PlayerY() - CarHeight}}
	for i := 0; i < startInterval; i++ {
		g.Tick()
	}
	if g.State().Phase != core.PhaseOver {
		t.Errorf("Phase = %v, expected over", g.State().Phase)
	}
}

func TestSteeringIntoCarEnds(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Cars = []Car{{Lane: s.Lane + 1, Y: s.PlayerY()}}
	g.HandleInput(core.Press(core.ActionRight))
	if g.State().Phase != core.PhaseOver {
		t.Errorf("Phase = %v, expected over", g.State().Phase)
	}
}

func TestSpeedRamps(t *testing.T) {
	s := State{}
	if s.Interval() != startInterval {
		t.Fatalf("Interval() = %d", s.Interval())
	}
	s.Passed = rampEvery
	if s.Interval() != startInterval-1 {
		t.Errorf("Interval() = %d after %d cars", s.Interval(), rampEvery)
	}
	s.Passed = 1000
	if s.Interval() != 1 {
		t.Errorf("Interval() = %d, expected floor of 1", s.Interval())
	}
}
