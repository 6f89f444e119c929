package rhythm

import (
	"testing"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/session"
)

func newGame() *session.Session[State] {
	g := New(audio.Silent)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3})
	g.Start()
	return g
}

func TestLaneFor(t *testing.T) {
	tests := []struct {
		in   core.Input
		lane int
		ok   bool
	}{
		{core.Choose(1), 0, true},
		{core.Choose(4), 3, true},
		{core.Choose(5), 0, false},
		{core.Press(core.ActionDown), 1, true},
		{core.Press(core.ActionRight), 3, true},
		{core.Press(core.ActionFire), 0, false},
	}
	for _, tt := range tests {
		lane, ok := laneFor(tt.in)
		if lane != tt.lane || ok != tt.ok {
			t.Errorf("laneFor(%+v) = %d, %v, expected %d, %v", tt.in, lane, ok, tt.lane, tt.ok)
		}
	}
}

func TestHitBuildsCombo(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Notes = []Note{{Lane: 0, Y: s.LineY}, {Lane: 1, Y: s.LineY - 1}}

	g.HandleInput(core.Choose(1))
	g.HandleInput(core.Choose(2))
	if s.Combo != 2 || s.BestCombo != 2 {
		t.Errorf("Combo=%d Best=%d, expected 2", s.Combo, s.BestCombo)
	}
	if want := notePoints + 1 + notePoints + 2; g.State().Score != want {
		t.Errorf("score = %d, expected %d", g.State().Score, want)
	}
	if len(s.Notes) != 0 {
		t.Errorf("hit notes should be removed, %d left", len(s.Notes))
	}
}

func TestEmptyHitBreaksCombo(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Combo = 7
	s.Notes = []Note{{Lane: 2, Y: 0}}
	g.HandleInput(core.Choose(3))
	if s.Combo != 0 || s.Misses != 1 {
		t.Errorf("Combo=%d Misses=%d, expected 0 and 1", s.Combo, s.Misses)
	}
}

func TestPassedNoteIsMissed(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Notes = []Note{{Lane: 3, Y: s.LineY + Window}}
	g.Tick()
	if s.Misses != 1 {
		t.Errorf("Misses = %d, expected 1", s.Misses)
	}
}

func TestTenMissesEnd(t *testing.T) {
	g := newGame()
	for i := 0; i < MaxMisses; i++ {
		g.HandleInput(core.Choose(1))
	}
	if g.State().Phase != core.PhaseOver {
		t.Errorf("Phase = %v, expected over", g.State().Phase)
	}
}
