package platformer

import (
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

func TestDistanceScores(t *testing.T) {
	g := newGame()
	g.Data().Terrain.nextIn = 1 << 30
	for i := 0; i < 25; i++ {
		g.Tick()
	}
	if g.State().Score != 2 {
		t.Errorf("score = %d after 25 columns, expected 2", g.State().Score)
	}
}

func TestJumpArc(t *testing.T) {
	g := newGame()
	g.Data().Terrain.nextIn = 1 << 30
	g.HandleInput(core.Press(core.ActionFire))
	g.Tick()
	if g.Data().Grounded || g.Data().Height <= 0 {
		t.Fatal("player should be airborne")
	}
	// No double jumps.
	v := g.Data().Vel
	g.HandleInput(core.Press(core.ActionFire))
	if g.Data().Vel != v {
		t.Error("jump while airborne should be ignored")
	}
	for i := 0; i < 20; i++ {
		g.Tick()
	}
	if !g.Data().Grounded || g.Data().Height != 0 {
		t.Errorf("player should land: %+v", *g.Data())
	}
}

func TestPitEndsRun(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Terrain.nextIn = 1 << 30
	s.Terrain.Hazards = []Hazard{{Kind: Pit, X: PlayerX + 1, Width: 3}}
	g.Tick()
	if g.State().Phase != core.PhaseOver {
		t.Errorf("Phase = %v, expected over", g.State().Phase)
	}
}

func TestJumpClearsSpikes(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Terrain.nextIn = 1 << 30
	s.Terrain.Hazards = []Hazard{{Kind: Spikes, X: PlayerX + 3, Width: 3}}
	g.HandleInput(core.Press(core.ActionFire))
	for i := 0; i < 12; i++ {
		g.Tick()
	}
	if g.State().Phase != core.PhaseRunning {
		t.Errorf("jump should clear the spikes, phase %v", g.State().Phase)
	}
}

func TestTerrainSpawnsWithinBounds(t *testing.T) {
	g := newGame()
	tr := &g.Data().Terrain
	for i := 0; i < 1000; i++ {
		tr.Scroll(g.Env().Rand)
	}
	for _, h := range tr.Hazards {
		if h.Width < minWidth || h.Width > maxWidth || h.X+h.Width <= 0 {
			t.Errorf("hazard out of range: %+v", h)
		}
	}
}
