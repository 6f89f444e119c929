package strategy

import (
	"testing"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/session"
)

func newGame() *session.Session[State] {
	g := New(audio.Silent)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 5})
	g.Start()
	return g
}

func TestDeployCostsEnergy(t *testing.T) {
	g := newGame()
	s := g.Data()
	g.HandleInput(core.Choose(4))
	if s.Lane != 3 || len(s.Robots) != 1 || s.Robots[0].Lane != 3 {
		t.Fatalf("Lane=%d robots=%v", s.Lane, s.Robots)
	}
	if s.Energy != 0 {
		t.Errorf("Energy = %d, expected 0", s.Energy)
	}
	g.HandleInput(core.Press(core.ActionFire))
	if len(s.Robots) != 1 {
		t.Error("deploy without energy should be refused")
	}
}

func TestRobotMeetsEnemy(t *testing.T) {
	tests := []struct {
		name  string
		robot int
		enemy int
	}{
		{"meet", 4, 6},
		{"cross", 5, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame()
			s := g.Data()
			s.Robots = []Unit{{Lane: 1, X: tt.robot}}
			s.Enemies = []Unit{{Lane: 1, X: tt.enemy}}
			g.Tick()
			if s.Kills != 1 || g.State().Score != killPoints {
				t.Errorf("Kills=%d score=%d", s.Kills, g.State().Score)
			}
			for _, r := range s.Robots {
				if r.Lane == 1 {
					t.Error("robot should be spent")
				}
			}
		})
	}
}

func TestOtherLanesDoNotFight(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Robots = []Unit{{Lane: 0, X: 5}}
	s.Enemies = []Unit{{Lane: 4, X: 6}}
	g.Tick()
	if s.Kills != 0 {
		t.Errorf("Kills = %d, expected 0", s.Kills)
	}
}

func TestBaseFalls(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.BaseHP = 1
	s.Enemies = []Unit{{Lane: 2, X: 0}}
	g.Tick()
	if s.BaseHP != 0 || g.State().Phase != core.PhaseOver {
		t.Errorf("BaseHP=%d phase=%v, expected 0 and over", s.BaseHP, g.State().Phase)
	}
}

func TestEnergyCaps(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.BaseHP = 1000
	for i := 0; i < 2*MaxEnergy; i++ {
		g.Tick()
	}
	if s.Energy != MaxEnergy {
		t.Errorf("Energy = %d, expected %d", s.Energy, MaxEnergy)
	}
}
