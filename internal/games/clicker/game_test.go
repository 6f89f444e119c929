package clicker

import (
	"testing"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/session"
)

func newGame() *session.Session[State] {
	g := New(audio.Silent)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	g.Start()
	return g
}

func click(g *session.Session[State], n int) {
	for i := 0; i < n; i++ {
		g.HandleInput(core.Press(core.ActionFire))
	}
}

func TestClickEarnsMultiplier(t *testing.T) {
	g := newGame()
	click(g, 3)
	if g.Data().Balance != 3 || g.State().Score != 3 {
		t.Errorf("balance=%d score=%d, expected 3/3", g.Data().Balance, g.State().Score)
	}
}

func TestBuyMultiplier(t *testing.T) {
	g := newGame()
	click(g, 49)
	g.HandleInput(core.Choose(1))
	if g.Data().Multiplier != 1 {
		t.Fatal("purchase with 49 clicks should fail")
	}

	click(g, 1)
	g.HandleInput(core.Choose(1))
	s := g.Data()
	if s.Multiplier != 2 || s.Balance != 0 {
		t.Errorf("multiplier=%d balance=%d, expected 2/0", s.Multiplier, s.Balance)
	}
	if g.State().Score != 50 {
		t.Errorf("score = %d, spending must not lower it", g.State().Score)
	}

	click(g, 1)
	if s.Balance != 2 {
		t.Errorf("balance = %d after doubled click, expected 2", s.Balance)
	}
}

func TestAutoClicker(t *testing.T) {
	g := newGame()
	click(g, 100)
	g.HandleInput(core.Choose(2))
	if g.Data().Auto != 1 {
		t.Fatalf("Auto = %d, expected 1", g.Data().Auto)
	}
	g.Tick()
	g.Tick()
	if g.Data().Balance != 2 || g.State().Score != 102 {
		t.Errorf("balance=%d score=%d, expected 2/102", g.Data().Balance, g.State().Score)
	}
}
