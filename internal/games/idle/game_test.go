package idle

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

func TestPriceGrows(t *testing.T) {
	s := State{}
	tests := []struct {
		owned int
		want  int
	}{
		{0, 10},
		{1, 12}, // 11.5
		{2, 14}, // 13.225
		{5, 21}, // 20.11
	}
	for _, tt := range tests {
		s.Owned[0] = tt.owned
		if got := s.Price(0); got != tt.want {
			t.Errorf("Price(0) with %d owned = %d, expected %d", tt.owned, got, tt.want)
		}
	}
}

func TestMineAndBuy(t *testing.T) {
	g := newGame()
	s := g.Data()
	g.HandleInput(core.Choose(1))
	if s.Owned[0] != 0 {
		t.Fatal("bought a drone without credits")
	}
	for i := 0; i < 10; i++ {
		g.HandleInput(core.Press(core.ActionFire))
	}
	g.HandleInput(core.Choose(1))
	if s.Owned[0] != 1 || s.Credits != 0 {
		t.Errorf("Owned=%v Credits=%d after buying", s.Owned, s.Credits)
	}
	if g.State().Score != 10 {
		t.Errorf("score = %d, spending must not reduce it", g.State().Score)
	}
}

func TestGeneratorsProduce(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Owned = [len(Generators)]int{2, 1, 0}
	g.Tick()
	g.Tick()
	if want := 2 * (2 + 8); s.Credits != want || s.Earned != want || g.State().Score != want {
		t.Errorf("Credits=%d Earned=%d score=%d, expected %d", s.Credits, s.Earned, g.State().Score, want)
	}
}

func TestOutOfRangeSelectIgnored(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Credits = 1 << 20
	g.HandleInput(core.Choose(4))
	if s.Owned != [len(Generators)]int{} {
		t.Errorf("Owned = %v, expected nothing bought", s.Owned)
	}
}
