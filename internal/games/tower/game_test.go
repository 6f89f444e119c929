package tower

import (
	"testing"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/session"
)

func newGame() *session.Session[State] {
	g := New(audio.Silent)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 4})
	g.Start()
	return g
}

func TestBlockSlidesAndBounces(t *testing.T) {
	g := newGame()
	s := g.Data()
	for i := 0; i < 3*(FieldW-StartWidth); i++ {
		g.Tick()
	}
	if s.Block.X != FieldW-StartWidth {
		t.Fatalf("Block.X = %d, expected right edge %d", s.Block.X, FieldW-StartWidth)
	}
	for i := 0; i < 3; i++ {
		g.Tick()
	}
	if s.Block.X != FieldW-StartWidth-1 || s.Dir != -1 {
		t.Errorf("Block.X=%d Dir=%d, expected bounce", s.Block.X, s.Dir)
	}
}

func TestDrop(t *testing.T) {
	base := (FieldW - StartWidth) / 2
	tests := []struct {
		name  string
		x     int
		width int
		over  bool
	}{
		{"perfect", base, StartWidth, false},
		{"overhang right", base + 3, StartWidth - 3, false},
		{"overhang left", base - 4, StartWidth - 4, false},
		{"miss", base + StartWidth, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame()
			s := g.Data()
			s.Block.X = tt.x
			g.HandleInput(core.Press(core.ActionFire))

			if tt.over {
				if g.State().Phase != core.PhaseOver {
					t.Errorf("Phase = %v, expected over", g.State().Phase)
				}
				return
			}
			if got := s.Top().Width; got != tt.width {
				t.Errorf("placed width = %d, expected %d", got, tt.width)
			}
			if s.Block.Width != tt.width {
				t.Errorf("next block width = %d, expected %d", s.Block.Width, tt.width)
			}
			if g.State().Score != 1 {
				t.Errorf("score = %d, expected 1", g.State().Score)
			}
		})
	}
}

func TestRenderShortField(t *testing.T) {
	for _, h := range []int{0, 1, 2, 3, 4, 5} {
		g := New(audio.Silent)
		g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: h, Seed: 4})
		g.Start()
		s := g.Data()
		for i := 0; i < 6; i++ {
			s.Layers = append(s.Layers, Layer{X: 5, Width: StartWidth})
		}
		g.Render(core.NewScreen(40, h))
	}
}
