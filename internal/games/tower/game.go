// Package tower is a stacking game: drop the sliding block onto the tower,
// whatever hangs over the edge is cut off.
package tower

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

const (
	FieldW     = 30
	StartWidth = 10
)

// Layer is one placed slab, X is its left column.
type Layer struct {
	X, Width int
}

// State is one tower.
type State struct {
	Layers []Layer
	Block  Layer // The sliding block
	Dir    int
	Wait   int
}

// Top returns the highest placed layer.
func (s *State) Top() Layer {
	return s.Layers[len(s.Layers)-1]
}

// moveEvery is ticks per column of slide; it speeds up as the tower grows.
func (s *State) moveEvery() int {
	return max(3-len(s.Layers)/8, 1)
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("tower", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "tower",
		Title:       "Neon Tower",
		Description: "Drop each slab square on the last one",
		Controls:    "space drop",
		Tick:        60 * time.Millisecond,
	}
}

func (Rules) Init(*session.Env) State {
	base := Layer{X: (FieldW - StartWidth) / 2, Width: StartWidth}
	return State{
		Layers: []Layer{base},
		Block:  Layer{X: 0, Width: StartWidth},
		Dir:    1,
	}
}

func (Rules) Step(s *State, _ *session.Env) {
	s.Wait++
	if s.Wait < s.moveEvery() {
		return
	}
	s.Wait = 0
	if s.Block.X+s.Dir < 0 || s.Block.X+s.Block.Width+s.Dir > FieldW {
		s.Dir = -s.Dir
	}
	s.Block.X += s.Dir
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	switch in.Action {
	case core.ActionFire, core.ActionConfirm, core.ActionDown, core.ActionPointer:
	default:
		return
	}

	top := s.Top()
	left := max(s.Block.X, top.X)
	right := min(s.Block.X+s.Block.Width, top.X+top.Width)
	if right <= left {
		env.Play(audio.CueExplosion)
		env.End()
		return
	}

	placed := Layer{X: left, Width: right - left}
	if placed.Width == s.Block.Width {
		env.Play(audio.CueSuccess)
	} else {
		env.Play(audio.CueBounce)
	}
	s.Layers = append(s.Layers, placed)
	env.AddScore(1)

	// Alternate the side the next block enters from.
	s.Block = placed
	if len(s.Layers)%2 == 0 {
		s.Block.X, s.Dir = FieldW-placed.Width, -1
	} else {
		s.Block.X, s.Dir = 0, 1
	}
	s.Wait = 0
}

var layerColors = []core.Color{
	core.ColorNeonBlue, core.ColorNeonPurple, core.ColorNeonRed, core.ColorNeonGreen,
}

func (Rules) Render(s *State, r *core.Region) {
	h := r.Height()
	f := r.Centered(FieldW+2, h)
	for y := 0; y < h; y++ {
		f.Set(0, y, '│', core.ColorGray)
		f.Set(FieldW+1, y, '│', core.ColorGray)
	}

	// The view scrolls so the top of the tower stays in the lower half.
	rows := max(h-3, 0)
	first := core.Clamp(len(s.Layers)-rows/2, 0, len(s.Layers))
	for i, l := range s.Layers[first:] {
		y := h - 1 - i
		f.Text(1+l.X, y, strings.Repeat("█", l.Width), layerColors[(first+i)%len(layerColors)])
	}
	blockY := h - 1 - (len(s.Layers) - first)
	f.Text(1+s.Block.X, blockY-1, strings.Repeat("▓", s.Block.Width), core.ColorWhite)
	f.Text(2, 0, fmt.Sprintf("height %d", len(s.Layers)-1), core.ColorWhite)
}
