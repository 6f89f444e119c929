// Package rhythm is a four-lane note highway: hit each note as it crosses
// the line to build a combo.
package rhythm

import (
	"fmt"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

const (
	Lanes     = 4
	MaxMisses = 10
	Window    = 1 // Rows either side of the line that still count

	laneW      = 6
	notePoints = 10
)

// Note is a falling note at row Y of a lane.
type Note struct {
	Lane, Y int
}

// State is one song.
type State struct {
	LineY     int
	Notes     []Note
	Combo     int
	BestCombo int
	Misses    int
	Flash     [Lanes]int // Ticks of hit highlight left per lane
}

// spawnChance ramps the note density up over the first minute.
func spawnChance(ticks uint64) float64 {
	return min(0.2+float64(ticks)/1500, 0.6)
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("rhythm", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "rhythm",
		Title:       "Beat Line",
		Description: fmt.Sprintf("Hit the notes on the line, %d misses and you are out", MaxMisses),
		Controls:    "1-4 or left/down/up/right hit lanes",
		Tick:        100 * time.Millisecond,
	}
}

func (Rules) Init(env *session.Env) State {
	return State{LineY: max(env.H-3, 6)}
}

// laneFor maps an input to a lane.
func laneFor(in core.Input) (int, bool) {
	switch in.Action {
	case core.ActionSelect:
		if in.Index >= 1 && in.Index <= Lanes {
			return in.Index - 1, true
		}
	case core.ActionLeft:
		return 0, true
	case core.ActionDown:
		return 1, true
	case core.ActionUp:
		return 2, true
	case core.ActionRight:
		return 3, true
	}
	return 0, false
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	lane, ok := laneFor(in)
	if !ok {
		return
	}
	best := -1
	for i, n := range s.Notes {
		if n.Lane != lane || core.Abs(n.Y-s.LineY) > Window {
			continue
		}
		if best < 0 || core.Abs(n.Y-s.LineY) < core.Abs(s.Notes[best].Y-s.LineY) {
			best = i
		}
	}
	if best < 0 {
		s.miss(env)
		return
	}
	s.Notes = append(s.Notes[:best], s.Notes[best+1:]...)
	s.Combo++
	s.BestCombo = max(s.BestCombo, s.Combo)
	s.Flash[lane] = 2
	env.AddScore(notePoints + s.Combo)
	env.Combo(s.Combo)
}

func (s *State) miss(env *session.Env) {
	s.Misses++
	s.Combo = 0
	env.Play(audio.CueError)
	if s.Misses >= MaxMisses {
		env.End()
	}
}

func (Rules) Step(s *State, env *session.Env) {
	for i := range s.Flash {
		s.Flash[i] = max(s.Flash[i]-1, 0)
	}
	notes := s.Notes[:0]
	missed := 0
	for _, n := range s.Notes {
		n.Y++
		if n.Y > s.LineY+Window {
			missed++
			continue
		}
		notes = append(notes, n)
	}
	s.Notes = notes
	for i := 0; i < missed; i++ {
		s.miss(env)
	}
	if env.Chance(spawnChance(env.Ticks())) {
		s.Notes = append(s.Notes, Note{Lane: env.Rand.Intn(Lanes), Y: 0})
	}
}

func (Rules) Render(s *State, r *core.Region) {
	w := Lanes*laneW + 1
	f := r.Centered(w+20, s.LineY+2)
	for lane := 0; lane < Lanes; lane++ {
		x := lane * laneW
		for y := 0; y <= s.LineY+1; y++ {
			f.Set(x, y, '│', core.ColorGray)
		}
		c := core.PadColors[lane]
		line := "══" + fmt.Sprint(lane+1) + "══"
		if s.Flash[lane] > 0 {
			line = "█████"
		}
		f.Text(x+1, s.LineY, line, c)
	}
	for y := 0; y <= s.LineY+1; y++ {
		f.Set(Lanes*laneW, y, '│', core.ColorGray)
	}
	for _, n := range s.Notes {
		f.Text(n.Lane*laneW+2, n.Y, "▄▄▄", core.PadColors[n.Lane])
	}
	f.Text(w+2, 1, fmt.Sprintf("COMBO  %d", s.Combo), core.ColorNeonGreen)
	f.Text(w+2, 2, fmt.Sprintf("BEST   %d", s.BestCombo), core.ColorCyan)
	f.Text(w+2, 3, fmt.Sprintf("MISSES %d/%d", s.Misses, MaxMisses), core.ColorNeonRed)
}
