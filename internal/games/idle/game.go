// Package idle is an incremental game: generators produce credits every
// second and credits buy more generators.
package idle

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

// Generator is a purchasable credit source.
type Generator struct {
	Name string
	Cost int // Price of the first unit
	Rate int // Credits per tick per unit
}

// Generators in shop order; keys 1-3 buy them.
var Generators = [...]Generator{
	{Name: "Neon Drone", Cost: 10, Rate: 1},
	{Name: "Pixel Factory", Cost: 100, Rate: 8},
	{Name: "Arc Reactor", Cost: 1000, Rate: 50},
}

const costGrowth = 1.15

// State is one idle economy.
type State struct {
	Credits int
	Earned  int
	Owned   [len(Generators)]int
}

// Price is the cost of the next unit of generator i.
func (s *State) Price(i int) int {
	return int(math.Ceil(float64(Generators[i].Cost) * math.Pow(costGrowth, float64(s.Owned[i]))))
}

// Rate is the credits produced per tick.
func (s *State) Rate() int {
	total := 0
	for i, g := range Generators {
		total += g.Rate * s.Owned[i]
	}
	return total
}

func (s *State) earn(n int, env *session.Env) {
	s.Credits += n
	s.Earned += n
	env.AddScore(n)
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("idle", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "idle",
		Title:       "Neon Tycoon",
		Description: "Build generators and watch the credits roll in",
		Controls:    "space mine a credit, 1-3 buy generators",
		Tick:        time.Second,
	}
}

func (Rules) Init(*session.Env) State {
	return State{}
}

func (Rules) Step(s *State, env *session.Env) {
	if r := s.Rate(); r > 0 {
		s.earn(r, env)
	}
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	switch in.Action {
	case core.ActionFire, core.ActionConfirm, core.ActionPointer:
		s.earn(1, env)
		env.Play(audio.CueCollect)
	case core.ActionSelect:
		i := in.Index - 1
		if i < 0 || i >= len(Generators) {
			return
		}
		price := s.Price(i)
		if s.Credits < price {
			env.Play(audio.CueError)
			return
		}
		s.Credits -= price
		s.Owned[i]++
		env.Play(audio.CuePowerUp)
	}
}

func (Rules) Render(s *State, r *core.Region) {
	f := r.Centered(46, 10)
	f.TextCentered(0, fmt.Sprintf("◈ %d credits ◈", s.Credits), core.ColorYellow)
	f.TextCentered(1, fmt.Sprintf("+%d/s   earned %d", s.Rate(), s.Earned), core.ColorGray)
	for i, g := range Generators {
		c := core.ColorGray
		if s.Credits >= s.Price(i) {
			c = core.ColorNeonGreen
		}
		f.Text(0, 3+i*2, fmt.Sprintf("[%d] %-14s x%-3d +%d/s each", i+1, g.Name, s.Owned[i], g.Rate), c)
		f.Text(4, 4+i*2, fmt.Sprintf("next costs %d", s.Price(i)), core.ColorGray)
	}
}
