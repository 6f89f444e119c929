// Package clicker is an incremental clicking game with two upgrades.
package clicker

import (
	"fmt"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

const (
	MultiplierCost = 50
	AutoCost       = 100
)

// State is one clicker round.
type State struct {
	Balance    int // Spendable clicks
	Multiplier int // Clicks earned per press
	Auto       int // Clicks earned per second
	Flash      int // Ticks left on the press highlight
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("clicker", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "clicker",
		Title:       "Neon Clicker",
		Description: "Click, buy multipliers and auto-clickers",
		Controls:    "space/click earn, 1 multiplier, 2 auto-clicker",
		Tick:        time.Second,
	}
}

func (Rules) Init(*session.Env) State {
	return State{Multiplier: 1}
}

func (Rules) Step(s *State, env *session.Env) {
	if s.Flash > 0 {
		s.Flash--
	}
	if s.Auto > 0 {
		s.earn(s.Auto, env)
	}
}

func (s *State) earn(n int, env *session.Env) {
	s.Balance += n
	env.AddScore(n)
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	switch in.Action {
	case core.ActionFire, core.ActionConfirm, core.ActionPointer:
		s.earn(s.Multiplier, env)
		s.Flash = 1
		env.Play(audio.CueClick)
	case core.ActionSelect:
		switch in.Index {
		case 1:
			s.buy(MultiplierCost, &s.Multiplier, env)
		case 2:
			s.buy(AutoCost, &s.Auto, env)
		}
	}
}

func (s *State) buy(cost int, level *int, env *session.Env) {
	if s.Balance < cost {
		env.Play(audio.CueError)
		return
	}
	s.Balance -= cost
	*level++
	env.Play(audio.CuePowerUp)
}

func (Rules) Render(s *State, r *core.Region) {
	panel := r.Centered(40, 14)
	panel.TextCentered(0, fmt.Sprintf("CLICKS: %d", s.Balance), core.ColorNeonBlue)

	btn := core.NewRect(12, 2, 16, 5)
	c := core.ColorNeonPurple
	if s.Flash > 0 {
		c = core.ColorNeonGreen
	}
	panel.Box(btn, c)
	panel.TextCentered(4, "CLICK!", c)

	offer := func(y int, key, label string, cost int) {
		col := core.ColorGray
		if s.Balance >= cost {
			col = core.ColorNeonGreen
		}
		panel.Text(2, y, fmt.Sprintf("[%s] %s (%d)", key, label, cost), col)
	}
	offer(9, "1", fmt.Sprintf("x%d multiplier", s.Multiplier+1), MultiplierCost)
	offer(10, "2", fmt.Sprintf("auto +%d/sec", s.Auto+1), AutoCost)
	panel.Text(2, 12, fmt.Sprintf("x%d per click, %d/sec", s.Multiplier, s.Auto), core.ColorWhite)
}
