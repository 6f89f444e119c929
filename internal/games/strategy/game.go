// Package strategy is lane defence: spend energy on robots to stop the
// enemies marching on the base.
package strategy

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
	Lanes     = 5
	LaneLen   = 24
	BaseHP    = 5
	MaxEnergy = 10
	RobotCost = 3

	killPoints = 5
)

// Unit is a robot or an enemy in a lane at column X.
type Unit struct {
	Lane, X int
}

// State is one defence.
type State struct {
	BaseHP  int
	Energy  int
	Lane    int // Selected lane
	Robots  []Unit
	Enemies []Unit
	Kills   int
}

// spawnChance grows with time and levels off at one enemy per tick.
func spawnChance(ticks uint64) float64 {
	return min(0.25+float64(ticks)/400, 1)
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("strategy", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "strategy",
		Title:       "Robot Lanes",
		Description: fmt.Sprintf("Deploy robots (%d energy) to hold five lanes", RobotCost),
		Controls:    "up/down lane, space deploy, 1-5 deploy in lane",
		Tick:        500 * time.Millisecond,
	}
}

func (Rules) Init(*session.Env) State {
	return State{
		BaseHP: BaseHP,
		Energy: RobotCost,
		Lane:   Lanes / 2,
	}
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	switch in.Action {
	case core.ActionUp:
		s.Lane = max(s.Lane-1, 0)
	case core.ActionDown:
		s.Lane = min(s.Lane+1, Lanes-1)
	case core.ActionFire, core.ActionConfirm:
		s.deploy(env)
	case core.ActionSelect:
		if in.Index >= 1 && in.Index <= Lanes {
			s.Lane = in.Index - 1
			s.deploy(env)
		}
	}
}

func (s *State) deploy(env *session.Env) {
	if s.Energy < RobotCost {
		env.Play(audio.CueError)
		return
	}
	s.Energy -= RobotCost
	s.Robots = append(s.Robots, Unit{Lane: s.Lane, X: 0})
	env.Play(audio.CuePowerUp)
}

func (Rules) Step(s *State, env *session.Env) {
	s.Energy = min(s.Energy+1, MaxEnergy)

	for i := range s.Robots {
		s.Robots[i].X++
	}
	for i := range s.Enemies {
		s.Enemies[i].X--
	}
	s.fight(env)

	enemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.X < 0 {
			s.BaseHP--
			env.Play(audio.CueHit)
			continue
		}
		enemies = append(enemies, e)
	}
	s.Enemies = enemies

	robots := s.Robots[:0]
	for _, r := range s.Robots {
		if r.X < LaneLen {
			robots = append(robots, r)
		}
	}
	s.Robots = robots

	if env.Chance(spawnChance(env.Ticks())) {
		s.Enemies = append(s.Enemies, Unit{Lane: env.Rand.Intn(Lanes), X: LaneLen - 1})
	}

	if s.BaseHP <= 0 {
		env.Play(audio.CueExplosion)
		env.End()
	}
}

// fight removes every robot and enemy pair that met or crossed in a lane.
// The leading robot of a lane takes the leading enemy.
func (s *State) fight(env *session.Env) {
	for lane := 0; lane < Lanes; lane++ {
		for {
			ri, ei := -1, -1
			for i, r := range s.Robots {
				if r.Lane == lane && (ri < 0 || r.X > s.Robots[ri].X) {
					ri = i
				}
			}
			for i, e := range s.Enemies {
				if e.Lane == lane && (ei < 0 || e.X < s.Enemies[ei].X) {
					ei = i
				}
			}
			if ri < 0 || ei < 0 || s.Robots[ri].X < s.Enemies[ei].X {
				break
			}
			s.Robots = append(s.Robots[:ri], s.Robots[ri+1:]...)
			s.Enemies = append(s.Enemies[:ei], s.Enemies[ei+1:]...)
			s.Kills++
			env.AddScore(killPoints)
			env.Play(audio.CueExplosion)
		}
	}
}

func (Rules) Render(s *State, r *core.Region) {
	w := LaneLen + 4
	f := r.Centered(w, Lanes*2+3)
	for lane := 0; lane < Lanes; lane++ {
		y := lane * 2
		c := core.ColorGray
		if lane == s.Lane {
			c = core.ColorNeonBlue
			f.Set(0, y, '▶', c)
		}
		f.Set(1, y, '█', core.ColorNeonPurple)
		f.Text(2, y, strings.Repeat("·", LaneLen), c)
	}
	for _, u := range s.Robots {
		f.Set(2+u.X, u.Lane*2, 'R', core.ColorNeonGreen)
	}
	for _, u := range s.Enemies {
		f.Set(2+u.X, u.Lane*2, 'X', core.ColorNeonRed)
	}
	f.Text(0, Lanes*2+1, fmt.Sprintf("BASE %s  ENERGY %d/%d",
		strings.Repeat("♥", max(s.BaseHP, 0)), s.Energy, MaxEnergy), core.ColorYellow)
}
