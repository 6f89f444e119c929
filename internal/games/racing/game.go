// Package racing is a three-lane dodging race against oncoming traffic.
package racing

import (
	"fmt"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/session"
)

const (
	Lanes     = 3
	laneWidth = 7
	CarHeight = 2

	// Traffic moves one row every Interval ticks; the interval shrinks as
	// cars are passed.
	startInterval = 3
	rampEvery     = 10 // Cars passed per speed step
	spawnGap      = 5  // Minimum rows between cars
)

// Car is one oncoming vehicle; Y is its top row.
type Car struct {
	Lane   int
	Y      int
	Passed bool
}

// State is one race.
type State struct {
	H          int
	Lane       int // Player lane
	Cars       []Car
	Passed     int
	Wait       int // Ticks until traffic moves
	SinceSpawn int
}

// PlayerY is the top row of the player's car.
func (s *State) PlayerY() int {
	return s.H - CarHeight - 1
}

// Interval is the current ticks-per-row of traffic.
func (s *State) Interval() int {
	return max(startInterval-s.Passed/rampEvery, 1)
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("racing", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "racing",
		Title:       "Neon Racer",
		Description: "Weave through traffic as the road speeds up",
		Controls:    "left/right change lane",
		Tick:        80 * time.Millisecond,
	}
}

func (Rules) Init(env *session.Env) State {
	return State{
		H:    max(env.H, 12),
		Lane: Lanes / 2,
		Wait: startInterval,
	}
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	switch in.Action {
	case core.ActionLeft:
		s.Lane = max(s.Lane-1, 0)
	case core.ActionRight:
		s.Lane = min(s.Lane+1, Lanes-1)
	default:
		return
	}
	if s.crashed() {
		s.crash(env)
	}
}

func (Rules) Step(s *State, env *session.Env) {
	s.Wait--
	if s.Wait > 0 {
		return
	}
	s.Wait = s.Interval()

	py := s.PlayerY()
	kept := s.Cars[:0]
	for _, c := range s.Cars {
		c.Y++
		if !c.Passed && c.Y > py+CarHeight-1 {
			c.Passed = true
			s.Passed++
			env.AddScore(1)
			if s.Passed%rampEvery == 0 {
				env.Play(audio.CueLevelUp)
			}
		}
		if c.Y < s.H {
			kept = append(kept, c)
		}
	}
	s.Cars = kept

	s.SinceSpawn++
	if s.SinceSpawn >= spawnGap && env.Chance(0.5) {
		s.Cars = append(s.Cars, Car{Lane: env.Rand.Intn(Lanes), Y: -CarHeight})
		s.SinceSpawn = 0
	}

	if s.crashed() {
		s.crash(env)
	}
}

func (s *State) crashed() bool {
	py := s.PlayerY()
	for _, c := range s.Cars {
		if c.Lane == s.Lane && c.Y+CarHeight > py && c.Y < py+CarHeight {
			return true
		}
	}
	return false
}

func (s *State) crash(env *session.Env) {
	env.Play(audio.CueExplosion)
	env.End()
}

func (Rules) Render(s *State, r *core.Region) {
	roadW := Lanes*laneWidth + 2
	road := r.Centered(roadW+16, s.H)
	for y := 0; y < s.H; y++ {
		road.Set(0, y, '▌', core.ColorNeonPurple)
		road.Set(roadW-1, y, '▐', core.ColorNeonPurple)
		// Dashes scroll with the traffic.
		if (y+s.Passed)%3 != 0 {
			for l := 1; l < Lanes; l++ {
				road.Set(l*laneWidth, y, '¦', core.ColorGray)
			}
		}
	}
	drawCar := func(lane, y int, c core.Color) {
		x := 1 + lane*laneWidth + 1
		road.Text(x, y, "▄███▄", c)
		road.Text(x, y+1, "█▀▀▀█", c)
	}
	for _, c := range s.Cars {
		drawCar(c.Lane, c.Y, core.ColorNeonRed)
	}
	drawCar(s.Lane, s.PlayerY(), core.ColorNeonBlue)

	road.Text(roadW+2, 1, fmt.Sprintf("PASSED %d", s.Passed), core.ColorWhite)
	road.Text(roadW+2, 2, fmt.Sprintf("SPEED  %d", startInterval-s.Interval()+1), core.ColorWhite)
}
