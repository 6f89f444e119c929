// Package space is a vertical shooter: clear falling asteroids before they
// wear down the ship's shields.
package space

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
	MaxFieldW  = 60
	ShipWidth  = 3
	Shields    = 3
	MaxBullets = 3
	hitPoints  = 10

	spawnChance = 0.08
	fallEvery   = 4 // Ticks per asteroid row at the start
	shipStep    = 2
)

// State is one sortie.
type State struct {
	W, H      int
	ShipX     int // Left edge of the ship
	Shields   int
	Bullets   []core.Point
	Asteroids []core.Point
	Hits      int
}

// ShipY is the ship's row.
func (s *State) ShipY() int { return s.H - 1 }

// FallEvery returns how many ticks an asteroid takes per row.
func (s *State) FallEvery() int {
	return max(fallEvery-s.Hits/25, 1)
}

func (s *State) onShip(p core.Point) bool {
	return p.Y >= s.ShipY() && p.X >= s.ShipX && p.X < s.ShipX+ShipWidth
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("space", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "space",
		Title:       "Star Defender",
		Description: "Shoot down the asteroids, you have three shields",
		Controls:    "left/right move, space fire",
		Tick:        50 * time.Millisecond,
	}
}

func (Rules) Init(env *session.Env) State {
	w := core.Clamp(env.W-2, 20, MaxFieldW)
	h := max(env.H-2, 10)
	return State{
		W:       w,
		H:       h,
		ShipX:   (w - ShipWidth) / 2,
		Shields: Shields,
	}
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	switch in.Action {
	case core.ActionLeft:
		s.ShipX = max(s.ShipX-shipStep, 0)
	case core.ActionRight:
		s.ShipX = min(s.ShipX+shipStep, s.W-ShipWidth)
	case core.ActionFire, core.ActionUp:
		if len(s.Bullets) >= MaxBullets {
			return
		}
		s.Bullets = append(s.Bullets, core.Pt(s.ShipX+ShipWidth/2, s.ShipY()-1))
		env.Play(audio.CueClick)
	}
}

func (Rules) Step(s *State, env *session.Env) {
	// Bullets first so a shot fired point blank still connects.
	bullets := s.Bullets[:0]
	for _, b := range s.Bullets {
		if s.shoot(b, env) {
			continue
		}
		b.Y--
		if b.Y < 0 || s.shoot(b, env) {
			continue
		}
		bullets = append(bullets, b)
	}
	s.Bullets = bullets

	if env.Ticks()%uint64(s.FallEvery()) == 0 {
		rocks := s.Asteroids[:0]
		for _, a := range s.Asteroids {
			a.Y++
			if s.onShip(a) {
				s.Shields--
				env.Play(audio.CueHit)
				continue
			}
			if a.Y > s.ShipY() {
				continue
			}
			rocks = append(rocks, a)
		}
		s.Asteroids = rocks
	}

	if env.Chance(spawnChance) {
		s.Asteroids = append(s.Asteroids, core.Pt(env.Rand.Intn(s.W), 0))
	}

	if s.Shields <= 0 {
		env.Play(audio.CueExplosion)
		env.End()
	}
}

// shoot removes the asteroid at b, if any, and scores it.
func (s *State) shoot(b core.Point, env *session.Env) bool {
	for i, a := range s.Asteroids {
		if a == b {
			s.Asteroids = append(s.Asteroids[:i], s.Asteroids[i+1:]...)
			s.Hits++
			env.AddScore(hitPoints)
			env.Play(audio.CueExplosion)
			return true
		}
	}
	return false
}

func (Rules) Render(s *State, r *core.Region) {
	f := r.Centered(s.W+2, s.H+2)
	f.Box(core.NewRect(0, 0, s.W+2, s.H+2), core.ColorNeonPurple)
	field := f.Sub(1, 1, s.W, s.H)

	for _, a := range s.Asteroids {
		field.Set(a.X, a.Y, '◆', core.ColorOrange)
	}
	for _, b := range s.Bullets {
		field.Set(b.X, b.Y, '|', core.ColorNeonGreen)
	}
	field.Text(s.ShipX, s.ShipY(), "/▲\\", core.ColorNeonBlue)

	shields := strings.Repeat("◉", s.Shields) + strings.Repeat("○", Shields-s.Shields)
	f.Text(2, 0, fmt.Sprintf(" SHIELDS %s ", shields), core.ColorCyan)
}
