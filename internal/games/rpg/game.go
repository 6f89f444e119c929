// Package rpg is a turn-based battle: the hero fights an endless line of
// monsters, each wave stronger than the last.
package rpg

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
	heroHP     = 30
	heroMP     = 10
	heroAttack = 6

	healCost   = 3
	healAmount = 10
	powerCost  = 4
)

// Fighter is a hero or a monster.
type Fighter struct {
	Name   string
	HP     int
	MaxHP  int
	Attack int
}

// Alive reports whether the fighter can still act.
func (f Fighter) Alive() bool { return f.HP > 0 }

func (f *Fighter) hurt(n int) {
	f.HP = max(f.HP-n, 0)
}

// State is one adventure.
type State struct {
	Hero    Fighter
	MP      int
	Level   int
	XP      int
	Wave    int
	Monster Fighter
	// HeroTurn is false while the monster is winding up its answer.
	HeroTurn bool
	Log      []string
}

var monsterNames = []string{"Slime", "Goblin", "Wraith", "Golem", "Drake", "Lich"}

func spawnMonster(wave int) Fighter {
	hp := 12 + wave*6
	return Fighter{
		Name:   fmt.Sprintf("%s Lv%d", monsterNames[wave%len(monsterNames)], wave+1),
		HP:     hp,
		MaxHP:  hp,
		Attack: 3 + wave*2,
	}
}

// NextLevelXP is the experience needed to leave the current level.
func (s *State) NextLevelXP() int { return s.Level * 30 }

func (s *State) log(format string, args ...any) {
	s.Log = append(s.Log, fmt.Sprintf(format, args...))
	if len(s.Log) > 4 {
		s.Log = s.Log[len(s.Log)-4:]
	}
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("rpg", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "rpg",
		Title:       "Neon Quest",
		Description: "Battle monsters, gain experience, survive",
		Controls:    "1 attack, 2 heal, 3 power strike",
		Tick:        400 * time.Millisecond,
	}
}

func (Rules) Init(*session.Env) State {
	s := State{
		Hero:     Fighter{Name: "Hero", HP: heroHP, MaxHP: heroHP, Attack: heroAttack},
		MP:       heroMP,
		Level:    1,
		Monster:  spawnMonster(0),
		HeroTurn: true,
	}
	s.log("A %s appears!", s.Monster.Name)
	return s
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	if !s.HeroTurn || in.Action != core.ActionSelect {
		return
	}
	switch in.Index {
	case 1:
		dmg := s.Hero.Attack + env.Rand.Intn(3)
		s.Monster.hurt(dmg)
		s.log("You hit for %d", dmg)
		env.Play(audio.CueHit)
	case 2:
		if s.MP < healCost {
			env.Play(audio.CueError)
			return
		}
		s.MP -= healCost
		before := s.Hero.HP
		s.Hero.HP = min(s.Hero.HP+healAmount, s.Hero.MaxHP)
		s.log("You heal %d", s.Hero.HP-before)
		env.Play(audio.CuePowerUp)
	case 3:
		if s.MP < powerCost {
			env.Play(audio.CueError)
			return
		}
		s.MP -= powerCost
		dmg := 2*s.Hero.Attack + env.Rand.Intn(3)
		s.Monster.hurt(dmg)
		s.log("Power strike for %d!", dmg)
		env.Play(audio.CueExplosion)
	default:
		return
	}
	s.HeroTurn = false
	if !s.Monster.Alive() {
		s.victory(env)
	}
}

func (s *State) victory(env *session.Env) {
	gain := (s.Wave + 1) * 10
	s.XP += gain
	env.AddScore(gain)
	s.log("%s defeated, +%d XP", s.Monster.Name, gain)
	env.Play(audio.CueSuccess)

	for s.XP >= s.NextLevelXP() {
		s.XP -= s.NextLevelXP()
		s.Level++
		s.Hero.MaxHP += 8
		s.Hero.Attack += 2
		s.Hero.HP = s.Hero.MaxHP
		s.MP = heroMP
		s.log("Level up! Now level %d", s.Level)
		env.Play(audio.CueLevelUp)
	}

	s.Wave++
	s.Monster = spawnMonster(s.Wave)
	s.HeroTurn = true
	s.log("A %s appears!", s.Monster.Name)
}

// Step lets the monster answer the hero's last action.
func (Rules) Step(s *State, env *session.Env) {
	if s.HeroTurn {
		return
	}
	dmg := s.Monster.Attack + env.Rand.Intn(3)
	s.Hero.hurt(dmg)
	s.log("%s hits you for %d", s.Monster.Name, dmg)
	env.Play(audio.CueHit)
	s.HeroTurn = true
	if !s.Hero.Alive() {
		env.End()
	}
}

func bar(cur, total, width int) string {
	n := 0
	if total > 0 {
		n = core.Clamp(cur*width/total, 0, width)
	}
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

func (Rules) Render(s *State, r *core.Region) {
	f := r.Centered(50, 14)
	f.Text(0, 0, fmt.Sprintf("HERO  Lv%d  XP %d/%d", s.Level, s.XP, s.NextLevelXP()), core.ColorNeonBlue)
	f.Text(0, 1, fmt.Sprintf("HP %s %d/%d", bar(s.Hero.HP, s.Hero.MaxHP, 20), s.Hero.HP, s.Hero.MaxHP), core.ColorNeonGreen)
	f.Text(0, 2, fmt.Sprintf("MP %s %d/%d", bar(s.MP, heroMP, 20), s.MP, heroMP), core.ColorCyan)

	f.Text(0, 4, s.Monster.Name, core.ColorNeonRed)
	f.Text(0, 5, fmt.Sprintf("HP %s %d/%d", bar(s.Monster.HP, s.Monster.MaxHP, 20), s.Monster.HP, s.Monster.MaxHP), core.ColorNeonRed)

	for i, line := range s.Log {
		f.Text(0, 7+i, line, core.ColorGray)
	}
	menu := fmt.Sprintf("[1] Attack  [2] Heal (%d MP)  [3] Power (%d MP)", healCost, powerCost)
	c := core.ColorWhite
	if !s.HeroTurn {
		c = core.ColorGray
	}
	f.Text(0, 13, menu, c)
}
