// Package session implements the lifecycle every arena game shares: phases,
// pausing, scoring, seeded randomness, the HUD and the start, pause and game
// over overlays. A game supplies only its Rules.
package session

import (
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
)

// HUDRows is the number of screen rows above the playfield. Pointer
// coordinates given to rules are relative to the playfield.
const HUDRows = 2

// Info describes a game to the registry and the arena grid.
type Info struct {
	ID          string
	Title       string
	Description string
	Controls    string
	Tick        time.Duration
}

// Rules is the game-specific part of a session. S is the game's entity
// state; the session owns it and passes it back on every call.
type Rules[S any] interface {
	Info() Info
	// Init builds the state for a new round.
	Init(env *Env) S
	// Step advances the state by one tick.
	Step(s *S, env *Env)
	// Input applies one input event while the round is running.
	Input(s *S, in core.Input, env *Env)
	// Render draws the playfield. It must not modify s.
	Render(s *S, r *core.Region)
}

// Session runs one game through idle, running and over phases.
type Session[S any] struct {
	rules Rules[S]
	info  Info
	env   Env

	cfg     core.RuntimeConfig
	seed    int64
	round   int64
	state   S
	phase   core.Phase
	paused  bool
	score   int
	onScore func(int)
}

// New creates a session for rules that plays its sounds through fx.
func New[S any](rules Rules[S], fx audio.Effects) *Session[S] {
	if fx == nil {
		fx = audio.Silent
	}
	s := &Session[S]{rules: rules, info: rules.Info()}
	s.env.fx = fx
	s.env.owner = s
	s.Reset(core.DefaultConfig())
	return s
}

// ID returns the game id.
func (s *Session[S]) ID() string { return s.info.ID }

// Title returns the display name.
func (s *Session[S]) Title() string { return s.info.Title }

// Description returns the one-line blurb shown on the grid.
func (s *Session[S]) Description() string { return s.info.Description }

// Controls returns the control hint shown while idle.
func (s *Session[S]) Controls() string { return s.info.Controls }

// TickInterval returns the period between Tick calls.
func (s *Session[S]) TickInterval() time.Duration { return s.info.Tick }

// Reset binds the session to a screen size and seed and returns it to idle.
func (s *Session[S]) Reset(cfg core.RuntimeConfig) {
	s.cfg = cfg
	s.seed = cfg.Seed
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	s.round = 0
	s.prepare()
	s.phase = core.PhaseIdle
}

// prepare builds fresh round state, seeded from the base seed and round.
func (s *Session[S]) prepare() {
	s.env.Rand = rand.New(rand.NewSource(s.seed + s.round))
	s.env.W = s.cfg.ScreenW
	s.env.H = max(s.cfg.ScreenH-HUDRows, 0)
	s.env.ViewW, s.env.ViewH = s.env.W, s.env.H
	s.env.tick = 0
	s.score = 0
	s.paused = false
	s.state = s.rules.Init(&s.env)
}

// Resize follows a screen size change without touching the round. The
// round keeps its field; the next round uses the new size.
func (s *Session[S]) Resize(w, h int) {
	s.cfg.ScreenW, s.cfg.ScreenH = w, h
	s.env.ViewW = w
	s.env.ViewH = max(h-HUDRows, 0)
}

// Start begins a round from idle or over. It does nothing while running.
func (s *Session[S]) Start() {
	if s.phase == core.PhaseRunning {
		return
	}
	s.Restart()
}

// Restart discards the current round and starts a new one.
func (s *Session[S]) Restart() {
	s.round++
	s.prepare()
	s.phase = core.PhaseRunning
}

// Tick advances the round by one step while running and not paused.
func (s *Session[S]) Tick() {
	if s.phase != core.PhaseRunning || s.paused {
		return
	}
	s.env.tick++
	s.rules.Step(&s.state, &s.env)
}

// HandleInput routes one input event according to the current phase.
func (s *Session[S]) HandleInput(in core.Input) {
	if s.phase != core.PhaseRunning {
		switch in.Action {
		case core.ActionConfirm, core.ActionFire, core.ActionRestart:
			s.Start()
		}
		return
	}

	switch in.Action {
	case core.ActionPause:
		s.paused = !s.paused
		return
	case core.ActionRestart:
		s.Restart()
		return
	}
	if s.paused {
		return
	}
	s.rules.Input(&s.state, in, &s.env)
}

// OnScoreChange registers fn to receive the score after every increase.
func (s *Session[S]) OnScoreChange(fn func(int)) {
	s.onScore = fn
}

// State returns the phase, pause flag and score.
func (s *Session[S]) State() core.GameState {
	return core.GameState{Score: s.score, Phase: s.phase, Paused: s.paused}
}

// Data exposes the round state for tests and debugging.
func (s *Session[S]) Data() *S {
	return &s.state
}

// Env exposes the environment handed to the rules.
func (s *Session[S]) Env() *Env {
	return &s.env
}

// Render draws the HUD, the playfield and any phase overlay into dst.
func (s *Session[S]) Render(dst *core.Screen) {
	dst.Clear()
	s.renderHUD(dst)

	field := dst.Region(0, HUDRows, dst.Width(), max(dst.Height()-HUDRows, 0))
	s.rules.Render(&s.state, field)

	switch {
	case s.phase == core.PhaseIdle:
		overlay(field, core.ColorNeonBlue, s.info.Title, s.info.Description, s.info.Controls, "ENTER or SPACE to start")
	case s.phase == core.PhaseOver:
		overlay(field, core.ColorNeonRed, "GAME OVER", fmt.Sprintf("Score: %d", s.score), "R or ENTER to play again")
	case s.paused:
		overlay(field, core.ColorYellow, "PAUSED", "P to continue")
	}
}

func (s *Session[S]) renderHUD(dst *core.Screen) {
	title := s.info.Title
	score := fmt.Sprintf("SCORE %d", s.score)
	hint := "[p]ause [r]estart [esc] back"

	// The score always shows; the hint only when the row has room for it.
	if utf8.RuneCountInString(title)+len(hint)+len(score)+4 <= dst.Width() {
		dst.DrawTextColor((dst.Width()-len(hint))/2, 0, hint, core.ColorGray)
	}
	dst.DrawTextColor(1, 0, title, core.ColorNeonPurple)
	dst.DrawTextColor(dst.Width()-len(score)-1, 0, score, core.ColorNeonGreen)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// overlay draws a centered box with one line per entry.
func overlay(r *core.Region, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = (r.Width() - box.W) / 2
	box.Y = (r.Height() - box.H) / 2
	r.Fill(box, ' ', core.ColorDefault)
	r.Box(box, c)
	for i, l := range lines {
		col := core.ColorWhite
		if i == 0 {
			col = c
		}
		r.Text(box.X+(box.W-utf8.RuneCountInString(l))/2, box.Y+1+i, l, col)
	}
}
