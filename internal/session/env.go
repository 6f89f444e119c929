package session

import (
	"math/rand"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
)

// scorer is the part of a Session the Env reports back to.
type scorer interface {
	addScore(n int)
	end()
	currentScore() int
}

// Env is what rules see of their session: randomness, the playfield size,
// the tick counter, scoring and sound.
type Env struct {
	// Rand is reseeded for every round.
	Rand *rand.Rand
	// W and H are the playfield size in cells, fixed for the round.
	W, H int
	// ViewW and ViewH are the size of the region Render currently draws
	// into. They follow Resize mid-round; pointer layouts use them.
	ViewW, ViewH int

	tick  uint64
	fx    audio.Effects
	owner scorer
}

// Ticks returns the number of steps taken this round.
func (e *Env) Ticks() uint64 { return e.tick }

// Score returns the round score so far.
func (e *Env) Score() int { return e.owner.currentScore() }

// AddScore adds n points. Non-positive amounts are ignored.
func (e *Env) AddScore(n int) {
	if n > 0 {
		e.owner.addScore(n)
	}
}

// End finishes the round.
func (e *Env) End() { e.owner.end() }

// Play plays a preset cue.
func (e *Env) Play(c audio.Cue) { e.fx.Play(c) }

// Combo plays the combo tone for counter n.
func (e *Env) Combo(n int) { e.fx.Combo(n) }

// Tone plays an arbitrary tone.
func (e *Env) Tone(req audio.ToneRequest) { e.fx.Emit(req) }

// Chance reports true with probability p.
func (e *Env) Chance(p float64) bool { return e.Rand.Float64() < p }

// RandomCell returns a uniformly random cell of a w x h grid.
func (e *Env) RandomCell(w, h int) core.Point {
	return core.Pt(e.Rand.Intn(w), e.Rand.Intn(h))
}

func (s *Session[S]) addScore(n int) {
	if s.phase != core.PhaseRunning {
		return
	}
	s.score += n
	if s.onScore != nil {
		s.onScore(s.score)
	}
}

func (s *Session[S]) end() {
	if s.phase != core.PhaseRunning {
		return
	}
	s.phase = core.PhaseOver
	s.paused = false
	s.env.fx.Play(audio.CueGameOver)
}

func (s *Session[S]) currentScore() int { return s.score }
