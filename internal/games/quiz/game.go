// Package quiz is a timed multiple-choice trivia round.
package quiz

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
	Options      = 4
	Lives        = 3
	QuestionTime = 10 // seconds, one per tick

	answerPoints = 10
)

// State is one quiz run. Order is a shuffled permutation of the bank.
type State struct {
	Order    []int
	Next     int
	Current  Question
	TimeLeft int
	Lives    int
	Correct  int
	// Feedback is shown under the question after an answer.
	Feedback string
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("quiz", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "quiz",
		Title:       "Neon Trivia",
		Description: fmt.Sprintf("%d seconds per question, %d lives", QuestionTime, Lives),
		Controls:    "1-4 answer",
		Tick:        time.Second,
	}
}

func (Rules) Init(env *session.Env) State {
	s := State{Lives: Lives}
	s.advance(env)
	return s
}

// advance moves to the next question, reshuffling when the bank runs out.
func (s *State) advance(env *session.Env) {
	bank := Bank()
	if s.Next >= len(s.Order) {
		s.Order = env.Rand.Perm(len(bank))
		s.Next = 0
	}
	s.Current = bank[s.Order[s.Next]]
	s.Next++
	s.TimeLeft = QuestionTime
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	if in.Action != core.ActionSelect || in.Index < 1 || in.Index > Options {
		return
	}
	if in.Index-1 == s.Current.Answer {
		s.Correct++
		env.AddScore(answerPoints + s.TimeLeft)
		env.Play(audio.CueSuccess)
		s.Feedback = "Correct!"
	} else {
		s.Feedback = "Wrong: " + s.Current.Options[s.Current.Answer]
		s.miss(env)
	}
	if s.Lives > 0 {
		s.advance(env)
	}
}

func (s *State) miss(env *session.Env) {
	s.Lives--
	env.Play(audio.CueError)
	if s.Lives <= 0 {
		env.End()
	}
}

func (Rules) Step(s *State, env *session.Env) {
	s.TimeLeft--
	if s.TimeLeft > 0 {
		return
	}
	s.Feedback = "Time! It was " + s.Current.Options[s.Current.Answer]
	s.miss(env)
	if s.Lives > 0 {
		s.advance(env)
	}
}

func (Rules) Render(s *State, r *core.Region) {
	f := r.Centered(min(r.Width(), 70), 12)
	f.Text(0, 0, fmt.Sprintf("LIVES %s   TIME %2d   CORRECT %d",
		strings.Repeat("♥", max(s.Lives, 0)), s.TimeLeft, s.Correct), core.ColorYellow)
	f.Text(0, 2, s.Current.Text, core.ColorWhite)
	for i, opt := range s.Current.Options {
		f.Text(2, 4+i, fmt.Sprintf("[%d] %s", i+1, opt), core.PadColors[i])
	}
	f.Text(0, 9, s.Feedback, core.ColorGray)
	timer := strings.Repeat("▰", max(s.TimeLeft, 0)) + strings.Repeat("▱", QuestionTime-max(s.TimeLeft, 0))
	f.Text(0, 11, timer, core.ColorNeonPurple)
}
