// Package cards is blackjack against the house dealer. Every hand costs a
// fixed bet; the score is the total amount won.
package cards

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
	StartChips = 100
	Bet        = 10

	dealerStands = 17
	reshuffleAt  = 15
)

// Stage of the current hand.
type Stage int

const (
	StageBetting Stage = iota
	StagePlayer
	StageDealer
	StageSettled
)

// State is one trip to the table.
type State struct {
	Chips   int
	Deck    []Card
	Player  []Card
	Dealer  []Card
	Stage   Stage
	Message string
}

type Rules struct{}

func New(fx audio.Effects) *session.Session[State] {
	return session.New[State](Rules{}, fx)
}

func init() {
	registry.Register("cards", func(fx audio.Effects) registry.Game {
		return New(fx)
	})
}

func (Rules) Info() session.Info {
	return session.Info{
		ID:          "cards",
		Title:       "Neon Blackjack",
		Description: fmt.Sprintf("Beat the dealer to 21, each hand bets %d chips", Bet),
		Controls:    "enter deal, 1/up hit, 2/down stand",
		Tick:        500 * time.Millisecond,
	}
}

func (Rules) Init(env *session.Env) State {
	return State{
		Chips:   StartChips,
		Deck:    newDeck(env.Rand),
		Message: "Press ENTER to deal",
	}
}

func (s *State) draw(env *session.Env) Card {
	if len(s.Deck) < reshuffleAt {
		s.Deck = newDeck(env.Rand)
	}
	c := s.Deck[0]
	s.Deck = s.Deck[1:]
	return c
}

func (s *State) deal(env *session.Env) {
	s.Chips -= Bet
	s.Player = []Card{s.draw(env), s.draw(env)}
	s.Dealer = []Card{s.draw(env), s.draw(env)}
	s.Stage = StagePlayer
	s.Message = "Hit or stand?"
	env.Play(audio.CueClick)
	if Blackjack(s.Player) {
		s.Stage = StageDealer
	}
}

func (Rules) Input(s *State, in core.Input, env *session.Env) {
	switch s.Stage {
	case StageBetting, StageSettled:
		if in.Action == core.ActionConfirm || in.Action == core.ActionFire {
			s.deal(env)
		}
	case StagePlayer:
		switch {
		case in.Action == core.ActionUp || (in.Action == core.ActionSelect && in.Index == 1):
			s.Player = append(s.Player, s.draw(env))
			env.Play(audio.CueClick)
			if v := Value(s.Player); v > 21 {
				s.settle(env)
			} else if v == 21 {
				s.Stage = StageDealer
			}
		case in.Action == core.ActionDown || (in.Action == core.ActionSelect && in.Index == 2):
			s.Stage = StageDealer
		}
	}
}

// Step plays the dealer one card per tick.
func (Rules) Step(s *State, env *session.Env) {
	if s.Stage != StageDealer {
		return
	}
	if Value(s.Dealer) < dealerStands && !Blackjack(s.Player) {
		s.Dealer = append(s.Dealer, s.draw(env))
		env.Play(audio.CueClick)
		return
	}
	s.settle(env)
}

// payout is the amount returned for a finished hand, stake included.
func payout(player, dealer []Card) (int, string) {
	pv, dv := Value(player), Value(dealer)
	switch {
	case pv > 21:
		return 0, "Bust!"
	case Blackjack(player) && !Blackjack(dealer):
		return Bet + Bet*3/2, "Blackjack!"
	case Blackjack(dealer) && !Blackjack(player):
		return 0, "Dealer blackjack"
	case dv > 21:
		return 2 * Bet, "Dealer busts, you win"
	case pv > dv:
		return 2 * Bet, "You win"
	case pv == dv:
		return Bet, "Push"
	default:
		return 0, "Dealer wins"
	}
}

func (s *State) settle(env *session.Env) {
	back, msg := payout(s.Player, s.Dealer)
	s.Chips += back
	s.Stage = StageSettled
	s.Message = msg + ", ENTER for the next hand"
	switch {
	case back > Bet:
		env.AddScore(back - Bet)
		env.Play(audio.CueSuccess)
	case back == 0:
		env.Play(audio.CueError)
	}
	if s.Chips < Bet {
		env.End()
	}
}

func renderHand(r *core.Region, y int, label string, hand []Card, hideHole bool) {
	r.Text(0, y, label, core.ColorGray)
	x := len(label) + 1
	for i, c := range hand {
		text, color := fmt.Sprintf("[%s]", c), core.ColorWhite
		if c.Red() {
			color = core.ColorNeonRed
		}
		if hideHole && i == 1 {
			text, color = "[??]", core.ColorNeonPurple
		}
		r.Text(x, y, text, color)
		x += len([]rune(text)) + 1
	}
	if !hideHole && len(hand) > 0 {
		r.Text(x+1, y, fmt.Sprintf("= %d", Value(hand)), core.ColorCyan)
	}
}

func (Rules) Render(s *State, r *core.Region) {
	f := r.Centered(44, 9)
	f.TextCentered(0, strings.Repeat("♠ ♥ ♦ ♣ ", 4), core.ColorNeonPurple)
	hide := s.Stage == StagePlayer
	renderHand(f, 2, "DEALER", s.Dealer, hide)
	renderHand(f, 4, "YOU   ", s.Player, false)
	f.Text(0, 6, s.Message, core.ColorNeonGreen)
	f.Text(0, 8, fmt.Sprintf("CHIPS %d   BET %d", s.Chips, Bet), core.ColorYellow)
}
