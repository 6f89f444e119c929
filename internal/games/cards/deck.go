package cards

import (
	"fmt"
	"math/rand"
)

// Card is a rank 1..13 (ace to king) and a suit 0..3.
type Card struct {
	Rank, Suit int
}

var suits = [4]string{"♠", "♥", "♦", "♣"}

func (c Card) String() string {
	var r string
	switch c.Rank {
	case 1:
		r = "A"
	case 11:
		r = "J"
	case 12:
		r = "Q"
	case 13:
		r = "K"
	default:
		r = fmt.Sprint(c.Rank)
	}
	return r + suits[c.Suit]
}

// Red reports whether the card is a heart or a diamond.
func (c Card) Red() bool { return c.Suit == 1 || c.Suit == 2 }

func newDeck(rng *rand.Rand) []Card {
	deck := make([]Card, 0, 52)
	for s := 0; s < 4; s++ {
		for r := 1; r <= 13; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

// Value is the best blackjack total of a hand: aces count 11 unless that
// busts.
func Value(hand []Card) int {
	total, aces := 0, 0
	for _, c := range hand {
		switch {
		case c.Rank == 1:
			total += 11
			aces++
		case c.Rank >= 10:
			total += 10
		default:
			total += c.Rank
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// Blackjack reports a two-card 21.
func Blackjack(hand []Card) bool {
	return len(hand) == 2 && Value(hand) == 21
}
