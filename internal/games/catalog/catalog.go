// Package catalog links every game into the registry and fixes the order
// they appear in on the arena grid.
package catalog

import (
	// Import games to register them
	_ "github.com/vovakirdan/neon-arena/internal/games/breakout"
	_ "github.com/vovakirdan/neon-arena/internal/games/cards"
	_ "github.com/vovakirdan/neon-arena/internal/games/clicker"
	_ "github.com/vovakirdan/neon-arena/internal/games/flappy"
	_ "github.com/vovakirdan/neon-arena/internal/games/idle"
	_ "github.com/vovakirdan/neon-arena/internal/games/match3"
	_ "github.com/vovakirdan/neon-arena/internal/games/maze"
	_ "github.com/vovakirdan/neon-arena/internal/games/memory"
	_ "github.com/vovakirdan/neon-arena/internal/games/platformer"
	_ "github.com/vovakirdan/neon-arena/internal/games/pong"
	_ "github.com/vovakirdan/neon-arena/internal/games/puzzle"
	_ "github.com/vovakirdan/neon-arena/internal/games/quiz"
	_ "github.com/vovakirdan/neon-arena/internal/games/racing"
	_ "github.com/vovakirdan/neon-arena/internal/games/rhythm"
	_ "github.com/vovakirdan/neon-arena/internal/games/rpg"
	_ "github.com/vovakirdan/neon-arena/internal/games/snake"
	_ "github.com/vovakirdan/neon-arena/internal/games/space"
	_ "github.com/vovakirdan/neon-arena/internal/games/strategy"
	_ "github.com/vovakirdan/neon-arena/internal/games/tetris"
	_ "github.com/vovakirdan/neon-arena/internal/games/tower"

	"github.com/vovakirdan/neon-arena/internal/registry"
)

// Order is the grid order of the arena.
var Order = []string{
	"snake", "clicker", "memory", "tetris", "pong",
	"breakout", "flappy", "maze", "racing", "space",
	"puzzle", "platformer", "match3", "tower", "cards",
	"rpg", "strategy", "quiz", "rhythm", "idle",
}

// Games returns the metadata of every game in grid order.
func Games() []registry.GameInfo {
	out := make([]registry.GameInfo, 0, len(Order))
	for _, id := range Order {
		if info, ok := registry.Lookup(id); ok {
			out = append(out, info)
		}
	}
	return out
}
