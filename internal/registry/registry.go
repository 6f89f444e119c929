// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the arena
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
)

// Game is the contract between the arena and one mini-game.
// Games contain pure logic with no dependency on Bubble Tea; the platform
// handles input mapping, timing and terminal output.
type Game interface {
	// ID returns the unique identifier (e.g. "snake", "match3").
	ID() string
	Title() string
	Description() string
	// Controls is a short hint of the keys the game uses.
	Controls() string

	// TickInterval is the period between Tick calls while running.
	TickInterval() time.Duration

	// Reset binds the game to a screen size and seed and puts it in the
	// idle phase.
	Reset(cfg core.RuntimeConfig)

	// Resize follows a screen size change; a round in progress keeps its
	// field.
	Resize(w, h int)

	// Start begins a round from idle or over; no-op while running.
	Start()

	// Restart always begins a fresh round.
	Restart()

	// Tick advances the simulation one step. It does nothing unless the
	// round is running and not paused.
	Tick()

	// HandleInput applies one resolved input event.
	HandleInput(in core.Input)

	// OnScoreChange registers a callback receiving every new score.
	OnScoreChange(fn func(int))

	// Render draws the current state into dst. It never mutates the game.
	Render(dst *core.Screen)

	// State returns the current score, phase and pause flag.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
	Tick        time.Duration
}

// Factory creates a new instance of a game that plays sound through fx.
type Factory func(fx audio.Effects) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Read metadata from a throwaway instance
	g := f(audio.Silent)
	infos[id] = GameInfo{
		ID:          id,
		Title:       g.Title(),
		Description: g.Description(),
		Tick:        g.TickInterval(),
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata of one game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, fx audio.Effects) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	if fx == nil {
		fx = audio.Silent
	}
	return f(fx), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
