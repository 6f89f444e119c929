package flappy

import (
	"math/rand"

	"github.com/vovakirdan/neon-arena/internal/core"
)

const (
	PipeWidth   = 4
	PipeSpacing = 24 // Columns between pipe left edges
	MinGap      = 6
	MaxGap      = 8
	gapMargin   = 2 // Rows kept clear above and below every gap
	pipeSpeed   = 1
	spawnLeadIn = 10 // Columns of clear air before the first pipe
)

// Pipe is a vertical obstacle with a gap.
type Pipe struct {
	X         int  // Left edge
	GapY      int  // First row of the gap
	GapHeight int  // Rows in the gap
	Passed    bool // Already scored
}

// TopRect returns the collision rectangle above the gap.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, 0, PipeWidth, p.GapY)
}

// BottomRect returns the collision rectangle below the gap down to the ground.
func (p Pipe) BottomRect(groundY int) core.Rect {
	bottom := p.GapY + p.GapHeight
	return core.NewRect(p.X, bottom, PipeWidth, groundY-bottom)
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	Pipes   []Pipe
	screenW int
	groundY int
}

// NewPipeManager creates an empty manager for a field of the given size.
func NewPipeManager(screenW, groundY int) PipeManager {
	return PipeManager{
		Pipes:   make([]Pipe, 0, 8),
		screenW: screenW,
		groundY: groundY,
	}
}

// Update moves pipes left, spawns new ones and returns how many the player
// at playerX has passed this tick.
func (pm *PipeManager) Update(rng *rand.Rand, playerX int) int {
	passed := 0
	for i := range pm.Pipes {
		pm.Pipes[i].X -= pipeSpeed
		if !pm.Pipes[i].Passed && pm.Pipes[i].X+PipeWidth <= playerX {
			pm.Pipes[i].Passed = true
			passed++
		}
	}

	// Remove pipes that have moved off the left side
	valid := pm.Pipes[:0]
	for _, p := range pm.Pipes {
		if p.X+PipeWidth > 0 {
			valid = append(valid, p)
		}
	}
	pm.Pipes = valid

	if len(pm.Pipes) == 0 || pm.Pipes[len(pm.Pipes)-1].X <= pm.screenW-PipeSpacing {
		pm.spawn(rng)
	}
	return passed
}

// spawn adds a pipe at the right edge with a uniformly placed gap.
func (pm *PipeManager) spawn(rng *rand.Rand) {
	gap := MinGap + rng.Intn(MaxGap-MinGap+1)
	lo := gapMargin
	hi := max(pm.groundY-gapMargin-gap, lo)
	pm.Pipes = append(pm.Pipes, Pipe{
		X:         pm.screenW,
		GapY:      lo + rng.Intn(hi-lo+1),
		GapHeight: gap,
	})
}

// Collides tests whether r overlaps any pipe.
func (pm *PipeManager) Collides(r core.Rect) bool {
	for _, p := range pm.Pipes {
		if r.Intersects(p.TopRect()) || r.Intersects(p.BottomRect(pm.groundY)) {
			return true
		}
	}
	return false
}
