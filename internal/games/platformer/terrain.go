package platformer

import "math/rand"

// HazardKind is what breaks the ground.
type HazardKind int

const (
	Pit HazardKind = iota
	Spikes
)

// Hazard is a run of columns the player must clear.
type Hazard struct {
	Kind  HazardKind
	X     int // Left edge, in field columns
	Width int
}

// Covers reports whether column x lies on the hazard.
func (h Hazard) Covers(x int) bool {
	return x >= h.X && x < h.X+h.Width
}

const (
	minSpacing = 14
	maxSpacing = 26
	minWidth   = 2
	maxWidth   = 4
)

// Terrain scrolls hazards toward the player.
type Terrain struct {
	Hazards []Hazard
	screenW int
	nextIn  int // Columns until the next hazard spawns
}

func newTerrain(screenW int) Terrain {
	return Terrain{
		Hazards: make([]Hazard, 0, 8),
		screenW: screenW,
		nextIn:  minSpacing,
	}
}

// Scroll moves every hazard one column left and spawns new ones.
func (t *Terrain) Scroll(rng *rand.Rand) {
	for i := range t.Hazards {
		t.Hazards[i].X--
	}

	valid := t.Hazards[:0]
	for _, h := range t.Hazards {
		if h.X+h.Width > 0 {
			valid = append(valid, h)
		}
	}
	t.Hazards = valid

	t.nextIn--
	if t.nextIn > 0 {
		return
	}
	h := Hazard{
		Kind:  HazardKind(rng.Intn(2)),
		X:     t.screenW,
		Width: minWidth + rng.Intn(maxWidth-minWidth+1),
	}
	t.Hazards = append(t.Hazards, h)
	t.nextIn = h.Width + minSpacing + rng.Intn(maxSpacing-minSpacing+1)
}

// At returns the hazard under column x, if any.
func (t *Terrain) At(x int) (Hazard, bool) {
	for _, h := range t.Hazards {
		if h.Covers(x) {
			return h, true
		}
	}
	return Hazard{}, false
}
