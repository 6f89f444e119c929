package tetris

import "github.com/vovakirdan/neon-arena/internal/core"

// Piece is one of the seven tetrominoes.
type Piece struct {
	Name  byte
	Size  int // Side of the rotation box
	Cells [4]core.Point
	Color core.Color
}

var pieces = [7]Piece{
	{'I', 4, [4]core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}, core.ColorCyan},
	{'O', 2, [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, core.ColorYellow},
	{'T', 3, [4]core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, core.ColorNeonPurple},
	{'S', 3, [4]core.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, core.ColorNeonGreen},
	{'Z', 3, [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}, core.ColorNeonRed},
	{'J', 3, [4]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, core.ColorNeonBlue},
	{'L', 3, [4]core.Point{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, core.ColorOrange},
}

// rotated returns the cells turned clockwise r quarter turns inside the box.
func (p Piece) rotated(r int) [4]core.Point {
	cells := p.Cells
	for i := 0; i < ((r%4)+4)%4; i++ {
		for j, c := range cells {
			cells[j] = core.Pt(p.Size-1-c.Y, c.X)
		}
	}
	return cells
}
