package maze

import (
	"math/rand"

	"github.com/vovakirdan/neon-arena/internal/core"
)

// Walls of one cell, as a bitmask.
const (
	WallN uint8 = 1 << iota
	WallE
	WallS
	WallW
	allWalls = WallN | WallE | WallS | WallW
)

var (
	dirs      = [4]core.Point{core.DirUp, core.DirRight, core.DirDown, core.DirLeft}
	dirWall   = [4]uint8{WallN, WallE, WallS, WallW}
	oppositeW = [4]uint8{WallS, WallW, WallN, WallE}
)

// Grid is a maze of w x h cells with wall bitmasks.
type Grid struct {
	W, H  int
	Cells [][]uint8
}

// Generate carves a perfect maze (exactly one path between any two cells)
// with an iterative depth-first backtracker.
func Generate(w, h int, rng *rand.Rand) Grid {
	g := Grid{W: w, H: h, Cells: make([][]uint8, h)}
	for y := range g.Cells {
		g.Cells[y] = make([]uint8, w)
		for x := range g.Cells[y] {
			g.Cells[y][x] = allWalls
		}
	}

	visited := make([][]bool, h)
	for y := range visited {
		visited[y] = make([]bool, w)
	}

	stack := []core.Point{{}}
	visited[0][0] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		var options []int
		for i, d := range dirs {
			n := cur.Add(d)
			if n.In(w, h) && !visited[n.Y][n.X] {
				options = append(options, i)
			}
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		i := options[rng.Intn(len(options))]
		n := cur.Add(dirs[i])
		g.Cells[cur.Y][cur.X] &^= dirWall[i]
		g.Cells[n.Y][n.X] &^= oppositeW[i]
		visited[n.Y][n.X] = true
		stack = append(stack, n)
	}
	return g
}

// Open reports whether a step from p in direction index i is not walled.
func (g Grid) Open(p core.Point, i int) bool {
	return p.In(g.W, g.H) && g.Cells[p.Y][p.X]&dirWall[i] == 0
}

// dirIndex maps a unit vector to its index in dirs.
func dirIndex(d core.Point) int {
	for i, v := range dirs {
		if v == d {
			return i
		}
	}
	return -1
}
