package match3

import "math/rand"

const (
	Size  = 8
	Kinds = 6
)

// Board holds gem kinds 1..Kinds; 0 is an empty cell.
type Board [Size][Size]uint8

// fill generates a board with no matches and at least one legal swap.
func fill(rng *rand.Rand) Board {
	for {
		var b Board
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				for {
					b[y][x] = uint8(rng.Intn(Kinds) + 1)
					if !b.matchAt(x, y) {
						break
					}
				}
			}
		}
		if b.HasMove() {
			return b
		}
	}
}

// matchAt reports a run of three ending at (x, y) looking left or up.
// Used while filling in reading order.
func (b *Board) matchAt(x, y int) bool {
	g := b[y][x]
	if x >= 2 && b[y][x-1] == g && b[y][x-2] == g {
		return true
	}
	return y >= 2 && b[y-1][x] == g && b[y-2][x] == g
}

// Matches marks every gem that is part of a horizontal or vertical run of
// three or more.
func (b *Board) Matches() (marked [Size][Size]bool, n int) {
	mark := func(x, y int) {
		if !marked[y][x] {
			marked[y][x] = true
			n++
		}
	}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; {
			run := 1
			for x+run < Size && b[y][x] != 0 && b[y][x+run] == b[y][x] {
				run++
			}
			if run >= 3 {
				for i := 0; i < run; i++ {
					mark(x+i, y)
				}
			}
			x += run
		}
	}
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; {
			run := 1
			for y+run < Size && b[y][x] != 0 && b[y+run][x] == b[y][x] {
				run++
			}
			if run >= 3 {
				for i := 0; i < run; i++ {
					mark(x, y+i)
				}
			}
			y += run
		}
	}
	return marked, n
}

func (b *Board) swap(x1, y1, x2, y2 int) {
	b[y1][x1], b[y2][x2] = b[y2][x2], b[y1][x1]
}

// HasMove reports whether any adjacent swap produces a match.
func (b *Board) HasMove() bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			for _, d := range [][2]int{{1, 0}, {0, 1}} {
				nx, ny := x+d[0], y+d[1]
				if nx >= Size || ny >= Size {
					continue
				}
				c := *b
				c.swap(x, y, nx, ny)
				if _, n := c.Matches(); n > 0 {
					return true
				}
			}
		}
	}
	return false
}

// collapse drops gems into empty cells and refills from the top. It
// reports whether anything changed.
func (b *Board) collapse(rng *rand.Rand) bool {
	changed := false
	for x := 0; x < Size; x++ {
		write := Size - 1
		for y := Size - 1; y >= 0; y-- {
			if b[y][x] == 0 {
				continue
			}
			if y != write {
				b[write][x], b[y][x] = b[y][x], 0
				changed = true
			}
			write--
		}
		for y := write; y >= 0; y-- {
			b[y][x] = uint8(rng.Intn(Kinds) + 1)
			changed = true
		}
	}
	return changed
}
