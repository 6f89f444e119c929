package breakout

// Fixed-point scale factor: 1 cell = 1000 units.
// Integer positions keep ball paths identical across platforms.
const Scale = 1000

// Fixed is a fixed-point coordinate scaled by Scale.
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to a cell coordinate, rounding toward
// negative infinity so positions just above row 0 land on row -1.
func (f Fixed) ToCell() int {
	if f < 0 {
		return (int(f) - Scale + 1) / Scale
	}
	return int(f) / Scale
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Ball is the ball with fixed-point position and per-tick velocity.
type Ball struct {
	X, Y   Fixed
	VX, VY Fixed
	Stuck  bool // Resting on the paddle until launched
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Paddle is the player's paddle on the bottom row.
type Paddle struct {
	X     Fixed // Left edge
	Y     int   // Cell row
	Width int   // Width in cells
}

func (p *Paddle) Right() Fixed {
	return p.X + ToFixed(p.Width)
}

func (p *Paddle) CenterX() Fixed {
	return p.X + ToFixed(p.Width)/2
}

// CollisionSide indicates which side of an object was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// bounceWalls reflects the ball off the side and top walls of a w x h field
// and reports whether it fell out of the bottom.
func bounceWalls(b *Ball, w, h int) (hit bool, fell bool) {
	if b.X < 0 {
		b.X = -b.X
		b.VX = b.VX.Abs()
		hit = true
	}
	if right := ToFixed(w) - 1; b.X > right {
		b.X = 2*right - b.X
		b.VX = -b.VX.Abs()
		hit = true
	}
	if b.Y < 0 {
		b.Y = -b.Y
		b.VY = b.VY.Abs()
		hit = true
	}
	return hit, b.Y >= ToFixed(h)
}

// bouncePaddle deflects a falling ball off the paddle. The horizontal speed
// depends on where the ball met the paddle: edges give steeper angles.
func bouncePaddle(b *Ball, p *Paddle, speed Fixed) bool {
	if b.VY <= 0 || b.Y.ToCell() != p.Y {
		return false
	}
	if b.X < p.X || b.X > p.Right() {
		return false
	}
	half := ToFixed(p.Width) / 2
	offset := b.X - p.CenterX()
	b.VX = offset * speed / half
	b.VY = -speed
	b.Y = ToFixed(p.Y) - 1
	return true
}

// hitSide guesses which face of a brick cell the ball entered through,
// from its position one step back.
func hitSide(b *Ball, left, top, width int) CollisionSide {
	prevX := (b.X - b.VX).ToCell()
	prevY := (b.Y - b.VY).ToCell()
	switch {
	case prevY < top:
		return CollisionTop
	case prevY > top:
		return CollisionBottom
	case prevX < left:
		return CollisionLeft
	case prevX >= left+width:
		return CollisionRight
	}
	return CollisionBottom
}

// applyBounce reflects the ball for the given side.
func applyBounce(b *Ball, side CollisionSide) {
	switch side {
	case CollisionTop:
		b.VY = -b.VY.Abs()
	case CollisionBottom:
		b.VY = b.VY.Abs()
	case CollisionLeft:
		b.VX = -b.VX.Abs()
	case CollisionRight:
		b.VX = b.VX.Abs()
	}
}
