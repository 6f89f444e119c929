package breakout

import (
	"testing"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/session"
)

func newGame() *session.Session[State] {
	g := New(audio.Silent)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 11})
	g.Start()
	return g
}

func TestFixedToCell(t *testing.T) {
	tests := []struct {
		in   Fixed
		want int
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{-1, -1},
		{-1000, -1},
		{-1001, -2},
	}
	for _, tt := range tests {
		if got := tt.in.ToCell(); got != tt.want {
			t.Errorf("Fixed(%d).ToCell() = %d, expected %d", tt.in, got, tt.want)
		}
	}
}

func TestBallStaysStuckUntilLaunch(t *testing.T) {
	g := newGame()
	y := g.Data().Ball.Y
	g.Tick()
	if g.Data().Ball.Y != y || !g.Data().Ball.Stuck {
		t.Fatal("ball moved before launch")
	}
	g.HandleInput(core.Press(core.ActionRight))
	if g.Data().Ball.X != g.Data().Paddle.CenterX() {
		t.Error("stuck ball should follow the paddle")
	}
	g.HandleInput(core.Press(core.ActionFire))
	g.Tick()
	if g.Data().Ball.Stuck || g.Data().Ball.Y >= y {
		t.Error("ball should rise after launch")
	}
}

func TestBrickHitScoresAndBounces(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Ball = Ball{X: ToFixed(3) + 500, Y: ToFixed(brickTop+Rows) + 200, VX: 0, VY: -BallSpeed}
	g.Tick()

	if s.Bricks[Rows-1][0] {
		t.Error("bottom-left brick should be broken")
	}
	if s.Alive != Rows*Cols-1 {
		t.Errorf("Alive = %d", s.Alive)
	}
	if g.State().Score != BrickPoints {
		t.Errorf("score = %d, expected %d", g.State().Score, BrickPoints)
	}
	if s.Ball.VY <= 0 {
		t.Errorf("ball should bounce down, VY = %d", s.Ball.VY)
	}
}

func TestClearedWallRebuilds(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Bricks = [Rows][Cols]bool{}
	s.Bricks[Rows-1][0] = true
	s.Alive = 1
	s.Ball = Ball{X: ToFixed(3), Y: ToFixed(brickTop+Rows) + 200, VY: -BallSpeed}
	g.Tick()

	if s.Alive != Rows*Cols || s.Walls != 1 || !s.Ball.Stuck {
		t.Errorf("wall not rebuilt: alive=%d walls=%d stuck=%v", s.Alive, s.Walls, s.Ball.Stuck)
	}
}

func TestMissCostsLife(t *testing.T) {
	g := newGame()
	for life := StartLives; life > 0; life-- {
		s := g.Data()
		s.Ball = Ball{X: ToFixed(0) + 100, Y: ToFixed(s.H) - 100, VY: BallSpeed}
		s.Paddle.X = ToFixed(FieldW - PaddleWidth)
		g.Tick()
		if s.Lives != life-1 {
			t.Fatalf("Lives = %d, expected %d", s.Lives, life-1)
		}
	}
	if g.State().Phase != core.PhaseOver {
		t.Errorf("Phase = %v, expected over", g.State().Phase)
	}
}

func TestPaddleDeflectionAngle(t *testing.T) {
	p := Paddle{X: ToFixed(10), Y: 20, Width: PaddleWidth}

	left := Ball{X: ToFixed(10), Y: ToFixed(20) + 100, VY: BallSpeed}
	if !bouncePaddle(&left, &p, BallSpeed) || left.VX >= 0 || left.VY >= 0 {
		t.Errorf("left edge hit: %+v", left)
	}
	right := Ball{X: p.Right(), Y: ToFixed(20) + 100, VY: BallSpeed}
	if !bouncePaddle(&right, &p, BallSpeed) || right.VX <= 0 {
		t.Errorf("right edge hit: %+v", right)
	}
	rising := Ball{X: p.CenterX(), Y: ToFixed(20), VY: -BallSpeed}
	if bouncePaddle(&rising, &p, BallSpeed) {
		t.Error("a rising ball must pass through")
	}
}
