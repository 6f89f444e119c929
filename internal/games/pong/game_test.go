package pong

import (
	"testing"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/session"
)

func newGame() *session.Session[State] {
	g := New(audio.Silent)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 5})
	g.Start()
	return g
}

func TestPaddleClamped(t *testing.T) {
	g := newGame()
	for i := 0; i < 50; i++ {
		g.HandleInput(core.Press(core.ActionUp))
	}
	if g.Data().Paddle1Y != 0 {
		t.Errorf("Paddle1Y = %v, expected 0", g.Data().Paddle1Y)
	}
	for i := 0; i < 50; i++ {
		g.HandleInput(core.Press(core.ActionDown))
	}
	if got, want := g.Data().Paddle1Y, g.Data().maxPaddleY(); got != want {
		t.Errorf("Paddle1Y = %v, expected %v", got, want)
	}
}

func TestWallBounce(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Serving = 0
	s.BallX, s.BallY = 40, 0.5
	s.BallVX, s.BallVY = 0.5, -1
	g.Tick()
	if s.BallVY <= 0 || s.BallY < 0 {
		t.Errorf("ball should bounce off the top: y=%v vy=%v", s.BallY, s.BallVY)
	}
}

func TestServeHoldsBall(t *testing.T) {
	g := newGame()
	x := g.Data().BallX
	g.Tick()
	if g.Data().BallX != x {
		t.Error("ball moved during serve delay")
	}
}

func TestPlayerPointScores(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Serving = 0
	s.Paddle2Y = 0
	s.BallX, s.BallY = float64(s.W)-0.5, float64(s.H)-2
	s.BallVX, s.BallVY = 1, 0
	g.Tick()
	if s.Score1 != 1 || g.State().Score != 1 {
		t.Errorf("Score1=%d score=%d, expected 1", s.Score1, g.State().Score)
	}
}

func TestCPUWinEnds(t *testing.T) {
	g := newGame()
	s := g.Data()
	s.Score2 = WinScore - 1
	s.Serving = 0
	s.Paddle1Y = 0
	s.BallX, s.BallY = 0.5, float64(s.H)-2
	s.BallVX, s.BallVY = -1, 0
	g.Tick()
	if g.State().Phase != core.PhaseOver {
		t.Errorf("Phase = %v, expected over", g.State().Phase)
	}
	if g.State().Score != 0 {
		t.Errorf("CPU points must not score for the player")
	}
}
