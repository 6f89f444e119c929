package core

// RuntimeConfig is passed to a game when it is bound to a screen.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig sized for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// Phase is the coarse lifecycle stage of a game session.
// Transitions are idle -> running -> over -> idle (restart).
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState is the part of a game's state the platform cares about.
type GameState struct {
	Score  int
	Phase  Phase
	Paused bool
}

// Running reports whether the session is advancing on ticks.
func (s GameState) Running() bool {
	return s.Phase == PhaseRunning && !s.Paused
}

// Over reports whether the round has ended.
func (s GameState) Over() bool {
	return s.Phase == PhaseOver
}
