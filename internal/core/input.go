package core

// Action represents a semantic input, abstracted from physical key presses.
// The platform resolves keys and mouse events to actions once; games never
// see raw key strings.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionFire              // Space - primary action (click, flap, shoot, drop)
	ActionConfirm           // Enter
	ActionSelect            // 1-9, with Input.Index set to the digit
	ActionPointer           // Mouse click, with Input.X/Y set to playfield cells
	ActionPause             // P
	ActionRestart           // R
	ActionBack              // Esc, B - leave the current game
	ActionQuit              // Q, Ctrl+C
	ActionMute              // M
	ActionAudioPanel        // A key outside games, toggles audio controls
	ActionScoreboard        // Tab
)

var actionNames = map[Action]string{
	ActionNone:       "None",
	ActionUp:         "Up",
	ActionDown:       "Down",
	ActionLeft:       "Left",
	ActionRight:      "Right",
	ActionFire:       "Fire",
	ActionConfirm:    "Confirm",
	ActionSelect:     "Select",
	ActionPointer:    "Pointer",
	ActionPause:      "Pause",
	ActionRestart:    "Restart",
	ActionBack:       "Back",
	ActionQuit:       "Quit",
	ActionMute:       "Mute",
	ActionAudioPanel: "AudioPanel",
	ActionScoreboard: "Scoreboard",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Input is one resolved input event delivered to a game.
type Input struct {
	Action Action
	Index  int // 1-based choice for ActionSelect
	X, Y   int // Playfield cell for ActionPointer
}

// Press builds an Input carrying only an action.
func Press(a Action) Input {
	return Input{Action: a}
}

// Choose builds an ActionSelect input for the given 1-based index.
func Choose(index int) Input {
	return Input{Action: ActionSelect, Index: index}
}

// Click builds an ActionPointer input at playfield cell (x, y).
func Click(x, y int) Input {
	return Input{Action: ActionPointer, X: x, Y: y}
}

// Direction returns the unit vector for a directional action and false for
// anything else.
func (in Input) Direction() (Point, bool) {
	switch in.Action {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return Point{}, false
}
