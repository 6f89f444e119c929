package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/session"
)

// KeyMap resolves raw key strings to actions. It has two layers: inside a
// game "a" steers left, elsewhere it opens the audio panel ("v" works in
// both).
type KeyMap struct {
	common map[string]core.Input
	game   map[string]core.Input
	portal map[string]core.Input

	// Bindings for the help bar.
	Move       key.Binding
	Fire       key.Binding
	Open       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Mute       key.Binding
	AudioPanel key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	common := map[string]core.Input{
		"up":     core.Press(core.ActionUp),
		"down":   core.Press(core.ActionDown),
		"left":   core.Press(core.ActionLeft),
		"right":  core.Press(core.ActionRight),
		"w":      core.Press(core.ActionUp),
		"s":      core.Press(core.ActionDown),
		"d":      core.Press(core.ActionRight),
		" ":      core.Press(core.ActionFire),
		"enter":  core.Press(core.ActionConfirm),
		"p":      core.Press(core.ActionPause),
		"r":      core.Press(core.ActionRestart),
		"esc":    core.Press(core.ActionBack),
		"b":      core.Press(core.ActionBack),
		"m":      core.Press(core.ActionMute),
		"v":      core.Press(core.ActionAudioPanel),
		"tab":    core.Press(core.ActionScoreboard),
		"q":      core.Press(core.ActionQuit),
		"ctrl+c": core.Press(core.ActionQuit),
	}
	for i := 1; i <= 9; i++ {
		common[string(rune('0'+i))] = core.Choose(i)
	}

	return KeyMap{
		common: common,
		game:   map[string]core.Input{"a": core.Press(core.ActionLeft)},
		portal: map[string]core.Input{"a": core.Press(core.ActionAudioPanel)},

		Move:       key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→/wasd", "move")),
		Fire:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/1-9", "play")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Mute:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		AudioPanel: key.NewBinding(key.WithKeys("a", "v"), key.WithHelp("a/v", "audio")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Resolve maps a key string to an input. inGame selects the game layer.
func (k KeyMap) Resolve(keyStr string, inGame bool) (core.Input, bool) {
	layer := k.portal
	if inGame {
		layer = k.game
	}
	if in, ok := layer[keyStr]; ok {
		return in, true
	}
	in, ok := k.common[keyStr]
	return in, ok
}

// ResolveMouse turns a left click into a pointer input with playfield
// coordinates.
func ResolveMouse(msg tea.MouseMsg) (core.Input, bool) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return core.Input{}, false
	}
	if msg.Y < session.HUDRows {
		return core.Input{}, false
	}
	return core.Click(msg.X, msg.Y-session.HUDRows), true
}

// ShortHelp implements help.KeyMap for the grid.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Open, k.AudioPanel, k.Mute, k.Scoreboard, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Fire, k.Open},
		{k.Pause, k.Restart, k.Back},
		{k.Mute, k.AudioPanel, k.Scoreboard, k.Quit},
	}
}
