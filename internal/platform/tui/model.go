package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arena/internal/arena"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/registry"
)

type view int

const (
	viewGrid view = iota
	viewGame
	viewScores
)

// Options configures a Model.
type Options struct {
	// Seed fixes the RNG seed of every game. 0 picks one per selection.
	Seed int64
	// StartGame opens this game immediately instead of the grid.
	StartGame string
	// Width and Height size the first frame until the terminal reports
	// its size. Zero means 80x24.
	Width, Height int
}

// Model is the Bubble Tea model for the arena portal.
type Model struct {
	shell  *arena.Shell
	opts   Options
	keys   KeyMap
	help   help.Model
	screen *core.Screen
	width  int
	height int

	view   view
	cursor gridCursor
	panel  audioPanel
	board  scoreboard
	status string

	// gen identifies the live tick chain; ticks carrying an older value
	// are dropped.
	gen      uint64
	quitting bool
}

// NewModel creates the portal model for shell.
func NewModel(shell *arena.Shell, opts Options) (Model, error) {
	cfg := core.DefaultConfig()
	if opts.Width > 0 && opts.Height > 0 {
		cfg.ScreenW, cfg.ScreenH = opts.Width, opts.Height
	}
	m := Model{
		shell:  shell,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		cursor: gridCursor{count: len(shell.Games())},
		panel:  newAudioPanel(shell.Audio()),
	}
	if opts.StartGame != "" {
		if !registry.Exists(opts.StartGame) {
			return Model{}, fmt.Errorf("tui: unknown game %q", opts.StartGame)
		}
		for i, e := range shell.Games() {
			if e.ID == opts.StartGame {
				m.cursor.index = i
			}
		}
		if err := m.open(opts.StartGame); err != nil {
			return Model{}, err
		}
	}
	return m, nil
}

// Init mounts the shell and schedules the drone on first mount.
func (m Model) Init() tea.Cmd {
	if delay, first := m.shell.Mount(); first {
		return musicCmd(delay)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.view != viewGame || m.shell.AudioPanelVisible() {
			return m, nil
		}
		in, ok := ResolveMouse(msg)
		if !ok {
			return m, nil
		}
		cmd := m.apply(in)
		return m, cmd

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tickMsg:
		return m.handleTick(msg)

	case musicMsg:
		m.shell.BeginMusic()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view == viewScores {
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m.quit()
		}
		back, cmd := m.board.update(msg)
		if back {
			m.view = viewGrid
		}
		return m, cmd
	}

	in, ok := m.keys.Resolve(msg.String(), m.view == viewGame)
	if !ok {
		return m, nil
	}

	switch in.Action {
	case core.ActionQuit:
		return m.quit()
	case core.ActionMute:
		m.shell.Audio().ToggleMute()
		return m, nil
	case core.ActionAudioPanel:
		m.shell.ToggleAudioPanel()
		return m, nil
	}

	if m.shell.AudioPanelVisible() {
		if in.Action == core.ActionBack {
			m.shell.ToggleAudioPanel()
		} else {
			m.panel.handle(in)
		}
		return m, nil
	}

	if m.view == viewGame {
		if in.Action == core.ActionBack {
			m.closeGame()
			return m, nil
		}
		cmd := m.apply(in)
		return m, cmd
	}
	return m.handleGridInput(in)
}

func (m Model) handleGridInput(in core.Input) (tea.Model, tea.Cmd) {
	entries := m.shell.Games()
	if d, ok := in.Direction(); ok {
		m.cursor.move(d)
		return m, nil
	}

	switch in.Action {
	case core.ActionSelect:
		if in.Index < 1 || in.Index > len(entries) {
			return m, nil
		}
		m.cursor.index = in.Index - 1
		fallthrough
	case core.ActionConfirm, core.ActionFire:
		if err := m.open(entries[m.cursor.index].ID); err != nil {
			m.status = err.Error()
		}
	case core.ActionScoreboard:
		m.board = newScoreboard(m.shell, m.width, m.height)
		m.view = viewScores
	}
	return m, nil
}

// apply hands one input to the game and keeps the tick chain in step with
// the phase change it caused.
func (m *Model) apply(in core.Input) tea.Cmd {
	g := m.shell.Game()
	if g == nil {
		return nil
	}
	before := g.State()
	g.HandleInput(in)
	after := g.State()

	if after.Over() {
		if !before.Over() {
			m.gen++
			m.shell.RoundOver()
		}
		return nil
	}

	started := before.Phase != core.PhaseRunning && after.Phase == core.PhaseRunning
	restarted := before.Phase == core.PhaseRunning && in.Action == core.ActionRestart
	if started || restarted {
		m.shell.RoundStarted()
	}
	if started || restarted || (before.Paused && !after.Paused) {
		m.gen++
		return tickCmd(m.shell.TickInterval(), m.gen)
	}
	return nil
}

// handleTick advances the game. Stale ticks and ticks for a stopped game
// are dropped without re-arming.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	g := m.shell.Game()
	if msg.gen != m.gen || g == nil {
		return m, nil
	}

	g.Tick()
	st := g.State()
	if st.Over() {
		m.gen++
		m.shell.RoundOver()
		return m, nil
	}
	if !st.Running() {
		return m, nil
	}
	return m, tickCmd(m.shell.TickInterval(), m.gen)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	if m.view == viewScores {
		m.board.resize(msg.Width, msg.Height)
	}

	// A round in progress keeps its field; only an idle game is rebound.
	if g := m.shell.Game(); g != nil {
		if g.State().Phase == core.PhaseIdle {
			g.Reset(m.runtimeConfig())
		} else {
			g.Resize(msg.Width, msg.Height)
		}
	}
	return m, nil
}

func (m *Model) open(id string) error {
	if _, err := m.shell.SelectGame(id, m.runtimeConfig()); err != nil {
		return err
	}
	m.gen++
	m.view = viewGame
	m.status = ""
	return nil
}

func (m *Model) closeGame() {
	m.shell.Deselect()
	m.gen++
	m.view = viewGrid
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.shell.Teardown()
	m.gen++
	m.quitting = true
	return m, tea.Quit
}

func (m Model) runtimeConfig() core.RuntimeConfig {
	seed := m.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{ScreenW: m.width, ScreenH: m.height, Seed: seed}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewScores:
		return m.board.view()
	case viewGame:
		if g := m.shell.Game(); g != nil {
			if m.shell.AudioPanelVisible() {
				return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.panel.view())
			}
			g.Render(m.screen)
			return RenderScreen(m.screen)
		}
	}

	out := renderGrid(m.shell.Games(), m.cursor.index, m.shell.MaxScore(), m.width)
	if m.shell.AudioPanelVisible() {
		out += "\n" + centerText(m.panel.view(), m.width)
	}
	if m.status != "" {
		out += "\n" + centerText(lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3860")).Render(m.status), m.width)
	}
	return out + "\n" + centerText(m.help.View(m.keys), m.width)
}

// Run starts the Bubble Tea program for shell.
func Run(shell *arena.Shell, opts Options) error {
	model, err := NewModel(shell, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
