package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arena/internal/arena"
	"github.com/vovakirdan/neon-arena/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show game list sidebar
	sidebarWidth       = 20 // Width of game list sidebar
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreboardFilter is one sidebar entry; an empty id lists every game.
type scoreboardFilter struct {
	id, title string
}

// scoreboard lists every play of this process from the session ledger.
type scoreboard struct {
	shell       *arena.Shell
	filters     []scoreboardFilter
	titles      map[string]string
	cursor      int
	plays       []storage.Play
	err         error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	showSidebar bool
}

func newScoreboard(shell *arena.Shell, width, height int) scoreboard {
	filters := []scoreboardFilter{{title: "All games"}}
	titles := make(map[string]string)
	for _, e := range shell.Games() {
		filters = append(filters, scoreboardFilter{id: e.ID, title: e.Title})
		titles[e.ID] = e.Title
	}

	m := scoreboard{
		shell:   shell,
		filters: filters,
		titles:  titles,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
	}
	m.resize(width, height)
	m.reload()
	return m
}

func (m *scoreboard) resize(width, height int) {
	m.width, m.height = width, height
	m.showSidebar = width >= minWidthForSidebar
	m.help.Width = width
	m.table = m.createTable()
	m.updateTableRows()
}

// createTable creates a new table with appropriate columns.
func (m *scoreboard) createTable() table.Model {
	tableWidth := m.width - 8
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	gameW := max(tableWidth-36, 10)
	columns := []table.Column{
		{Title: "Game", Width: min(gameW, 18)},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(neonPurple).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches the plays for the current filter.
func (m *scoreboard) reload() {
	plays, err := m.shell.Plays()
	m.err = err
	id := m.filters[m.cursor].id
	m.plays = m.plays[:0]
	for _, p := range plays {
		if id == "" || p.GameID == id {
			m.plays = append(m.plays, p)
		}
	}
	m.updateTableRows()
}

func (m *scoreboard) updateTableRows() {
	rows := make([]table.Row, len(m.plays))
	for i, p := range m.plays {
		title := m.titles[p.GameID]
		if title == "" {
			title = p.GameID
		}
		rows[i] = table.Row{
			title,
			fmt.Sprintf("%d", p.Score),
			p.Duration.Round(time.Second).String(),
			p.EndedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// update handles one key. It reports whether the user left the board.
func (m *scoreboard) update(msg tea.KeyMsg) (back bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return true, nil
	case key.Matches(msg, m.keys.NextGame):
		m.cursor = (m.cursor + 1) % len(m.filters)
		m.reload()
	case key.Matches(msg, m.keys.PrevGame):
		m.cursor = (m.cursor + len(m.filters) - 1) % len(m.filters)
		m.reload()
	default:
		m.table, cmd = m.table.Update(msg)
	}
	return false, cmd
}

func (m scoreboard) view() string {
	var b strings.Builder

	title := fmt.Sprintf("SESSION SCORES - %s", m.filters[m.cursor].title)
	b.WriteString(bannerStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderWideLayout renders the scoreboard with sidebar for game selection.
func (m scoreboard) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(neonPurple).
		Width(sidebarWidth).
		Padding(0, 1)

	// Only the filters around the cursor fit next to the table.
	visible := max(m.height-8, 3)
	first := max(0, min(m.cursor-visible/2, len(m.filters)-visible))

	var sidebar strings.Builder
	for i := first; i < min(first+visible, len(m.filters)); i++ {
		cursor, style := "  ", lipgloss.NewStyle()
		if i == m.cursor {
			cursor, style = "> ", style.Bold(true).Foreground(neonPink)
		}
		sidebar.WriteString(style.Render(cursor + truncate(m.filters[i].title, sidebarWidth-4)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(neonPurple).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(strings.TrimSuffix(sidebar.String(), "\n")),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout shows the current filter with arrows above the table.
func (m scoreboard) renderNarrowLayout() string {
	tab := fmt.Sprintf("< %s >", m.filters[m.cursor].title)
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(neonPurple).
		Padding(0, 1)
	return centerText(tab, m.width) + "\n\n" + centerText(tableStyle.Render(m.renderTableContent()), m.width)
}

func (m scoreboard) renderTableContent() string {
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3860")).Render(m.err.Error())
	}
	if len(m.plays) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(dimGray).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No plays yet this session.\nPick a game and set a score!")
	}
	return m.table.View()
}
