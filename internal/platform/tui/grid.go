package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arena/internal/arena"
	"github.com/vovakirdan/neon-arena/internal/core"
)

// Grid layout constants
const (
	gridCols  = 5
	tileWidth = 14
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(neonPink).
			MarginBottom(1)

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(neonPurple).
			Width(tileWidth).
			Padding(0, 1)

	activeTileStyle = tileStyle.
			BorderForeground(neonPink).
			Foreground(neonBlue).
			Bold(true)

	bestStyle = lipgloss.NewStyle().Foreground(neonGreen)
	dimStyle  = lipgloss.NewStyle().Foreground(dimGray)
)

// gridCursor is the selection on the game grid.
type gridCursor struct {
	index int
	count int
}

// move applies a direction. Left/right wrap through the whole list,
// up/down move by a row and stop at the edges.
func (c *gridCursor) move(d core.Point) {
	if c.count == 0 {
		return
	}
	switch {
	case d.X != 0:
		c.index = (c.index + d.X + c.count) % c.count
	case d.Y != 0:
		next := c.index + d.Y*gridCols
		if next >= 0 && next < c.count {
			c.index = next
		}
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// renderGrid draws the portal: banner, tiles and the session best.
func renderGrid(entries []arena.Entry, cursor, maxScore, width int) string {
	var b strings.Builder
	b.WriteString(centerText(bannerStyle.Render("N E O N   A R E N A"), width))
	b.WriteString("\n")

	rows := make([]string, 0, (len(entries)+gridCols-1)/gridCols)
	for start := 0; start < len(entries); start += gridCols {
		tiles := make([]string, 0, gridCols)
		for i := start; i < min(start+gridCols, len(entries)); i++ {
			e := entries[i]
			style := tileStyle
			if i == cursor {
				style = activeTileStyle
			}
			best := dimStyle.Render("—")
			if e.Best > 0 {
				best = bestStyle.Render(fmt.Sprintf("★ %d", e.Best))
			}
			body := fmt.Sprintf("%02d %s\n%s", i+1, truncate(e.Title, tileWidth-5), best)
			tiles = append(tiles, style.Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	b.WriteString(centerText(lipgloss.JoinVertical(lipgloss.Left, rows...), width))
	b.WriteString("\n")

	if cursor >= 0 && cursor < len(entries) {
		desc := dimStyle.Render(entries[cursor].Description)
		b.WriteString(centerText(desc, width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(bestStyle.Render(fmt.Sprintf("SESSION BEST %d", maxScore)), width))
	return b.String()
}
