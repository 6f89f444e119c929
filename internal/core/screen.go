package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position of the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D cell buffer for rendering game graphics.
// Games draw runes and colors into it; the platform turns it into styled
// terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	copyW := min(s.width, width)
	copyH := min(s.height, height)

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], old[y][:copyW])
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill fills the entire screen with the given rune in the default color.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r}
		}
	}
}

// Set places a rune in the default color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColor(x, y, r, ColorDefault)
}

// SetColor places a colored rune at the given position.
func (s *Screen) SetColor(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position, or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when out
// of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes a colored string starting at (x, y).
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColor(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColor(y, text, ColorDefault)
}

// DrawTextCenteredColor draws colored text centered horizontally.
func (s *Screen) DrawTextCenteredColor(y int, text string, c Color) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawTextColor(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	s.DrawRectColor(r, fill, ColorDefault)
}

// DrawRectColor fills a rectangular area with a colored rune.
func (s *Screen) DrawRectColor(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColor(x, y, fill, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.DrawBoxColor(r, ColorDefault)
}

// DrawBoxColor draws a colored box outline.
func (s *Screen) DrawBoxColor(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	s.SetColor(r.X, r.Y, '┌', c)
	s.SetColor(r.Right()-1, r.Y, '┐', c)
	s.SetColor(r.X, r.Bottom()-1, '└', c)
	s.SetColor(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColor(x, r.Y, '─', c)
		s.SetColor(x, r.Bottom()-1, '─', c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColor(r.X, y, '│', c)
		s.SetColor(r.Right()-1, y, '│', c)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x, y+i, r)
	}
}

// Region returns a clipped view of the screen whose origin is (x, y).
func (s *Screen) Region(x, y, w, h int) *Region {
	return &Region{screen: s, bounds: NewRect(x, y, w, h)}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Region is a rectangular window onto a Screen. Coordinates are relative
// to the region origin and writes outside the region are dropped, so a game
// can draw its playfield without knowing where the HUD sits.
type Region struct {
	screen *Screen
	bounds Rect
}

// Width returns the region width.
func (r *Region) Width() int { return r.bounds.W }

// Height returns the region height.
func (r *Region) Height() int { return r.bounds.H }

// Origin returns the screen coordinates of the region's top-left cell.
func (r *Region) Origin() Point { return Pt(r.bounds.X, r.bounds.Y) }

// Set places a colored rune at a region-relative position.
func (r *Region) Set(x, y int, ch rune, c Color) {
	if x < 0 || x >= r.bounds.W || y < 0 || y >= r.bounds.H {
		return
	}
	r.screen.SetColor(r.bounds.X+x, r.bounds.Y+y, ch, c)
}

// Text writes a colored string at a region-relative position.
func (r *Region) Text(x, y int, text string, c Color) {
	i := 0
	for _, ch := range text {
		r.Set(x+i, y, ch, c)
		i++
	}
}

// TextCentered writes colored text centered on row y.
func (r *Region) TextCentered(y int, text string, c Color) {
	r.Text((r.bounds.W-utf8.RuneCountInString(text))/2, y, text, c)
}

// Fill fills a region-relative rectangle.
func (r *Region) Fill(rect Rect, ch rune, c Color) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			r.Set(x, y, ch, c)
		}
	}
}

// Box draws an outline around a region-relative rectangle.
func (r *Region) Box(rect Rect, c Color) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	r.Set(rect.X, rect.Y, '┌', c)
	r.Set(rect.Right()-1, rect.Y, '┐', c)
	r.Set(rect.X, rect.Bottom()-1, '└', c)
	r.Set(rect.Right()-1, rect.Bottom()-1, '┘', c)
	for x := rect.X + 1; x < rect.Right()-1; x++ {
		r.Set(x, rect.Y, '─', c)
		r.Set(x, rect.Bottom()-1, '─', c)
	}
	for y := rect.Y + 1; y < rect.Bottom()-1; y++ {
		r.Set(rect.X, y, '│', c)
		r.Set(rect.Right()-1, y, '│', c)
	}
}

// Sub returns a nested region clipped to this one.
func (r *Region) Sub(x, y, w, h int) *Region {
	w = min(w, r.bounds.W-x)
	h = min(h, r.bounds.H-y)
	return &Region{
		screen: r.screen,
		bounds: NewRect(r.bounds.X+x, r.bounds.Y+y, max(w, 0), max(h, 0)),
	}
}

// Get returns the rune at a region-relative position.
func (r *Region) Get(x, y int) rune {
	if x < 0 || x >= r.bounds.W || y < 0 || y >= r.bounds.H {
		return ' '
	}
	return r.screen.Get(r.bounds.X+x, r.bounds.Y+y)
}

// Centered returns a w x h sub-region centered in r.
func (r *Region) Centered(w, h int) *Region {
	return r.Sub(max((r.bounds.W-w)/2, 0), max((r.bounds.H-h)/2, 0), w, h)
}
