package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColorClipping(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorNeonRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorNeonRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X in neon red", c)
	}

	for _, p := range []Point{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.Set(p.X, p.Y, 'A')
		if s.Get(p.X, p.Y) != ' ' {
			t.Errorf("Get(%d, %d) out of bounds should be space", p.X, p.Y)
		}
	}

	s.Set(5, 5, 'Y')
	if c := s.GetCell(5, 5); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Héllo", ColorCyan)

	for i, ch := range []rune("Héllo") {
		if c := s.GetCell(2+i, 1); c.Rune != ch || c.Color != ColorCyan {
			t.Errorf("cell %d = %+v, expected %q in cyan", i, c, ch)
		}
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at the right boundary")
	}

	s.DrawTextCentered(3, "Hi")
	if s.Get(9, 3) != 'H' || s.Get(10, 3) != 'i' {
		t.Errorf("DrawTextCentered row = %q", s.Row(3))
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')
	if s.Get(2, 2) != '#' || s.Get(4, 4) != '#' {
		t.Error("DrawRect should fill its area")
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not touch outside cells")
	}

	s.Clear()
	s.DrawBox(NewRect(1, 1, 5, 4))
	corners := map[Point]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for p, want := range corners {
		if got := s.Get(p.X, p.Y); got != want {
			t.Errorf("corner %v = %q, expected %q", p, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(3, 2)
	if got := s.String(); got != "AAA\nBBB" {
		t.Errorf("after shrink String() = %q", got)
	}
	s.Resize(6, 3)
	if !strings.HasPrefix(s.Row(0), "AAA") {
		t.Errorf("content should survive enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != "      " {
		t.Errorf("out of bounds row = %q", s.Row(-1))
	}
}

func TestRegionOffsetsAndClips(t *testing.T) {
	s := NewScreen(20, 10)
	r := s.Region(5, 2, 4, 3)

	r.Set(0, 0, '@', ColorGreen)
	if c := s.GetCell(5, 2); c.Rune != '@' || c.Color != ColorGreen {
		t.Errorf("region origin maps to %+v", c)
	}

	r.Text(2, 1, "abcdef", ColorDefault)
	if s.Get(7, 3) != 'a' || s.Get(8, 3) != 'b' {
		t.Error("region text not placed")
	}
	if s.Get(9, 3) != ' ' {
		t.Error("region text should be clipped at the region edge")
	}

	r.Set(-1, 0, 'x', ColorDefault)
	r.Set(0, 3, 'x', ColorDefault)
	if s.Get(4, 2) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("writes outside the region must be dropped")
	}

	sub := r.Sub(1, 1, 10, 10)
	if sub.Width() != 3 || sub.Height() != 2 {
		t.Errorf("Sub size = %dx%d, expected 3x2", sub.Width(), sub.Height())
	}
	if got := sub.Get(1, 0); got != 'a' {
		t.Errorf("sub.Get(1, 0) = %q, expected 'a'", got)
	}
}

func TestRegionCentered(t *testing.T) {
	s := NewScreen(20, 10)
	c := s.Region(0, 2, 20, 8).Centered(6, 4)
	if got := c.Origin(); got != Pt(7, 4) {
		t.Errorf("Centered origin = %v, expected (7,4)", got)
	}
	big := s.Region(0, 0, 10, 5).Centered(30, 30)
	if big.Width() != 10 || big.Height() != 5 || big.Origin() != Pt(0, 0) {
		t.Errorf("oversized Centered = %v %dx%d", big.Origin(), big.Width(), big.Height())
	}
}
