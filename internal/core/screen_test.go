package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != strings.Repeat(" ", 12) {
			t.Errorf("row %d not blank: %q", y, s.Row(y))
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(2, 1, '@', ColorCyan)

	cell := s.GetCell(2, 1)
	if cell.Rune != '@' || cell.Color != ColorCyan {
		t.Errorf("GetCell() = %+v", cell)
	}
	if s.Get(2, 1) != '@' {
		t.Errorf("Get() = %q", s.Get(2, 1))
	}

	// Out of bounds writes are ignored, reads return a blank cell
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(10, 0, 'X', ColorRed)
	if got := s.GetCell(99, 99); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell() = %+v", got)
	}

	s.Clear()
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawTextClipsAndCenters(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColored(17, 0, "Hello", ColorYellow)
	if s.Row(0)[17:] != "Hel" {
		t.Errorf("clipped row = %q", s.Row(0))
	}
	if s.GetCell(18, 0).Color != ColorYellow {
		t.Error("text color not applied")
	}

	// Multi-byte runes are centered by rune count
	s.DrawTextCentered(1, "█▌")
	if s.Get(9, 1) != '█' || s.Get(10, 1) != '▌' {
		t.Errorf("centered row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColored(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Error("box color not applied")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')
	if s.Get(2, 2) != '#' || s.Get(4, 4) != '#' {
		t.Error("rect not filled")
	}
	if s.Get(5, 5) != ' ' || s.Get(1, 1) != ' ' {
		t.Error("rect leaked outside its bounds")
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || len(s.Row(0)) != 15 {
		t.Errorf("row 0 after enlarge = %q", s.Row(0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ABC")
	s.DrawText(0, 1, "DEF")
	if got := s.String(); got != "ABC\nDEF" {
		t.Errorf("String() = %q", got)
	}
}
