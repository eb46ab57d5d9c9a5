package core

import (
	"strings"
	"unicode/utf8"
)

// Screen is a 2D buffer of colored character cells.
// Games draw into it; the platform turns it into terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.cells = allocCells(s.width, s.height)
	return s
}

func allocCells(w, h int) [][]Cell {
	cells := make([][]Cell, h)
	for y := range cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = blank
		}
		cells[y] = row
	}
	return cells
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
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	next := allocCells(width, height)
	for y := 0; y < Min(s.height, height); y++ {
		copy(next[y], s.cells[y][:Min(s.width, width)])
	}
	s.cells = next
	s.width = width
	s.height = height
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	s.FillCell(blank)
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	s.FillCell(Cell{Rune: r})
}

// FillCell fills the entire screen with the given cell.
func (s *Screen) FillCell(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places an uncolored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a color at the given position.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes colored text starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColored(y, text, ColorDefault)
}

// DrawTextCenteredColored draws colored text centered at row y.
func (s *Screen) DrawTextCenteredColored(y int, text string, c Color) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawTextColored(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	s.DrawRectColored(r, fill, ColorDefault)
}

// DrawRectColored fills a rectangular area with a colored rune.
func (s *Screen) DrawRectColored(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.DrawBoxColored(r, ColorDefault)
}

// DrawBoxColored draws a colored box outline.
func (s *Screen) DrawBoxColored(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	s.DrawHLineColored(r.X+1, r.Y, r.W-2, '─', c)
	s.DrawHLineColored(r.X+1, bottom, r.W-2, '─', c)
	s.DrawVLineColored(r.X, r.Y+1, r.H-2, '│', c)
	s.DrawVLineColored(right, r.Y+1, r.H-2, '│', c)

	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(right, r.Y, '┐', c)
	s.SetColored(r.X, bottom, '└', c)
	s.SetColored(right, bottom, '┘', c)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	s.DrawHLineColored(x, y, length, r, ColorDefault)
}

// DrawHLineColored draws a colored horizontal line.
func (s *Screen) DrawHLineColored(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	s.DrawVLineColored(x, y, length, r, ColorDefault)
}

// DrawVLineColored draws a colored vertical line.
func (s *Screen) DrawVLineColored(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x, y+i, r, c)
	}
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as plain text.
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
