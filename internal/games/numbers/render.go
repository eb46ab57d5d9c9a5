package numbers

import (
	"fmt"

	"github.com/Conner685/Comp2522TermProject/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW := g.cfg.Cols*cellWidth + 1
	boardH := g.cfg.Rows*cellHeight + 1
	if dst.Width() < boardW+2 || dst.Height() < boardH+8 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	dst.DrawTextCenteredColored(0, "Number Placement Game", core.ColorBrightCyan)
	dst.DrawTextCentered(2, g.status)

	switch g.phase {
	case PhasePlaying:
		dst.DrawTextCenteredColored(3, fmt.Sprintf("Current number to place: %d", g.Current()), core.ColorBrightYellow)
	case PhaseWon:
		dst.DrawTextCenteredColored(3, "[Enter] Play again   [B] Back", core.ColorBrightGreen)
	case PhaseLost:
		dst.DrawTextCenteredColored(3, "[Enter] Play again   [B] Back", core.ColorBrightRed)
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := 5
	g.renderBoard(dst, boardX, boardY)

	s := g.stats
	stats := fmt.Sprintf("Games Played: %d, Games Won: %d, Successful Placements: %d, Average: %.2f",
		s.Played, s.Won, s.Placements, s.Average())
	dst.DrawTextCenteredColored(boardY+boardH+1, stats, core.ColorGray)
	dst.DrawTextCenteredColored(dst.Height()-1, "Arrows move   Enter place   B back   Q quit", core.ColorGray)
}

// renderBoard draws grid lines, placed numbers and the cursor.
func (g *Game) renderBoard(dst *core.Screen, x, y int) {
	for row := range g.cfg.Rows {
		for col := range g.cfg.Cols {
			cx := x + col*cellWidth
			cy := y + row*cellHeight

			border := core.ColorBlue
			if g.phase == PhasePlaying && row == g.cursorRow && col == g.cursorCol {
				border = core.ColorBrightYellow
			}
			dst.DrawBoxColored(core.NewRect(cx, cy, cellWidth+1, cellHeight+1), border)

			if v := g.grid.At(row, col); v != 0 {
				dst.DrawTextColored(cx+1, cy+1, fmt.Sprintf("%5d", v), core.ColorBrightWhite)
			}
		}
	}
}
