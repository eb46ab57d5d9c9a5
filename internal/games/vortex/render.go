package vortex

import (
	"fmt"
	"math"
	"strings"

	"github.com/Conner685/Comp2522TermProject/internal/core"
)

const (
	minScreenW  = 40
	minScreenH  = 14
	boostBarLen = 20
)

// Visual characters for rendering
const (
	PlayerChar     = '█'
	ProjectileFill = '▒'
	StarSmall      = '·'
	StarLarge      = '✦'
)

// spinGlyphs show a projectile's rotation in 90 degree steps.
var spinGlyphs = []rune{'◢', '◣', '◤', '◥'}

// view maps arena coordinates onto the terminal area inside the border.
type view struct {
	x, y, w, h int
	sx, sy     float64
}

func newView(dst *core.Screen, arenaW, arenaH float64) view {
	v := view{x: 1, y: 2, w: dst.Width() - 2, h: dst.Height() - 3}
	v.sx = float64(v.w) / arenaW
	v.sy = float64(v.h) / arenaH
	return v
}

// bounds returns the cells the arena is drawn into.
func (v view) bounds() core.Rect {
	return core.NewRect(v.x, v.y, v.w, v.h)
}

// cell returns the terminal cell for an arena point.
func (v view) cell(p core.Vec) (int, int) {
	return v.x + int(p.X*v.sx), v.y + int(p.Y*v.sy)
}

// rect converts an arena box into the cells it covers, clipped to the view.
// The second result is false when nothing is visible.
func (v view) rect(b core.Box) (core.Rect, bool) {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := max(int(math.Ceil((b.X+b.W)*v.sx)), x0+1)
	y1 := max(int(math.Ceil((b.Y+b.H)*v.sy)), y0+1)

	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, v.w), min(y1, v.h)
	if x0 >= x1 || y0 >= y1 {
		return core.Rect{}, false
	}
	return core.NewRect(v.x+x0, v.y+y0, x1-x0, y1-y0), true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		renderTooSmall(dst)
		return
	}

	switch g.arena.State() {
	case StateMenu:
		g.renderMenu(dst)
	case StatePlaying:
		g.renderArena(dst)
		if g.paused {
			renderBanner(dst, []string{"PAUSED", "", "P resume   B main menu"}, core.ColorBrightYellow)
		}
	case StateGameOver:
		g.renderArena(dst)
		renderBanner(dst, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Survival Time: %d seconds", g.arena.Survival()),
			"",
			"[R] Retry   [B] Main Menu   [Q] Quit",
		}, core.ColorBrightRed)
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderMenu draws the title screen with the leaderboard.
func (g *Game) renderMenu(dst *core.Screen) {
	v := newView(dst, g.cfg.Arena.Width, g.cfg.Arena.Height)
	g.renderStars(dst, v)
	dst.DrawBoxColored(core.NewRect(0, 1, dst.Width(), dst.Height()-1), core.ColorBlue)

	y := 3
	dst.DrawTextCenteredColored(y, "V O R T E X", core.ColorBrightCyan)
	dst.DrawTextCentered(y+2, "Survive the storm. Grab power-ups.")
	dst.DrawTextCenteredColored(y+3, "WASD/Arrows move   Shift+WASD or Space boost", core.ColorGray)

	y += 5
	dst.DrawTextCenteredColored(y, "Leaderboard", core.ColorBrightYellow)
	y += 2
	if len(g.leaderboard) == 0 {
		dst.DrawTextCentered(y, "No Scores!")
	} else {
		half := (LeaderboardSize + 1) / 2
		colW := 14
		left := (dst.Width() - 2*colW) / 2
		for i, s := range g.leaderboard {
			col, row := i/half, i%half
			if y+row >= dst.Height()-3 {
				continue
			}
			dst.DrawText(left+col*colW, y+row, fmt.Sprintf("%2d. %ds", i+1, s))
		}
		y += half
	}

	if last := g.arena.LastResult(); last > 0 && y+1 < dst.Height()-3 {
		dst.DrawTextCenteredColored(y+1, fmt.Sprintf("Last run: %ds", last), core.ColorGray)
	}
	dst.DrawTextCenteredColored(dst.Height()-3, "Press Enter to Start", core.ColorBrightGreen)
}

// renderArena draws the HUD, the border and every entity.
func (g *Game) renderArena(dst *core.Screen) {
	g.renderHUD(dst)
	dst.DrawBoxColored(core.NewRect(0, 1, dst.Width(), dst.Height()-1), core.ColorBlue)

	v := newView(dst, g.cfg.Arena.Width, g.cfg.Arena.Height)
	g.renderStars(dst, v)

	for _, p := range g.arena.pickups {
		if r, ok := v.rect(p.Bounds()); ok {
			dst.DrawRectColored(r, p.Kind.Glyph(), p.Kind.Color())
		}
	}

	for _, p := range g.arena.projectiles {
		r, ok := v.rect(p.Bounds())
		if !ok {
			continue
		}
		dst.DrawRectColored(r, ProjectileFill, core.ColorRed)
		cx, cy := r.Center()
		dst.SetColored(cx, cy, spinGlyphs[int(p.Rotation/90)%len(spinGlyphs)], core.ColorBrightRed)
	}

	color := core.ColorBrightCyan
	if g.arena.player.Boosted {
		color = core.ColorBrightWhite
	}
	if r, ok := v.rect(g.arena.player.Bounds()); ok {
		dst.DrawRectColored(r, PlayerChar, color)
	}
}

// renderStars draws the decorative background.
func (g *Game) renderStars(dst *core.Screen, v view) {
	area := v.bounds()
	for _, s := range g.arena.stars {
		x, y := v.cell(s.Pos)
		if !area.Contains(x, y) {
			continue
		}
		if s.Size > 2 {
			dst.SetColored(x, y, StarLarge, core.ColorWhite)
		} else {
			dst.SetColored(x, y, StarSmall, core.ColorGray)
		}
	}
}

// renderHUD draws survival time, the boost bar and the speed multiplier.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.arena.player

	timeText := fmt.Sprintf("Time: %ds", g.arena.Survival())
	dst.DrawTextColored(1, 0, timeText, core.ColorBrightWhite)

	filled := 0
	if p.MaxBoost > 0 {
		filled = int(p.Boost / p.MaxBoost * boostBarLen)
	}
	filled = core.Clamp(filled, 0, boostBarLen)

	barColor := core.ColorGreen
	switch {
	case p.BoostCut:
		barColor = core.ColorRed
	case p.Boosted:
		barColor = core.ColorBrightCyan
	}

	x := len(timeText) + 4
	dst.DrawText(x, 0, "Boost ")
	x += 6
	dst.DrawTextColored(x, 0, strings.Repeat("█", filled), barColor)
	dst.DrawTextColored(x+filled, 0, strings.Repeat("░", boostBarLen-filled), core.ColorGray)
	x += boostBarLen + 1
	dst.DrawText(x, 0, fmt.Sprintf("%3.0f/%.0f", p.Boost, p.MaxBoost))

	speed := fmt.Sprintf("Speed x%.1f", p.SpeedModifier)
	dst.DrawTextColored(dst.Width()-len(speed)-1, 0, speed, core.ColorBrightYellow)
}

// renderBanner draws a bordered message box in the middle of the screen.
func renderBanner(dst *core.Screen, lines []string, color core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2
	box := core.NewRect(x, y, width, height)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)

	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = color
		}
		dst.DrawTextCenteredColored(y+1+i, l, c)
	}
}
