package trivia

import (
	"fmt"

	"github.com/Conner685/Comp2522TermProject/internal/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCenteredColored(0, "Word Game: Geographical Trivia", core.ColorBrightCyan)

	switch g.phase {
	case PhaseReady:
		g.renderWelcome(dst)
	case PhaseAsking, PhaseReveal:
		g.renderQuestion(dst)
	case PhaseFinished:
		g.renderSummary(dst)
	}

	s := g.stats
	dst.DrawTextCenteredColored(dst.Height()-2,
		fmt.Sprintf("Games: %d   First try: %d   Second try: %d   Incorrect: %d", s.Played, s.FirstTry, s.SecondTry, s.Incorrect),
		core.ColorGray)
	dst.DrawTextCenteredColored(dst.Height()-1, "1-3 or arrows+Enter answer   B back   Q quit", core.ColorGray)
}

func (g *Game) renderWelcome(dst *core.Screen) {
	y := 3
	lines := []string{
		fmt.Sprintf("Answer %d questions about countries of the world.", g.cfg.QuestionsPerRound),
		fmt.Sprintf("You have %d attempts at each question.", attemptsPerQuestion),
		fmt.Sprintf("First try gets you %d points, second try %d.", g.cfg.FirstTryPoints, g.cfg.SecondTryPoints),
		"After that you get nothing!",
	}
	for i, l := range lines {
		dst.DrawTextCentered(y+i, l)
	}
	dst.DrawTextCenteredColored(y+len(lines)+2, "Press Enter to play", core.ColorBrightGreen)
}

func (g *Game) renderQuestion(dst *core.Screen) {
	q := g.question
	dst.DrawTextCentered(2, fmt.Sprintf("Question %d of %d   Points: %d", g.asked, g.cfg.QuestionsPerRound, g.points))
	dst.DrawTextCenteredColored(4, q.Prompt, core.ColorBrightWhite)
	if q.Kind == FactToCountry {
		dst.DrawTextCenteredColored(5, q.Subject, core.ColorYellow)
	}

	y := 7
	for i, choice := range q.Choices {
		color := core.ColorWhite
		prefix := "  "
		switch {
		case g.phase == PhaseReveal && i == q.Answer:
			color = core.ColorBrightGreen
		case g.wrong[i]:
			color = core.ColorRed
		case g.phase == PhaseAsking && i == g.cursor:
			color = core.ColorBrightYellow
			prefix = "> "
		}
		dst.DrawTextColored(dst.Width()/4, y+i, fmt.Sprintf("%s%d --> %s", prefix, i+1, choice), color)
	}

	y += len(q.Choices) + 1
	if g.message != "" {
		color := core.ColorBrightRed
		if g.phase == PhaseReveal && g.attempts < attemptsPerQuestion {
			color = core.ColorBrightGreen
		}
		dst.DrawTextCenteredColored(y, g.message, color)
	}
	if g.phase == PhaseReveal {
		dst.DrawTextCenteredColored(y+2, "Press Enter to continue", core.ColorGray)
	}
}

func (g *Game) renderSummary(dst *core.Screen) {
	dst.DrawTextCenteredColored(4, "Round complete!", core.ColorBrightGreen)
	dst.DrawTextCentered(6, fmt.Sprintf("You scored %d of %d points", g.points, g.cfg.QuestionsPerRound*g.cfg.FirstTryPoints))
	dst.DrawTextCenteredColored(8, "[Enter] Play again   [B] Back   [Q] Quit", core.ColorWhite)
}
