package trivia

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/Conner685/Comp2522TermProject/internal/config"
	"github.com/Conner685/Comp2522TermProject/internal/core"
)

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func started(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhaseAsking {
		t.Fatal("Enter should start a round")
	}
	return g
}

// wrongChoice returns an index that is not the answer.
func wrongChoice(q Question) int {
	return (q.Answer + 1) % len(q.Choices)
}

func TestNewQuestionShape(t *testing.T) {
	bank := config.DefaultTriviaConfig().Countries
	rng := rand.New(rand.NewSource(3))

	for i := range 200 {
		kind := Kind(i % int(kindCount))
		q := NewQuestion(rng, bank, kind, 3)

		if len(q.Choices) != 3 || q.Answer < 0 || q.Answer >= 3 {
			t.Fatalf("bad question %+v", q)
		}
		seen := make(map[string]bool)
		for _, c := range q.Choices {
			if seen[c] {
				t.Fatalf("duplicate choice %q in %+v", c, q)
			}
			seen[c] = true
		}

		var match bool
		for _, c := range bank {
			switch kind {
			case CapitalToCountry:
				match = match || (c.Capital == q.Subject && c.Name == q.Correct())
			case CountryToCapital:
				match = match || (c.Name == q.Subject && c.Capital == q.Correct())
			case FactToCountry:
				for _, f := range c.Facts {
					match = match || (f == q.Subject && c.Name == q.Correct())
				}
			}
		}
		if !match {
			t.Fatalf("answer %q does not match subject %q", q.Correct(), q.Subject)
		}
	}
}

func TestAnswerIndexIsSpread(t *testing.T) {
	bank := config.DefaultTriviaConfig().Countries
	rng := rand.New(rand.NewSource(9))
	counts := make([]int, 3)
	for range 300 {
		counts[NewQuestion(rng, bank, CapitalToCountry, 3).Answer]++
	}
	for i, c := range counts {
		if c == 0 {
			t.Errorf("answer never placed at index %d", i)
		}
	}
}

func TestScoring(t *testing.T) {
	tests := []struct {
		name     string
		guesses  func(q Question) []int
		outcome  Outcome
		points   int
		firstTry int
		second   int
		wrong    int
	}{
		{"first try", func(q Question) []int { return []int{q.Answer} }, OutcomeFirstTry, 2, 1, 0, 0},
		{"second try", func(q Question) []int { return []int{wrongChoice(q), q.Answer} }, OutcomeSecondTry, 1, 0, 1, 0},
		{"missed", func(q Question) []int { return []int{wrongChoice(q), wrongChoice(q)} }, OutcomeWrong, 0, 0, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := started(t, 1)
			var last Outcome
			for _, c := range tc.guesses(g.Question()) {
				o, err := g.Answer(c)
				if err != nil {
					t.Fatal(err)
				}
				last = o
			}

			if last != tc.outcome {
				t.Errorf("outcome %v, expected %v", last, tc.outcome)
			}
			if g.State().Score != tc.points {
				t.Errorf("points %d, expected %d", g.State().Score, tc.points)
			}
			s := g.Stats()
			if s.FirstTry != tc.firstTry || s.SecondTry != tc.second || s.Incorrect != tc.wrong {
				t.Errorf("stats %+v", s)
			}
			if g.Phase() != PhaseReveal {
				t.Errorf("question should be closed, phase %v", g.Phase())
			}
		})
	}
}

func TestAnswerOutsideQuestion(t *testing.T) {
	g := started(t, 2)
	g.Answer(g.Question().Answer)
	if _, err := g.Answer(0); !errors.Is(err, ErrNotAsking) {
		t.Errorf("expected ErrNotAsking, got %v", err)
	}
}

func TestFullRound(t *testing.T) {
	g := started(t, 4)
	questions := config.DefaultTriviaConfig().QuestionsPerRound

	var over bool
	for i := range questions {
		q := g.Question()
		choice := []core.Action{core.ActionChoice1, core.ActionChoice2, core.ActionChoice3}[q.Answer]
		res := g.Step(press(choice))
		if len(res.Events) != 1 || res.Events[0].Kind != core.EventCorrect {
			t.Fatalf("question %d: expected a correct event, got %+v", i, res.Events)
		}
		res = g.Step(press(core.ActionConfirm))
		over = res.State.GameOver
	}

	if !over || g.Phase() != PhaseFinished {
		t.Fatalf("round should finish after %d questions", questions)
	}
	if g.State().Score != 2*questions {
		t.Errorf("perfect round scored %d, expected %d", g.State().Score, 2*questions)
	}

	g.Step(press(core.ActionRestart))
	if g.Phase() != PhaseAsking || g.State().Score != 0 || g.Stats().Played != 2 {
		t.Error("R should start a new round")
	}
}

func TestCursorAnswer(t *testing.T) {
	g := started(t, 5)
	q := g.Question()
	for range q.Answer {
		g.Step(press(core.ActionDown))
	}
	g.Step(press(core.ActionConfirm))
	if g.Stats().FirstTry != 1 {
		t.Error("Enter should answer the highlighted choice")
	}
}

func TestValidateRejectsBadBank(t *testing.T) {
	cfg := config.DefaultTriviaConfig()
	cfg.Countries = cfg.Countries[:2]
	if validate(cfg) == nil {
		t.Error("bank smaller than the choice count should be rejected")
	}

	cfg = config.DefaultTriviaConfig()
	cfg.Countries = append(cfg.Countries, cfg.Countries[0])
	if validate(cfg) == nil {
		t.Error("duplicate country should be rejected")
	}

	if err := validate(config.DefaultTriviaConfig()); err != nil {
		t.Errorf("default bank rejected: %v", err)
	}
}

func TestRenderQuestion(t *testing.T) {
	g := started(t, 6)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Question 1 of") {
		t.Errorf("missing question header:\n%s", out)
	}
	for _, c := range g.Question().Choices {
		if !strings.Contains(out, c) {
			t.Errorf("missing choice %q", c)
		}
	}
}
