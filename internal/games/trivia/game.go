// Package trivia implements the geography quiz ("Word Game").
// Each round asks a fixed number of multiple-choice questions about
// countries, capitals and facts, with two attempts per question.
package trivia

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/Conner685/Comp2522TermProject/internal/config"
	"github.com/Conner685/Comp2522TermProject/internal/core"
	"github.com/Conner685/Comp2522TermProject/internal/registry"
)

// attemptsPerQuestion is how many guesses a question allows.
const attemptsPerQuestion = 2

// Phase is the round lifecycle.
type Phase int

const (
	PhaseReady    Phase = iota
	PhaseAsking         // Waiting for a guess
	PhaseReveal         // Showing the outcome of a question
	PhaseFinished       // Round over, score shown
)

// Outcome is the result of a single guess.
type Outcome int

const (
	OutcomeFirstTry Outcome = iota
	OutcomeSecondTry
	OutcomeRetry // Wrong, one attempt left
	OutcomeWrong // Wrong on the last attempt
)

// Stats accumulate across rounds for one game instance.
type Stats struct {
	Played    int
	FirstTry  int
	SecondTry int
	Incorrect int
}

// ErrNotAsking is returned when a guess arrives while no question is open.
var ErrNotAsking = errors.New("trivia: no question awaiting an answer")

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the trivia quiz.
type Game struct {
	cfg config.TriviaConfig
	rng *rand.Rand

	phase    Phase
	question Question
	asked    int // Questions started this round
	attempts int
	wrong    map[int]bool // Choices already guessed wrong
	cursor   int
	points   int
	stats    Stats
	message  string
}

// New creates a new trivia game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "trivia"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Word Game"
}

// Reset loads the bank and returns to the welcome screen. Stats are cleared.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTrivia(configPath)
	if err == nil {
		err = validate(cfg)
	}
	if err != nil {
		log.Warn("using default trivia bank", "err", err)
		cfg = config.DefaultTriviaConfig()
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness

	g.phase = PhaseReady
	g.asked = 0
	g.points = 0
	g.stats = Stats{}
	g.message = ""
}

// validate checks that the bank can produce questions.
func validate(cfg config.TriviaConfig) error {
	if cfg.QuestionsPerRound < 1 || cfg.Choices < 2 || cfg.Choices > 3 {
		return fmt.Errorf("trivia: bad round shape: %d questions, %d choices", cfg.QuestionsPerRound, cfg.Choices)
	}
	if len(cfg.Countries) < cfg.Choices {
		return fmt.Errorf("trivia: bank has %d countries, need %d", len(cfg.Countries), cfg.Choices)
	}
	names := make(map[string]bool, len(cfg.Countries))
	for _, c := range cfg.Countries {
		if c.Name == "" || c.Capital == "" {
			return fmt.Errorf("trivia: incomplete country entry %+v", c)
		}
		if names[c.Name] {
			return fmt.Errorf("trivia: duplicate country %q", c.Name)
		}
		names[c.Name] = true
	}
	return nil
}

// newRound clears the score and asks the first question.
func (g *Game) newRound() {
	g.stats.Played++
	g.asked = 0
	g.points = 0
	g.nextQuestion()
}

// nextQuestion draws a question of a random kind.
func (g *Game) nextQuestion() {
	kind := Kind(g.rng.Intn(int(kindCount)))
	g.question = NewQuestion(g.rng, g.cfg.Countries, kind, g.cfg.Choices)
	g.asked++
	g.attempts = 0
	g.wrong = make(map[int]bool)
	g.cursor = 0
	g.message = ""
	g.phase = PhaseAsking
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.phase {
	case PhaseReady:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.newRound()
		}

	case PhaseAsking:
		if in.Has(core.ActionBack) {
			g.phase = PhaseReady
			break
		}
		choice := -1
		switch {
		case in.Has(core.ActionChoice1):
			choice = 0
		case in.Has(core.ActionChoice2):
			choice = 1
		case in.Has(core.ActionChoice3):
			choice = 2
		case in.Has(core.ActionConfirm):
			choice = g.cursor
		case in.Has(core.ActionUp):
			g.cursor = (g.cursor - 1 + len(g.question.Choices)) % len(g.question.Choices)
		case in.Has(core.ActionDown):
			g.cursor = (g.cursor + 1) % len(g.question.Choices)
		}
		if choice >= 0 && choice < len(g.question.Choices) {
			outcome, _ := g.Answer(choice)
			events = append(events, outcomeEvent(outcome))
		}

	case PhaseReveal:
		switch {
		case in.Has(core.ActionBack):
			g.phase = PhaseReady
		case in.Has(core.ActionConfirm):
			if g.asked >= g.cfg.QuestionsPerRound {
				g.phase = PhaseFinished
				events = append(events, core.Event{Kind: core.EventGameOver})
			} else {
				g.nextQuestion()
			}
		}

	case PhaseFinished:
		switch {
		case in.Has(core.ActionConfirm), in.Has(core.ActionRestart):
			g.newRound()
		case in.Has(core.ActionBack):
			g.phase = PhaseReady
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

func outcomeEvent(o Outcome) core.Event {
	if o == OutcomeFirstTry || o == OutcomeSecondTry {
		return core.Event{Kind: core.EventCorrect}
	}
	return core.Event{Kind: core.EventWrong}
}

// Answer submits a guess for the open question.
func (g *Game) Answer(choice int) (Outcome, error) {
	if g.phase != PhaseAsking {
		return 0, ErrNotAsking
	}
	if choice < 0 || choice >= len(g.question.Choices) {
		return 0, fmt.Errorf("trivia: choice %d out of range", choice+1)
	}

	if choice == g.question.Answer {
		g.phase = PhaseReveal
		if g.attempts == 0 {
			g.points += g.cfg.FirstTryPoints
			g.stats.FirstTry++
			g.message = "Correct on the first try!"
			return OutcomeFirstTry, nil
		}
		g.points += g.cfg.SecondTryPoints
		g.stats.SecondTry++
		g.message = "Correct on the second try!"
		return OutcomeSecondTry, nil
	}

	g.wrong[choice] = true
	g.attempts++
	if g.attempts < attemptsPerQuestion {
		g.message = "Incorrect! Try again!"
		return OutcomeRetry, nil
	}

	g.stats.Incorrect++
	g.phase = PhaseReveal
	g.message = "Incorrect! The answer was " + g.question.Correct()
	return OutcomeWrong, nil
}

// Phase returns the round phase.
func (g *Game) Phase() Phase { return g.phase }

// Question returns the current question.
func (g *Game) Question() Question { return g.question }

// Stats returns the accumulated statistics.
func (g *Game) Stats() Stats { return g.stats }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.points,
		GameOver: g.phase == PhaseFinished,
		Idle:     g.phase == PhaseReady,
	}
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          "trivia",
		Title:       "Word Game",
		Key:         'w',
		Description: "Geography trivia: capitals, countries and facts",
	}, func() registry.Game {
		return New()
	})
}
