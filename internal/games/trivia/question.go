package trivia

import (
	"fmt"
	"math/rand"

	"github.com/Conner685/Comp2522TermProject/internal/config"
)

// Kind is the type of question asked.
type Kind int

const (
	CapitalToCountry Kind = iota
	CountryToCapital
	FactToCountry
	kindCount
)

// Question is one multiple-choice prompt.
type Question struct {
	Kind    Kind
	Prompt  string
	Subject string // Capital, country or fact the question is about
	Choices []string
	Answer  int // Index into Choices
}

// Correct returns the text of the right choice.
func (q Question) Correct() string {
	return q.Choices[q.Answer]
}

// NewQuestion builds a question of the given kind from distinct random
// countries. The correct country lands at a random index.
// The bank must hold at least n countries.
func NewQuestion(rng *rand.Rand, bank []config.Country, kind Kind, n int) Question {
	if n < 1 || len(bank) < n {
		panic(fmt.Sprintf("trivia: need %d countries, bank has %d", n, len(bank)))
	}

	picked := rng.Perm(len(bank))[:n]
	answer := rng.Intn(n)
	correct := bank[picked[0]]
	picked[0], picked[answer] = picked[answer], picked[0]

	q := Question{Kind: kind, Answer: answer, Choices: make([]string, n)}
	for i, idx := range picked {
		if kind == CountryToCapital {
			q.Choices[i] = bank[idx].Capital
		} else {
			q.Choices[i] = bank[idx].Name
		}
	}

	switch kind {
	case CapitalToCountry:
		q.Subject = correct.Capital
		q.Prompt = fmt.Sprintf("Which country has the capital city %s?", correct.Capital)
	case CountryToCapital:
		q.Subject = correct.Name
		q.Prompt = fmt.Sprintf("What is the capital city of %s?", correct.Name)
	case FactToCountry:
		fact := "Its capital is " + correct.Capital + "."
		if len(correct.Facts) > 0 {
			fact = correct.Facts[rng.Intn(len(correct.Facts))]
		}
		q.Subject = fact
		q.Prompt = "Which country does this fact describe?"
	default:
		panic(fmt.Sprintf("trivia: unknown question kind %d", int(kind)))
	}
	return q
}
