package quiz

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kpauljoseph/flashcards/internal/deck"
	"github.com/kpauljoseph/flashcards/internal/stats"
	"github.com/kpauljoseph/flashcards/pkg/logger"
	"github.com/kpauljoseph/flashcards/pkg/models"
)

var ErrInvalidInput = errors.New("invalid number of questions")

// AnswerFunc prompts for the definition of card and returns the user's reply.
type AnswerFunc func(card models.Card) (string, error)

// ReportFunc receives the outcome of each round.
type ReportFunc func(Result)

type Result struct {
	Round  int
	Card   models.Card
	Answer string
	// Correct is set when Answer matches the definition ignoring case.
	Correct bool
	// OtherTerm names the card whose definition was given instead, if any.
	OtherTerm string
}

func (r Result) Message() string {
	switch {
	case r.Correct:
		return "Correct answer"
	case r.OtherTerm != "":
		return fmt.Sprintf(`Wrong answer. The correct one is "%s", you've just written the definition of "%s".`, r.Card.Definition, r.OtherTerm)
	default:
		return fmt.Sprintf(`Wrong answer. The correct one is "%s".`, r.Card.Definition)
	}
}

type Engine struct {
	deck    *deck.Deck
	tracker *stats.Tracker
	logger  *logger.Logger
}

func NewEngine(d *deck.Deck, tracker *stats.Tracker, logger *logger.Logger) *Engine {
	return &Engine{
		deck:    d,
		tracker: tracker,
		logger:  logger,
	}
}

// ParseQuantity reads the "how many times to ask" reply.
func ParseQuantity(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%q: %w", input, ErrInvalidInput)
	}
	return n, nil
}

// Check grades answer against card and records a mistake when it is wrong.
func (e *Engine) Check(card models.Card, answer string) Result {
	result := Result{
		Card:   card,
		Answer: answer,
	}

	if strings.EqualFold(card.Definition, answer) {
		result.Correct = true
		return result
	}

	e.tracker.Increment(card.Term)
	if other, ok := e.deck.TermFor(answer); ok && other != card.Term {
		result.OtherTerm = other
	}
	e.logger.Debug("Mistake on %q, now %d", card.Term, e.tracker.Get(card.Term))
	return result
}

// Run asks quantity rounds, cycling through the deck in order.
func (e *Engine) Run(ctx context.Context, quantity int, ask AnswerFunc, report ReportFunc) error {
	if quantity == 0 {
		return nil
	}
	if e.deck.Count() == 0 {
		return deck.ErrEmptyStore
	}

	e.logger.Debug("Starting quiz: %d rounds over %d cards", quantity, e.deck.Count())

	for round := 1; round <= quantity; round++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		card, err := e.deck.GetByCyclicIndex(round)
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}

		answer, err := ask(card)
		if err != nil {
			return fmt.Errorf("reading answer for round %d: %w", round, err)
		}

		result := e.Check(card, answer)
		result.Round = round
		e.logger.Trace("Round %d: %q -> correct=%v", round, card.Term, result.Correct)
		report(result)
	}

	return nil
}
