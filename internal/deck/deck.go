package deck

import (
	"errors"
	"fmt"
	"iter"

	"github.com/kpauljoseph/flashcards/pkg/models"
)

var (
	ErrDuplicateTerm       = errors.New("duplicate term")
	ErrDuplicateDefinition = errors.New("duplicate definition")
	ErrNotFound            = errors.New("card not found")
	ErrEmptyStore          = errors.New("deck is empty")
)

// Deck is an insertion-ordered set of cards. Terms are unique, and Add
// keeps definitions unique as well.
type Deck struct {
	cards []models.Card
	index map[string]int
}

func New() *Deck {
	return &Deck{
		index: make(map[string]int),
	}
}

func (d *Deck) Add(term, definition string) error {
	if d.HasTerm(term) {
		return fmt.Errorf("card %q: %w", term, ErrDuplicateTerm)
	}
	if _, ok := d.TermFor(definition); ok {
		return fmt.Errorf("definition %q: %w", definition, ErrDuplicateDefinition)
	}
	d.append(models.Card{Term: term, Definition: definition})
	return nil
}

// Put inserts or overwrites the card for term. An existing card keeps
// its position. Definition uniqueness is not enforced.
func (d *Deck) Put(term, definition string) {
	if i, ok := d.index[term]; ok {
		d.cards[i].Definition = definition
		return
	}
	d.append(models.Card{Term: term, Definition: definition})
}

func (d *Deck) append(card models.Card) {
	d.index[card.Term] = len(d.cards)
	d.cards = append(d.cards, card)
}

func (d *Deck) Remove(term string) error {
	i, ok := d.index[term]
	if !ok {
		return fmt.Errorf("card %q: %w", term, ErrNotFound)
	}

	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	delete(d.index, term)
	for j := i; j < len(d.cards); j++ {
		d.index[d.cards[j].Term] = j
	}
	return nil
}

// GetByCyclicIndex maps a 1-based round number onto the deck, wrapping
// around when i exceeds the number of cards.
func (d *Deck) GetByCyclicIndex(i int) (models.Card, error) {
	if len(d.cards) == 0 {
		return models.Card{}, ErrEmptyStore
	}
	if i < 1 {
		return models.Card{}, fmt.Errorf("cyclic index must be positive, got %d", i)
	}
	return d.cards[(i-1)%len(d.cards)], nil
}

func (d *Deck) Get(term string) (models.Card, bool) {
	i, ok := d.index[term]
	if !ok {
		return models.Card{}, false
	}
	return d.cards[i], true
}

func (d *Deck) HasTerm(term string) bool {
	_, ok := d.index[term]
	return ok
}

// TermFor returns the first term, in deck order, whose definition is
// exactly definition.
func (d *Deck) TermFor(definition string) (string, bool) {
	for _, c := range d.cards {
		if c.Definition == definition {
			return c.Term, true
		}
	}
	return "", false
}

func (d *Deck) Count() int {
	return len(d.cards)
}

// All yields cards in insertion order.
func (d *Deck) All() iter.Seq[models.Card] {
	return func(yield func(models.Card) bool) {
		for _, c := range d.cards {
			if !yield(c) {
				return
			}
		}
	}
}
