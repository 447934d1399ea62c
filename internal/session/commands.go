package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kpauljoseph/flashcards/internal/deck"
	"github.com/kpauljoseph/flashcards/internal/quiz"
	"github.com/kpauljoseph/flashcards/internal/stats"
	"github.com/kpauljoseph/flashcards/internal/storage"
	"github.com/kpauljoseph/flashcards/pkg/models"
)

func (s *Session) cmdAdd(ctx context.Context) error {
	term, err := s.Prompt(ctx, "The card:")
	if err != nil {
		return err
	}
	if s.deck.HasTerm(term) {
		s.Println(fmt.Sprintf(`The card "%s" already exists.`, term))
		return nil
	}

	definition, err := s.Prompt(ctx, "The definition of the card:")
	if err != nil {
		return err
	}

	err = s.deck.Add(term, definition)
	switch {
	case errors.Is(err, deck.ErrDuplicateDefinition):
		s.Println(fmt.Sprintf(`The definition "%s" already exists.`, definition))
	case errors.Is(err, deck.ErrDuplicateTerm):
		s.Println(fmt.Sprintf(`The card "%s" already exists.`, term))
	case err != nil:
		return err
	default:
		card := models.Card{Term: term, Definition: definition}
		s.Println(fmt.Sprintf("The pair %s has been added.", card))
	}
	return nil
}

func (s *Session) cmdRemove(ctx context.Context) error {
	term, err := s.Prompt(ctx, "The card:")
	if err != nil {
		return err
	}

	if err := s.deck.Remove(term); err != nil {
		if !errors.Is(err, deck.ErrNotFound) {
			return err
		}
		s.Println(fmt.Sprintf(`Can't remove "%s": there is no such card.`, term))
		return nil
	}

	s.tracker.Delete(term)
	s.Println("The card has been removed.")
	return nil
}

func (s *Session) cmdAsk(ctx context.Context) error {
	input, err := s.Prompt(ctx, "How many times to ask?")
	if err != nil {
		return err
	}

	quantity, err := quiz.ParseQuantity(input)
	if err != nil {
		s.logger.Debug("Bad quiz length: %v", err)
		s.Println("Please enter a non-negative number.")
		return nil
	}

	ask := func(card models.Card) (string, error) {
		return s.Prompt(ctx, fmt.Sprintf(`Print the definition of "%s":`, card.Term))
	}
	report := func(r quiz.Result) {
		s.Println(r.Message())
	}

	err = s.engine.Run(ctx, quantity, ask, report)
	if errors.Is(err, deck.ErrEmptyStore) {
		s.Println("There are no cards to ask.")
		return nil
	}
	return err
}

func (s *Session) cmdImport(ctx context.Context) error {
	path, err := s.Prompt(ctx, "File name:")
	if err != nil {
		return err
	}
	s.ImportFile(path)
	return nil
}

func (s *Session) cmdExport(ctx context.Context) error {
	path, err := s.Prompt(ctx, "File name:")
	if err != nil {
		return err
	}
	s.ExportFile(path)
	return nil
}

// ImportFile merges the cards stored at path and reports the outcome.
func (s *Session) ImportFile(path string) {
	n, err := storage.Import(path, s.deck, s.tracker)
	switch {
	case errors.Is(err, storage.ErrFileNotFound):
		s.Println("File not found.")
	case err != nil:
		s.logger.Error("Import failed: %v", err)
		s.Println(fmt.Sprintf("Could not load cards: %v", err))
	default:
		s.logger.Debug("Imported %d cards from %s", n, path)
		s.Println(fmt.Sprintf("%d cards have been loaded.", n))
	}
}

// ExportFile writes every card to path and reports the outcome.
func (s *Session) ExportFile(path string) {
	n, err := storage.Export(path, s.deck, s.tracker)
	if err != nil {
		s.logger.Error("Export failed: %v", err)
		s.Println(fmt.Sprintf("Could not save cards: %v", err))
		return
	}
	s.logger.Debug("Exported %d cards to %s", n, path)
	s.Println(fmt.Sprintf("%d cards have been saved.", n))
}

func (s *Session) cmdLog(ctx context.Context) error {
	path, err := s.Prompt(ctx, "File name:")
	if err != nil {
		return err
	}
	if path == "" {
		path = s.defaultLogFile
	}

	var b strings.Builder
	for _, line := range s.transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		s.logger.Error("Saving log failed: %v", err)
		s.Println(fmt.Sprintf("Could not save the log: %v", err))
		return nil
	}

	s.Println("The log has been saved.")
	fmt.Fprintf(s.out, "[%s]\n", strings.Join(s.transcript, ", "))
	return nil
}

func (s *Session) cmdHardestCard(ctx context.Context) error {
	hardest, err := stats.HardestCards(s.tracker)
	if errors.Is(err, stats.ErrNoData) {
		s.Println("There are no cards with errors.")
		return nil
	}
	if err != nil {
		return err
	}
	s.Println(hardest.Message())
	return nil
}

func (s *Session) cmdResetStats(ctx context.Context) error {
	s.tracker.Reset()
	s.Println("Card statistics has been reset.")
	return nil
}
