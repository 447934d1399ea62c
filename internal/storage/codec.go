// Package storage reads and writes decks in the flat text format: three
// lines per card (term, definition, mistake count) with nothing between
// cards. A trailing incomplete group is ignored on read.
//
// Writes are not atomic. A failure part way through leaves a partial file.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/kpauljoseph/flashcards/internal/deck"
	"github.com/kpauljoseph/flashcards/internal/stats"
	"github.com/kpauljoseph/flashcards/pkg/models"
)

const linesPerCard = 3

var (
	ErrFileNotFound = errors.New("file not found")
	ErrFormat       = errors.New("malformed card file")
)

// Encode writes records in order.
func Encode(w io.Writer, records []models.CardRecord) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, "%s\n%s\n%d\n", r.Term, r.Definition, r.Mistakes); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads complete groups from r. Nothing is returned if any count
// line fails to parse.
func Decode(r io.Reader) ([]models.CardRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}

	records := make([]models.CardRecord, 0, len(lines)/linesPerCard)
	for i := 0; i+linesPerCard <= len(lines); i += linesPerCard {
		count, err := strconv.Atoi(strings.TrimSpace(lines[i+2]))
		if err != nil || count < 0 {
			return nil, fmt.Errorf("line %d: bad mistake count %q: %w", i+3, lines[i+2], ErrFormat)
		}
		records = append(records, models.CardRecord{
			Card:     models.Card{Term: lines[i], Definition: lines[i+1]},
			Mistakes: count,
		})
	}
	return records, nil
}

// Snapshot pairs every card with its mistake count, defaulting to zero.
func Snapshot(d *deck.Deck, tracker *stats.Tracker) []models.CardRecord {
	records := make([]models.CardRecord, 0, d.Count())
	for card := range d.All() {
		records = append(records, models.CardRecord{
			Card:     card,
			Mistakes: tracker.Get(card.Term),
		})
	}
	return records
}

// Merge overwrites deck and tracker entries by term.
func Merge(records []models.CardRecord, d *deck.Deck, tracker *stats.Tracker) {
	for _, r := range records {
		d.Put(r.Term, r.Definition)
		tracker.Set(r.Term, r.Mistakes)
	}
}

// Export overwrites path with every card in d and returns how many were written.
func Export(path string, d *deck.Deck, tracker *stats.Tracker) (int, error) {
	records := Snapshot(d, tracker)

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Encode(f, records); err != nil {
		f.Close()
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return len(records), nil
}

// Import merges the cards stored at path into d and tracker. It returns
// ErrFileNotFound when path is not a regular file.
func Import(path string, d *deck.Deck, tracker *stats.Tracker) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file: %w", path, ErrFileNotFound)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	Merge(records, d, tracker)
	return len(records), nil
}
