package stats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoData means the tracker has no entries to rank.
var ErrNoData = errors.New("no cards with errors")

type Hardest struct {
	Terms    []string
	Mistakes int
}

// HardestCards returns every term sharing the highest mistake count, in
// tracker order. Entries imported with zero mistakes still rank, so a
// tracker of zeros reports all of them.
func HardestCards(t *Tracker) (Hardest, error) {
	var (
		result Hardest
		seen   bool
	)
	for term, count := range t.Entries() {
		switch {
		case !seen || count > result.Mistakes:
			result.Mistakes = count
			result.Terms = []string{term}
		case count == result.Mistakes:
			result.Terms = append(result.Terms, term)
		}
		seen = true
	}

	if !seen {
		return Hardest{}, ErrNoData
	}
	return result, nil
}

func (h Hardest) Message() string {
	quoted := make([]string, len(h.Terms))
	for i, term := range h.Terms {
		quoted[i] = `"` + term + `"`
	}

	errorsWord := "error"
	if len(h.Terms) > 1 {
		errorsWord = "errors"
	}

	if len(h.Terms) == 1 {
		return fmt.Sprintf("The hardest card is %s. You have %d %s answering it.", quoted[0], h.Mistakes, errorsWord)
	}
	return fmt.Sprintf("The hardest cards are %s. You have %d %s answering it.", strings.Join(quoted, ", "), h.Mistakes, errorsWord)
}
