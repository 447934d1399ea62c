package models

import "fmt"

// Card is a single term/definition pair.
type Card struct {
	Term       string
	Definition string
}

func (c Card) String() string {
	return fmt.Sprintf(`("%s":"%s")`, c.Term, c.Definition)
}

// CardRecord is a card together with its mistake count, as persisted on disk.
type CardRecord struct {
	Card
	Mistakes int
}
