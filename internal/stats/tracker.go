package stats

import "iter"

// Tracker counts wrong answers per term. Entries are kept in the order
// they were first recorded so that reports are deterministic.
type Tracker struct {
	terms  []string
	counts map[string]int
}

func NewTracker() *Tracker {
	return &Tracker{
		counts: make(map[string]int),
	}
}

func (t *Tracker) Increment(term string) {
	if _, ok := t.counts[term]; !ok {
		t.terms = append(t.terms, term)
	}
	t.counts[term]++
}

// Set records count for term, creating the entry if needed. Used by import.
func (t *Tracker) Set(term string, count int) {
	if count < 0 {
		count = 0
	}
	if _, ok := t.counts[term]; !ok {
		t.terms = append(t.terms, term)
	}
	t.counts[term] = count
}

func (t *Tracker) Get(term string) int {
	return t.counts[term]
}

func (t *Tracker) Has(term string) bool {
	_, ok := t.counts[term]
	return ok
}

func (t *Tracker) Delete(term string) {
	if _, ok := t.counts[term]; !ok {
		return
	}
	delete(t.counts, term)
	for i, existing := range t.terms {
		if existing == term {
			t.terms = append(t.terms[:i], t.terms[i+1:]...)
			break
		}
	}
}

func (t *Tracker) Reset() {
	t.terms = nil
	t.counts = make(map[string]int)
}

func (t *Tracker) Len() int {
	return len(t.terms)
}

// Entries yields (term, count) pairs in first-recorded order.
func (t *Tracker) Entries() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, term := range t.terms {
			if !yield(term, t.counts[term]) {
				return
			}
		}
	}
}
