package stats_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/flashcards/internal/stats"
)

func entries(t *stats.Tracker) [][2]interface{} {
	var out [][2]interface{}
	for term, count := range t.Entries() {
		out = append(out, [2]interface{}{term, count})
	}
	return out
}

var _ = Describe("Tracker", func() {
	var tracker *stats.Tracker

	BeforeEach(func() {
		tracker = stats.NewTracker()
	})

	It("should report zero for unknown terms", func() {
		Expect(tracker.Get("nope")).To(Equal(0))
		Expect(tracker.Has("nope")).To(BeFalse())
	})

	It("should create the entry at one and then increment", func() {
		tracker.Increment("a")
		Expect(tracker.Get("a")).To(Equal(1))

		tracker.Increment("a")
		tracker.Increment("a")
		Expect(tracker.Get("a")).To(Equal(3))
	})

	It("should never decrease a count on increment", func() {
		previous := 0
		for i := 0; i < 20; i++ {
			tracker.Increment("a")
			Expect(tracker.Get("a")).To(BeNumerically(">", previous))
			previous = tracker.Get("a")
		}
	})

	It("should yield entries in first-recorded order", func() {
		tracker.Increment("b")
		tracker.Set("a", 0)
		tracker.Increment("c")
		tracker.Increment("b")

		Expect(entries(tracker)).To(Equal([][2]interface{}{
			{"b", 2}, {"a", 0}, {"c", 1},
		}))
	})

	It("should allow an explicit zero entry", func() {
		tracker.Set("a", 0)
		Expect(tracker.Has("a")).To(BeTrue())
		Expect(tracker.Len()).To(Equal(1))
	})

	It("should overwrite on set without moving the entry", func() {
		tracker.Increment("a")
		tracker.Increment("b")
		tracker.Set("a", 7)

		Expect(entries(tracker)).To(Equal([][2]interface{}{{"a", 7}, {"b", 1}}))
	})

	It("should empty the tracker on reset", func() {
		tracker.Increment("a")
		tracker.Set("b", 4)
		tracker.Reset()

		Expect(tracker.Len()).To(BeZero())
		Expect(tracker.Get("a")).To(BeZero())
		Expect(entries(tracker)).To(BeEmpty())
	})

	It("should delete a single entry", func() {
		tracker.Increment("a")
		tracker.Increment("b")
		tracker.Delete("a")
		tracker.Delete("missing")

		Expect(entries(tracker)).To(Equal([][2]interface{}{{"b", 1}}))
	})
})
