package deck

import (
	rand "math/rand/v2"

	"github.com/lox/staysaturated/internal/randutil"
)

// DrawQueue is a single-use FIFO of cards. It is consumed front to back and
// never refilled.
type DrawQueue struct {
	cards []Card
	next  int
}

// NewDrawQueue creates a queue over cards in the given order
func NewDrawQueue(cards []Card) *DrawQueue {
	c := make([]Card, len(cards))
	copy(c, cards)
	return &DrawQueue{cards: c}
}

// Shuffle returns a queue over a uniformly shuffled copy of cards. The input
// slice is not modified. A nil rng falls back to a time-seeded source.
func Shuffle(cards []Card, rng *rand.Rand) *DrawQueue {
	if rng == nil {
		rng = randutil.NewTimeSeeded()
	}
	q := NewDrawQueue(cards)

	// Fisher-Yates
	for i := len(q.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		q.cards[i], q.cards[j] = q.cards[j], q.cards[i]
	}
	return q
}

// Dequeue removes and returns the front card. The second return value is
// false once the queue is exhausted.
func (q *DrawQueue) Dequeue() (Card, bool) {
	if q.next >= len(q.cards) {
		return Card{}, false
	}
	card := q.cards[q.next]
	q.next++
	return card, true
}

// Len returns the number of cards left in the queue
func (q *DrawQueue) Len() int {
	return len(q.cards) - q.next
}

// IsEmpty returns true if every card has been dequeued
func (q *DrawQueue) IsEmpty() bool {
	return q.Len() == 0
}

// Remaining returns a copy of the cards not yet dequeued, front first
func (q *DrawQueue) Remaining() []Card {
	out := make([]Card, q.Len())
	copy(out, q.cards[q.next:])
	return out
}
