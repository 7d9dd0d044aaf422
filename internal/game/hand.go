package game

import (
	"fmt"
	"strings"

	"github.com/lox/staysaturated/internal/deck"
)

// DefaultHandSize is the number of cards dealt to each participant
const DefaultHandSize = 5

// Hand is an ordered set of cards with no repeated values
type Hand []deck.Card

// Contains reports whether a card of the same value is already in the hand
func (h Hand) Contains(c deck.Card) bool {
	for _, held := range h {
		if held.Equal(c) {
			return true
		}
	}
	return false
}

// IsSorted reports whether the hand is in ascending order
func (h Hand) IsSorted() bool {
	for i := 1; i < len(h); i++ {
		if h[i].Less(h[i-1]) {
			return false
		}
	}
	return true
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// SortHand orders the hand ascending in place and returns it. Bubble
// exchange with an early exit; hands are five cards.
func SortHand(h Hand) Hand {
	n := len(h)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if h[j+1].Less(h[j]) {
				h[j], h[j+1] = h[j+1], h[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return h
}

// GenerateHands deals two hands of handSize cards. Each hand is seeded with
// one liquid and one vapor card, then filled from combined. Cards whose value
// is already in the hand being filled are discarded. The second hand continues
// from wherever the first stopped consuming combined.
func GenerateHands(liquid, vapor, combined *deck.DrawQueue, handSize int) (Hand, Hand, error) {
	if handSize < 2 {
		return nil, nil, fmt.Errorf("hand size must be at least 2, got %d", handSize)
	}

	hand1 := make(Hand, 0, handSize)
	hand2 := make(Hand, 0, handSize)

	var err error
	if hand1, err = seedHand(hand1, liquid, vapor, "first hand"); err != nil {
		return nil, nil, err
	}
	if hand2, err = seedHand(hand2, liquid, vapor, "second hand"); err != nil {
		return nil, nil, err
	}
	if hand1, err = fillHand(hand1, combined, handSize, "first hand"); err != nil {
		return nil, nil, err
	}
	if hand2, err = fillHand(hand2, combined, handSize, "second hand"); err != nil {
		return nil, nil, err
	}
	return hand1, hand2, nil
}

func seedHand(h Hand, liquid, vapor *deck.DrawQueue, which string) (Hand, error) {
	l, ok := liquid.Dequeue()
	if !ok {
		return nil, &deck.InsufficientDataError{Queue: "liquid", Need: "seeding the " + which}
	}
	v, ok := vapor.Dequeue()
	if !ok {
		return nil, &deck.InsufficientDataError{Queue: "vapor", Need: "seeding the " + which}
	}
	h = append(h, l)
	// A liquid and vapor reading can coincide; the repeat is refilled later
	if !h.Contains(v) {
		h = append(h, v)
	}
	return h, nil
}

func fillHand(h Hand, combined *deck.DrawQueue, handSize int, which string) (Hand, error) {
	for len(h) < handSize {
		c, ok := combined.Dequeue()
		if !ok {
			return nil, &deck.InsufficientDataError{Queue: "combined", Need: "filling the " + which}
		}
		if h.Contains(c) {
			continue
		}
		h = append(h, c)
	}
	return h, nil
}
