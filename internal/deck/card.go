package deck

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Card is a single vapor-pressure reading. Value drives every comparison;
// Text keeps the token as it appeared in the data file for display.
type Card struct {
	Value float64
	Text  string
}

// NewCard creates a card from a numeric value
func NewCard(v float64) Card {
	return Card{Value: v, Text: strconv.FormatFloat(v, 'g', -1, 64)}
}

// ParseCard parses a finite numeric token into a card
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Card{}, err
	}
	// NaN and infinities have no place in an ordered hand
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Card{}, fmt.Errorf("non-finite value %q", s)
	}
	return Card{Value: v, Text: s}, nil
}

// MustParseCards parses each token, panicking on the first invalid one.
// Intended for tests and fixtures.
func MustParseCards(tokens ...string) []Card {
	cards := make([]Card, 0, len(tokens))
	for _, t := range tokens {
		c, err := ParseCard(t)
		if err != nil {
			panic(fmt.Sprintf("deck: invalid card %q: %v", t, err))
		}
		cards = append(cards, c)
	}
	return cards
}

// Cards builds cards from numeric values
func Cards(values ...float64) []Card {
	cards := make([]Card, len(values))
	for i, v := range values {
		cards[i] = NewCard(v)
	}
	return cards
}

// String returns the card as it was read
func (c Card) String() string {
	if c.Text != "" {
		return c.Text
	}
	return strconv.FormatFloat(c.Value, 'g', -1, 64)
}

// Less reports whether c sorts before o
func (c Card) Less(o Card) bool {
	return c.Value < o.Value
}

// Equal compares by value only, so "1.0" and "1" are the same card
func (c Card) Equal(o Card) bool {
	return c.Value == o.Value
}
