package game

import (
	"fmt"

	"github.com/lox/staysaturated/internal/deck"
)

// Dome holds the five boundaries read from a sorted hand
type Dome struct {
	VF            deck.Card
	TwoPhaseLow   deck.Card
	CriticalPoint deck.Card
	TwoPhaseHigh  deck.Card
	VG            deck.Card
}

// MinDomeCards is the smallest hand that describes a dome
const MinDomeCards = 5

// NewDome derives the dome boundaries from a sorted hand. The outer cards are
// vf and vg, their neighbours bound the two-phase region and the middle card
// is the critical point.
func NewDome(h Hand) (Dome, error) {
	n := len(h)
	if n < MinDomeCards {
		return Dome{}, fmt.Errorf("dome needs at least %d cards, got %d", MinDomeCards, n)
	}
	if !h.IsSorted() {
		return Dome{}, fmt.Errorf("hand %s is not sorted", h)
	}
	return Dome{
		VF:            h[0],
		TwoPhaseLow:   h[1],
		CriticalPoint: h[n/2],
		TwoPhaseHigh:  h[n-2],
		VG:            h[n-1],
	}, nil
}

// InTwoPhase reports whether c lies strictly inside the two-phase region
func (d Dome) InTwoPhase(c deck.Card) bool {
	return d.TwoPhaseLow.Value < c.Value && c.Value < d.TwoPhaseHigh.Value
}

// InSinglePhaseBand reports whether c lies strictly between vf and the
// two-phase low, or strictly between the two-phase high and vg
func (d Dome) InSinglePhaseBand(c deck.Card) bool {
	lower := d.VF.Value < c.Value && c.Value < d.TwoPhaseLow.Value
	upper := d.TwoPhaseHigh.Value < c.Value && c.Value < d.VG.Value
	return lower || upper
}

// Contains reports whether c lies within the closed range [vf, vg]
func (d Dome) Contains(c deck.Card) bool {
	return c.Value >= d.VF.Value && c.Value <= d.VG.Value
}

// Score returns the points c earns against this dome
func (d Dome) Score(c deck.Card) int {
	points := 0
	if d.InTwoPhase(c) {
		points += TwoPhasePoints
	}
	if d.InSinglePhaseBand(c) {
		points += SinglePhasePoints
	}
	return points
}

// Points awarded per drawn card
const (
	TwoPhasePoints    = 10
	SinglePhasePoints = 5
)
