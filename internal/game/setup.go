package game

import (
	rand "math/rand/v2"

	"github.com/lox/staysaturated/internal/deck"
)

// Deal is the starting position of a session
type Deal struct {
	User     Hand
	Computer Hand
	Pool     *deck.DrawQueue
}

// Setup shuffles the source and deals both hands. The combined pool is
// shuffled first, then the liquid and vapor columns, all from rng. Hands are
// returned sorted; the pool holds whatever the deal did not consume.
func Setup(src deck.Source, rng *rand.Rand, handSize int) (Deal, error) {
	pool := deck.Shuffle(src.Combined(), rng)
	liquid := deck.Shuffle(src.Liquid, rng)
	vapor := deck.Shuffle(src.Vapor, rng)

	user, computer, err := GenerateHands(liquid, vapor, pool, handSize)
	if err != nil {
		return Deal{}, err
	}
	return Deal{
		User:     SortHand(user),
		Computer: SortHand(computer),
		Pool:     pool,
	}, nil
}
