package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/staysaturated/internal/deck"
	"github.com/lox/staysaturated/internal/randutil"
)

func testSource() deck.Source {
	return deck.Source{
		Liquid: deck.Cards(0.001000, 0.001002, 0.001004, 0.001008, 0.001012, 0.001017),
		Vapor:  deck.Cards(106.38, 57.76, 32.88, 19.52, 12.03, 7.67),
	}
}

func TestSetupDeterministic(t *testing.T) {
	t.Parallel()

	a, err := Setup(testSource(), randutil.New(7), DefaultHandSize)
	require.NoError(t, err)
	b, err := Setup(testSource(), randutil.New(7), DefaultHandSize)
	require.NoError(t, err)

	assert.Equal(t, handValues(a.User), handValues(b.User))
	assert.Equal(t, handValues(a.Computer), handValues(b.Computer))
	assert.Equal(t, handValues(a.Pool.Remaining()), handValues(b.Pool.Remaining()))
}

func TestSetupHandsAreSortedAndSpanBothPhases(t *testing.T) {
	t.Parallel()

	src := testSource()
	for seed := range int64(25) {
		d, err := Setup(src, randutil.New(seed), DefaultHandSize)
		require.NoError(t, err)

		for _, h := range []Hand{d.User, d.Computer} {
			assert.True(t, h.IsSorted())
			// Every liquid reading is below every vapor reading in this table
			assert.Less(t, h[0].Value, 1.0, "hand %s has no liquid card", h)
			assert.Greater(t, h[len(h)-1].Value, 1.0, "hand %s has no vapor card", h)
		}
		// Each hand takes at least three fills from the twelve-card pool
		assert.LessOrEqual(t, d.Pool.Len(), 6)
	}
}

func TestSetupInsufficientData(t *testing.T) {
	t.Parallel()

	src := deck.Source{Liquid: deck.Cards(1, 2), Vapor: deck.Cards(8, 9)}
	_, err := Setup(src, randutil.New(1), DefaultHandSize)
	assert.ErrorIs(t, err, deck.ErrInsufficientData)
}
