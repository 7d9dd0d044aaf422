package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/staysaturated/internal/deck"
	"github.com/lox/staysaturated/internal/randutil"
)

func handValues(h Hand) []float64 {
	out := make([]float64, len(h))
	for i, c := range h {
		out[i] = c.Value
	}
	return out
}

func TestSortHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{name: "reversed", in: []float64{9, 7, 5, 3, 1}, want: []float64{1, 3, 5, 7, 9}},
		{name: "mixed", in: []float64{0.5, 12, 3, 100, 0.001}, want: []float64{0.001, 0.5, 3, 12, 100}},
		{name: "numeric not lexicographic", in: []float64{10, 9, 100, 2, 20}, want: []float64{2, 9, 10, 20, 100}},
		{name: "single", in: []float64{4}, want: []float64{4}},
		{name: "empty", in: []float64{}, want: []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortHand(HandOf(tt.in...))
			assert.Equal(t, tt.want, handValues(got))
			assert.True(t, got.IsSorted())
		})
	}
}

func TestSortHandIdempotent(t *testing.T) {
	t.Parallel()

	sorted := HandOf(1, 3, 5, 7, 9)
	once := SortHand(append(Hand(nil), sorted...))
	twice := SortHand(append(Hand(nil), once...))
	assert.Equal(t, handValues(sorted), handValues(once))
	assert.Equal(t, handValues(once), handValues(twice))
}

func TestSortHandStable(t *testing.T) {
	t.Parallel()

	h := Hand(deck.MustParseCards("2", "1.0", "1"))
	SortHand(h)
	assert.Equal(t, "1.0", h[0].String())
	assert.Equal(t, "1", h[1].String())
}

func TestGenerateHands(t *testing.T) {
	t.Parallel()

	liquid := deck.NewDrawQueue(deck.Cards(1, 2))
	vapor := deck.NewDrawQueue(deck.Cards(10, 20))
	combined := deck.NewDrawQueue(deck.Cards(3, 1, 4, 5, 4, 6, 7, 8))

	hand1, hand2, err := GenerateHands(liquid, vapor, combined, 5)
	require.NoError(t, err)

	// hand1 skips the repeated 1; hand2 starts at the card after 5
	assert.Equal(t, []float64{1, 10, 3, 4, 5}, handValues(hand1))
	assert.Equal(t, []float64{2, 20, 4, 6, 7}, handValues(hand2))
	assert.Equal(t, 1, combined.Len())
}

func TestGenerateHandsDiscardsCardsAgainstOwnHandOnly(t *testing.T) {
	t.Parallel()

	liquid := deck.NewDrawQueue(deck.Cards(1, 2))
	vapor := deck.NewDrawQueue(deck.Cards(9, 8))
	// 9 is a repeat for hand1 and is discarded; hand2 never sees it
	combined := deck.NewDrawQueue(deck.Cards(9, 3, 4, 5, 1, 6, 7))

	hand1, hand2, err := GenerateHands(liquid, vapor, combined, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 9, 3, 4, 5}, handValues(hand1))
	assert.Equal(t, []float64{2, 8, 1, 6, 7}, handValues(hand2))
}

func TestGenerateHandsInsufficientData(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		liquid    []float64
		vapor     []float64
		combined  []float64
		wantQueue string
	}{
		{name: "liquid", liquid: []float64{1}, vapor: []float64{8, 9}, combined: []float64{2, 3, 4, 5, 6, 7}, wantQueue: "liquid"},
		{name: "vapor", liquid: []float64{1, 2}, vapor: []float64{9}, combined: []float64{3, 4, 5, 6, 7, 8}, wantQueue: "vapor"},
		{name: "combined during first hand", liquid: []float64{1, 2}, vapor: []float64{8, 9}, combined: []float64{3, 4}, wantQueue: "combined"},
		{name: "combined during second hand", liquid: []float64{1, 2}, vapor: []float64{8, 9}, combined: []float64{3, 4, 5, 6}, wantQueue: "combined"},
		{name: "combined only repeats", liquid: []float64{1, 2}, vapor: []float64{8, 9}, combined: []float64{1, 1, 8, 8}, wantQueue: "combined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := GenerateHands(
				deck.NewDrawQueue(deck.Cards(tt.liquid...)),
				deck.NewDrawQueue(deck.Cards(tt.vapor...)),
				deck.NewDrawQueue(deck.Cards(tt.combined...)),
				5,
			)
			require.ErrorIs(t, err, deck.ErrInsufficientData)
			var ide *deck.InsufficientDataError
			require.ErrorAs(t, err, &ide)
			assert.Equal(t, tt.wantQueue, ide.Queue)
		})
	}
}

func TestGenerateHandsEqualSeeds(t *testing.T) {
	t.Parallel()

	liquid := deck.NewDrawQueue(deck.Cards(5, 1))
	vapor := deck.NewDrawQueue(deck.Cards(5, 9))
	combined := deck.NewDrawQueue(deck.Cards(2, 3, 4, 6, 2, 3, 4))

	hand1, hand2, err := GenerateHands(liquid, vapor, combined, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 2, 3, 4, 6}, handValues(hand1))
	assert.Equal(t, []float64{1, 9, 2, 3, 4}, handValues(hand2))
}

func TestGenerateHandsRejectsTinyHands(t *testing.T) {
	t.Parallel()

	q := deck.NewDrawQueue(deck.Cards(1, 2, 3))
	_, _, err := GenerateHands(q, q, q, 1)
	assert.Error(t, err)
}

func TestGeneratedHandsHoldDomeInvariant(t *testing.T) {
	t.Parallel()

	var liquid, vapor []deck.Card
	for i := range 30 {
		liquid = append(liquid, deck.NewCard(0.001+float64(i)*0.00001))
		vapor = append(vapor, deck.NewCard(200-float64(i)*5))
	}
	src := deck.Source{Liquid: liquid, Vapor: vapor}

	for seed := range int64(50) {
		d, err := Setup(src, randutil.New(seed), DefaultHandSize)
		require.NoError(t, err, "seed %d", seed)

		for _, h := range []Hand{d.User, d.Computer} {
			require.Len(t, h, DefaultHandSize)
			dome, err := NewDome(h)
			require.NoError(t, err)
			assert.LessOrEqual(t, dome.VF.Value, dome.TwoPhaseLow.Value)
			assert.LessOrEqual(t, dome.TwoPhaseLow.Value, dome.CriticalPoint.Value)
			assert.LessOrEqual(t, dome.CriticalPoint.Value, dome.TwoPhaseHigh.Value)
			assert.LessOrEqual(t, dome.TwoPhaseHigh.Value, dome.VG.Value)

			seen := map[float64]bool{}
			for _, c := range h {
				assert.False(t, seen[c.Value], "seed %d: duplicate %v in %s", seed, c, h)
				seen[c.Value] = true
			}
		}
	}
}
