package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "12", want: 12},
		{name: "decimal", input: "0.001043", want: 0.001043},
		{name: "exponent", input: "1.2e3", want: 1200},
		{name: "surrounding space", input: "  3.5 ", want: 3.5},
		{name: "negative", input: "-4", want: -4},
		{name: "empty", input: "", wantErr: true},
		{name: "text", input: "vf", wantErr: true},
		{name: "nan", input: "NaN", wantErr: true},
		{name: "inf", input: "Inf", wantErr: true},
		{name: "positive inf", input: "+Inf", wantErr: true},
		{name: "negative infinity", input: "-infinity", wantErr: true},
		{name: "overflow", input: "1e400", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value)
		})
	}
}

func TestCardOrderingIsNumeric(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("9", "10")
	// "10" < "9" as text; numerically it is the larger reading
	assert.True(t, cards[0].Less(cards[1]))
	assert.False(t, cards[1].Less(cards[0]))
}

func TestCardEqualIgnoresText(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("1", "1.0")
	assert.True(t, cards[0].Equal(cards[1]))
	assert.Equal(t, "1.0", cards[1].String())
}

func TestNewCardString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", NewCard(7).String())
	assert.Equal(t, "0.25", NewCard(0.25).String())
	assert.Equal(t, "3", Card{Value: 3}.String())
}

func TestMustParseCardsPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParseCards("1", "x") })
}
