package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandSizes(t *testing.T) {
	all := MustParseCards("AsKsQsJsTs9s8s7s")
	for n := 0; n <= MaxHandSize; n++ {
		h, err := NewHand(all[:n]...)
		require.NoError(t, err, "size %d", n)
		assert.Equal(t, n, h.Len())
	}

	_, err := NewHand(all...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHandSize))

	var sizeErr *HandSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 8, sizeErr.Size)
}

func TestHandCopiesInput(t *testing.T) {
	cards := MustParseCards("AsKs")
	h, err := NewHand(cards...)
	require.NoError(t, err)

	cards[0] = NewCard(Clubs, Two)
	assert.Equal(t, NewCard(Spades, Ace), h.Cards()[0])

	out := h.Cards()
	out[1] = NewCard(Clubs, Three)
	assert.Equal(t, NewCard(Spades, King), h.Cards()[1])
}

func TestHandMergeBuildsNewHand(t *testing.T) {
	hole, err := NewHand(MustParseCards("AhAd")...)
	require.NoError(t, err)

	merged, err := hole.Merge(MustParseCards("2c7s9d")...)
	require.NoError(t, err)

	assert.Equal(t, 2, hole.Len())
	assert.Equal(t, 5, merged.Len())
	assert.Equal(t, MustParseCards("AhAd2c7s9d"), merged.Cards())

	full, err := merged.Merge(MustParseCards("TcJc")...)
	require.NoError(t, err)
	_, err = full.Merge(MustParseCards("Qc")...)
	assert.ErrorIs(t, err, ErrHandSize)
}

func TestStartingHandShapes(t *testing.T) {
	aces, _ := NewHand(MustParseCards("AsAh")...)
	suited, _ := NewHand(MustParseCards("9h8h")...)
	board, _ := NewHand(MustParseCards("9h9d9c")...)

	assert.True(t, aces.IsPair())
	assert.True(t, aces.IsPocketAces())
	assert.False(t, aces.IsSuited())
	assert.True(t, suited.IsSuited())
	assert.False(t, suited.IsPair())
	assert.False(t, board.IsPair(), "only two-card hands count")
}

func TestDisplayTokens(t *testing.T) {
	h, err := NewHand(MustParseCards("Td3c")...)
	require.NoError(t, err)
	assert.Equal(t, []DisplayToken{
		{Rank: Ten, Suit: Diamonds},
		{Rank: Three, Suit: Clubs},
	}, h.DisplayTokens())
	assert.Equal(t, "T♦ 3♣", h.String())
}
