package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/randutil"
)

func cardSet(cards []Card) map[Card]int {
	set := make(map[Card]int, len(cards))
	for _, c := range cards {
		set[c]++
	}
	return set
}

func TestNewDeckIsFullAndUnique(t *testing.T) {
	d := New(randutil.New(1))
	require.Equal(t, DeckSize, d.Remaining())

	set := cardSet(d.Cards())
	assert.Len(t, set, DeckSize)
	for c, n := range set {
		assert.Equal(t, 1, n, "card %s duplicated", c)
		assert.True(t, c.Valid())
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		original := New(randutil.New(seed))
		before := original.Cards()

		shuffled := NewShuffled(randutil.New(seed))
		after := shuffled.Cards()

		require.Len(t, after, DeckSize)
		assert.Equal(t, cardSet(before), cardSet(after))
		assert.NotEqual(t, before, after, "seed %d left the deck in order", seed)
	}
}

func TestShuffleDeterministicForSeed(t *testing.T) {
	a := NewShuffled(randutil.New(42))
	b := NewShuffled(randutil.New(42))
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestDealTakesFromEnd(t *testing.T) {
	d := New(randutil.New(7))
	pool := d.Cards()

	dealt, err := d.Deal(3)
	require.NoError(t, err)
	assert.Equal(t, pool[len(pool)-3:], dealt)
	assert.Equal(t, DeckSize-3, d.Remaining())
}

func TestDealGroupsAreDisjoint(t *testing.T) {
	d := NewShuffled(randutil.New(99))
	sizes := []int{2, 2, 2, 2, 1, 3, 1, 1, 5, 7, 10, 16}

	seen := make(map[Card]bool)
	total := 0
	for _, n := range sizes {
		cards, err := d.Deal(n)
		require.NoError(t, err)
		require.Len(t, cards, n)
		for _, c := range cards {
			assert.False(t, seen[c], "card %s dealt twice", c)
			assert.False(t, d.Contains(c), "dealt card %s still in pool", c)
			seen[c] = true
		}
		total += n
	}
	assert.Equal(t, DeckSize, total)
	assert.True(t, d.IsEmpty())
}

func TestDealTooManyLeavesDeckUnchanged(t *testing.T) {
	d := NewShuffled(randutil.New(3))
	_, err := d.Deal(50)
	require.NoError(t, err)
	before := d.Cards()

	cards, err := d.Deal(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDeckExhausted))
	assert.Nil(t, cards)
	assert.Equal(t, before, d.Cards())

	_, err = d.Deal(-1)
	assert.ErrorIs(t, err, ErrDeckExhausted)
	assert.Equal(t, before, d.Cards())
}

func TestBurnOnEmptyDeck(t *testing.T) {
	d := New(randutil.New(1))
	_, err := d.Deal(DeckSize)
	require.NoError(t, err)
	assert.ErrorIs(t, d.Burn(), ErrDeckExhausted)
}

func TestNewWithoutExcludesCards(t *testing.T) {
	live := MustParseCards("AsKdQh2c")
	d := NewWithout(randutil.New(5), live...)

	assert.Equal(t, DeckSize-len(live), d.Remaining())
	for _, c := range live {
		assert.False(t, d.Contains(c))
	}
	assert.Len(t, cardSet(d.Cards()), DeckSize-len(live))
}

func TestNewStackedDealsFromEnd(t *testing.T) {
	d, err := NewStacked(randutil.New(1), MustParseCards("2c3d4h5s")...)
	require.NoError(t, err)

	dealt, err := d.Deal(2)
	require.NoError(t, err)
	assert.Equal(t, MustParseCards("4h5s"), dealt)
	assert.Equal(t, MustParseCards("2c3d"), d.Cards())

	_, err = NewStacked(randutil.New(1), MustParseCards("2c2c")...)
	assert.ErrorIs(t, err, ErrInvalidDeck)

	_, err = NewStacked(randutil.New(1), Card{Suit: Spades, Rank: LowAce})
	assert.ErrorIs(t, err, ErrInvalidDeck)
}
