package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/deck"
)

// One canonical hand per category, weakest first
var canonicalHands = []struct {
	category Category
	cards    string
}{
	{HighCard, "AsKhQd9s7c5h3h"},
	{Pair, "AsAhKdQs9h2h3h"},
	{TwoPair, "AsAhKdKsQh2h3h"},
	{ThreeOfAKind, "AsAhAdKsQh2h3h"},
	{Straight, "AsKhQdJsTs9h8h"},
	{Flush, "AsKsQs9s7s4h3h"},
	{FullHouse, "AsAhAdKsKh2h3h"},
	{FourOfAKind, "AsAhAdAcKs2h3h"},
	{StraightFlush, "9s8s7s6s5s4h3h"},
	{RoyalFlush, "AsKsQsJsTs9h8h"},
}

func TestCategoryOrderingIsTotal(t *testing.T) {
	evaluated := make([]HandRank, len(canonicalHands))
	for i, h := range canonicalHands {
		evaluated[i] = mustEvaluate(t, h.cards)
		require.Equal(t, h.category, evaluated[i].Category)
	}

	for i := range evaluated {
		for j := range evaluated {
			got := Compare(evaluated[i], evaluated[j])
			switch {
			case i > j:
				assert.Equal(t, 1, got, "%s should beat %s", evaluated[i].Category, evaluated[j].Category)
			case i < j:
				assert.Equal(t, -1, got, "%s should lose to %s", evaluated[i].Category, evaluated[j].Category)
			default:
				assert.Equal(t, 0, got)
			}
		}
	}
}

func TestWheelRanksBelowSixHighStraight(t *testing.T) {
	wheel := mustEvaluate(t, "As2d3c4h5sKdJc")
	sixHigh := mustEvaluate(t, "2d3c4h5s6sKdJc")

	require.Equal(t, Straight, wheel.Category)
	require.Equal(t, Straight, sixHigh.Category)
	assert.True(t, sixHigh.Beats(wheel))
	assert.Equal(t, -1, Compare(wheel, sixHigh))

	steelWheel := mustEvaluate(t, "As2s3s4s5s")
	sixHighFlush := mustEvaluate(t, "2s3s4s5s6s")
	assert.True(t, sixHighFlush.Beats(steelWheel))
}

func TestTieBreaks(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		expect int
	}{
		{"board plays high card", "AsKd2c7d9hJsQs", "AhKc2c7d9hJsQs", 0},
		{"pair kicker", "KcAhAd7c5s2h3d", "QcAhAd7c5s2h3s", 1},
		{"higher pair", "KcKhAd7c5s2h3d", "QcQhAd7c5s2h3s", 1},
		{"two pair kicker", "Ac2dKsKd5c5h9s", "Qc3dKsKd5c5h9s", 1},
		{"two pair board plays", "2c3dKsKd5c5h9s", "4c3hKsKd5c5h9s", 0},
		{"higher bottom pair", "KsKd9c9h2s", "KcKh8c8d2d", 1},
		{"trips kicker", "7s7h7dAc2d", "7c7h7dKc2d", 1},
		{"full house trips first", "3s3h3dAcAd", "2s2h2dAsAh", 1},
		{"full house pair second", "KsKhKdQcQd", "KsKhKdJcJd", 1},
		{"quads kicker", "9s9h9d9cAs", "9s9h9d9cKs", 1},
		{"flush fifth card", "AhKhQhJh9h", "AhKhQhJh8h", 1},
		{"straight high card", "9c8d7h6s5c", "8d7h6s5c4d", 1},
		{"equal straights split", "9c8d7h6s5c", "9d8h7s6c5d", 0},
		{"same flush ranks split", "AhKh9h7h2h", "AsKs9s7s2s", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustEvaluate(t, tt.a)
			b := mustEvaluate(t, tt.b)
			assert.Equal(t, tt.expect, Compare(a, b), "%s vs %s", a.Describe(), b.Describe())
			assert.Equal(t, -tt.expect, Compare(b, a))
			assert.Equal(t, tt.expect == 0, a.Ties(b))
		})
	}
}

func TestRoyalFlushIsTopStraightFlush(t *testing.T) {
	royal := mustEvaluate(t, "AhKhQhJhTh")
	kingHigh := mustEvaluate(t, "KhQhJhTh9h")

	assert.Equal(t, RoyalFlush, royal.Category)
	assert.True(t, royal.IsStraightFlush())
	assert.True(t, kingHigh.IsStraightFlush())
	assert.True(t, royal.Beats(kingHigh))
	assert.Equal(t, deck.Ace, royal.HighRank())
}

func TestScoreOrdersKeys(t *testing.T) {
	low := HandRank{Category: Pair, Key: []deck.Rank{deck.Two, deck.Four, deck.Three, deck.Five}}
	high := HandRank{Category: Pair, Key: []deck.Rank{deck.Three, deck.Two, deck.Four, deck.Five}}
	nextCategory := HandRank{Category: TwoPair, Key: []deck.Rank{deck.Three, deck.Two, deck.Four}}
	assert.Less(t, low.Score(), high.Score())
	assert.Less(t, high.Score(), nextCategory.Score())
}

func TestHandRankStrings(t *testing.T) {
	tests := []struct {
		cards    string
		expected string
	}{
		{"AsKsQsJsTs9h8h", "Royal Flush"},
		{"9s8s7s6s5s4h3h", "Straight Flush, Nine high"},
		{"AsAhAdAcKs2h3h", "Four Aces"},
		{"AsAhAdKsKh2h3h", "Full House, Aces over Kings"},
		{"AsKsQs9s7s4h3h", "Flush, Ace high"},
		{"As2d3c4h5s9dKc", "Straight, Five high"},
		{"AsAhAdKsQh2h3h", "Three Aces"},
		{"AsAhKdKsQh2h3h", "Two Pair, Aces and Kings"},
		{"AsAhKdQs9h2h3h", "Pair of Aces"},
		{"AsKhQd9s7c5h3h", "High Card, Ace high"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustEvaluate(t, tt.cards).String())
		})
	}

	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.Equal(t, "Unknown", Category(42).String())
}
