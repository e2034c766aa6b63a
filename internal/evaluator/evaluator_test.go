package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/deck"
)

func mustEvaluate(t *testing.T, cards string) HandRank {
	t.Helper()
	rank, err := Evaluate(deck.MustParseCards(cards))
	require.NoError(t, err, cards)
	return rank
}

func ranks(rs ...deck.Rank) []deck.Rank {
	return rs
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		key      []deck.Rank
	}{
		{"royal flush", "AsKsQsJsTs9h8h", RoyalFlush, ranks(deck.Ace)},
		{"straight flush", "9s8s7s6s5s4h3h", StraightFlush, ranks(deck.Nine)},
		{"four of a kind", "AsAhAdAcKs2h3h", FourOfAKind, ranks(deck.Ace, deck.King)},
		{"full house", "AsAhAdKsKh2h3h", FullHouse, ranks(deck.Ace, deck.King)},
		{"flush", "AsKsQs9s7s4h3h", Flush, ranks(deck.Ace, deck.King, deck.Queen, deck.Nine, deck.Seven)},
		{"straight", "AsKhQdJsTs9h8h", Straight, ranks(deck.Ace)},
		{"three of a kind", "AsAhAdKsQh2h3h", ThreeOfAKind, ranks(deck.Ace, deck.King, deck.Queen)},
		{"two pair", "AsAhKdKsQh2h3h", TwoPair, ranks(deck.Ace, deck.King, deck.Queen)},
		{"pair", "AsAhKdQs9h2h3h", Pair, ranks(deck.Ace, deck.King, deck.Queen, deck.Nine)},
		{"high card", "AsKhQd9s7c5h3h", HighCard, ranks(deck.Ace, deck.King, deck.Queen, deck.Nine, deck.Seven)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank := mustEvaluate(t, tt.cards)
			assert.Equal(t, tt.category, rank.Category, rank.Describe())
			assert.Equal(t, tt.key, rank.Key)
			assert.Len(t, rank.Cards, 5)
		})
	}
}

func TestEvaluateEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		key      []deck.Rank
	}{
		{"wheel", "As2d3c4h5s9dKc", Straight, ranks(deck.Five)},
		{"six high beats wheel run", "Ac2d3h4s5c6d", Straight, ranks(deck.Six)},
		{"six card straight", "2c3d4h5s6c7d", Straight, ranks(deck.Seven)},
		{"steel wheel", "As2s3s4s5sKd", StraightFlush, ranks(deck.Five)},
		{"six card flush keeps top five", "AhJh9h6h3h2hKd", Flush, ranks(deck.Ace, deck.Jack, deck.Nine, deck.Six, deck.Three)},
		{"flush over straight", "5h6h7h8d9hKh2c", Flush, ranks(deck.King, deck.Nine, deck.Seven, deck.Six, deck.Five)},
		{"straight flush over higher straight", "5h6h7h8h9hTd", StraightFlush, ranks(deck.Nine)},
		{"two trips make a full house", "KsKhKd5c5s5hAd", FullHouse, ranks(deck.King, deck.Five)},
		{"full house uses higher pair", "7s7h7d2c2s9h9d", FullHouse, ranks(deck.Seven, deck.Nine)},
		{"three pairs keep best kicker", "AsAhKdKs5c5hQd", TwoPair, ranks(deck.Ace, deck.King, deck.Queen)},
		{"third pair plays as kicker", "AsAhKdKs5c5h2d", TwoPair, ranks(deck.Ace, deck.King, deck.Five)},
		{"quads over trips", "9s9h9d9cKsKhKd", FourOfAKind, ranks(deck.Nine, deck.King)},
		{"pocket pair only", "AsAd", Pair, ranks(deck.Ace)},
		{"two cards high card", "Ks7d", HighCard, ranks(deck.King, deck.Seven)},
		{"four cards quads", "2s2h2d2c", FourOfAKind, ranks(deck.Two)},
		{"five card hand", "Th9h8h7h6h", StraightFlush, ranks(deck.Ten)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank := mustEvaluate(t, tt.cards)
			assert.Equal(t, tt.category, rank.Category, rank.Describe())
			assert.Equal(t, tt.key, rank.Key)
		})
	}
}

func TestEvaluateSelectsCards(t *testing.T) {
	wheel := mustEvaluate(t, "As2d3c4h5s9dKc")
	assert.Equal(t, deck.MustParseCards("5s4h3c2dAs"), wheel.Cards)

	fullHouse := mustEvaluate(t, "KsKhKd5c5s5hAd")
	assert.Equal(t, deck.MustParseCards("KsKhKd5c5s"), fullHouse.Cards)

	flush := mustEvaluate(t, "AhJh9h6h3h2hKd")
	assert.Equal(t, deck.MustParseCards("AhJh9h6h3h"), flush.Cards)
}

func TestEvaluateIgnoresOrder(t *testing.T) {
	a := mustEvaluate(t, "5h6h7h8d9hKh2c")
	b := mustEvaluate(t, "2cKh9h8d7h6h5h")
	assert.Equal(t, a.Category, b.Category)
	assert.Equal(t, a.Key, b.Key)
	assert.True(t, a.Ties(b))
}

func TestEvaluateInvalidInput(t *testing.T) {
	_, err := Evaluate(deck.MustParseCards("As"))
	assert.ErrorIs(t, err, ErrTooFewCards)

	_, err = Evaluate(nil)
	assert.ErrorIs(t, err, ErrTooFewCards)

	_, err = Evaluate(deck.MustParseCards("AsKsQsJsTs9s8s7s"))
	assert.ErrorIs(t, err, deck.ErrHandSize)

	_, err = Evaluate(deck.MustParseCards("AsAsKd"))
	assert.ErrorIs(t, err, ErrDuplicateCard)

	_, err = Evaluate([]deck.Card{{Suit: deck.Spades, Rank: 1}, {Suit: deck.Hearts, Rank: deck.Two}})
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestEvaluateHand(t *testing.T) {
	hole, err := deck.NewHand(deck.MustParseCards("QhQd")...)
	require.NoError(t, err)
	merged, err := hole.Merge(deck.MustParseCards("Qs2c7d")...)
	require.NoError(t, err)

	rank, err := EvaluateHand(merged)
	require.NoError(t, err)
	assert.Equal(t, ThreeOfAKind, rank.Category)
	assert.Equal(t, "Three Queens", rank.String())
}
