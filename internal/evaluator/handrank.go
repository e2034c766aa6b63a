package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-engine/internal/deck"
)

// Category is a poker hand category, ordered weakest to strongest
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from weakest to strongest
var Categories = [...]Category{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// maxKey is the longest tie-break key any category carries
const maxKey = 5

// HandRank is the evaluated strength of a hand: a category plus the
// tie-break key that orders hands within it.
//
// Key layout per category:
//   - Pair, ThreeOfAKind, FourOfAKind: matched rank, then kickers high to low
//   - TwoPair: high pair, low pair, kicker
//   - FullHouse: trips rank, pair rank
//   - Straight, StraightFlush, RoyalFlush: high card of the run (Five for a wheel)
//   - Flush, HighCard: card ranks high to low
type HandRank struct {
	Category Category
	Key      []deck.Rank
	Cards    []deck.Card // The cards that make up the hand, best first
}

// Score packs the category and key into a single integer. Larger scores are
// stronger hands and equal scores are exact ties.
func (h HandRank) Score() uint32 {
	return packScore(h.Category, h.Key)
}

func packScore(c Category, key []deck.Rank) uint32 {
	score := uint32(c) << (4 * maxKey)
	for i := 0; i < maxKey; i++ {
		var r uint32
		if i < len(key) {
			r = uint32(key[i])
		}
		score |= r << (4 * (maxKey - 1 - i))
	}
	return score
}

// Compare returns 1 if a is stronger, -1 if b is stronger, 0 for an exact tie
func Compare(a, b HandRank) int {
	sa, sb := a.Score(), b.Score()
	switch {
	case sa > sb:
		return 1
	case sa < sb:
		return -1
	default:
		return 0
	}
}

// Beats returns true if h is strictly stronger than other
func (h HandRank) Beats(other HandRank) bool {
	return Compare(h, other) > 0
}

// Ties returns true if h and other split the pot
func (h HandRank) Ties(other HandRank) bool {
	return Compare(h, other) == 0
}

// IsStraightFlush reports a straight flush, royal included
func (h HandRank) IsStraightFlush() bool {
	return h.Category == StraightFlush || h.Category == RoyalFlush
}

// HighRank returns the first key rank (the made rank or the top card)
func (h HandRank) HighRank() deck.Rank {
	if len(h.Key) == 0 {
		return 0
	}
	return h.Key[0]
}

// String returns a human-readable description, e.g. "Two Pair, Kings and Fives"
func (h HandRank) String() string {
	if len(h.Key) == 0 {
		return h.Category.String()
	}
	switch h.Category {
	case Pair:
		return fmt.Sprintf("Pair of %ss", h.Key[0].Name())
	case TwoPair:
		if len(h.Key) >= 2 {
			return fmt.Sprintf("Two Pair, %ss and %ss", h.Key[0].Name(), h.Key[1].Name())
		}
	case ThreeOfAKind:
		return fmt.Sprintf("Three %ss", h.Key[0].Name())
	case FourOfAKind:
		return fmt.Sprintf("Four %ss", h.Key[0].Name())
	case FullHouse:
		if len(h.Key) >= 2 {
			return fmt.Sprintf("Full House, %ss over %ss", h.Key[0].Name(), h.Key[1].Name())
		}
	case Straight, StraightFlush, Flush, HighCard:
		return fmt.Sprintf("%s, %s high", h.Category, h.Key[0].Name())
	}
	return h.Category.String()
}

// Describe returns the description followed by the cards used
func (h HandRank) Describe() string {
	if len(h.Cards) == 0 {
		return h.String()
	}
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s [%s]", h, strings.Join(parts, " "))
}
