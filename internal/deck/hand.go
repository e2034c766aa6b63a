package deck

import (
	"errors"
	"fmt"
)

// Hand size limits for the contexts a hand is dealt in
const (
	HoleCards   = 2
	FlopCards   = 3
	StreetCards = 1
	BoardCards  = 5
	MaxHandSize = HoleCards + BoardCards
)

// ErrHandSize is matched by every HandSizeError
var ErrHandSize = errors.New("invalid hand size")

// HandSizeError reports an attempt to build a hand larger than MaxHandSize
type HandSizeError struct {
	Size int
}

func (e *HandSizeError) Error() string {
	return fmt.Sprintf("invalid hand size %d (max %d)", e.Size, MaxHandSize)
}

// Is lets errors.Is(err, ErrHandSize) match
func (e *HandSizeError) Is(target error) bool {
	return target == ErrHandSize
}

// Hand is an ordered, immutable sequence of at most seven cards
type Hand struct {
	cards []Card
}

// NewHand builds a hand from the given cards, copying them
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) > MaxHandSize {
		return Hand{}, &HandSizeError{Size: len(cards)}
	}
	owned := make([]Card, len(cards))
	copy(owned, cards)
	return Hand{cards: owned}, nil
}

// Merge returns a new hand holding h's cards followed by extra.
// The receiver is not modified.
func (h Hand) Merge(extra ...Card) (Hand, error) {
	merged := make([]Card, 0, len(h.cards)+len(extra))
	merged = append(merged, h.cards...)
	merged = append(merged, extra...)
	return NewHand(merged...)
}

// Cards returns a copy of the cards in order
func (h Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h.cards)
}

// Contains reports whether the hand holds c
func (h Hand) Contains(c Card) bool {
	for _, card := range h.cards {
		if card == c {
			return true
		}
	}
	return false
}

// String returns the cards separated by spaces
func (h Hand) String() string {
	return FormatCards(h.cards)
}

// IsPair reports a two-card hand of matching ranks
func (h Hand) IsPair() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

// IsSuited reports a two-card hand of matching suits
func (h Hand) IsSuited() bool {
	return len(h.cards) == 2 && h.cards[0].Suit == h.cards[1].Suit
}

// IsPocketAces reports a two-card hand of two aces
func (h Hand) IsPocketAces() bool {
	return h.IsPair() && h.cards[0].Rank == Ace
}

// DisplayToken is the only datum a renderer needs per card
type DisplayToken struct {
	Rank Rank
	Suit Suit
}

// DisplayTokens returns the rank/suit pair of every card in order.
// Asset lookup is the renderer's job.
func (h Hand) DisplayTokens() []DisplayToken {
	tokens := make([]DisplayToken, len(h.cards))
	for i, c := range h.cards {
		tokens[i] = DisplayToken{Rank: c.Rank, Suit: c.Suit}
	}
	return tokens
}
