package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// ErrDeckExhausted is returned when a deal asks for more cards than remain.
// Callers recover by replacing the deck, never by topping it up.
var ErrDeckExhausted = errors.New("deck exhausted")

// ErrInvalidDeck is returned when a stacked deck holds a bad or repeated card
var ErrInvalidDeck = errors.New("invalid deck")

// Deck is a pool of unique cards. Dealt cards are moved out of the pool,
// so a card can never be in play twice from the same deck.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full, unshuffled 52-card deck. Callers shuffle before use.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// NewShuffled creates a full deck and shuffles it
func NewShuffled(rng *rand.Rand) *Deck {
	d := New(rng)
	d.Shuffle()
	return d
}

// NewWithout creates a freshly shuffled deck that omits the given cards.
// It is used to replace an exhausted deck while cards are still in play.
func NewWithout(rng *rand.Rand, exclude ...Card) *Deck {
	d := New(rng)
	if len(exclude) > 0 {
		skip := make(map[Card]struct{}, len(exclude))
		for _, c := range exclude {
			skip[c] = struct{}{}
		}
		kept := d.cards[:0]
		for _, c := range d.cards {
			if _, ok := skip[c]; !ok {
				kept = append(kept, c)
			}
		}
		d.cards = kept
	}
	d.Shuffle()
	return d
}

// NewStacked creates a deck holding exactly cards, in pool order: the last
// card is dealt first. It is not shuffled. Used to replay a known deal.
func NewStacked(rng *rand.Rand, cards ...Card) (*Deck, error) {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidDeck, c)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: %s appears twice", ErrInvalidDeck, c)
		}
		seen[c] = struct{}{}
	}
	owned := make([]Card, len(cards))
	copy(owned, cards)
	return &Deck{cards: owned, rng: rng}, nil
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates)
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the last n cards of the pool. If n exceeds the
// remaining cards the deck is left untouched and ErrDeckExhausted is returned.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrDeckExhausted, n, len(d.cards))
	}
	split := len(d.cards) - n
	dealt := make([]Card, n)
	copy(dealt, d.cards[split:])
	d.cards = d.cards[:split]
	return dealt, nil
}

// Burn discards one card
func (d *Deck) Burn() error {
	_, err := d.Deal(1)
	return err
}

// Remaining returns the number of cards left in the pool
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining pool in deal order (last card deals first)
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Contains reports whether c is still in the pool
func (d *Deck) Contains(c Card) bool {
	for _, card := range d.cards {
		if card == c {
			return true
		}
	}
	return false
}
