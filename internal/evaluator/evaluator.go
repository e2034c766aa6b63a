// Package evaluator ranks Texas Hold'em hands and estimates equity.
//
// Evaluate picks the best five-card hand from two to seven cards and returns
// a HandRank. All ordering goes through Compare, which works on the packed
// Score of a rank, so every caller applies the same tie-break rules.
package evaluator

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/lox/holdem-engine/internal/deck"
)

// MinCards is the fewest cards Evaluate accepts
const MinCards = 2

var (
	ErrTooFewCards   = errors.New("too few cards to evaluate")
	ErrDuplicateCard = errors.New("duplicate card")
	ErrInvalidCard   = errors.New("invalid card")
)

// Evaluate ranks the best five-card hand that can be made from cards.
// Fewer than five cards are ranked on what is present: only pairs, trips,
// quads and high card are possible.
func Evaluate(cards []deck.Card) (HandRank, error) {
	if err := validate(cards); err != nil {
		return HandRank{}, err
	}
	p := newProfile(cards)
	category, key := p.classify()
	return HandRank{
		Category: category,
		Key:      key,
		Cards:    p.pick(category, key),
	}, nil
}

// EvaluateHand ranks a dealt hand
func EvaluateHand(h deck.Hand) (HandRank, error) {
	return Evaluate(h.Cards())
}

// score ranks pre-validated cards without selecting the winning cards
func score(cards []deck.Card) uint32 {
	p := newProfile(cards)
	return packScore(p.classify())
}

func validate(cards []deck.Card) error {
	if len(cards) > deck.MaxHandSize {
		return &deck.HandSizeError{Size: len(cards)}
	}
	if len(cards) < MinCards {
		return fmt.Errorf("%w: got %d, need at least %d", ErrTooFewCards, len(cards), MinCards)
	}
	seen := make(map[deck.Card]struct{}, len(cards))
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: %+v", ErrInvalidCard, c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// profile is the rank/suit histogram of a set of cards. Masks use bit r for
// rank r, so bit 14 is the Ace.
type profile struct {
	cards    []deck.Card
	counts   [deck.Ace + 1]uint8
	suitMask [len(deck.Suits)]uint16
	rankMask uint16
}

const aceBit = uint16(1) << deck.Ace

func newProfile(cards []deck.Card) *profile {
	p := &profile{cards: cards}
	for _, c := range cards {
		p.counts[c.Rank]++
		p.suitMask[c.Suit] |= 1 << c.Rank
		p.rankMask |= 1 << c.Rank
	}
	return p
}

func (p *profile) classify() (Category, []deck.Rank) {
	flushSuit, hasFlush := p.flushSuit()
	if hasFlush {
		if high := straightHigh(p.suitMask[flushSuit]); high != 0 {
			if high == deck.Ace {
				return RoyalFlush, []deck.Rank{high}
			}
			return StraightFlush, []deck.Rank{high}
		}
	}

	quads := p.ranksWith(4)
	if len(quads) > 0 {
		return FourOfAKind, append([]deck.Rank{quads[0]}, p.kickers(1, quads[0])...)
	}

	trips := p.ranksWith(3)
	pairs := p.ranksWith(2)
	if len(trips) > 0 {
		// A second set of trips plays as the pair
		var pairRank deck.Rank
		if len(trips) > 1 {
			pairRank = trips[1]
		}
		if len(pairs) > 0 && pairs[0] > pairRank {
			pairRank = pairs[0]
		}
		if pairRank != 0 {
			return FullHouse, []deck.Rank{trips[0], pairRank}
		}
	}

	if hasFlush {
		return Flush, topRanks(p.suitMask[flushSuit], 5)
	}

	if high := straightHigh(p.rankMask); high != 0 {
		return Straight, []deck.Rank{high}
	}

	switch {
	case len(trips) > 0:
		return ThreeOfAKind, append([]deck.Rank{trips[0]}, p.kickers(2, trips[0])...)
	case len(pairs) >= 2:
		return TwoPair, append([]deck.Rank{pairs[0], pairs[1]}, p.kickers(1, pairs[0], pairs[1])...)
	case len(pairs) == 1:
		return Pair, append([]deck.Rank{pairs[0]}, p.kickers(3, pairs[0])...)
	default:
		return HighCard, topRanks(p.rankMask, 5)
	}
}

func (p *profile) flushSuit() (deck.Suit, bool) {
	for _, s := range deck.Suits {
		if bits.OnesCount16(p.suitMask[s]) >= 5 {
			return s, true
		}
	}
	return 0, false
}

// ranksWith returns the ranks held exactly n times, highest first
func (p *profile) ranksWith(n uint8) []deck.Rank {
	var out []deck.Rank
	for r := deck.Ace; r >= deck.Two; r-- {
		if p.counts[r] == n {
			out = append(out, r)
		}
	}
	return out
}

// kickers returns up to n of the highest ranks present, skipping exclude
func (p *profile) kickers(n int, exclude ...deck.Rank) []deck.Rank {
	mask := p.rankMask
	for _, r := range exclude {
		mask &^= 1 << r
	}
	return topRanks(mask, n)
}

// topRanks returns up to n ranks set in mask, highest first
func topRanks(mask uint16, n int) []deck.Rank {
	out := make([]deck.Rank, 0, n)
	for r := deck.Ace; r >= deck.Two && len(out) < n; r-- {
		if mask&(1<<r) != 0 {
			out = append(out, r)
		}
	}
	return out
}

// wheelMask is A-2-3-4-5
const wheelMask = aceBit | 1<<deck.Two | 1<<deck.Three | 1<<deck.Four | 1<<deck.Five

// straightHigh returns the high card of the best five-card run in mask, or 0.
// In a wheel the Ace plays low, so the high card is the Five.
func straightHigh(mask uint16) deck.Rank {
	for high := deck.Ace; high >= deck.Six; high-- {
		run := uint16(0x1F) << (high - 4)
		if mask&run == run {
			return high
		}
	}
	if mask&wheelMask == wheelMask {
		return deck.Five
	}
	return 0
}

// straightRun lists the ranks of the run ending at high, highest first
func straightRun(high deck.Rank) []deck.Rank {
	if high == deck.Five {
		return []deck.Rank{deck.Five, deck.Four, deck.Three, deck.Two, deck.Ace}
	}
	run := make([]deck.Rank, 5)
	for i := range run {
		run[i] = high - deck.Rank(i)
	}
	return run
}

// pick selects the cards that make up the ranked hand
func (p *profile) pick(category Category, key []deck.Rank) []deck.Card {
	used := make(map[deck.Card]bool, 5)
	out := make([]deck.Card, 0, 5)
	take := func(r deck.Rank, n int, suit *deck.Suit) {
		for _, c := range p.cards {
			if n == 0 {
				return
			}
			if c.Rank != r || used[c] || (suit != nil && c.Suit != *suit) {
				continue
			}
			used[c] = true
			out = append(out, c)
			n--
		}
	}

	switch category {
	case RoyalFlush, StraightFlush:
		suit, _ := p.flushSuit()
		for _, r := range straightRun(key[0]) {
			take(r, 1, &suit)
		}
	case Flush:
		suit, _ := p.flushSuit()
		for _, r := range key {
			take(r, 1, &suit)
		}
	case Straight:
		for _, r := range straightRun(key[0]) {
			take(r, 1, nil)
		}
	case FourOfAKind:
		take(key[0], 4, nil)
		for _, r := range key[1:] {
			take(r, 1, nil)
		}
	case FullHouse:
		take(key[0], 3, nil)
		take(key[1], 2, nil)
	case ThreeOfAKind:
		take(key[0], 3, nil)
		for _, r := range key[1:] {
			take(r, 1, nil)
		}
	case TwoPair:
		take(key[0], 2, nil)
		take(key[1], 2, nil)
		for _, r := range key[2:] {
			take(r, 1, nil)
		}
	case Pair:
		take(key[0], 2, nil)
		for _, r := range key[1:] {
			take(r, 1, nil)
		}
	default:
		for _, r := range key {
			take(r, 1, nil)
		}
	}
	return out
}
