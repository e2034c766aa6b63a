package game

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/holdem-engine/internal/deck"
)

// PreflopStats counts starting-hand shapes over repeated two-card deals
type PreflopStats struct {
	Hands      int
	Pairs      int
	Suited     int
	PocketAces int
	Decks      int // decks used, including the first
}

// PairRate returns the fraction of hands that were pocket pairs
func (s PreflopStats) PairRate() float64 { return s.rate(s.Pairs) }

// SuitedRate returns the fraction of hands that were suited
func (s PreflopStats) SuitedRate() float64 { return s.rate(s.Suited) }

// AcesRate returns the fraction of hands that were pocket aces
func (s PreflopStats) AcesRate() float64 { return s.rate(s.PocketAces) }

func (s PreflopStats) rate(n int) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(n) / float64(s.Hands)
}

// SimulatePreflop deals n two-card hands from a shuffled deck, starting a
// new deck whenever the current one runs out.
func SimulatePreflop(ctx context.Context, rng *rand.Rand, n int) (PreflopStats, error) {
	stats := PreflopStats{Decks: 1}
	d := deck.NewShuffled(rng)
	for i := 0; i < n; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}
		if d.IsEmpty() {
			d = deck.NewShuffled(rng)
			stats.Decks++
		}
		cards, err := d.Deal(deck.HoleCards)
		if err != nil {
			return stats, fmt.Errorf("hand %d: %w", i, err)
		}

		hand, err := deck.NewHand(cards...)
		if err != nil {
			return stats, err
		}
		stats.Hands++
		if hand.IsPair() {
			stats.Pairs++
		}
		if hand.IsSuited() {
			stats.Suited++
		}
		if hand.IsPocketAces() {
			stats.PocketAces++
		}
	}
	return stats, nil
}
