// Package statistics summarises a player's results over a session of hands
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// HandResult is one player's outcome for a single hand
type HandResult struct {
	NetBB    float64 // chips won or lost, in big blinds
	Position int     // seats after the big blind; 0 is the big blind
	Won      bool    // took all or part of the pot
	Split    bool    // shared the pot with another hand
	Dealt    bool    // false when the deal skipped the player
}

// PositionStats tracks results for one position relative to the big blind
type PositionStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Statistics accumulates per-hand results for one player
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64   // sum of squares for variance
	Values []float64 // every result, for median and percentiles

	Wins    int
	Splits  int
	Skipped int
	WonBB   float64 // from hands with a positive result
	LostBB  float64 // from hands with a zero or negative result
	AllBB   float64

	Positions []PositionStats
}

// Mean returns the average result in big blinds per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(math.Max(s.Variance(), 0))
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a hand result
func (s *Statistics) Add(result HandResult) {
	net := result.NetBB
	s.Hands++
	s.SumBB += net
	s.SumBB2 += net * net
	s.Values = append(s.Values, net)
	s.AllBB += net

	if net > 0 {
		s.WonBB += net
	} else {
		s.LostBB += net
	}
	if result.Won {
		s.Wins++
	}
	if result.Split {
		s.Splits++
	}
	if !result.Dealt {
		s.Skipped++
	}

	if result.Position >= 0 {
		for len(s.Positions) <= result.Position {
			s.Positions = append(s.Positions, PositionStats{})
		}
		ps := &s.Positions[result.Position]
		ps.Hands++
		ps.SumBB += net
		ps.SumBB2 += net * net
	}
}

// Median returns the median result
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the interpolated value at p, from 0.0 to 1.0
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PositionMean returns the mean result at a position
func (s *Statistics) PositionMean(position int) float64 {
	if position < 0 || position >= len(s.Positions) {
		return 0
	}
	ps := s.Positions[position]
	if ps.Hands == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Hands)
}

// IsLedgerBalanced reports whether the won and lost buckets add up to the total
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.WonBB-s.LostBB) <= 1e-6
}

// Validate checks the accumulated data for internal consistency
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, WonBB=%.6f, LostBB=%.6f",
			s.AllBB, s.WonBB, s.LostBB)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}
	if s.Splits > s.Wins {
		return fmt.Errorf("splits (%d) exceed wins (%d)", s.Splits, s.Wins)
	}
	if s.Wins+s.Skipped > s.Hands {
		return fmt.Errorf("wins (%d) and skipped hands (%d) exceed total hands (%d)", s.Wins, s.Skipped, s.Hands)
	}

	positionHands := 0
	for _, ps := range s.Positions {
		positionHands += ps.Hands
	}
	if positionHands != s.Hands {
		return fmt.Errorf("position hands total (%d) does not match total hands (%d)",
			positionHands, s.Hands)
	}
	return nil
}

// Ledger sums chip movements across every seat at a table for one hand.
// Chips only move between stacks and the pot, so a balanced hand has
// stack changes that cancel the pot change.
type Ledger struct {
	StackDelta int
	PotDelta   int
}

// Record adds one stack's change
func (l *Ledger) Record(delta int) {
	l.StackDelta += delta
}

// Balanced reports whether no chips were created or destroyed
func (l Ledger) Balanced() bool {
	return l.StackDelta+l.PotDelta == 0
}
