package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsEmpty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.Percentile(0.9))
	assert.Zero(t, stats.PositionMean(0))
	assert.Error(t, stats.Validate())
}

func TestStatisticsSingleValue(t *testing.T) {
	stats := &Statistics{}
	stats.Add(HandResult{NetBB: 2.5, Position: 3, Won: true, Dealt: true})

	assert.Equal(t, 1, stats.Hands)
	assert.Equal(t, 2.5, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Equal(t, 2.5, stats.Median())
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 2.5, stats.PositionMean(3))
	assert.Len(t, stats.Positions, 4)
	require.NoError(t, stats.Validate())
}

func TestStatisticsMoments(t *testing.T) {
	stats := &Statistics{}
	for i, net := range []float64{-1, -0.5, 0, 1.5, 3} {
		stats.Add(HandResult{NetBB: net, Position: i % 2, Won: net > 0, Dealt: true})
	}

	assert.InDelta(t, 0.6, stats.Mean(), 1e-9)
	assert.InDelta(t, 2.675, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(2.675), stats.StdDev(), 1e-9)
	assert.InDelta(t, math.Sqrt(2.675)/math.Sqrt(5), stats.StdError(), 1e-9)
	assert.Equal(t, 0.0, stats.Median())
	assert.Equal(t, -1.0, stats.Percentile(0))
	assert.Equal(t, 3.0, stats.Percentile(1))
	assert.InDelta(t, 2.25, stats.Percentile(0.875), 1e-9)

	lo, hi := stats.ConfidenceInterval95()
	assert.Less(t, lo, stats.Mean())
	assert.Greater(t, hi, stats.Mean())
	assert.InDelta(t, stats.Mean(), (lo+hi)/2, 1e-9)

	assert.InDelta(t, 4.5, stats.WonBB, 1e-9)
	assert.InDelta(t, -1.5, stats.LostBB, 1e-9)
	assert.True(t, stats.IsLedgerBalanced())
	require.NoError(t, stats.Validate())
}

func TestStatisticsValidateCatchesInconsistency(t *testing.T) {
	stats := &Statistics{}
	stats.Add(HandResult{NetBB: 1, Won: true, Dealt: true})
	stats.Add(HandResult{NetBB: -1, Dealt: true})

	stats.Splits = 2
	assert.ErrorContains(t, stats.Validate(), "splits")

	stats.Splits = 0
	stats.WonBB += 3
	assert.False(t, stats.IsLedgerBalanced())
	assert.ErrorContains(t, stats.Validate(), "ledger mismatch")
}

func TestStatisticsSkippedHands(t *testing.T) {
	stats := &Statistics{}
	stats.Add(HandResult{NetBB: -0.5, Position: 1})
	stats.Add(HandResult{NetBB: 2, Position: 1, Won: true, Split: true, Dealt: true})

	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Splits)
	assert.InDelta(t, 0.75, stats.PositionMean(1), 1e-9)
	require.NoError(t, stats.Validate())
}

func TestLedger(t *testing.T) {
	var l Ledger
	l.Record(-10)
	l.Record(-20)
	l.Record(30)
	assert.True(t, l.Balanced())

	l = Ledger{PotDelta: 30}
	l.Record(-10)
	l.Record(-20)
	assert.True(t, l.Balanced())

	l.Record(5)
	assert.False(t, l.Balanced())
}
