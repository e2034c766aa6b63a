package evaluator

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/randutil"
)

// Defaults for NewEstimator
const (
	DefaultSamples          = 20000
	DefaultExhaustiveCutoff = 100000
	maxWorkers              = 8
	cancelCheckInterval     = 1024
)

var (
	ErrTooFewHands  = errors.New("equity needs at least two hands")
	ErrHoleCards    = errors.New("each hand must hold exactly two cards")
	ErrBoardTooLong = errors.New("board holds more than five cards")
)

// Equity is the outcome share of each hand across the runouts considered.
// Win[i] is the probability hand i wins outright, so the Win values sum to
// 1 - Tie.
type Equity struct {
	Win        []float64
	Tie        float64
	Runouts    int
	Exhaustive bool
}

// Share returns hand i's expected pot share, counting ties as an even split
// among all hands. It is exact heads-up and an approximation multi-way.
func (e Equity) Share(i int) float64 {
	if i < 0 || i >= len(e.Win) || len(e.Win) == 0 {
		return 0
	}
	return e.Win[i] + e.Tie/float64(len(e.Win))
}

// Estimator computes equity for known hole cards by enumerating every
// remaining board when that is cheap enough, and by sampling otherwise.
// It never modifies its inputs.
type Estimator struct {
	rng              *rand.Rand
	samples          int
	exhaustiveCutoff int
	workers          int
}

// EstimatorOption configures an Estimator
type EstimatorOption func(*Estimator)

// WithSamples sets the number of boards sampled when enumeration is too
// large. At least one board is always sampled.
func WithSamples(n int) EstimatorOption {
	return func(e *Estimator) { e.samples = n }
}

// WithExhaustiveCutoff sets the largest runout count enumerated exhaustively
func WithExhaustiveCutoff(n int) EstimatorOption {
	return func(e *Estimator) { e.exhaustiveCutoff = n }
}

// WithWorkers sets the number of parallel workers
func WithWorkers(n int) EstimatorOption {
	return func(e *Estimator) { e.workers = n }
}

// NewEstimator creates an estimator. The RNG seeds the per-worker sampling
// generators, so a fixed seed gives reproducible Monte Carlo results.
func NewEstimator(rng *rand.Rand, opts ...EstimatorOption) *Estimator {
	if rng == nil {
		panic("rng is required for equity estimation")
	}
	e := &Estimator{
		rng:              rng,
		samples:          DefaultSamples,
		exhaustiveCutoff: DefaultExhaustiveCutoff,
		workers:          min(runtime.NumCPU(), maxWorkers),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		e.workers = 1
	}
	if e.samples < 1 {
		e.samples = 1
	}
	return e
}

// HeadsUp returns the probability that a beats b outright on the given board
func (e *Estimator) HeadsUp(ctx context.Context, a, b, board []deck.Card) (float64, error) {
	eq, err := e.Estimate(ctx, [][]deck.Card{a, b}, board)
	if err != nil {
		return 0, err
	}
	return eq.Win[0], nil
}

// Estimate returns the win probability of every hand and the tie mass
func (e *Estimator) Estimate(ctx context.Context, hands [][]deck.Card, board []deck.Card) (Equity, error) {
	if err := validateEquityInput(hands, board); err != nil {
		return Equity{}, err
	}

	stub := liveStub(hands, board)
	need := deck.BoardCards - len(board)
	runouts := binomial(len(stub), need)

	var (
		t   tally
		err error
	)
	exhaustive := runouts <= e.exhaustiveCutoff
	if exhaustive {
		t, err = e.enumerate(ctx, hands, board, stub, need)
	} else {
		t, err = e.sample(ctx, hands, board, stub, need)
	}
	if err != nil {
		return Equity{}, err
	}
	return t.equity(exhaustive), nil
}

func validateEquityInput(hands [][]deck.Card, board []deck.Card) error {
	if len(hands) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewHands, len(hands))
	}
	if len(board) > deck.BoardCards {
		return fmt.Errorf("%w: got %d", ErrBoardTooLong, len(board))
	}
	seen := make(map[deck.Card]struct{}, 2*len(hands)+len(board))
	check := func(c deck.Card) error {
		if !c.Valid() {
			return fmt.Errorf("%w: %+v", ErrInvalidCard, c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = struct{}{}
		return nil
	}
	for i, h := range hands {
		if len(h) != deck.HoleCards {
			return fmt.Errorf("%w: hand %d has %d", ErrHoleCards, i, len(h))
		}
		for _, c := range h {
			if err := check(c); err != nil {
				return err
			}
		}
	}
	for _, c := range board {
		if err := check(c); err != nil {
			return err
		}
	}
	return nil
}

// liveStub lists the cards not held by any hand or the board
func liveStub(hands [][]deck.Card, board []deck.Card) []deck.Card {
	used := make(map[deck.Card]struct{}, 2*len(hands)+len(board))
	for _, h := range hands {
		for _, c := range h {
			used[c] = struct{}{}
		}
	}
	for _, c := range board {
		used[c] = struct{}{}
	}
	stub := make([]deck.Card, 0, deck.DeckSize-len(used))
	for _, s := range deck.Suits {
		for r := deck.Two; r <= deck.Ace; r++ {
			c := deck.NewCard(s, r)
			if _, ok := used[c]; !ok {
				stub = append(stub, c)
			}
		}
	}
	return stub
}

// tally accumulates outright wins per hand and tied runouts
type tally struct {
	wins    []int
	ties    int
	runouts int
}

func newTally(hands int) tally {
	return tally{wins: make([]int, hands)}
}

func (t *tally) merge(o tally) {
	for i, w := range o.wins {
		t.wins[i] += w
	}
	t.ties += o.ties
	t.runouts += o.runouts
}

func (t tally) equity(exhaustive bool) Equity {
	eq := Equity{
		Win:        make([]float64, len(t.wins)),
		Runouts:    t.runouts,
		Exhaustive: exhaustive,
	}
	if t.runouts == 0 {
		return eq
	}
	total := float64(t.runouts)
	for i, w := range t.wins {
		eq.Win[i] = float64(w) / total
	}
	eq.Tie = float64(t.ties) / total
	return eq
}

// showdown scores one complete board and records the result
type showdown struct {
	hands [][]deck.Card
	seven []deck.Card
	board []deck.Card
}

func newShowdown(hands [][]deck.Card, board []deck.Card) *showdown {
	full := make([]deck.Card, deck.BoardCards)
	copy(full, board)
	return &showdown{
		hands: hands,
		seven: make([]deck.Card, deck.MaxHandSize),
		board: full,
	}
}

func (s *showdown) record(t *tally) {
	var best uint32
	winner, tied := -1, false
	for i, h := range s.hands {
		copy(s.seven, h)
		copy(s.seven[deck.HoleCards:], s.board)
		sc := score(s.seven)
		switch {
		case winner < 0 || sc > best:
			best, winner, tied = sc, i, false
		case sc == best:
			tied = true
		}
	}
	t.runouts++
	if tied {
		t.ties++
		return
	}
	t.wins[winner]++
}

// enumerate scores every possible completion of the board. Work is split
// across workers by the index of the first card drawn.
func (e *Estimator) enumerate(ctx context.Context, hands [][]deck.Card, board, stub []deck.Card, need int) (tally, error) {
	total := newTally(len(hands))
	if need == 0 {
		newShowdown(hands, board).record(&total)
		return total, nil
	}

	workers := min(e.workers, len(stub))
	results := make([]tally, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		results[w] = newTally(len(hands))
		g.Go(func() error {
			sd := newShowdown(hands, board)
			t := &results[w]
			for first := w; first < len(stub); first += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				sd.board[len(board)] = stub[first]
				combine(stub, first+1, sd.board, len(board)+1, need-1, func() {
					sd.record(t)
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tally{}, err
	}
	for _, r := range results {
		total.merge(r)
	}
	return total, nil
}

// combine fills out[pos:pos+k] with every k-combination of stub[from:]
func combine(stub []deck.Card, from int, out []deck.Card, pos, k int, visit func()) {
	if k == 0 {
		visit()
		return
	}
	for i := from; i <= len(stub)-k; i++ {
		out[pos] = stub[i]
		combine(stub, i+1, out, pos+1, k-1, visit)
	}
}

// sample scores randomly completed boards, each worker drawing from its own
// generator split off the estimator's RNG.
func (e *Estimator) sample(ctx context.Context, hands [][]deck.Card, board, stub []deck.Card, need int) (tally, error) {
	workers := min(e.workers, e.samples)
	rngs := randutil.Split(e.rng, workers)
	per, remainder := e.samples/workers, e.samples%workers

	results := make([]tally, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		results[w] = newTally(len(hands))
		n := per
		if w < remainder {
			n++
		}
		g.Go(func() error {
			rng := rngs[w]
			sd := newShowdown(hands, board)
			pool := make([]deck.Card, len(stub))
			copy(pool, stub)
			t := &results[w]
			for i := 0; i < n; i++ {
				if i%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				// Partial Fisher-Yates: the last need cards become the runout
				for j := 0; j < need; j++ {
					last := len(pool) - 1 - j
					k := rng.IntN(last + 1)
					pool[last], pool[k] = pool[k], pool[last]
					sd.board[len(board)+j] = pool[last]
				}
				sd.record(t)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tally{}, err
	}
	total := newTally(len(hands))
	for _, r := range results {
		total.merge(r)
	}
	return total, nil
}

// binomial returns n choose k
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}
