package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/randutil"
)

// Option configures a GameMaster during creation.
type Option func(*options)

// options holds the collaborators of a GameMaster. Everything has a
// working default so CreateTable needs none of them.
type options struct {
	logger    *log.Logger
	clock     quartz.Clock
	rng       *rand.Rand
	seed      int64
	deck      *deck.Deck
	estimator EquityEstimator
	eventBus  EventBus
}

func defaultOptions() *options {
	return &options{
		logger:   log.New(io.Discard),
		clock:    quartz.NewReal(),
		eventBus: NewEventBus(),
	}
}

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClock sets the clock used for event timestamps and equity deadlines
func WithClock(clock quartz.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithRNG sets the generator used to shuffle decks. Without it a
// time-seeded generator is used.
func WithRNG(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed is WithRNG with a generator derived from seed
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = randutil.New(seed)
		o.seed = seed
	}
}

// WithDeck sets the deck for the first hand.
// This overrides the RNG for the initial shuffle; the RNG is still used
// when a replacement deck is needed.
func WithDeck(d *deck.Deck) Option {
	return func(o *options) { o.deck = d }
}

// WithEstimator enables advisory equity estimates on the flop
func WithEstimator(est EquityEstimator) Option {
	return func(o *options) { o.estimator = est }
}

// WithEventBus publishes events to an existing bus
func WithEventBus(bus EventBus) Option {
	return func(o *options) { o.eventBus = bus }
}
