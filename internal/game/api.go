package game

import (
	"fmt"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/handid"
	"github.com/lox/holdem-engine/internal/randutil"
)

// HeroName is the name given to seat 0 by DefaultPlayers
const HeroName = "phil"

// DefaultPlayers returns the hero followed by count test players
func DefaultPlayers(count int) []string {
	names := make([]string, 0, count+1)
	names = append(names, HeroName)
	for i := 1; i <= count; i++ {
		names = append(names, fmt.Sprintf("test_player%d", i))
	}
	return names
}

// CreateTable validates cfg, seats the named players in order with the
// configured starting stack and returns a GameMaster ready to post blinds.
func CreateTable(players []string, cfg Config, opts ...Option) (*GameMaster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(players) < MinSeats || len(players) > cfg.MaxSeats {
		return nil, fmt.Errorf("%w: need between %d and %d players, got %d", ErrInvalidConfig, MinSeats, cfg.MaxSeats, len(players))
	}

	seated := make([]*Player, len(players))
	seen := make(map[string]struct{}, len(players))
	for i, name := range players {
		if name == "" {
			return nil, fmt.Errorf("%w: seat %d has no name", ErrInvalidConfig, i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate player name %q", ErrInvalidConfig, name)
		}
		seen[name] = struct{}{}
		seated[i] = NewPlayer(name)
		seated[i].chips = cfg.StartingStack
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		o.rng, o.seed = randutil.NewTimeSeeded()
	}
	d := o.deck
	if d == nil {
		d = deck.NewShuffled(o.rng)
	}

	gm := &GameMaster{
		table:      NewTable(d, seated),
		cfg:        cfg,
		bbSeat:     cfg.BigBlindSeat % len(seated),
		actingSeat: -1,
		phase:      Created,
		rng:        o.rng,
		logger:     o.logger.WithPrefix("game"),
		clock:      o.clock,
		eventBus:   o.eventBus,
		estimator:  o.estimator,
		ids:        handid.NewGenerator(o.clock, randutil.Split(o.rng, 1)[0]),
	}
	gm.handID = gm.ids.Next()
	gm.logger.Debug("Table created", "hand", gm.handID, "players", len(seated), "seed", o.seed, "bigBlindSeat", gm.bbSeat)
	return gm, nil
}

// RunToFlop posts blinds, deals hole cards, marks the first seat to act and
// deals the flop.
func RunToFlop(gm *GameMaster) error {
	if err := gm.PostBlinds(); err != nil {
		return fmt.Errorf("posting blinds: %w", err)
	}
	if err := gm.DealHoleCards(); err != nil {
		return fmt.Errorf("dealing hole cards: %w", err)
	}
	if err := gm.StartTurn(); err != nil {
		return fmt.Errorf("starting turn: %w", err)
	}
	if err := gm.DealFlop(); err != nil {
		return fmt.Errorf("dealing flop: %w", err)
	}
	return nil
}

// DealNextCommunityCard deals the turn, then the river
func DealNextCommunityCard(gm *GameMaster) error {
	return gm.DealNextCommunityCard()
}

// LookupPlayer finds a seated player by name
func LookupPlayer(t *Table, name string) (*Player, error) {
	return t.Lookup(name)
}
