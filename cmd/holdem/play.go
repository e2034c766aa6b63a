package main

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/internal/evaluator"
	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/randutil"
)

type PlayCmd struct {
	Config  string `short:"c" default:"holdem.hcl" type:"path" help:"HCL table configuration (defaults apply when missing)"`
	Players int    `short:"p" default:"3" help:"Test players seated beside the hero"`
	Hands   int    `short:"n" default:"1" help:"Number of hands to play"`
	Seed    *int64 `help:"Random seed for reproducible deals"`
}

func (c *PlayCmd) Run(logger *log.Logger) error {
	cfg, err := game.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	rng, seed := seededRNG(c.Seed)
	logger.Info("Seating table", "players", c.Players+1, "seed", seed, "config", c.Config)

	return playHands(os.Stdout, logger, quartz.NewReal(), cfg, game.DefaultPlayers(c.Players), c.Hands, rng)
}

func playHands(w io.Writer, logger *log.Logger, clock quartz.Clock, cfg game.Config, players []string, hands int, rng *rand.Rand) error {
	if hands < 1 {
		return fmt.Errorf("hands must be positive, got %d", hands)
	}

	estimatorRNG := randutil.Split(rng, 1)[0]
	bus := game.NewEventBus()
	bus.Subscribe(&eventLogger{logger: logger})

	gm, err := game.CreateTable(players, cfg,
		game.WithRNG(rng),
		game.WithLogger(logger),
		game.WithClock(clock),
		game.WithEventBus(bus),
		game.WithEstimator(evaluator.NewEstimator(estimatorRNG)),
	)
	if err != nil {
		return err
	}

	sess := newSession(gm)
	for n := 1; n <= hands; n++ {
		if n > 1 {
			if err := gm.NextHand(); err != nil {
				return err
			}
		}
		sess.begin(gm)
		result, err := playHand(gm)
		if err != nil {
			return fmt.Errorf("hand %d: %w", n, err)
		}
		if err := sess.record(gm, result); err != nil {
			return fmt.Errorf("hand %d: %w", n, err)
		}
		printHand(w, n, gm, result)
	}

	if hands > 1 {
		sess.print(w)
	}
	return sess.validate()
}

func playHand(gm *game.GameMaster) (game.ShowdownResult, error) {
	if err := game.RunToFlop(gm); err != nil {
		return game.ShowdownResult{}, err
	}
	if err := gm.DecisionEvent(gm.ActingSeat(), "first to act"); err != nil {
		return game.ShowdownResult{}, err
	}
	for gm.Phase() != game.RiverDealt {
		if err := game.DealNextCommunityCard(gm); err != nil {
			return game.ShowdownResult{}, err
		}
	}
	return gm.Showdown()
}

func seededRNG(seed *int64) (*rand.Rand, int64) {
	if seed != nil {
		return randutil.New(*seed), *seed
	}
	return randutil.NewTimeSeeded()
}

// eventLogger forwards the noteworthy engine events to the CLI log
type eventLogger struct {
	logger *log.Logger
}

func (l *eventLogger) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.DealSkippedEvent:
		l.logger.Warn("Player skipped", "seat", e.Seat, "player", e.Player, "error", e.Err)
	case game.DeckReplacedEvent:
		l.logger.Info("Deck replaced", "phase", e.Phase, "remaining", e.Remaining)
	case game.EquityEvent:
		l.logger.Debug("Equity", "players", e.Players, "shares", e.Shares, "elapsed", e.Elapsed)
	case game.DecisionLoggedEvent:
		l.logger.Debug("Decision", "seat", e.Decision.Seat, "player", e.Decision.Player, "note", e.Decision.Note)
	}
}
