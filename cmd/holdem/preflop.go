package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/game"
)

type PreflopCmd struct {
	Deals  int    `short:"n" default:"1000000" help:"Two-card hands dealt per run"`
	Repeat int    `short:"r" default:"1" help:"Number of runs"`
	Seed   *int64 `help:"Random seed for reproducible deals"`
}

func (c *PreflopCmd) Run(logger *log.Logger) error {
	if c.Deals < 1 || c.Repeat < 1 {
		return fmt.Errorf("deals and repeat must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng, seed := seededRNG(c.Seed)
	logger.Debug("Simulating preflop deals", "deals", c.Deals, "runs", c.Repeat, "seed", seed)

	start := time.Now()
	for run := 1; run <= c.Repeat; run++ {
		stats, err := game.SimulatePreflop(ctx, rng, c.Deals)
		if err != nil {
			return fmt.Errorf("run %d: %w", run, err)
		}
		if c.Repeat > 1 {
			fmt.Fprintf(os.Stdout, "%s\n", titleStyle.Render(fmt.Sprintf("Run #%d", run)))
		}
		printPreflop(os.Stdout, stats)
	}
	fmt.Fprintf(os.Stdout, "%s\n", mutedStyle.Render(fmt.Sprintf("Time elapsed: %v", time.Since(start).Truncate(time.Millisecond))))
	return nil
}

func printPreflop(w io.Writer, s game.PreflopStats) {
	fmt.Fprintf(w, "Out of %d hands (%d decks)\n", s.Hands, s.Decks)
	fmt.Fprintf(w, "  %s %d (%s)\n", headerStyle.Render("pairs:      "), s.Pairs, percent(s.PairRate()))
	fmt.Fprintf(w, "  %s %d (%s)\n", headerStyle.Render("suited:     "), s.Suited, percent(s.SuitedRate()))
	fmt.Fprintf(w, "  %s %d (%s)\n\n", headerStyle.Render("pocket aces:"), s.PocketAces, percent(s.AcesRate()))
}
