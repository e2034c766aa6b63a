package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
)

type OddsCmd struct {
	Hands   []string `arg:"" help:"Player hands, e.g. 'AcKd' 'QhJs'"`
	Board   string   `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
	Samples int      `short:"s" default:"20000" help:"Boards sampled when full enumeration is too large"`
	Seed    *int64   `help:"Random seed for reproducible sampling"`
}

func (c *OddsCmd) Run(logger *log.Logger) error {
	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}
	var board []deck.Card
	if c.Board != "" {
		if board, err = deck.ParseCards(c.Board); err != nil {
			return fmt.Errorf("parsing board: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng, seed := seededRNG(c.Seed)
	logger.Debug("Estimating equity", "hands", len(hands), "board", deck.FormatCards(board), "seed", seed)

	est := evaluator.NewEstimator(rng, evaluator.WithSamples(c.Samples))
	start := time.Now()
	eq, err := est.Estimate(ctx, hands, board)
	if err != nil {
		return err
	}
	printOdds(os.Stdout, hands, board, eq, time.Since(start))
	return nil
}

func parseHands(args []string) ([][]deck.Card, error) {
	hands := make([][]deck.Card, 0, len(args))
	for i, arg := range args {
		hand, err := deck.ParseCards(strings.ReplaceAll(strings.TrimSpace(arg), " ", ""))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hand) != deck.HoleCards {
			return nil, fmt.Errorf("hand %d: must contain exactly %d cards, got %d", i+1, deck.HoleCards, len(hand))
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

func printOdds(w io.Writer, hands [][]deck.Card, board []deck.Card, eq evaluator.Equity, elapsed time.Duration) {
	if len(board) > 0 {
		fmt.Fprintf(w, "%s %s\n\n", headerStyle.Render("board"), renderCards(board))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("share"))
	for i, hand := range hands {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			renderCards(hand),
			winStyle.Render(percent(eq.Win[i])),
			percent(eq.Share(i)))
	}
	tw.Flush()

	mode := "sampled"
	if eq.Exhaustive {
		mode = "enumerated"
	}
	fmt.Fprintf(w, "\n%s %s\n", tieStyle.Render("tie"), percent(eq.Tie))
	fmt.Fprintf(w, "%s\n", mutedStyle.Render(fmt.Sprintf("%d runouts %s in %v", eq.Runouts, mode, elapsed.Truncate(time.Millisecond))))
}
