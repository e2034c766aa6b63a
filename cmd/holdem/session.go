package main

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/statistics"
)

// session tracks every player's results across the hands of one run
type session struct {
	bigBlind int
	names    []string
	stats    map[string]*statistics.Statistics

	stacks []int
	pot    int
}

func newSession(gm *game.GameMaster) *session {
	s := &session{
		bigBlind: gm.Config().BigBlind,
		stats:    make(map[string]*statistics.Statistics),
	}
	for _, p := range gm.Players() {
		s.names = append(s.names, p.Name())
		s.stats[p.Name()] = &statistics.Statistics{}
	}
	return s
}

// begin snapshots stacks and pot before a hand is played
func (s *session) begin(gm *game.GameMaster) {
	s.stacks = s.stacks[:0]
	for _, p := range gm.Players() {
		s.stacks = append(s.stacks, p.Chips())
	}
	s.pot = gm.Table().Pot()
}

// record adds the finished hand to every player's statistics. It fails if
// chips were created or destroyed.
func (s *session) record(gm *game.GameMaster, result game.ShowdownResult) error {
	ledger := statistics.Ledger{PotDelta: gm.Table().Pot() - s.pot}
	n := gm.Table().Seats()

	for seat, p := range gm.Players() {
		delta := p.Chips() - s.stacks[seat]
		ledger.Record(delta)

		won := slices.Contains(result.Winners, seat)
		s.stats[p.Name()].Add(statistics.HandResult{
			NetBB:    float64(delta) / float64(s.bigBlind),
			Position: (seat - gm.BigBlindSeat() + n) % n,
			Won:      won,
			Split:    won && result.Split(),
			Dealt:    p.Active() && p.HasCards(),
		})
	}

	if !ledger.Balanced() {
		return fmt.Errorf("chips not conserved: stacks moved %d, pot moved %d", ledger.StackDelta, ledger.PotDelta)
	}
	return nil
}

func (s *session) print(w io.Writer) {
	fmt.Fprintf(w, "%s\n", titleStyle.Render("Session"))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("hands"),
		headerStyle.Render("won"),
		headerStyle.Render("split"),
		headerStyle.Render("bb/hand"),
		headerStyle.Render("95% CI"))
	for _, name := range s.names {
		st := s.stats[name]
		lo, hi := st.ConfidenceInterval95()
		mean := fmt.Sprintf("%+.2f", st.Mean())
		if st.Mean() > 0 {
			mean = winStyle.Render(mean)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\n",
			name, st.Hands, st.Wins, st.Splits, mean,
			mutedStyle.Render(fmt.Sprintf("[%+.2f, %+.2f]", lo, hi)))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func (s *session) validate() error {
	for _, name := range s.names {
		if err := s.stats[name].Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
