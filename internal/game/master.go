package game

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
	"github.com/lox/holdem-engine/internal/handid"
)

// EquityEstimator computes the win probability of each hand given a
// partial board. *evaluator.Estimator satisfies it.
type EquityEstimator interface {
	Estimate(ctx context.Context, hands [][]deck.Card, board []deck.Card) (evaluator.Equity, error)
}

// Decision is a note recorded against a seat. Betting decisions are not
// modelled; the log is an extension point for a policy to write to.
type Decision struct {
	Seat   int
	Player string
	Phase  Phase
	Note   string
	At     time.Time
}

// ShowdownResult describes who won a hand. More than one winner is a split.
type ShowdownResult struct {
	HandID  string
	Winners []int // seats, in seat order
	Payouts []int // chips awarded, parallel to Winners
	Rank    evaluator.HandRank
	Board   []deck.Card
}

// Split reports whether the pot was shared
func (r ShowdownResult) Split() bool { return len(r.Winners) > 1 }

// GameMaster drives one table through the phases of a hand. It holds seat
// indices only; player state lives on the Table.
//
// A GameMaster is not safe for concurrent use.
type GameMaster struct {
	table      *Table
	cfg        Config
	bbSeat     int
	actingSeat int
	phase      Phase
	decisions  []Decision
	handID     string
	ids        *handid.Generator

	rng       *rand.Rand
	logger    *log.Logger
	clock     quartz.Clock
	eventBus  EventBus
	estimator EquityEstimator
}

func (gm *GameMaster) Table() *Table { return gm.table }

// Players is a read projection of the table roster in seat order
func (gm *GameMaster) Players() []*Player { return gm.table.Players() }

func (gm *GameMaster) Phase() Phase { return gm.phase }

// HandID identifies the hand in progress
func (gm *GameMaster) HandID() string { return gm.handID }

func (gm *GameMaster) Config() Config { return gm.cfg }

func (gm *GameMaster) EventBus() EventBus { return gm.eventBus }

// BigBlindSeat returns the seat posting the big blind this hand
func (gm *GameMaster) BigBlindSeat() int { return gm.bbSeat }

// SmallBlindSeat returns the seat immediately before the big blind
func (gm *GameMaster) SmallBlindSeat() int {
	n := gm.table.Seats()
	return (gm.bbSeat - 1 + n) % n
}

// ActingSeat returns the seat marked to act, or -1 before StartTurn
func (gm *GameMaster) ActingSeat() int { return gm.actingSeat }

// Decisions returns a copy of the decision log
func (gm *GameMaster) Decisions() []Decision {
	out := make([]Decision, len(gm.decisions))
	copy(out, gm.decisions)
	return out
}

// PostBlinds takes the small and big blind from their seats into the pot.
// A short stack posts what it has.
func (gm *GameMaster) PostBlinds() error {
	if err := checkTransition(gm.phase, BlindsPosted); err != nil {
		return err
	}
	if gm.cfg.SmallBlind <= 0 || gm.cfg.BigBlind <= 0 {
		return fmt.Errorf("%w: small %d, big %d", ErrMissingBlindConfiguration, gm.cfg.SmallBlind, gm.cfg.BigBlind)
	}

	sbSeat := gm.SmallBlindSeat()
	small := gm.post(sbSeat, gm.cfg.SmallBlind)
	big := gm.post(gm.bbSeat, gm.cfg.BigBlind)

	gm.logger.Debug("Blinds posted",
		"smallBlind", gm.table.players[sbSeat].name,
		"bigBlind", gm.table.players[gm.bbSeat].name,
		"pot", gm.table.pot)
	gm.eventBus.Publish(BlindsPostedEvent{
		SmallBlindSeat: sbSeat,
		BigBlindSeat:   gm.bbSeat,
		SmallBlind:     small,
		BigBlind:       big,
		Pot:            gm.table.pot,
		timestamp:      gm.clock.Now(),
	})
	gm.advance(BlindsPosted)
	return nil
}

func (gm *GameMaster) post(seat, amount int) int {
	p := gm.table.players[seat]
	amount = min(amount, p.chips)
	p.chips -= amount
	gm.table.pot += amount
	return amount
}

// DealHoleCards deals two cards to every seat in order. A seat that cannot
// be dealt to is logged, published as a DealSkippedEvent and sits the hand
// out; the deal carries on.
func (gm *GameMaster) DealHoleCards() error {
	if err := checkTransition(gm.phase, HoleCardsDealt); err != nil {
		return err
	}

	for seat, p := range gm.table.players {
		hand, err := gm.dealHole()
		if err != nil {
			gm.skip(seat, p, err)
			continue
		}
		p.AddHand(hand)
	}

	gm.advance(HoleCardsDealt)
	return nil
}

func (gm *GameMaster) dealHole() (deck.Hand, error) {
	cards, err := gm.table.deck.Deal(deck.HoleCards)
	if err != nil {
		return deck.Hand{}, err
	}
	return deck.NewHand(cards...)
}

func (gm *GameMaster) skip(seat int, p *Player, err error) {
	p.inactive = true
	gm.logger.Warn("Skipping player, hole cards could not be dealt", "player", p.name, "seat", seat, "error", err)
	gm.eventBus.Publish(DealSkippedEvent{
		Seat:      seat,
		Player:    p.name,
		Err:       err,
		timestamp: gm.clock.Now(),
	})
}

// StartTurn marks the seat after the big blind as first to act
func (gm *GameMaster) StartTurn() error {
	if gm.phase != HoleCardsDealt {
		return fmt.Errorf("%w: cannot start the turn in %s", ErrInvalidPhaseTransition, gm.phase)
	}
	if gm.actingSeat != -1 {
		return fmt.Errorf("%w: seat %d is already acting", ErrTurnInvariant, gm.actingSeat)
	}
	gm.actingSeat = (gm.bbSeat + 1) % gm.table.Seats()
	for i, p := range gm.table.players {
		p.isTurn = i == gm.actingSeat
	}
	gm.logger.Debug("Turn started", "player", gm.table.players[gm.actingSeat].name, "seat", gm.actingSeat)
	return nil
}

// checkTurn verifies the acting seat directly follows the big blind
func (gm *GameMaster) checkTurn() error {
	want := (gm.bbSeat + 1) % gm.table.Seats()
	if gm.actingSeat != want {
		return fmt.Errorf("%w: acting seat %d, expected %d", ErrTurnInvariant, gm.actingSeat, want)
	}
	return nil
}

// DealFlop burns one card, deals three to the board and re-ranks every
// player. StartTurn must have marked the seat after the big blind first. If an estimator is configured an equity estimate follows; its
// failure is logged and never fails the flop.
func (gm *GameMaster) DealFlop() error {
	if err := checkTransition(gm.phase, FlopDealt); err != nil {
		return err
	}
	if err := gm.checkTurn(); err != nil {
		return err
	}
	if err := gm.dealBoard(deck.FlopCards); err != nil {
		return err
	}
	gm.advance(FlopDealt)
	gm.requestEquity()
	return nil
}

// DealTurn burns one card and adds the fourth community card
func (gm *GameMaster) DealTurn() error {
	if err := checkTransition(gm.phase, TurnDealt); err != nil {
		return err
	}
	if err := gm.dealBoard(deck.StreetCards); err != nil {
		return err
	}
	gm.advance(TurnDealt)
	return nil
}

// DealRiver burns one card and adds the fifth community card
func (gm *GameMaster) DealRiver() error {
	if err := checkTransition(gm.phase, RiverDealt); err != nil {
		return err
	}
	if err := gm.dealBoard(deck.StreetCards); err != nil {
		return err
	}
	gm.advance(RiverDealt)
	return nil
}

// DealNextCommunityCard deals the turn after the flop and the river after
// the turn. Anything else, including a sixth card, is
// ErrInvalidPhaseTransition.
func (gm *GameMaster) DealNextCommunityCard() error {
	switch gm.phase {
	case FlopDealt:
		return gm.DealTurn()
	case TurnDealt:
		return gm.DealRiver()
	default:
		return fmt.Errorf("%w: no community card follows %s (board has %d)", ErrInvalidPhaseTransition, gm.phase, gm.phase.BoardSize())
	}
}

// dealBoard burns one card and adds n to the board. Nothing reaches the
// board until every card is drawn; cards drawn for a deal that fails are
// mucked so the deck never hands them out twice.
func (gm *GameMaster) dealBoard(n int) error {
	burned, err := gm.draw(1)
	if err != nil {
		return fmt.Errorf("burn: %w", err)
	}
	cards, err := gm.draw(n, burned...)
	if err != nil {
		gm.table.muck = append(gm.table.muck, burned...)
		return err
	}

	prev := len(gm.table.board)
	gm.table.muck = append(gm.table.muck, burned...)
	gm.table.board = append(gm.table.board, cards...)
	if err := gm.rankPlayers(); err != nil {
		gm.table.board = gm.table.board[:prev]
		gm.table.muck = append(gm.table.muck, cards...)
		if rerr := gm.rankPlayers(); rerr != nil {
			gm.logger.Error("Restoring hand ranks failed", "error", rerr)
		}
		return err
	}
	return nil
}

// draw deals n cards, replacing an exhausted deck with a fresh one that
// omits every card dealt this hand and any held back by the caller
func (gm *GameMaster) draw(n int, held ...deck.Card) ([]deck.Card, error) {
	cards, err := gm.table.deck.Deal(n)
	if !errors.Is(err, deck.ErrDeckExhausted) {
		return cards, err
	}

	live := append(gm.table.liveCards(), held...)
	gm.table.deck = deck.NewWithout(gm.rng, live...)
	gm.logger.Warn("Deck exhausted, replaced", "phase", gm.phase, "excluded", len(live), "remaining", gm.table.deck.Remaining())
	gm.eventBus.Publish(DeckReplacedEvent{
		Phase:     gm.phase,
		Excluded:  len(live),
		Remaining: gm.table.deck.Remaining(),
		timestamp: gm.clock.Now(),
	})
	return gm.table.deck.Deal(n)
}

// rankPlayers merges the board into every live hand and re-evaluates it
func (gm *GameMaster) rankPlayers() error {
	for _, p := range gm.contenders() {
		if err := p.MergeBoard(gm.table.board); err != nil {
			return err
		}
		if _, err := p.Evaluate(); err != nil {
			return err
		}
	}
	return nil
}

// contenders returns the active players holding cards, in seat order
func (gm *GameMaster) contenders() []*Player {
	var out []*Player
	for _, p := range gm.table.players {
		if p.Active() && p.HasCards() {
			out = append(out, p)
		}
	}
	return out
}

func (gm *GameMaster) requestEquity() {
	if gm.estimator == nil {
		return
	}
	var (
		names []string
		hands [][]deck.Card
	)
	players := gm.contenders()
	for _, p := range players {
		names = append(names, p.name)
		hands = append(hands, p.hole.Cards())
	}
	if len(hands) < 2 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if gm.cfg.EquityTimeout > 0 {
		timer := gm.clock.AfterFunc(gm.cfg.EquityTimeout, cancel)
		defer timer.Stop()
	}

	start := gm.clock.Now()
	eq, err := gm.estimator.Estimate(ctx, hands, gm.table.Board())
	if err != nil {
		gm.logger.Warn("Equity estimate failed", "phase", gm.phase, "error", err)
		return
	}
	elapsed := gm.clock.Since(start)

	shares := make([]float64, len(players))
	for i, p := range players {
		shares[i] = eq.Share(i)
		p.equity = shares[i]
	}
	gm.logger.Debug("Equity estimated", "players", len(players), "exhaustive", eq.Exhaustive, "elapsed", elapsed)
	gm.eventBus.Publish(EquityEvent{
		Players:    names,
		Shares:     shares,
		Tie:        eq.Tie,
		Exhaustive: eq.Exhaustive,
		Elapsed:    elapsed,
		timestamp:  gm.clock.Now(),
	})
}

// Showdown ranks every live hand on the complete board and pays the pot to
// the best hand. Equal hands split it, odd chips going to the earliest
// seats. The board is archived to the table history.
func (gm *GameMaster) Showdown() (ShowdownResult, error) {
	if err := checkTransition(gm.phase, Showdown); err != nil {
		return ShowdownResult{}, err
	}
	if err := gm.rankPlayers(); err != nil {
		return ShowdownResult{}, err
	}

	result := ShowdownResult{HandID: gm.handID, Board: gm.table.Board()}
	for seat, p := range gm.table.players {
		if !p.Active() || !p.HasCards() {
			continue
		}
		switch c := evaluator.Compare(p.rank, result.Rank); {
		case len(result.Winners) == 0 || c > 0:
			result.Winners = []int{seat}
			result.Rank = p.rank
		case c == 0:
			result.Winners = append(result.Winners, seat)
		}
	}

	if len(result.Winners) > 0 {
		share, odd := gm.table.pot/len(result.Winners), gm.table.pot%len(result.Winners)
		result.Payouts = make([]int, len(result.Winners))
		for i, seat := range result.Winners {
			amount := share
			if i < odd {
				amount++
			}
			result.Payouts[i] = amount
			gm.table.players[seat].chips += amount
		}
		gm.table.pot = 0
	} else {
		gm.logger.Warn("No live hands at showdown, pot stays on the table", "pot", gm.table.pot)
	}

	gm.table.archiveBoard()
	gm.logger.Debug("Showdown", "hand", gm.handID, "winners", len(result.Winners), "rank", result.Rank.String())
	gm.advance(Showdown)
	gm.eventBus.Publish(ShowdownEvent{Result: result, timestamp: gm.clock.Now()})
	return result, nil
}

// NextHand moves the big blind one seat on and resets the table with a
// freshly shuffled deck. It is only valid after a showdown.
func (gm *GameMaster) NextHand() error {
	if gm.phase != Showdown {
		return fmt.Errorf("%w: cannot start a new hand from %s", ErrInvalidPhaseTransition, gm.phase)
	}
	gm.table.reset(deck.NewShuffled(gm.rng))
	gm.bbSeat = (gm.bbSeat + 1) % gm.table.Seats()
	gm.actingSeat = -1
	gm.handID = gm.ids.Next()
	gm.logger.Debug("New hand", "hand", gm.handID, "bigBlind", gm.table.players[gm.bbSeat].name)
	gm.advance(Created)
	return nil
}

// DecisionEvent records a note against a seat. It does not advance play.
func (gm *GameMaster) DecisionEvent(seat int, note string) error {
	if seat < 0 || seat >= gm.table.Seats() {
		return fmt.Errorf("%w: no seat %d", ErrPlayerNotFound, seat)
	}
	d := Decision{
		Seat:   seat,
		Player: gm.table.players[seat].name,
		Phase:  gm.phase,
		Note:   note,
		At:     gm.clock.Now(),
	}
	gm.decisions = append(gm.decisions, d)
	gm.eventBus.Publish(DecisionLoggedEvent{Decision: d, timestamp: d.At})
	return nil
}

func (gm *GameMaster) advance(to Phase) {
	from := gm.phase
	gm.phase = to
	gm.logger.Debug("Phase changed", "from", from, "to", to, "board", deck.FormatCards(gm.table.board))
	gm.eventBus.Publish(NewPhaseChangeEvent(from, to, gm.table.board, gm.clock.Now()))
}
