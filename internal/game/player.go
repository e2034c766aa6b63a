package game

import (
	"fmt"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
)

// Player is a seat at the table. Hole cards and the evaluation hand are kept
// apart: the evaluation hand is rebuilt from the hole cards and the board
// each street, so the hole cards stay addressable for display.
//
// Only the GameMaster moves chips or the turn flag.
type Player struct {
	name     string
	chips    int
	hole     deck.Hand
	dealt    bool
	eval     deck.Hand
	rank     evaluator.HandRank
	ranked   bool
	equity   float64
	isTurn   bool
	inactive bool
}

// NewPlayer creates a player with no chips and no cards
func NewPlayer(name string) *Player {
	return &Player{name: name}
}

func (p *Player) Name() string { return p.name }

// Chips returns the stack. A negative stack means chips were moved
// incorrectly and is never produced by the GameMaster.
func (p *Player) Chips() int { return p.chips }

// Hole returns the hole cards. It is empty before the deal.
func (p *Player) Hole() deck.Hand { return p.hole }

// HasCards reports whether hole cards have been dealt this hand
func (p *Player) HasCards() bool { return p.dealt }

// EvalHand returns the hole cards merged with the board
func (p *Player) EvalHand() deck.Hand { return p.eval }

// Rank returns the last evaluated hand rank and whether one exists
func (p *Player) Rank() (evaluator.HandRank, bool) { return p.rank, p.ranked }

// Equity returns the last advisory equity share, or 0 if none was computed
func (p *Player) Equity() float64 { return p.equity }

func (p *Player) IsTurn() bool { return p.isTurn }

// Active reports whether the player is still in the hand. A player whose
// hole cards could not be dealt sits the hand out.
func (p *Player) Active() bool { return !p.inactive }

// AddHand installs freshly dealt hole cards, replacing any earlier hand and
// clearing everything derived from it.
func (p *Player) AddHand(h deck.Hand) {
	p.hole = h
	p.dealt = h.Len() > 0
	p.eval = h
	p.rank = evaluator.HandRank{}
	p.ranked = false
	p.equity = 0
}

// MergeBoard rebuilds the evaluation hand from the hole cards and board
func (p *Player) MergeBoard(board []deck.Card) error {
	merged, err := p.hole.Merge(board...)
	if err != nil {
		return fmt.Errorf("merging board for %s: %w", p.name, err)
	}
	p.eval = merged
	return nil
}

// Evaluate ranks the evaluation hand and stores the result
func (p *Player) Evaluate() (evaluator.HandRank, error) {
	rank, err := evaluator.EvaluateHand(p.eval)
	if err != nil {
		return evaluator.HandRank{}, fmt.Errorf("evaluating %s: %w", p.name, err)
	}
	p.rank, p.ranked = rank, true
	return rank, nil
}

func (p *Player) String() string {
	if !p.dealt {
		return fmt.Sprintf("%s (%d)", p.name, p.chips)
	}
	return fmt.Sprintf("%s (%d) [%s]", p.name, p.chips, p.hole)
}

// resetHand clears per-hand state before a new deal
func (p *Player) resetHand() {
	p.AddHand(deck.Hand{})
	p.isTurn = false
	p.inactive = false
}
