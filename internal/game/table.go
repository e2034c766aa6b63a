package game

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-engine/internal/deck"
)

// Table owns the deck, the seated players and the board. It is the only
// roster: everything else refers to players by seat index.
type Table struct {
	deck    *deck.Deck
	players []*Player
	board   []deck.Card
	muck    []deck.Card
	history [][]deck.Card
	pot     int
}

// NewTable seats players in order. Seat 0 is conventionally the hero.
func NewTable(d *deck.Deck, players []*Player) *Table {
	return &Table{
		deck:    d,
		players: players,
		board:   make([]deck.Card, 0, deck.BoardCards),
	}
}

// Players returns the seated players in seat order. The slice is a copy but
// the players are shared.
func (t *Table) Players() []*Player {
	out := make([]*Player, len(t.players))
	copy(out, t.players)
	return out
}

// Seats returns the number of seated players
func (t *Table) Seats() int { return len(t.players) }

// Seat returns the player at seat i, wrapping around the table
func (t *Table) Seat(i int) *Player {
	n := len(t.players)
	return t.players[((i%n)+n)%n]
}

// Lookup finds a player by name
func (t *Table) Lookup(name string) (*Player, error) {
	for _, p := range t.players {
		if p.name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, name)
}

// Board returns a copy of the community cards
func (t *Table) Board() []deck.Card {
	out := make([]deck.Card, len(t.board))
	copy(out, t.board)
	return out
}

// Muck returns a copy of the cards burned this hand
func (t *Table) Muck() []deck.Card {
	out := make([]deck.Card, len(t.muck))
	copy(out, t.muck)
	return out
}

// History returns the boards of completed hands, oldest first
func (t *Table) History() [][]deck.Card {
	out := make([][]deck.Card, len(t.history))
	copy(out, t.history)
	return out
}

func (t *Table) Pot() int { return t.pot }

// DeckRemaining returns a copy of the undealt cards
func (t *Table) DeckRemaining() []deck.Card {
	return t.deck.Cards()
}

// liveCards lists every card dealt this hand: hole cards, the board and
// the muck
func (t *Table) liveCards() []deck.Card {
	live := make([]deck.Card, 0, len(t.players)*deck.HoleCards+len(t.board)+len(t.muck))
	for _, p := range t.players {
		live = append(live, p.hole.Cards()...)
	}
	live = append(live, t.board...)
	return append(live, t.muck...)
}

// archiveBoard records the board of a finished hand
func (t *Table) archiveBoard() {
	t.history = append(t.history, t.Board())
}

// reset clears the board and every player's cards for a new hand. An
// unclaimed pot carries over.
func (t *Table) reset(d *deck.Deck) {
	t.deck = d
	t.board = t.board[:0]
	t.muck = t.muck[:0]
	for _, p := range t.players {
		p.resetHand()
	}
}

func (t *Table) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Board: [%s] Pot: %d\n", deck.FormatCards(t.board), t.pot)
	for i, p := range t.players {
		fmt.Fprintf(&sb, "  Seat %d: %s\n", i, p)
	}
	return sb.String()
}
