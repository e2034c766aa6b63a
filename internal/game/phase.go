package game

import "fmt"

// Phase is a step in the deal of a single hand. Phases only move forward.
type Phase int

const (
	Created Phase = iota
	BlindsPosted
	HoleCardsDealt
	FlopDealt
	TurnDealt
	RiverDealt
	Showdown
)

func (p Phase) String() string {
	switch p {
	case Created:
		return "Created"
	case BlindsPosted:
		return "BlindsPosted"
	case HoleCardsDealt:
		return "HoleCardsDealt"
	case FlopDealt:
		return "FlopDealt"
	case TurnDealt:
		return "TurnDealt"
	case RiverDealt:
		return "RiverDealt"
	case Showdown:
		return "Showdown"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// BoardSize is the number of community cards on the table in this phase
func (p Phase) BoardSize() int {
	switch p {
	case FlopDealt:
		return 3
	case TurnDealt:
		return 4
	case RiverDealt, Showdown:
		return 5
	default:
		return 0
	}
}

// next is the only phase each phase may advance to
var next = map[Phase]Phase{
	Created:        BlindsPosted,
	BlindsPosted:   HoleCardsDealt,
	HoleCardsDealt: FlopDealt,
	FlopDealt:      TurnDealt,
	TurnDealt:      RiverDealt,
	RiverDealt:     Showdown,
}

// checkTransition returns ErrInvalidPhaseTransition unless to directly
// follows from.
func checkTransition(from, to Phase) error {
	if n, ok := next[from]; ok && n == to {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidPhaseTransition, from, to)
}
