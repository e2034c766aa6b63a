package game

import "errors"

var (
	// ErrMissingBlindConfiguration is returned when a blind amount is unset
	// at the point blinds are due.
	ErrMissingBlindConfiguration = errors.New("blind amount not configured")

	// ErrInvalidPhaseTransition is returned when a phase is requested out of
	// order, including a sixth community card.
	ErrInvalidPhaseTransition = errors.New("invalid phase transition")

	ErrPlayerNotFound = errors.New("player not found")

	// ErrTurnInvariant signals that the first seat to act is not the seat
	// after the big blind. It indicates a bug, not a playing mistake.
	ErrTurnInvariant = errors.New("turn invariant violated")

	ErrInvalidConfig = errors.New("invalid table configuration")
)
