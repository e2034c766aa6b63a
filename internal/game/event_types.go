package game

// EventType represents a game event type with type safety
type EventType string

// EventType constants for events published while a hand is dealt
const (
	EventTypePhaseChange  EventType = "phase_change"
	EventTypeBlindsPosted EventType = "blinds_posted"
	EventTypeDealSkipped  EventType = "deal_skipped"
	EventTypeDeckReplaced EventType = "deck_replaced"
	EventTypeEquity       EventType = "equity"
	EventTypeDecision     EventType = "decision"
	EventTypeShowdown     EventType = "showdown"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}
