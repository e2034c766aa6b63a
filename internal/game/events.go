package game

import (
	"time"

	"github.com/lox/holdem-engine/internal/deck"
)

// GameEvent represents anything observable that happens while a hand is dealt
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// PhaseChangeEvent is published after every successful phase transition
type PhaseChangeEvent struct {
	From      Phase
	To        Phase
	Board     []deck.Card
	timestamp time.Time
}

func (e PhaseChangeEvent) EventType() EventType { return EventTypePhaseChange }
func (e PhaseChangeEvent) Timestamp() time.Time { return e.timestamp }

// NewPhaseChangeEvent creates a phase change event. The board is copied.
func NewPhaseChangeEvent(from, to Phase, board []deck.Card, at time.Time) PhaseChangeEvent {
	cards := make([]deck.Card, len(board))
	copy(cards, board)
	return PhaseChangeEvent{
		From:      from,
		To:        to,
		Board:     cards,
		timestamp: at,
	}
}

// BlindsPostedEvent is published once both blinds are in the pot
type BlindsPostedEvent struct {
	SmallBlindSeat int
	BigBlindSeat   int
	SmallBlind     int
	BigBlind       int
	Pot            int
	timestamp      time.Time
}

func (e BlindsPostedEvent) EventType() EventType { return EventTypeBlindsPosted }
func (e BlindsPostedEvent) Timestamp() time.Time { return e.timestamp }

// DealSkippedEvent is published when a player's hole cards could not be
// dealt. The player sits the rest of the hand out.
type DealSkippedEvent struct {
	Seat      int
	Player    string
	Err       error
	timestamp time.Time
}

func (e DealSkippedEvent) EventType() EventType { return EventTypeDealSkipped }
func (e DealSkippedEvent) Timestamp() time.Time { return e.timestamp }

// DeckReplacedEvent is published when the deck ran dry mid-hand and a fresh
// deck without the live cards took its place
type DeckReplacedEvent struct {
	Phase     Phase
	Excluded  int
	Remaining int
	timestamp time.Time
}

func (e DeckReplacedEvent) EventType() EventType { return EventTypeDeckReplaced }
func (e DeckReplacedEvent) Timestamp() time.Time { return e.timestamp }

// EquityEvent carries an advisory equity estimate. Shares are indexed like
// Players.
type EquityEvent struct {
	Players    []string
	Shares     []float64
	Tie        float64
	Exhaustive bool
	Elapsed    time.Duration
	timestamp  time.Time
}

func (e EquityEvent) EventType() EventType { return EventTypeEquity }
func (e EquityEvent) Timestamp() time.Time { return e.timestamp }

// DecisionLoggedEvent is published when a decision note is recorded
type DecisionLoggedEvent struct {
	Decision  Decision
	timestamp time.Time
}

func (e DecisionLoggedEvent) EventType() EventType { return EventTypeDecision }
func (e DecisionLoggedEvent) Timestamp() time.Time { return e.timestamp }

// ShowdownEvent is published with the winners of a hand
type ShowdownEvent struct {
	Result    ShowdownResult
	timestamp time.Time
}

func (e ShowdownEvent) EventType() EventType { return EventTypeShowdown }
func (e ShowdownEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish delivers an event to every subscriber in subscription order
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// EventRecorder is a subscriber that keeps every event it sees
type EventRecorder struct {
	Events []GameEvent
}

func (r *EventRecorder) OnEvent(event GameEvent) {
	r.Events = append(r.Events, event)
}

// OfType returns the recorded events of the given type in order
func (r *EventRecorder) OfType(t EventType) []GameEvent {
	var out []GameEvent
	for _, e := range r.Events {
		if e.EventType() == t {
			out = append(out, e)
		}
	}
	return out
}
