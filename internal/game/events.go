package game

import (
	"time"

	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/evaluator"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRoundStart    EventType = "round_start"
	EventTypeHandDealt     EventType = "hand_dealt"
	EventTypeHandEvaluated EventType = "hand_evaluated"
	EventTypeGambleStep    EventType = "gamble_step"
	EventTypePayout        EventType = "payout"
	EventTypeGameOver      EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens during a session
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published after the bet has been taken
type RoundStartEvent struct {
	Round         int
	Bet           int
	CreditsBefore int
	CreditsAfter  int
	timestamp     time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// HandDealtEvent is published when the initial five cards are dealt
type HandDealtEvent struct {
	Round     int
	Hand      deck.Hand
	timestamp time.Time
}

func (e HandDealtEvent) EventType() EventType { return EventTypeHandDealt }
func (e HandDealtEvent) Timestamp() time.Time { return e.timestamp }

// HandEvaluatedEvent is published once the redraw is complete and scored
type HandEvaluatedEvent struct {
	Round     int
	Held      []int
	Final     deck.Hand
	Result    evaluator.Result
	WinAmount int
	timestamp time.Time
}

func (e HandEvaluatedEvent) EventType() EventType { return EventTypeHandEvaluated }
func (e HandEvaluatedEvent) Timestamp() time.Time { return e.timestamp }

// GambleStepEvent is published for every double-up guess
type GambleStepEvent struct {
	Round     int
	Step      GambleStep
	timestamp time.Time
}

func (e GambleStepEvent) EventType() EventType { return EventTypeGambleStep }
func (e GambleStepEvent) Timestamp() time.Time { return e.timestamp }

// PayoutEvent is published when the round's win is added to credits
type PayoutEvent struct {
	Round        int
	Awarded      int
	CreditsAfter int
	timestamp    time.Time
}

func (e PayoutEvent) EventType() EventType { return EventTypePayout }
func (e PayoutEvent) Timestamp() time.Time { return e.timestamp }

// GameOverEvent is published once, when the session ends
type GameOverEvent struct {
	Summary   Summary
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

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

// SimpleEventBus delivers events synchronously, in subscription order
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{}
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

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// EventSubscriberFunc adapts a function to EventSubscriber. Function values
// are not comparable, so subscribers made this way cannot be unsubscribed.
type EventSubscriberFunc func(GameEvent)

// OnEvent calls f(event)
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }
