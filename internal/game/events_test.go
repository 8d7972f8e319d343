package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusDeliversInOrder(t *testing.T) {
	bus := NewEventBus()
	first, second := &recorder{}, &recorder{}
	bus.Subscribe(first)
	bus.Subscribe(second)

	bus.Publish(RoundStartEvent{Round: 1})
	bus.Publish(PayoutEvent{Round: 1, Awarded: 5})

	require.Len(t, first.events, 2)
	require.Len(t, second.events, 2)
	assert.Equal(t, EventTypeRoundStart, first.events[0].EventType())
	assert.Equal(t, EventTypePayout, first.events[1].EventType())
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	rec := &recorder{}
	bus.Subscribe(rec)
	bus.Unsubscribe(rec)

	bus.Publish(GameOverEvent{})
	assert.Empty(t, rec.events)
}

func TestEventSubscriberFunc(t *testing.T) {
	bus := NewEventBus()
	var got []EventType
	bus.Subscribe(EventSubscriberFunc(func(e GameEvent) {
		got = append(got, e.EventType())
	}))

	bus.Publish(HandDealtEvent{})
	bus.Publish(GambleStepEvent{})
	assert.Equal(t, []EventType{EventTypeHandDealt, EventTypeGambleStep}, got)
}

func TestEngineEventSequence(t *testing.T) {
	ui := &scriptedUI{
		bets:     []int{5},
		holds:    [][]int{holdAll},
		yesNo:    []bool{true, false},
		choices:  []string{"red"},
		maxDeals: 1,
	}
	e, rec := newTestEngine(t, ui, &scriptedRand{}, []string{"JhJd3c5s9h"})

	_, err := e.Run(t.Context())
	require.NoError(t, err)

	var types []EventType
	for _, ev := range rec.events {
		types = append(types, ev.EventType())
		assert.False(t, ev.Timestamp().IsZero(), "%s has a timestamp", ev.EventType())
	}
	assert.Equal(t, []EventType{
		EventTypeRoundStart,
		EventTypeHandDealt,
		EventTypeHandEvaluated,
		EventTypeGambleStep,
		EventTypePayout,
		EventTypeGameOver,
	}, types)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "awaiting-bet", AwaitingBet.String())
	assert.Equal(t, "hold-selection", HoldSelection.String())
	assert.Equal(t, "game-over", GameOver.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
