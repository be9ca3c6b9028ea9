package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleEventBus_PublishToMatchingSubscriber(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe([]EventType{EventTypeConnectionStatus})

	bus.Publish(ConnectionStatusEvent{Connected: true, EventTime: time.Now()})
	bus.Publish(MessageReceivedEvent{EventTime: time.Now()})

	select {
	case ev := <-ch:
		assert.Equal(t, EventTypeConnectionStatus, ev.Type())
	default:
		t.Fatal("expected event on channel")
	}

	select {
	case ev := <-ch:
		t.Fatalf("unexpected second event: %v", ev)
	default:
	}
}

func TestSimpleEventBus_SubscribeAllTypes(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe(nil)

	bus.Publish(MessageReceivedEvent{EventTime: time.Now()})
	bus.Publish(ConnectionStatusEvent{EventTime: time.Now()})

	require.Len(t, drain(ch, 2), 2)
}

func TestSimpleEventBus_OnDropCalledWhenFull(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe(nil)

	var drops int
	bus.OnDrop = func() { drops++ }

	for i := 0; i < 200; i++ {
		bus.Publish(MessageReceivedEvent{EventTime: time.Now()})
	}

	assert.Greater(t, drops, 0)
	_ = ch
}

func TestSimpleEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe(nil)

	bus.Unsubscribe(ch)

	_, ok := <-ch
	assert.False(t, ok, "channel should be closed after unsubscribe")

	// Publishing after unsubscribe must not panic (no subscriber left to deliver to).
	assert.NotPanics(t, func() {
		bus.Publish(MessageReceivedEvent{EventTime: time.Now()})
	})
}

func drain(ch <-chan Event, n int) []Event {
	events := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, <-ch)
	}
	return events
}
