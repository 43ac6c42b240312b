package signal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()
	a := bus.Subscribe()
	b := bus.Subscribe()

	bus.Publish(Event{Type: SentinelVisible})

	for _, ch := range []chan Event{a, b} {
		select {
		case event := <-ch:
			assert.Equal(t, SentinelVisible, event.Type)
		case <-time.After(time.Second):
			t.Fatal("subscriber never received the event")
		}
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe()

	bus.Unsubscribe(ch)

	_, ok := <-ch
	require.False(t, ok, "channel should be closed")

	// Publishing after unsubscribe must not panic.
	bus.Publish(Event{Type: SortChanged})
}

func TestFullSubscriberNeverBlocksPublisher(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			bus.Publish(Event{Type: SentinelVisible})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher blocked on a full subscriber")
	}
	assert.Len(t, ch, cap(ch), "the buffer fills and the rest are dropped")
}
