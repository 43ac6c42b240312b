// Package signal is a small in-process publish-subscribe bus for UI-side
// signals. The list controller does not own scroll or input concerns; it
// only reacts to events delivered here by whatever renders the list.
package signal

import "sync"

// Event types emitted by the presentation layer.
const (
	SentinelVisible = "list:sentinel_visible"
	SortChanged     = "list:sort_changed"
)

// Event is one published signal.
type Event struct {
	Type    string
	Payload string
}

// Bus fans events out to subscribers. Delivery is best-effort: a subscriber
// with a full channel misses the event rather than blocking the publisher.
type Bus struct {
	mu          sync.RWMutex
	subscribers []chan Event
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe returns a channel receiving future events.
func (b *Bus) Subscribe() chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, 10)
	b.subscribers = append(b.subscribers, ch)
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (b *Bus) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			close(ch)
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all current subscribers.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := make([]chan Event, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- event:
		default:
		}
	}
}
