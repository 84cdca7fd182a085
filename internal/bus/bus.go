// Package bus provides the site-wide broadcast channel. Any page
// component can raise a signal (say, a promotional popup asking the chat
// widget to open) and any listener can observe it, without ambient
// globals: both ends hold an explicit *Bus reference.
package bus

import "sync"

// Topic for the cross-component "please open the chat widget" signal.
const TopicOpenChat = "chat.open"

// Event is one broadcast notification.
type Event struct {
	Topic   string `json:"topic"`
	Payload string `json:"payload,omitempty"`
}

// Bus fans events out to subscribers. Publish never blocks; a subscriber
// whose buffer is full misses the event.
type Bus struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener. The returned cancel func releases the
// subscription and closes the channel; it is safe to call twice.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, 8)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers the event to every current subscriber.
func (b *Bus) Publish(evt Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs {
		select {
		case sub <- evt:
		default:
		}
	}
}
