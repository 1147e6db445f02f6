// Package realtime fans events out to in-process subscribers.
package realtime

import "sync"

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 16

// Broadcaster publishes events to every subscriber without blocking.
type Broadcaster[T any] struct {
	mu     sync.Mutex
	buffer int
	subs   map[chan T]struct{}
	closed bool
}

// NewBroadcaster creates an empty broadcaster. A non-positive buffer uses DefaultBuffer.
func NewBroadcaster[T any](buffer int) *Broadcaster[T] {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Broadcaster[T]{
		buffer: buffer,
		subs:   make(map[chan T]struct{}),
	}
}

// Subscribe registers a new subscriber and returns its event channel.
// After Close the returned channel is already closed.
func (b *Broadcaster[T]) Subscribe() chan T {
	ch := make(chan T, b.buffer)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs[ch] = struct{}{}
	}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Broadcaster[T]) Unsubscribe(ch chan T) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers an event to all subscribers and returns how many dropped it.
func (b *Broadcaster[T]) Publish(event T) (dropped int) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
			// Lagging subscriber; delivery is at-most-once.
			dropped++
		}
	}
	b.mu.Unlock()
	return dropped
}

// Close closes every subscriber channel and rejects new subscribers.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}

// Len returns the number of subscribers.
func (b *Broadcaster[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
