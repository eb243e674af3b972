// Package notify provides ordered multicast dispatch to subscribers.
package notify

import "sync"

// Subscription is the stable handle returned by Subscribe. Unsubscribing
// uses the handle, never structural equality of the callback.
type Subscription struct {
	id uint64
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Hub delivers values to subscribers synchronously, in subscription order.
type Hub[T any] struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscriber[T]
}

// NewHub creates an empty hub.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{}
}

// Subscribe registers a callback and returns its handle. Callbacks run
// synchronously inside Publish; they must not publish to the same hub.
func (h *Hub[T]) Subscribe(fn func(T)) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.subs = append(h.subs, subscriber[T]{id: h.nextID, fn: fn})
	return &Subscription{id: h.nextID}
}

// Unsubscribe removes the subscriber for the handle. A nil or unknown
// handle is a no-op.
func (h *Hub[T]) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, s := range h.subs {
		if s.id == sub.id {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}

// Publish invokes every current subscriber with value, in subscription
// order, and returns once all callbacks have run.
func (h *Hub[T]) Publish(value T) {
	h.mu.Lock()
	snapshot := make([]subscriber[T], len(h.subs))
	copy(snapshot, h.subs)
	h.mu.Unlock()

	for _, s := range snapshot {
		s.fn(value)
	}
}

// Len returns the number of current subscribers.
func (h *Hub[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
