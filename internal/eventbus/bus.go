// Package eventbus provides the in-process publish/subscribe channel that
// keeps connected admin and player views consistent with server state.
// Delivery is best-effort to currently-connected subscribers only;
// disconnected clients reconcile through a full-state pull when they return.
package eventbus

import (
	"sync"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_bus.go github.com/huntlabs/treasurehunt/internal/eventbus Bus

// DefaultBufferSize is the per-subscriber outbound queue depth
const DefaultBufferSize = 16

// Bus fans state-change events out to subscribed observers with room-scoped
// targeting. Publish never blocks on a slow subscriber.
type Bus interface {
	// Publish delivers an event to every subscriber the room reaches.
	// RoomBroadcast reaches all subscribers; RoomAdmin only admin subscribers.
	Publish(room Room, event Event)

	// Subscribe registers an observer in the given room
	Subscribe(room Room) *Subscription
}

// Subscription is one observer's handle on the bus. Events arrive on C until
// Close is called, after which C is closed.
type Subscription struct {
	// C receives the subscriber's events
	C <-chan Event

	id   int
	room Room
	bus  *memoryBus
	ch   chan Event
}

// Room returns the room this subscription was opened in.
func (s *Subscription) Room() Room {
	return s.room
}

// Close removes the subscription from the bus and closes C.
func (s *Subscription) Close() {
	s.bus.unsubscribe(s)
}

// Config holds configuration for the in-memory bus
type Config struct {
	// BufferSize is the per-subscriber queue depth; DefaultBufferSize when zero
	BufferSize int
}

// memoryBus implements Bus with per-subscriber bounded queues
type memoryBus struct {
	mu         sync.Mutex
	nextID     int
	bufferSize int
	subs       map[int]*Subscription
}

// New creates a new in-memory event bus
func New(cfg *Config) *memoryBus {
	bufferSize := DefaultBufferSize
	if cfg != nil && cfg.BufferSize > 0 {
		bufferSize = cfg.BufferSize
	}

	return &memoryBus{
		bufferSize: bufferSize,
		subs:       make(map[int]*Subscription),
	}
}

// Subscribe registers an observer in the given room
func (b *memoryBus) Subscribe(room Room) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)
	sub := &Subscription{
		C:    ch,
		id:   b.nextID,
		room: room,
		bus:  b,
		ch:   ch,
	}
	b.nextID++
	b.subs[sub.id] = sub

	return sub
}

// Publish delivers an event to every subscriber the room reaches. Slow
// subscribers lose their oldest queued event rather than stalling the
// publisher; these are UI-freshness events, not must-deliver ones.
func (b *memoryBus) Publish(room Room, event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		if room == RoomAdmin && sub.room != RoomAdmin {
			continue
		}
		b.offer(sub, event)
	}
}

// offer enqueues without blocking, dropping the oldest queued event on overflow
func (b *memoryBus) offer(sub *Subscription, event Event) {
	select {
	case sub.ch <- event:
		return
	default:
	}

	// Queue full: drop the oldest entry, then retry once. A concurrent reader
	// may race the drain, so the retry stays non-blocking too.
	select {
	case <-sub.ch:
	default:
	}
	select {
	case sub.ch <- event:
	default:
	}
}

// unsubscribe removes a subscription and closes its channel
func (b *memoryBus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub.id]; !ok {
		return
	}
	delete(b.subs, sub.id)
	close(sub.ch)
}
