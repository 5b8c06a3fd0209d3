package events

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Bus maps event names to handlers. One instance is built at bootstrap and
// handed to every component that dispatches or subscribes; it is never a
// package-level singleton. Registration happens at startup only, dispatch
// runs on the goroutine that completed the triggering persistence call.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Register subscribes a handler to an event name. Handlers for the same
// name run in registration order.
func (b *Bus) Register(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], handler)

	log.Debug().Str("event", name).Int("handlers", len(b.handlers[name])).
		Msg("event handler registered")
}

// Dispatch flushes the aggregate's queued events. Each event is delivered
// to its handlers in registration order; a failing handler is logged and
// the remaining handlers still run, since the triggering operation has
// already been committed. The queue is cleared unconditionally.
func (b *Bus) Dispatch(ctx context.Context, source Source) {
	defer source.ClearEvents()

	for _, event := range source.Events() {
		b.mu.RLock()
		handlers := b.handlers[event.EventName()]
		b.mu.RUnlock()

		for _, handler := range handlers {
			if err := handler(ctx, event); err != nil {
				log.Error().Err(err).
					Str("event", event.EventName()).
					Str("aggregate_id", event.AggregateID()).
					Msg("event handler failed")
			}
		}
	}
}

// Clear drops the aggregate's queued events without invoking any handler.
// Use it when the operation that recorded the events was rolled back.
func (b *Bus) Clear(source Source) {
	source.ClearEvents()
}
