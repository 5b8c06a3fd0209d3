// Package events implements the in-process domain event bus. Aggregates
// record events while they mutate in memory; once the enclosing operation
// has persisted the aggregate, the bus flushes the queue to every handler
// registered for each event's name.
package events

import (
	"context"
	"time"
)

// Event is a fact recorded by an aggregate describing a significant state
// transition. Implementations carry a live reference to the aggregate or
// value captured at creation time, not a re-fetched copy.
type Event interface {
	// EventName identifies the event type for handler lookup.
	EventName() string
	// OccurredAt is the time the event was recorded.
	OccurredAt() time.Time
	// AggregateID is the id of the aggregate that raised the event.
	AggregateID() string
}

// Handler reacts to a dispatched event. A handler error is logged by the
// bus and never rolls back the operation that raised the event.
type Handler func(ctx context.Context, event Event) error

// Source is the aggregate side of the bus contract. Any struct embedding
// Recorder satisfies it.
type Source interface {
	Events() []Event
	ClearEvents()
}

// Recorder holds the queue of pending events for one aggregate.
// Embed it into an aggregate struct; for gorm models tag the embedded
// field with `gorm:"-"` so the queue never hits the database.
type Recorder struct {
	pending []Event
}

// Record appends an event to the queue. The aggregate stays "dirty" until
// the bus dispatches and clears it.
func (r *Recorder) Record(event Event) {
	r.pending = append(r.pending, event)
}

// Events returns the queued events in the order they were recorded.
func (r *Recorder) Events() []Event {
	return r.pending
}

// ClearEvents empties the queue.
func (r *Recorder) ClearEvents() {
	r.pending = nil
}
