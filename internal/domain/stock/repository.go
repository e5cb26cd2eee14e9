package stock

import (
	"context"
	"time"
)

// Repository defines persistence operations for the stock event log.
// The log is append-only: events are never updated or deleted.
type Repository interface {
	// Append inserts a new event.
	Append(ctx context.Context, e *Event) error

	// List returns events matching the filter, newest first.
	List(ctx context.Context, filter EventFilter) ([]Event, error)

	// StreamEventsUpTo returns all events with OccurredAt <= end, optionally
	// restricted to items of one supplier. Ordering contract: grouped by
	// item, ascending OccurredAt within each item, ties broken by insertion
	// order. Callers must not re-sort or mutate the slice.
	StreamEventsUpTo(ctx context.Context, end time.Time, supplierID string) ([]Event, error)
}
