// Package stock provides the append-only stock event log.
// Every quantity or price change to an inventory item is recorded here
// and later replayed by the analytics services.
package stock

import (
	"fmt"
	"time"

	"supplypro/internal/core/id"
	"supplypro/internal/core/types"
)

// Reason explains why stock quantity changed.
// The set is closed: unknown tags are rejected at the boundary because a
// mis-categorized event would corrupt financial totals downstream.
type Reason string

const (
	// ReasonInitialStock is the initial quantity entered when an item is created.
	ReasonInitialStock Reason = "INITIAL_STOCK"

	// ReasonManualUpdate is a manual correction (e.g. discrepancy fix).
	ReasonManualUpdate Reason = "MANUAL_UPDATE"

	// ReasonPriceChange records a price update with no quantity movement.
	ReasonPriceChange Reason = "PRICE_CHANGE"

	// ReasonSold is stock sold to a customer (outbound).
	ReasonSold Reason = "SOLD"

	// ReasonScrapped is stock scrapped by policy or internal decision.
	ReasonScrapped Reason = "SCRAPPED"

	// ReasonDestroyed is stock destroyed beyond use.
	ReasonDestroyed Reason = "DESTROYED"

	// ReasonDamaged is stock damaged but not yet scrapped or returned.
	ReasonDamaged Reason = "DAMAGED"

	// ReasonExpired is stock past its expiration date.
	ReasonExpired Reason = "EXPIRED"

	// ReasonLost is stock missing during handling, shipping, or storage.
	ReasonLost Reason = "LOST"

	// ReasonReturnedToSupplier is stock sent back to the supplier.
	ReasonReturnedToSupplier Reason = "RETURNED_TO_SUPPLIER"

	// ReasonReturnedByCustomer is stock returned by a customer.
	ReasonReturnedByCustomer Reason = "RETURNED_BY_CUSTOMER"
)

// allReasons lists every valid tag for parsing and validation.
var allReasons = map[Reason]struct{}{
	ReasonInitialStock:       {},
	ReasonManualUpdate:       {},
	ReasonPriceChange:        {},
	ReasonSold:               {},
	ReasonScrapped:           {},
	ReasonDestroyed:          {},
	ReasonDamaged:            {},
	ReasonExpired:            {},
	ReasonLost:               {},
	ReasonReturnedToSupplier: {},
	ReasonReturnedByCustomer: {},
}

// ParseReason converts a string tag into a Reason.
// Unknown tags are an error, never silently defaulted.
func ParseReason(s string) (Reason, error) {
	r := Reason(s)
	if _, ok := allReasons[r]; !ok {
		return "", fmt.Errorf("unknown stock change reason %q", s)
	}
	return r, nil
}

// Valid reports whether the reason is one of the known tags.
func (r Reason) Valid() bool {
	_, ok := allReasons[r]
	return ok
}

// Event is a single immutable entry in the stock event log.
// QuantityChange is signed: positive = inbound, negative = outbound,
// zero = price-only adjustment.
type Event struct {
	ID             id.ID        `db:"id"`
	ItemID         id.ID        `db:"item_id"`
	ItemName       string       `db:"item_name"`
	SupplierID     string       `db:"supplier_id"`
	QuantityChange int64        `db:"quantity_change"`
	Reason         Reason       `db:"reason"`
	PriceAtChange  *types.Money `db:"price_at_change"`
	CreatedBy      string       `db:"created_by"`
	OccurredAt     time.Time    `db:"occurred_at"`
}

// Inbound reports whether the event adds stock.
func (e Event) Inbound() bool { return e.QuantityChange > 0 }

// Outbound reports whether the event removes stock.
func (e Event) Outbound() bool { return e.QuantityChange < 0 }

// EventFilter narrows event log queries.
type EventFilter struct {
	ItemName   string
	SupplierID string
	CreatedBy  string
	From       *time.Time
	To         *time.Time
	MinChange  *int64
	MaxChange  *int64

	Limit  int
	Offset int
}
