package analytics

import (
	"fmt"

	"supplypro/internal/domain/stock"
)

// Bucket identifies which financial bucket an event's cost flows into.
type Bucket int

const (
	// BucketNone means the event updates item state only and contributes
	// to no bucket (unpriced, non-initial positive adjustments).
	BucketNone Bucket = iota

	// BucketPurchases holds priced inbound stock and initial stock.
	// Returns to supplier net against this bucket as negative purchases.
	BucketPurchases

	// BucketReturnsIn holds customer returns.
	BucketReturnsIn

	// BucketCOGS holds consumed stock: sales and all other outbound
	// movements not classified as write-off or supplier return.
	BucketCOGS

	// BucketWriteOff holds lost value: damage, destruction, scrap,
	// expiry, loss.
	BucketWriteOff
)

// classifyInbound routes a positive quantity change.
// Customer returns go to returns-in; priced receipts and initial stock are
// purchases; unpriced manual corrections update state only, so untraceable
// adjustments never inflate purchase totals.
func classifyInbound(reason stock.Reason, priced bool) Bucket {
	if reason == stock.ReasonReturnedByCustomer {
		return BucketReturnsIn
	}
	if priced || reason == stock.ReasonInitialStock {
		return BucketPurchases
	}
	return BucketNone
}

// classifyOutbound routes a negative quantity change. Every known reason is
// listed explicitly; an unlisted tag is a data-integrity fault, not a COGS
// entry, because silently miscategorizing a new reason would corrupt the
// financial totals.
func classifyOutbound(reason stock.Reason) (Bucket, error) {
	switch reason {
	case stock.ReasonReturnedToSupplier:
		return BucketPurchases, nil

	case stock.ReasonDamaged,
		stock.ReasonDestroyed,
		stock.ReasonScrapped,
		stock.ReasonExpired,
		stock.ReasonLost:
		return BucketWriteOff, nil

	case stock.ReasonSold,
		stock.ReasonManualUpdate,
		stock.ReasonPriceChange,
		stock.ReasonInitialStock,
		stock.ReasonReturnedByCustomer:
		// Catch-all for consumption: negative manual adjustments and any
		// reason that is normally inbound but arrived with a negative delta.
		return BucketCOGS, nil

	default:
		return BucketNone, fmt.Errorf("unclassifiable stock change reason %q", reason)
	}
}
