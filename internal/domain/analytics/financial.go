package analytics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"supplypro/internal/core/apperror"
	"supplypro/internal/core/id"
	"supplypro/internal/core/types"
	"supplypro/internal/domain/stock"
	"supplypro/pkg/logger"
)

var tracer = otel.Tracer("supplypro/analytics")

// EventSource supplies the ordered stock event stream for replay.
// Contract: all events with OccurredAt <= end, grouped by item, strictly
// ascending OccurredAt within each item, ties broken by insertion order.
type EventSource interface {
	StreamEventsUpTo(ctx context.Context, end time.Time, supplierID string) ([]stock.Event, error)
}

// FinancialService computes WAC-based financial summaries by replaying the
// stock event log. The replay is a pure single-pass computation: each call
// owns its own per-item state map, so concurrent requests need no
// coordination.
type FinancialService struct {
	events EventSource
}

// NewFinancialService creates a new financial analytics service.
func NewFinancialService(events EventSource) *FinancialService {
	return &FinancialService{events: events}
}

// FinancialSummaryWAC produces the weighted-average-cost financial summary
// for the inclusive date window [from..to], optionally filtered to one
// supplier (blank = all suppliers).
//
// The stream is replayed in one pass: events before the window start build
// the opening state, events on or after it are classified into the five
// period buckets, and the final state map is the ending inventory. An
// item's opening contribution is captured the moment its history crosses
// the window boundary.
func (s *FinancialService) FinancialSummaryWAC(ctx context.Context, from, to time.Time, supplierID string) (*FinancialSummary, error) {
	if from.IsZero() || to.IsZero() {
		return nil, apperror.NewValidation("from and to dates must be provided")
	}
	if from.After(to) {
		return nil, apperror.NewValidation("from must be on or before to")
	}

	ctx, span := tracer.Start(ctx, "analytics.financial_summary_wac")
	defer span.End()
	span.SetAttributes(
		attribute.String("from", from.Format("2006-01-02")),
		attribute.String("to", to.Format("2006-01-02")),
		attribute.String("supplier_id", supplierID),
	)

	start := startOfDay(from)
	end := endOfDay(to)

	events, err := s.events.StreamEventsUpTo(ctx, end, supplierID)
	if err != nil {
		return nil, fmt.Errorf("stream stock events: %w", err)
	}
	span.SetAttributes(attribute.Int("event_count", len(events)))

	summary := &FinancialSummary{
		Method:    "WAC",
		FromDate:  from,
		ToDate:    to,
		Opening:   zeroTotal(),
		Purchases: zeroTotal(),
		ReturnsIn: zeroTotal(),
		COGS:      zeroTotal(),
		WriteOff:  zeroTotal(),
		Ending:    zeroTotal(),
	}

	state := make(map[id.ID]ItemState)
	// Items whose opening contribution has been captured. An item crosses
	// the boundary at its first in-window event; items whose entire history
	// predates the window are collected after the loop.
	crossed := make(map[id.ID]bool)

	for _, e := range events {
		// Events are scanned raw from storage. A tag outside the closed
		// reason set is corrupt data in either direction; fail before it
		// reaches a bucket.
		if !e.Reason.Valid() {
			return nil, apperror.NewDataIntegrity(fmt.Sprintf("unclassifiable stock change reason %q", e.Reason))
		}

		st := state[e.ItemID]

		if e.OccurredAt.Before(start) {
			// Opening phase: update state, discard issue costs.
			switch {
			case e.Inbound():
				state[e.ItemID] = applyInbound(st, e.QuantityChange, inboundUnitCost(e, st))
			case e.Outbound():
				res := issue(st, -e.QuantityChange)
				state[e.ItemID] = res.State
			}
			continue
		}

		// Boundary is inclusive of the window start: this event belongs to
		// the period phase, and the item's state right now is its opening.
		if !crossed[e.ItemID] {
			summary.Opening.Qty += st.OnHand
			summary.Opening.Value = summary.Opening.Value.Add(st.Value())
			crossed[e.ItemID] = true
		}

		switch {
		case e.Inbound():
			unit := inboundUnitCost(e, st)
			state[e.ItemID] = applyInbound(st, e.QuantityChange, unit)

			cost := unit.Mul(types.MoneyFromInt64(e.QuantityChange))
			switch classifyInbound(e.Reason, e.PriceAtChange != nil) {
			case BucketReturnsIn:
				summary.ReturnsIn.Qty += e.QuantityChange
				summary.ReturnsIn.Value = summary.ReturnsIn.Value.Add(cost)
			case BucketPurchases:
				summary.Purchases.Qty += e.QuantityChange
				summary.Purchases.Value = summary.Purchases.Value.Add(cost)
			}

		case e.Outbound():
			out := -e.QuantityChange
			res := issue(st, out)
			state[e.ItemID] = res.State

			if res.Shortfall > 0 {
				// Lenient policy: clamp instead of failing so analytics stay
				// available despite upstream defects, but surface the anomaly.
				logger.Warn(ctx, "stock issue overdraw clamped to zero",
					"item_id", e.ItemID,
					"requested", out,
					"available", st.OnHand,
					"shortfall", res.Shortfall,
					"occurred_at", e.OccurredAt,
				)
			}

			bucket, err := classifyOutbound(e.Reason)
			if err != nil {
				return nil, apperror.NewDataIntegrity(err.Error())
			}
			switch bucket {
			case BucketPurchases:
				// Return to supplier nets against purchases.
				summary.Purchases.Qty -= out
				summary.Purchases.Value = summary.Purchases.Value.Sub(res.Cost)
			case BucketWriteOff:
				summary.WriteOff.Qty += out
				summary.WriteOff.Value = summary.WriteOff.Value.Add(res.Cost)
			case BucketCOGS:
				summary.COGS.Qty += out
				summary.COGS.Value = summary.COGS.Value.Add(res.Cost)
			}
		}
		// Zero-delta events (pure price changes) fall through: they mark the
		// boundary crossing above but touch neither state nor buckets.
	}

	// Items that never produced an in-window event: their state at the end
	// of the stream is also their state at the window start.
	for itemID, st := range state {
		if !crossed[itemID] {
			summary.Opening.Qty += st.OnHand
			summary.Opening.Value = summary.Opening.Value.Add(st.Value())
		}
		summary.Ending.Qty += st.OnHand
		summary.Ending.Value = summary.Ending.Value.Add(st.Value())
	}

	return summary, nil
}

// inboundUnitCost picks the unit cost for an inbound event: the recorded
// price when present, else the item's current WAC so unpriced corrections
// keep cost continuity.
func inboundUnitCost(e stock.Event, st ItemState) types.Money {
	if e.PriceAtChange != nil {
		return *e.PriceAtChange
	}
	return st.AvgCost
}

func zeroTotal() BucketTotal {
	return BucketTotal{Qty: 0, Value: types.Zero()}
}

func startOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

func endOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999999999, d.Location())
}
