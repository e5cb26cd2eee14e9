package analytics

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplypro/internal/core/apperror"
	"supplypro/internal/core/id"
	"supplypro/internal/core/types"
	"supplypro/internal/domain/stock"
)

// fakeEventSource serves a fixed event slice, honoring the replay ordering
// contract: filtered by end and supplier, grouped by item, ascending in time.
type fakeEventSource struct {
	events []stock.Event
}

func (f *fakeEventSource) StreamEventsUpTo(_ context.Context, end time.Time, supplierID string) ([]stock.Event, error) {
	var out []stock.Event
	for _, e := range f.events {
		if e.OccurredAt.After(end) {
			continue
		}
		if supplierID != "" && e.SupplierID != supplierID {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ItemID != out[j].ItemID {
			return out[i].ItemID.String() < out[j].ItemID.String()
		}
		return out[i].OccurredAt.Before(out[j].OccurredAt)
	})
	return out, nil
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
}

func ev(item id.ID, at time.Time, qty int64, reason stock.Reason, price types.Money) stock.Event {
	return stock.Event{
		ID:             id.New(),
		ItemID:         item,
		SupplierID:     "sup-1",
		QuantityChange: qty,
		Reason:         reason,
		PriceAtChange:  &price,
		OccurredAt:     at,
	}
}

func evUnpriced(item id.ID, at time.Time, qty int64, reason stock.Reason) stock.Event {
	return stock.Event{
		ID:             id.New(),
		ItemID:         item,
		SupplierID:     "sup-1",
		QuantityChange: qty,
		Reason:         reason,
		OccurredAt:     at,
	}
}

func summarize(t *testing.T, events []stock.Event, from, to time.Time) *FinancialSummary {
	t.Helper()
	svc := NewFinancialService(&fakeEventSource{events: events})
	summary, err := svc.FinancialSummaryWAC(context.Background(), from, to, "")
	require.NoError(t, err)
	return summary
}

func TestFinancialSummaryWAC_ValidatesDates(t *testing.T) {
	svc := NewFinancialService(&fakeEventSource{})

	_, err := svc.FinancialSummaryWAC(context.Background(), time.Time{}, day(20), "")
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.FinancialSummaryWAC(context.Background(), day(20), day(10), "")
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestFinancialSummaryWAC_OpeningFromPreWindowHistory(t *testing.T) {
	item := id.New()
	events := []stock.Event{
		ev(item, day(1), 100, stock.ReasonInitialStock, money(t, "10.00")),
	}

	s := summarize(t, events, day(10), day(20))

	assert.Equal(t, "WAC", s.Method)
	assert.Equal(t, int64(100), s.Opening.Qty)
	assertMoney(t, "1000.00", s.Opening.Value)

	assert.Equal(t, int64(0), s.Purchases.Qty)
	assert.Equal(t, int64(0), s.ReturnsIn.Qty)
	assert.Equal(t, int64(0), s.COGS.Qty)
	assert.Equal(t, int64(0), s.WriteOff.Qty)

	// Nothing moved in the window, so ending equals opening.
	assert.Equal(t, int64(100), s.Ending.Qty)
	assertMoney(t, "1000.00", s.Ending.Value)
}

func TestFinancialSummaryWAC_PurchaseSaleAndSupplierReturn(t *testing.T) {
	item := id.New()
	events := []stock.Event{
		ev(item, day(1), 100, stock.ReasonInitialStock, money(t, "10.00")),
		ev(item, day(11), 50, stock.ReasonManualUpdate, money(t, "12.00")),
		evUnpriced(item, day(12), -20, stock.ReasonSold),
		evUnpriced(item, day(13), -10, stock.ReasonReturnedToSupplier),
	}

	s := summarize(t, events, day(10), day(20))

	assert.Equal(t, int64(100), s.Opening.Qty)
	assertMoney(t, "1000.00", s.Opening.Value)

	// Purchase of 50 @ 12.00 moves the WAC to (100*10 + 50*12)/150 = 10.6667.
	// The supplier return of 10 nets against purchases at that WAC.
	assert.Equal(t, int64(40), s.Purchases.Qty)
	assertMoney(t, "493.3330", s.Purchases.Value)

	assert.Equal(t, int64(20), s.COGS.Qty)
	assertMoney(t, "213.3340", s.COGS.Value)

	assert.Equal(t, int64(120), s.Ending.Qty)
	assertMoney(t, "1280.0040", s.Ending.Value)
}

func TestFinancialSummaryWAC_WindowStartBoundaryIsPeriod(t *testing.T) {
	item := id.New()
	windowStart := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	events := []stock.Event{
		ev(item, day(1), 10, stock.ReasonInitialStock, money(t, "5.00")),
		// Exactly at the window start: period phase, not opening.
		ev(item, windowStart, 10, stock.ReasonManualUpdate, money(t, "7.00")),
	}

	s := summarize(t, events, day(10), day(20))

	assert.Equal(t, int64(10), s.Opening.Qty)
	assertMoney(t, "50.00", s.Opening.Value)

	assert.Equal(t, int64(10), s.Purchases.Qty)
	assertMoney(t, "70.00", s.Purchases.Value)

	assert.Equal(t, int64(20), s.Ending.Qty)
	assertMoney(t, "120.00", s.Ending.Value)
}

func TestFinancialSummaryWAC_OverdrawClampsAndCostsAvailable(t *testing.T) {
	item := id.New()
	events := []stock.Event{
		ev(item, day(11), 5, stock.ReasonInitialStock, money(t, "4.00")),
		evUnpriced(item, day(12), -8, stock.ReasonSold),
	}

	s := summarize(t, events, day(10), day(20))

	assert.Equal(t, int64(0), s.Opening.Qty)
	assert.Equal(t, int64(5), s.Purchases.Qty)
	assertMoney(t, "20.00", s.Purchases.Value)

	// Cost covers the five units that existed, not the eight requested.
	assert.Equal(t, int64(8), s.COGS.Qty)
	assertMoney(t, "20.00", s.COGS.Value)

	assert.Equal(t, int64(0), s.Ending.Qty)
	assertMoney(t, "0", s.Ending.Value)
}

func TestFinancialSummaryWAC_WriteOffAndCustomerReturn(t *testing.T) {
	item := id.New()
	events := []stock.Event{
		ev(item, day(1), 100, stock.ReasonInitialStock, money(t, "10.00")),
		evUnpriced(item, day(11), -10, stock.ReasonDamaged),
		evUnpriced(item, day(12), 5, stock.ReasonReturnedByCustomer),
		evUnpriced(item, day(13), -30, stock.ReasonSold),
	}

	s := summarize(t, events, day(10), day(20))

	assert.Equal(t, int64(10), s.WriteOff.Qty)
	assertMoney(t, "100.00", s.WriteOff.Value)

	// Unpriced customer return comes back at the current WAC.
	assert.Equal(t, int64(5), s.ReturnsIn.Qty)
	assertMoney(t, "50.00", s.ReturnsIn.Value)

	assert.Equal(t, int64(30), s.COGS.Qty)
	assertMoney(t, "300.00", s.COGS.Value)

	assert.Equal(t, int64(65), s.Ending.Qty)
	assertMoney(t, "650.00", s.Ending.Value)
}

func TestFinancialSummaryWAC_Conservation(t *testing.T) {
	// No supplier returns in this stream, so the identity is exact:
	// opening + purchases + returnsIn - cogs - writeOff == ending.
	item1, item2 := id.New(), id.New()
	events := []stock.Event{
		ev(item1, day(1), 100, stock.ReasonInitialStock, money(t, "10.00")),
		evUnpriced(item1, day(11), -10, stock.ReasonDamaged),
		evUnpriced(item1, day(12), 5, stock.ReasonReturnedByCustomer),
		evUnpriced(item1, day(13), -30, stock.ReasonSold),
		ev(item2, day(11), 20, stock.ReasonManualUpdate, money(t, "3.00")),
		evUnpriced(item2, day(14), -5, stock.ReasonSold),
	}

	s := summarize(t, events, day(10), day(20))

	lhs := s.Opening.Value.
		Add(s.Purchases.Value).
		Add(s.ReturnsIn.Value).
		Sub(s.COGS.Value).
		Sub(s.WriteOff.Value)
	assert.True(t, lhs.Equal(s.Ending.Value),
		"conservation violated: lhs=%s ending=%s", lhs.String(), s.Ending.Value.String())
}

func TestFinancialSummaryWAC_WACStableUnderSinglePrice(t *testing.T) {
	// All inbound events share one price, so the average never moves off it
	// no matter how issues interleave.
	item := id.New()
	events := []stock.Event{
		ev(item, day(1), 10, stock.ReasonInitialStock, money(t, "3.00")),
		evUnpriced(item, day(11), -4, stock.ReasonSold),
		ev(item, day(12), 25, stock.ReasonManualUpdate, money(t, "3.00")),
		evUnpriced(item, day(13), -11, stock.ReasonSold),
		ev(item, day(14), 7, stock.ReasonManualUpdate, money(t, "3.00")),
	}

	s := summarize(t, events, day(10), day(20))

	assert.Equal(t, int64(27), s.Ending.Qty)
	assertMoney(t, "81.00", s.Ending.Value)
}

func TestFinancialSummaryWAC_Idempotent(t *testing.T) {
	item := id.New()
	events := []stock.Event{
		ev(item, day(1), 100, stock.ReasonInitialStock, money(t, "10.00")),
		ev(item, day(11), 50, stock.ReasonManualUpdate, money(t, "12.00")),
		evUnpriced(item, day(12), -20, stock.ReasonSold),
	}
	svc := NewFinancialService(&fakeEventSource{events: events})

	first, err := svc.FinancialSummaryWAC(context.Background(), day(10), day(20), "")
	require.NoError(t, err)
	second, err := svc.FinancialSummaryWAC(context.Background(), day(10), day(20), "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFinancialSummaryWAC_SupplierFilter(t *testing.T) {
	item1, item2 := id.New(), id.New()
	other := ev(item2, day(11), 10, stock.ReasonInitialStock, money(t, "2.00"))
	other.SupplierID = "sup-2"

	events := []stock.Event{
		ev(item1, day(11), 5, stock.ReasonInitialStock, money(t, "4.00")),
		other,
	}
	svc := NewFinancialService(&fakeEventSource{events: events})

	s, err := svc.FinancialSummaryWAC(context.Background(), day(10), day(20), "sup-1")
	require.NoError(t, err)

	assert.Equal(t, int64(5), s.Ending.Qty)
	assertMoney(t, "20.00", s.Ending.Value)
}

func TestFinancialSummaryWAC_UnknownOutboundReasonFails(t *testing.T) {
	item := id.New()
	bad := evUnpriced(item, day(12), -5, stock.Reason("VANISHED"))
	events := []stock.Event{
		ev(item, day(11), 10, stock.ReasonInitialStock, money(t, "1.00")),
		bad,
	}
	svc := NewFinancialService(&fakeEventSource{events: events})

	_, err := svc.FinancialSummaryWAC(context.Background(), day(10), day(20), "")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDataIntegrity, appErr.Code)
}

func TestFinancialSummaryWAC_UnknownInboundReasonFails(t *testing.T) {
	// Corrupt tags must fail on inbound events too, not slip into the
	// purchases bucket.
	item := id.New()
	events := []stock.Event{
		ev(item, day(11), 10, stock.ReasonInitialStock, money(t, "1.00")),
		ev(item, day(12), 10, stock.Reason("RESTOCKED"), money(t, "2.00")),
	}
	svc := NewFinancialService(&fakeEventSource{events: events})

	_, err := svc.FinancialSummaryWAC(context.Background(), day(10), day(20), "")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDataIntegrity, appErr.Code)
}

func TestFinancialSummaryWAC_UnknownReasonBeforeWindowFails(t *testing.T) {
	item := id.New()
	events := []stock.Event{
		ev(item, day(1), 10, stock.Reason("RESTOCKED"), money(t, "2.00")),
		ev(item, day(11), 5, stock.ReasonInitialStock, money(t, "1.00")),
	}
	svc := NewFinancialService(&fakeEventSource{events: events})

	_, err := svc.FinancialSummaryWAC(context.Background(), day(10), day(20), "")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDataIntegrity, appErr.Code)
}

func TestFinancialSummaryWAC_PriceChangeMarksBoundaryOnly(t *testing.T) {
	// A zero-delta price change inside the window must not move quantities
	// or bucket values, but it does snapshot the item's opening state.
	item := id.New()
	priceChange := ev(item, day(11), 0, stock.ReasonPriceChange, money(t, "99.00"))
	events := []stock.Event{
		ev(item, day(1), 10, stock.ReasonInitialStock, money(t, "5.00")),
		priceChange,
	}

	s := summarize(t, events, day(10), day(20))

	assert.Equal(t, int64(10), s.Opening.Qty)
	assertMoney(t, "50.00", s.Opening.Value)
	assert.Equal(t, int64(0), s.Purchases.Qty)
	assert.Equal(t, int64(10), s.Ending.Qty)
	assertMoney(t, "50.00", s.Ending.Value)
}
