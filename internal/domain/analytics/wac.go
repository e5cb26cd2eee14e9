package analytics

import (
	"supplypro/internal/core/types"
)

// ItemState is the running inventory state of a single item during replay:
// on-hand quantity and weighted average unit cost (scale 4).
// Value semantics: every transition returns a new state.
type ItemState struct {
	OnHand  int64
	AvgCost types.Money
}

// Value returns the inventory value of the state (OnHand x AvgCost).
func (st ItemState) Value() types.Money {
	return st.AvgCost.Mul(types.MoneyFromInt64(st.OnHand))
}

// IssueResult is the outcome of an outbound issue: the new state, the cost
// of the issued stock at pre-issue WAC, and the quantity that could not be
// covered by on-hand stock (data-integrity overdraw, clamped to zero).
type IssueResult struct {
	State     ItemState
	Cost      types.Money
	Shortfall int64
}

// applyInbound blends inbound stock into the weighted average:
//
//	newWAC = (oldQty x oldWAC + inboundQty x unitCost) / newQty
//
// rounded to 4 decimal places, half-up. The average is re-derived from the
// two current scalars at every inbound event; no partial sums are cached.
func applyInbound(st ItemState, qtyIn int64, unitCost types.Money) ItemState {
	q1 := st.OnHand + qtyIn
	if q1 <= 0 {
		return ItemState{OnHand: q1, AvgCost: types.Zero()}
	}

	v0 := st.AvgCost.Mul(types.MoneyFromInt64(st.OnHand))
	vin := unitCost.Mul(types.MoneyFromInt64(qtyIn))

	return ItemState{
		OnHand:  q1,
		AvgCost: types.DivCost(v0.Add(vin), q1),
	}
}

// issue consumes stock at the current WAC. The average itself never moves
// on an issue; only inbound events change it. When the requested quantity
// exceeds on-hand stock the quantity is clamped to zero and the cost covers
// only what was actually available, so value conservation holds even for
// overdrawn streams. The shortfall is reported for the caller to surface.
func issue(st ItemState, qtyOut int64) IssueResult {
	issued := qtyOut
	if issued > st.OnHand {
		issued = st.OnHand
	}

	return IssueResult{
		State: ItemState{
			OnHand:  st.OnHand - issued,
			AvgCost: st.AvgCost,
		},
		Cost:      st.AvgCost.Mul(types.MoneyFromInt64(issued)),
		Shortfall: qtyOut - issued,
	}
}
