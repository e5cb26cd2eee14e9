package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"supplypro/internal/core/types"
)

func money(t *testing.T, s string) types.Money {
	t.Helper()
	m, err := types.NewMoneyFromString(s)
	if err != nil {
		t.Fatalf("bad money literal %q: %v", s, err)
	}
	return m
}

func assertMoney(t *testing.T, want string, got types.Money) {
	t.Helper()
	if !money(t, want).Equal(got) {
		t.Errorf("money mismatch\nwant: %s\ngot:  %s", want, got.String())
	}
}

func TestApplyInbound_FirstReceipt(t *testing.T) {
	st := applyInbound(ItemState{}, 100, money(t, "10.00"))

	assert.Equal(t, int64(100), st.OnHand)
	assertMoney(t, "10.0000", st.AvgCost)
	assertMoney(t, "1000.00", st.Value())
}

func TestApplyInbound_BlendsAverage(t *testing.T) {
	st := ItemState{OnHand: 100, AvgCost: money(t, "10.00")}

	st = applyInbound(st, 50, money(t, "12.00"))

	// (100*10 + 50*12) / 150 = 10.6667 at scale 4, half-up
	assert.Equal(t, int64(150), st.OnHand)
	assertMoney(t, "10.6667", st.AvgCost)
}

func TestApplyInbound_RoundsHalfUp(t *testing.T) {
	st := ItemState{OnHand: 3, AvgCost: money(t, "2.0000")}

	st = applyInbound(st, 3, money(t, "2.0001"))

	// (6 + 6.0003) / 6 = 2.00005 -> 2.0001
	assertMoney(t, "2.0001", st.AvgCost)
}

func TestApplyInbound_SamePriceKeepsAverage(t *testing.T) {
	st := ItemState{}
	for _, qty := range []int64{10, 25, 7} {
		st = applyInbound(st, qty, money(t, "3.5000"))
	}

	assert.Equal(t, int64(42), st.OnHand)
	assertMoney(t, "3.5000", st.AvgCost)
}

func TestApplyInbound_NonPositiveResultResetsCost(t *testing.T) {
	// A negative inbound delta can drive the pool to or below zero; the
	// average has no meaning without stock backing it.
	st := ItemState{OnHand: 5, AvgCost: money(t, "4.00")}

	st = applyInbound(st, -5, money(t, "4.00"))

	assert.Equal(t, int64(0), st.OnHand)
	assertMoney(t, "0", st.AvgCost)
}

func TestIssue_CostsAtPreIssueWAC(t *testing.T) {
	st := ItemState{OnHand: 150, AvgCost: money(t, "10.6667")}

	res := issue(st, 20)

	assert.Equal(t, int64(130), res.State.OnHand)
	assertMoney(t, "10.6667", res.State.AvgCost)
	assertMoney(t, "213.3340", res.Cost)
	assert.Equal(t, int64(0), res.Shortfall)
}

func TestIssue_ExactDepletion(t *testing.T) {
	st := ItemState{OnHand: 8, AvgCost: money(t, "2.50")}

	res := issue(st, 8)

	assert.Equal(t, int64(0), res.State.OnHand)
	assertMoney(t, "20.00", res.Cost)
	assert.Equal(t, int64(0), res.Shortfall)

	// WAC survives depletion so later unpriced corrections keep continuity.
	assertMoney(t, "2.50", res.State.AvgCost)
}

func TestIssue_OverdrawClampsToZero(t *testing.T) {
	st := ItemState{OnHand: 5, AvgCost: money(t, "4.00")}

	res := issue(st, 8)

	assert.Equal(t, int64(0), res.State.OnHand)
	assert.Equal(t, int64(3), res.Shortfall)

	// Cost covers only the five units that actually existed.
	assertMoney(t, "20.00", res.Cost)
}

func TestIssue_FromEmptyState(t *testing.T) {
	res := issue(ItemState{}, 4)

	assert.Equal(t, int64(0), res.State.OnHand)
	assert.Equal(t, int64(4), res.Shortfall)
	assertMoney(t, "0", res.Cost)
}
