// Package analytics provides inventory analytics: the weighted average cost
// (WAC) financial replay engine and the simpler dashboard aggregations.
package analytics

import (
	"time"

	"supplypro/internal/core/types"
)

// BucketTotal is a (quantity, value) pair for one financial bucket.
type BucketTotal struct {
	Qty   int64
	Value types.Money
}

// FinancialSummary is the output of the WAC replay for one reporting window.
//
// Approximate conservation: Opening + Purchases + ReturnsIn - COGS - WriteOff
// equals Ending, exactly when the stream contains no returns to supplier
// (those net against Purchases at the WAC of the moment they occur, not at
// the price they were bought for).
type FinancialSummary struct {
	Method   string
	FromDate time.Time
	ToDate   time.Time

	Opening   BucketTotal
	Purchases BucketTotal
	ReturnsIn BucketTotal
	COGS      BucketTotal
	WriteOff  BucketTotal
	Ending    BucketTotal
}

// --- Supplemental dashboard analytics ---

// StockValuePoint is the total inventory value on one day.
type StockValuePoint struct {
	Date       time.Time   `db:"day"`
	TotalValue types.Money `db:"total_value"`
}

// SupplierStock is the current total quantity held per supplier.
type SupplierStock struct {
	SupplierName  string `db:"supplier_name"`
	TotalQuantity int64  `db:"total_quantity"`
}

// LowStockItem is an item strictly below its minimum stock threshold.
type LowStockItem struct {
	ItemName        string `db:"item_name"`
	Quantity        int64  `db:"quantity"`
	MinimumQuantity int64  `db:"minimum_quantity"`
}

// ItemUpdateFrequency counts stock events per item.
type ItemUpdateFrequency struct {
	ItemName    string `db:"item_name"`
	UpdateCount int64  `db:"update_count"`
}

// MonthlyMovement aggregates inbound and outbound quantities per month.
type MonthlyMovement struct {
	Month    string `db:"month"`
	StockIn  int64  `db:"stock_in"`
	StockOut int64  `db:"stock_out"`
}

// PriceTrendPoint is the recorded unit price of an item on one day.
type PriceTrendPoint struct {
	Date  time.Time   `db:"day"`
	Price types.Money `db:"price"`
}

// DashboardSummary packages the headline dashboard widgets in one response.
type DashboardSummary struct {
	StockPerSupplier []SupplierStock
	LowStockCount    int64
	MonthlyMovement  []MonthlyMovement
}
