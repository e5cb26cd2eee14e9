package analytics

import (
	"context"
	"time"
)

// Repository defines the aggregation queries behind the dashboard analytics.
// These are plain SQL aggregations with no replay semantics; the WAC engine
// uses EventSource instead.
type Repository interface {
	// GetDailyStockValuation returns total inventory value per day in
	// [from..to], ascending by day.
	GetDailyStockValuation(ctx context.Context, from, to time.Time, supplierID string) ([]StockValuePoint, error)

	// GetTotalStockPerSupplier returns current quantities grouped by
	// supplier, ordered by quantity descending.
	GetTotalStockPerSupplier(ctx context.Context) ([]SupplierStock, error)

	// GetUpdateCountByItem counts stock events per item for one supplier,
	// ordered by count descending.
	GetUpdateCountByItem(ctx context.Context, supplierID string) ([]ItemUpdateFrequency, error)

	// GetItemsBelowMinimumStock returns items under their per-item
	// threshold for one supplier.
	GetItemsBelowMinimumStock(ctx context.Context, supplierID string) ([]LowStockItem, error)

	// CountLowStockItems counts items with quantity below the absolute
	// KPI threshold across all suppliers.
	CountLowStockItems(ctx context.Context, threshold int64) (int64, error)

	// GetMonthlyStockMovement aggregates inbound/outbound quantities per
	// month in [from..to].
	GetMonthlyStockMovement(ctx context.Context, from, to time.Time, supplierID string) ([]MonthlyMovement, error)

	// GetPriceTrend returns recorded prices of an item over [from..to],
	// ascending by day.
	GetPriceTrend(ctx context.Context, itemID string, supplierID string, from, to time.Time) ([]PriceTrendPoint, error)
}
