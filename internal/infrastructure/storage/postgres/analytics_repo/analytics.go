// Package analytics_repo provides the PostgreSQL implementation of the
// dashboard aggregation queries. These are plain SQL rollups over the item
// table and the stock event log; the WAC replay reads events through the
// stock repository instead.
package analytics_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"supplypro/internal/domain/analytics"
)

// AnalyticsRepo implements analytics.Repository.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepo creates a new analytics repository.
func NewAnalyticsRepo(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDailyStockValuation reconstructs total inventory value per day as the
// running sum of event deltas priced at the event price when recorded, the
// current item price otherwise.
func (r *AnalyticsRepo) GetDailyStockValuation(ctx context.Context, from, to time.Time, supplierID string) ([]analytics.StockValuePoint, error) {
	sql := `
		SELECT day, total_value
		FROM (
			SELECT date_trunc('day', e.occurred_at)::date AS day,
				   SUM(SUM(e.quantity_change * COALESCE(e.price_at_change, i.price, 0)))
					   OVER (ORDER BY date_trunc('day', e.occurred_at)) AS total_value
			FROM stock_events e
			LEFT JOIN inventory_items i ON i.id = e.item_id
			WHERE ($3 = '' OR e.supplier_id::text = $3)
			GROUP BY 1
		) daily
		WHERE day BETWEEN $1::date AND $2::date
		ORDER BY day
	`

	var points []analytics.StockValuePoint
	if err := pgxscan.Select(ctx, r.pool, &points, sql, from, to, supplierID); err != nil {
		return nil, fmt.Errorf("select daily valuation: %w", err)
	}

	return points, nil
}

func (r *AnalyticsRepo) GetTotalStockPerSupplier(ctx context.Context) ([]analytics.SupplierStock, error) {
	sql := `
		SELECT s.name AS supplier_name,
			   COALESCE(SUM(i.quantity), 0) AS total_quantity
		FROM suppliers s
		LEFT JOIN inventory_items i ON i.supplier_id = s.id
		GROUP BY s.name
		ORDER BY total_quantity DESC, supplier_name
	`

	var rows []analytics.SupplierStock
	if err := pgxscan.Select(ctx, r.pool, &rows, sql); err != nil {
		return nil, fmt.Errorf("select stock per supplier: %w", err)
	}

	return rows, nil
}

func (r *AnalyticsRepo) GetUpdateCountByItem(ctx context.Context, supplierID string) ([]analytics.ItemUpdateFrequency, error) {
	sql := `
		SELECT i.name AS item_name,
			   COUNT(e.id) AS update_count
		FROM inventory_items i
		JOIN stock_events e ON e.item_id = i.id
		WHERE i.supplier_id::text = $1
		GROUP BY i.name
		ORDER BY update_count DESC, item_name
	`

	var rows []analytics.ItemUpdateFrequency
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, supplierID); err != nil {
		return nil, fmt.Errorf("select update counts: %w", err)
	}

	return rows, nil
}

func (r *AnalyticsRepo) GetItemsBelowMinimumStock(ctx context.Context, supplierID string) ([]analytics.LowStockItem, error) {
	sql := `
		SELECT name AS item_name, quantity, minimum_quantity
		FROM inventory_items
		WHERE supplier_id::text = $1 AND quantity < minimum_quantity
		ORDER BY quantity, item_name
	`

	var rows []analytics.LowStockItem
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, supplierID); err != nil {
		return nil, fmt.Errorf("select low stock items: %w", err)
	}

	return rows, nil
}

func (r *AnalyticsRepo) CountLowStockItems(ctx context.Context, threshold int64) (int64, error) {
	sql := `SELECT COUNT(*) FROM inventory_items WHERE quantity < $1`

	var count int64
	if err := r.pool.QueryRow(ctx, sql, threshold).Scan(&count); err != nil {
		return 0, fmt.Errorf("count low stock items: %w", err)
	}

	return count, nil
}

func (r *AnalyticsRepo) GetMonthlyStockMovement(ctx context.Context, from, to time.Time, supplierID string) ([]analytics.MonthlyMovement, error) {
	sql := `
		SELECT to_char(date_trunc('month', occurred_at), 'YYYY-MM') AS month,
			   COALESCE(SUM(quantity_change) FILTER (WHERE quantity_change > 0), 0) AS stock_in,
			   COALESCE(-SUM(quantity_change) FILTER (WHERE quantity_change < 0), 0) AS stock_out
		FROM stock_events
		WHERE occurred_at >= $1 AND occurred_at <= $2
		  AND ($3 = '' OR supplier_id::text = $3)
		GROUP BY 1
		ORDER BY 1
	`

	var rows []analytics.MonthlyMovement
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, from, to, supplierID); err != nil {
		return nil, fmt.Errorf("select monthly movement: %w", err)
	}

	return rows, nil
}

// GetPriceTrend follows recorded prices only; events without a price carry
// no pricing signal and are skipped.
func (r *AnalyticsRepo) GetPriceTrend(ctx context.Context, itemID string, supplierID string, from, to time.Time) ([]analytics.PriceTrendPoint, error) {
	sql := `
		SELECT date_trunc('day', occurred_at)::date AS day,
			   price_at_change AS price
		FROM stock_events
		WHERE item_id::text = $1
		  AND price_at_change IS NOT NULL
		  AND occurred_at >= $2 AND occurred_at <= $3
		  AND ($4 = '' OR supplier_id::text = $4)
		ORDER BY occurred_at
	`

	var rows []analytics.PriceTrendPoint
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, itemID, from, to, supplierID); err != nil {
		return nil, fmt.Errorf("select price trend: %w", err)
	}

	return rows, nil
}
