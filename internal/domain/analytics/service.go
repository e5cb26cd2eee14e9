package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"supplypro/internal/core/apperror"
)

// LowStockThreshold is the absolute quantity below which an item counts
// toward the dashboard low-stock KPI, regardless of its own minimum.
const LowStockThreshold int64 = 5

// defaultWindowDays is the lookback applied when a date window is not given.
const defaultWindowDays = 30

// StockService provides the read-only dashboard aggregations: valuation
// trends, supplier distribution, low-stock alerts, movement trends, and
// price history.
type StockService struct {
	repo Repository
}

// NewStockService creates a new stock analytics service.
func NewStockService(repo Repository) *StockService {
	return &StockService{repo: repo}
}

// StockValueOverTime returns daily inventory value over the window,
// defaulting to the last 30 days.
func (s *StockService) StockValueOverTime(ctx context.Context, from, to time.Time, supplierID string) ([]StockValuePoint, error) {
	from, to, err := defaultWindow(from, to)
	if err != nil {
		return nil, err
	}

	points, err := s.repo.GetDailyStockValuation(ctx, startOfDay(from), endOfDay(to), blankToEmpty(supplierID))
	if err != nil {
		return nil, fmt.Errorf("daily stock valuation: %w", err)
	}
	return points, nil
}

// StockPerSupplier returns current stock totals grouped by supplier.
func (s *StockService) StockPerSupplier(ctx context.Context) ([]SupplierStock, error) {
	rows, err := s.repo.GetTotalStockPerSupplier(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock per supplier: %w", err)
	}
	return rows, nil
}

// ItemUpdateFrequency returns how often each of a supplier's items changed.
func (s *StockService) ItemUpdateFrequency(ctx context.Context, supplierID string) ([]ItemUpdateFrequency, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, apperror.NewValidation("supplierId is required")
	}

	rows, err := s.repo.GetUpdateCountByItem(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("item update frequency: %w", err)
	}
	return rows, nil
}

// ItemsBelowMinimumStock returns a supplier's items under their threshold.
func (s *StockService) ItemsBelowMinimumStock(ctx context.Context, supplierID string) ([]LowStockItem, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, apperror.NewValidation("supplierId is required")
	}

	rows, err := s.repo.GetItemsBelowMinimumStock(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("items below minimum stock: %w", err)
	}
	return rows, nil
}

// LowStockCount returns the global low-stock KPI.
func (s *StockService) LowStockCount(ctx context.Context) (int64, error) {
	count, err := s.repo.CountLowStockItems(ctx, LowStockThreshold)
	if err != nil {
		return 0, fmt.Errorf("low stock count: %w", err)
	}
	return count, nil
}

// MonthlyStockMovement returns per-month stock-in/stock-out totals,
// defaulting to the last 30 days.
func (s *StockService) MonthlyStockMovement(ctx context.Context, from, to time.Time, supplierID string) ([]MonthlyMovement, error) {
	from, to, err := defaultWindow(from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.GetMonthlyStockMovement(ctx, startOfDay(from), endOfDay(to), blankToEmpty(supplierID))
	if err != nil {
		return nil, fmt.Errorf("monthly stock movement: %w", err)
	}
	return rows, nil
}

// PriceTrend returns the recorded price history of one item.
func (s *StockService) PriceTrend(ctx context.Context, itemID, supplierID string, from, to time.Time) ([]PriceTrendPoint, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, apperror.NewValidation("itemId is required")
	}
	from, to, err := defaultWindow(from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.GetPriceTrend(ctx, itemID, blankToEmpty(supplierID), startOfDay(from), endOfDay(to))
	if err != nil {
		return nil, fmt.Errorf("price trend: %w", err)
	}
	return rows, nil
}

// DashboardSummary assembles the headline widgets in one call.
func (s *StockService) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	perSupplier, err := s.StockPerSupplier(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.LowStockCount(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movement, err := s.MonthlyStockMovement(ctx, now.AddDate(0, -6, 0), now, "")
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		StockPerSupplier: perSupplier,
		LowStockCount:    lowStock,
		MonthlyMovement:  movement,
	}, nil
}

// defaultWindow fills missing bounds with the last 30 days and validates
// their order.
func defaultWindow(from, to time.Time) (time.Time, time.Time, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -defaultWindowDays)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, apperror.NewValidation("from must be on or before to")
	}
	return from, to, nil
}

func blankToEmpty(s string) string {
	return strings.TrimSpace(s)
}
