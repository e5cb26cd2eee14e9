package dto

import (
	"supplypro/internal/domain/analytics"
)

// --- Financial Summary ---

// FinancialSummaryRequest represents request for the WAC financial summary.
type FinancialSummaryRequest struct {
	FromDate   string `form:"fromDate" binding:"required"`
	ToDate     string `form:"toDate" binding:"required"`
	SupplierID string `form:"supplierId"`
}

// BucketTotalResponse is a (quantity, value) pair for one bucket.
// Values are decimal strings at cost scale.
type BucketTotalResponse struct {
	Quantity int64  `json:"quantity"`
	Value    string `json:"value"`
}

// FinancialSummaryResponse represents the WAC financial summary.
type FinancialSummaryResponse struct {
	Method    string              `json:"method"`
	FromDate  string              `json:"fromDate"`
	ToDate    string              `json:"toDate"`
	Opening   BucketTotalResponse `json:"opening"`
	Purchases BucketTotalResponse `json:"purchases"`
	ReturnsIn BucketTotalResponse `json:"returnsIn"`
	COGS      BucketTotalResponse `json:"cogs"`
	WriteOff  BucketTotalResponse `json:"writeOff"`
	Ending    BucketTotalResponse `json:"ending"`
}

// FromFinancialSummary converts the domain summary to its response DTO.
func FromFinancialSummary(s *analytics.FinancialSummary) *FinancialSummaryResponse {
	return &FinancialSummaryResponse{
		Method:    s.Method,
		FromDate:  s.FromDate.Format(DateFormat),
		ToDate:    s.ToDate.Format(DateFormat),
		Opening:   fromBucket(s.Opening),
		Purchases: fromBucket(s.Purchases),
		ReturnsIn: fromBucket(s.ReturnsIn),
		COGS:      fromBucket(s.COGS),
		WriteOff:  fromBucket(s.WriteOff),
		Ending:    fromBucket(s.Ending),
	}
}

func fromBucket(b analytics.BucketTotal) BucketTotalResponse {
	return BucketTotalResponse{
		Quantity: b.Qty,
		Value:    b.Value.String(),
	}
}

// --- Dashboard Aggregations ---

// WindowRequest is the shared date window filter.
type WindowRequest struct {
	FromDate   string `form:"fromDate"`
	ToDate     string `form:"toDate"`
	SupplierID string `form:"supplierId"`
}

// StockValuePointResponse is the inventory value on one day.
type StockValuePointResponse struct {
	Date       string `json:"date"`
	TotalValue string `json:"totalValue"`
}

// FromStockValuePoints converts valuation points.
func FromStockValuePoints(points []analytics.StockValuePoint) []StockValuePointResponse {
	out := make([]StockValuePointResponse, len(points))
	for i, p := range points {
		out[i] = StockValuePointResponse{
			Date:       p.Date.Format(DateFormat),
			TotalValue: p.TotalValue.String(),
		}
	}
	return out
}

// SupplierStockResponse is the current quantity held per supplier.
type SupplierStockResponse struct {
	SupplierName  string `json:"supplierName"`
	TotalQuantity int64  `json:"totalQuantity"`
}

// FromSupplierStocks converts supplier stock rows.
func FromSupplierStocks(rows []analytics.SupplierStock) []SupplierStockResponse {
	out := make([]SupplierStockResponse, len(rows))
	for i, r := range rows {
		out[i] = SupplierStockResponse{
			SupplierName:  r.SupplierName,
			TotalQuantity: r.TotalQuantity,
		}
	}
	return out
}

// LowStockItemResponse is an item under its minimum threshold.
type LowStockItemResponse struct {
	ItemName        string `json:"itemName"`
	Quantity        int64  `json:"quantity"`
	MinimumQuantity int64  `json:"minimumQuantity"`
}

// FromLowStockItems converts low stock rows.
func FromLowStockItems(rows []analytics.LowStockItem) []LowStockItemResponse {
	out := make([]LowStockItemResponse, len(rows))
	for i, r := range rows {
		out[i] = LowStockItemResponse{
			ItemName:        r.ItemName,
			Quantity:        r.Quantity,
			MinimumQuantity: r.MinimumQuantity,
		}
	}
	return out
}

// ItemUpdateFrequencyResponse counts stock events per item.
type ItemUpdateFrequencyResponse struct {
	ItemName    string `json:"itemName"`
	UpdateCount int64  `json:"updateCount"`
}

// FromItemUpdateFrequencies converts update frequency rows.
func FromItemUpdateFrequencies(rows []analytics.ItemUpdateFrequency) []ItemUpdateFrequencyResponse {
	out := make([]ItemUpdateFrequencyResponse, len(rows))
	for i, r := range rows {
		out[i] = ItemUpdateFrequencyResponse{
			ItemName:    r.ItemName,
			UpdateCount: r.UpdateCount,
		}
	}
	return out
}

// MonthlyMovementResponse is one month of inbound/outbound totals.
type MonthlyMovementResponse struct {
	Month    string `json:"month"`
	StockIn  int64  `json:"stockIn"`
	StockOut int64  `json:"stockOut"`
}

// FromMonthlyMovements converts movement rows.
func FromMonthlyMovements(rows []analytics.MonthlyMovement) []MonthlyMovementResponse {
	out := make([]MonthlyMovementResponse, len(rows))
	for i, r := range rows {
		out[i] = MonthlyMovementResponse{
			Month:    r.Month,
			StockIn:  r.StockIn,
			StockOut: r.StockOut,
		}
	}
	return out
}

// PriceTrendRequest filters the price history of one item.
type PriceTrendRequest struct {
	ItemID     string `form:"itemId" binding:"required"`
	SupplierID string `form:"supplierId"`
	FromDate   string `form:"fromDate"`
	ToDate     string `form:"toDate"`
}

// PriceTrendPointResponse is one recorded price on one day.
type PriceTrendPointResponse struct {
	Date  string `json:"date"`
	Price string `json:"price"`
}

// FromPriceTrendPoints converts price trend rows.
func FromPriceTrendPoints(rows []analytics.PriceTrendPoint) []PriceTrendPointResponse {
	out := make([]PriceTrendPointResponse, len(rows))
	for i, r := range rows {
		out[i] = PriceTrendPointResponse{
			Date:  r.Date.Format(DateFormat),
			Price: r.Price.String(),
		}
	}
	return out
}

// DashboardSummaryResponse packages the headline dashboard widgets.
type DashboardSummaryResponse struct {
	StockPerSupplier []SupplierStockResponse   `json:"stockPerSupplier"`
	LowStockCount    int64                     `json:"lowStockCount"`
	MonthlyMovement  []MonthlyMovementResponse `json:"monthlyMovement"`
}

// FromDashboardSummary converts the dashboard aggregate.
func FromDashboardSummary(s *analytics.DashboardSummary) *DashboardSummaryResponse {
	return &DashboardSummaryResponse{
		StockPerSupplier: FromSupplierStocks(s.StockPerSupplier),
		LowStockCount:    s.LowStockCount,
		MonthlyMovement:  FromMonthlyMovements(s.MonthlyMovement),
	}
}
