package handlers

import (
	"github.com/gin-gonic/gin"

	"supplypro/internal/domain/analytics"
	"supplypro/internal/infrastructure/http/v1/dto"
)

// AnalyticsHandler handles HTTP requests for analytics and reports.
type AnalyticsHandler struct {
	*BaseHandler
	financial *analytics.FinancialService
	stock     *analytics.StockService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(base *BaseHandler, financial *analytics.FinancialService, stock *analytics.StockService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler: base,
		financial:   financial,
		stock:       stock,
	}
}

// GetFinancialSummary handles GET /analytics/financial-summary
func (h *AnalyticsHandler) GetFinancialSummary(c *gin.Context) {
	var req dto.FinancialSummaryRequest
	if !h.BindQuery(c, &req) {
		return
	}

	from, err := dto.ParseDate("fromDate", req.FromDate)
	if err != nil {
		h.Error(c, err)
		return
	}
	to, err := dto.ParseDate("toDate", req.ToDate)
	if err != nil {
		h.Error(c, err)
		return
	}

	summary, err := h.financial.FinancialSummaryWAC(c.Request.Context(), from, to, req.SupplierID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromFinancialSummary(summary))
}

// GetStockValueOverTime handles GET /analytics/stock-value
func (h *AnalyticsHandler) GetStockValueOverTime(c *gin.Context) {
	var req dto.WindowRequest
	if !h.BindQuery(c, &req) {
		return
	}

	from, err := dto.ParseDate("fromDate", req.FromDate)
	if err != nil {
		h.Error(c, err)
		return
	}
	to, err := dto.ParseDate("toDate", req.ToDate)
	if err != nil {
		h.Error(c, err)
		return
	}

	points, err := h.stock.StockValueOverTime(c.Request.Context(), from, to, req.SupplierID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStockValuePoints(points))
}

// GetStockPerSupplier handles GET /analytics/stock-per-supplier
func (h *AnalyticsHandler) GetStockPerSupplier(c *gin.Context) {
	rows, err := h.stock.StockPerSupplier(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSupplierStocks(rows))
}

// GetItemUpdateFrequency handles GET /analytics/item-update-frequency
func (h *AnalyticsHandler) GetItemUpdateFrequency(c *gin.Context) {
	rows, err := h.stock.ItemUpdateFrequency(c.Request.Context(), c.Query("supplierId"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromItemUpdateFrequencies(rows))
}

// GetItemsBelowMinimumStock handles GET /analytics/items-below-minimum
func (h *AnalyticsHandler) GetItemsBelowMinimumStock(c *gin.Context) {
	rows, err := h.stock.ItemsBelowMinimumStock(c.Request.Context(), c.Query("supplierId"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromLowStockItems(rows))
}

// GetMonthlyStockMovement handles GET /analytics/monthly-movement
func (h *AnalyticsHandler) GetMonthlyStockMovement(c *gin.Context) {
	var req dto.WindowRequest
	if !h.BindQuery(c, &req) {
		return
	}

	from, err := dto.ParseDate("fromDate", req.FromDate)
	if err != nil {
		h.Error(c, err)
		return
	}
	to, err := dto.ParseDate("toDate", req.ToDate)
	if err != nil {
		h.Error(c, err)
		return
	}

	rows, err := h.stock.MonthlyStockMovement(c.Request.Context(), from, to, req.SupplierID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromMonthlyMovements(rows))
}

// GetPriceTrend handles GET /analytics/price-trend
func (h *AnalyticsHandler) GetPriceTrend(c *gin.Context) {
	var req dto.PriceTrendRequest
	if !h.BindQuery(c, &req) {
		return
	}

	from, err := dto.ParseDate("fromDate", req.FromDate)
	if err != nil {
		h.Error(c, err)
		return
	}
	to, err := dto.ParseDate("toDate", req.ToDate)
	if err != nil {
		h.Error(c, err)
		return
	}

	rows, err := h.stock.PriceTrend(c.Request.Context(), req.ItemID, req.SupplierID, from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPriceTrendPoints(rows))
}

// GetDashboardSummary handles GET /analytics/dashboard
func (h *AnalyticsHandler) GetDashboardSummary(c *gin.Context) {
	summary, err := h.stock.DashboardSummary(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromDashboardSummary(summary))
}

// RegisterRoutes registers analytics routes.
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/financial-summary", h.GetFinancialSummary)
	rg.GET("/stock-value", h.GetStockValueOverTime)
	rg.GET("/stock-per-supplier", h.GetStockPerSupplier)
	rg.GET("/item-update-frequency", h.GetItemUpdateFrequency)
	rg.GET("/items-below-minimum", h.GetItemsBelowMinimumStock)
	rg.GET("/monthly-movement", h.GetMonthlyStockMovement)
	rg.GET("/price-trend", h.GetPriceTrend)
	rg.GET("/dashboard", h.GetDashboardSummary)
}
