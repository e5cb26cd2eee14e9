package handlers

import (
	"github.com/gin-gonic/gin"

	"supplypro/internal/domain/stock"
	"supplypro/internal/infrastructure/http/v1/dto"
)

// StockHandler handles HTTP requests for the stock event log.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new stock log handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /stock-events
func (h *StockHandler) List(c *gin.Context) {
	var req dto.EventListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := stock.EventFilter{
		ItemName:   req.ItemName,
		SupplierID: req.SupplierID,
		CreatedBy:  req.CreatedBy,
		MinChange:  req.MinChange,
		MaxChange:  req.MaxChange,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}

	from, err := dto.ParseDate("fromDate", req.FromDate)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !from.IsZero() {
		filter.From = &from
	}

	to, err := dto.ParseDate("toDate", req.ToDate)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !to.IsZero() {
		filter.To = &to
	}

	events, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      dto.FromEvents(events),
		TotalCount: int64(len(events)),
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// RegisterRoutes registers stock log routes.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}
