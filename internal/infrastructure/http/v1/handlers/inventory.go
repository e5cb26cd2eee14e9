package handlers

import (
	"github.com/gin-gonic/gin"

	"supplypro/internal/core/apperror"
	"supplypro/internal/core/id"
	"supplypro/internal/core/types"
	"supplypro/internal/domain/inventory"
	"supplypro/internal/domain/stock"
	"supplypro/internal/infrastructure/http/v1/dto"
)

// InventoryHandler handles HTTP requests for inventory items.
type InventoryHandler struct {
	*BaseHandler
	service *inventory.Service
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /items
func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.toItem(id.Nil(), req.Name, req.Quantity, req.Price, req.SupplierID, req.MinimumQuantity)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), item); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, item.ID.String())
}

// Update handles PUT /items/:id
func (h *InventoryHandler) Update(c *gin.Context) {
	itemID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid item id"))
		return
	}

	var req dto.UpdateItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.toItem(itemID, req.Name, req.Quantity, req.Price, req.SupplierID, req.MinimumQuantity)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), item); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromItem(item))
}

// AdjustQuantity handles POST /items/:id/adjust
func (h *InventoryHandler) AdjustQuantity(c *gin.Context) {
	itemID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid item id"))
		return
	}

	var req dto.AdjustQuantityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	reason, err := stock.ParseReason(req.Reason)
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	item, err := h.service.AdjustQuantity(c.Request.Context(), itemID, req.Change, reason)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromItem(item))
}

// Delete handles DELETE /items/:id?reason=SCRAPPED
func (h *InventoryHandler) Delete(c *gin.Context) {
	itemID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid item id"))
		return
	}

	reasonParam := c.Query("reason")
	if reasonParam == "" {
		h.Error(c, apperror.NewValidation("reason query parameter is required"))
		return
	}
	reason, err := stock.ParseReason(reasonParam)
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	if err := h.service.Delete(c.Request.Context(), itemID, reason); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Get handles GET /items/:id
func (h *InventoryHandler) Get(c *gin.Context) {
	itemID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid item id"))
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), itemID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromItem(item))
}

// List handles GET /items
func (h *InventoryHandler) List(c *gin.Context) {
	var req dto.ItemListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := inventory.ListFilter{
		NameContains: req.Search,
		Limit:        req.Limit,
		Offset:       req.Offset,
	}
	if req.SupplierID != "" {
		supplierID, err := id.Parse(req.SupplierID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid supplierId"))
			return
		}
		filter.SupplierID = supplierID
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      dto.FromItems(items),
		TotalCount: total,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// RegisterRoutes registers inventory routes. Deletion is admin-only.
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.POST("/:id/adjust", h.AdjustQuantity)
	rg.DELETE("/:id", adminOnly, h.Delete)
}

func (h *InventoryHandler) toItem(itemID id.ID, name string, quantity int64, price, supplierID string, minQty int64) (*inventory.Item, error) {
	p, err := types.NewMoneyFromString(price)
	if err != nil {
		return nil, apperror.NewValidation("invalid price format")
	}

	sID, err := id.Parse(supplierID)
	if err != nil {
		return nil, apperror.NewValidation("invalid supplierId")
	}

	return &inventory.Item{
		ID:              itemID,
		Name:            name,
		Quantity:        quantity,
		Price:           p,
		SupplierID:      sID,
		MinimumQuantity: minQty,
	}, nil
}
