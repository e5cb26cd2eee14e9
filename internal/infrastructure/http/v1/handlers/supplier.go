package handlers

import (
	"github.com/gin-gonic/gin"

	"supplypro/internal/core/apperror"
	"supplypro/internal/core/id"
	"supplypro/internal/domain/supplier"
	"supplypro/internal/infrastructure/http/v1/dto"
)

// SupplierHandler handles HTTP requests for suppliers.
type SupplierHandler struct {
	*BaseHandler
	service *supplier.Service
}

// NewSupplierHandler creates a new supplier handler.
func NewSupplierHandler(base *BaseHandler, service *supplier.Service) *SupplierHandler {
	return &SupplierHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sup := &supplier.Supplier{
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
	}

	if err := h.service.Create(c.Request.Context(), sup); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, sup.ID.String())
}

// Update handles PUT /suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	supplierID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid supplier id"))
		return
	}

	var req dto.UpdateSupplierRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sup := &supplier.Supplier{
		ID:          supplierID,
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
	}

	if err := h.service.Update(c.Request.Context(), sup); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSupplier(sup))
}

// Delete handles DELETE /suppliers/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	supplierID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid supplier id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), supplierID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Get handles GET /suppliers/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	supplierID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid supplier id"))
		return
	}

	sup, err := h.service.GetByID(c.Request.Context(), supplierID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSupplier(sup))
}

// List handles GET /suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	var req dto.SupplierListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	suppliers, err := h.service.List(c.Request.Context(), supplier.ListFilter{
		NameContains: req.Search,
		Limit:        req.Limit,
		Offset:       req.Offset,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      dto.FromSuppliers(suppliers),
		TotalCount: int64(len(suppliers)),
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
}

// RegisterRoutes registers supplier routes. Deletion is admin-only.
func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", adminOnly, h.Delete)
}
