package dto

import (
	"time"

	"supplypro/internal/domain/inventory"
)

// CreateItemRequest for creating inventory items.
// Price travels as a decimal string to keep exact cents.
type CreateItemRequest struct {
	Name            string `json:"name" binding:"required"`
	Quantity        int64  `json:"quantity" binding:"min=0"`
	Price           string `json:"price" binding:"required"`
	SupplierID      string `json:"supplierId" binding:"required"`
	MinimumQuantity int64  `json:"minimumQuantity" binding:"min=0"`
}

// UpdateItemRequest for updating inventory items.
type UpdateItemRequest struct {
	Name            string `json:"name" binding:"required"`
	Quantity        int64  `json:"quantity" binding:"min=0"`
	Price           string `json:"price" binding:"required"`
	SupplierID      string `json:"supplierId" binding:"required"`
	MinimumQuantity int64  `json:"minimumQuantity" binding:"min=0"`
}

// AdjustQuantityRequest applies a signed change with an explicit reason.
type AdjustQuantityRequest struct {
	Change int64  `json:"change" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// ItemListRequest filters item queries.
type ItemListRequest struct {
	Search     string `form:"search"`
	SupplierID string `form:"supplierId"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

// ItemResponse is the public view of an inventory item.
type ItemResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Quantity        int64     `json:"quantity"`
	Price           string    `json:"price"`
	SupplierID      string    `json:"supplierId"`
	MinimumQuantity int64     `json:"minimumQuantity"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromItem converts a domain item to its response DTO.
func FromItem(item *inventory.Item) ItemResponse {
	return ItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Quantity:        item.Quantity,
		Price:           item.Price.String(),
		SupplierID:      item.SupplierID.String(),
		MinimumQuantity: item.MinimumQuantity,
		CreatedBy:       item.CreatedBy,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

// FromItems converts a slice of domain items.
func FromItems(items []inventory.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = FromItem(&items[i])
	}
	return out
}
