package inventory

import (
	"context"

	"supplypro/internal/core/id"
	"supplypro/internal/core/types"
)

// Repository defines persistence operations for inventory items.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, itemID id.ID) error
	GetByID(ctx context.Context, itemID id.ID) (*Item, error)
	List(ctx context.Context, filter ListFilter) ([]Item, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)

	// ExistsByNameAndPrice reports whether another item carries the same
	// name and price, excluding excludeID.
	ExistsByNameAndPrice(ctx context.Context, name string, price types.Money, excludeID id.ID) (bool, error)

	// CountBySupplier counts items linked to a supplier.
	CountBySupplier(ctx context.Context, supplierID id.ID) (int64, error)
}
