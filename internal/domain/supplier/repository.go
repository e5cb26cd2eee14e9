package supplier

import (
	"context"

	"supplypro/internal/core/id"
)

// Repository defines persistence operations for suppliers.
type Repository interface {
	Create(ctx context.Context, s *Supplier) error
	Update(ctx context.Context, s *Supplier) error
	Delete(ctx context.Context, supplierID id.ID) error
	GetByID(ctx context.Context, supplierID id.ID) (*Supplier, error)
	List(ctx context.Context, filter ListFilter) ([]Supplier, error)

	// FindByName retrieves a supplier by exact name (case-insensitive).
	FindByName(ctx context.Context, name string) (*Supplier, error)
}
