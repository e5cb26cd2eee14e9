// Package inventory provides inventory item management.
// Every quantity or price mutation appends an event to the stock log so
// analytics can replay the full history.
package inventory

import (
	"time"

	"supplypro/internal/core/id"
	"supplypro/internal/core/types"
)

// Item is a stocked product supplied by one supplier.
type Item struct {
	ID              id.ID       `db:"id"`
	Name            string      `db:"name"`
	Quantity        int64       `db:"quantity"`
	Price           types.Money `db:"price"`
	SupplierID      id.ID       `db:"supplier_id"`
	MinimumQuantity int64       `db:"minimum_quantity"`
	CreatedBy       string      `db:"created_by"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"`
}

// ListFilter narrows item queries.
type ListFilter struct {
	NameContains string
	SupplierID   id.ID

	Limit  int
	Offset int
}
