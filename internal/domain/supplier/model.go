// Package supplier provides supplier catalog management.
package supplier

import (
	"time"

	"supplypro/internal/core/id"
)

// Supplier is a source of inventory items.
type Supplier struct {
	ID          id.ID     `db:"id"`
	Name        string    `db:"name"`
	ContactName string    `db:"contact_name"`
	Phone       string    `db:"phone"`
	Email       string    `db:"email"`
	CreatedBy   string    `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
}

// ListFilter narrows supplier queries.
type ListFilter struct {
	NameContains string

	Limit  int
	Offset int
}
