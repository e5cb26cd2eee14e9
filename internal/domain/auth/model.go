// Package auth provides authentication and authorization domain logic.
package auth

import (
	"time"

	"supplypro/internal/core/id"
)

// Role defines the access level of a user.
type Role string

const (
	// RoleUser can read analytics and manage stock.
	RoleUser Role = "USER"

	// RoleAdmin can additionally delete items and suppliers.
	RoleAdmin Role = "ADMIN"
)

// User is an application account.
type User struct {
	ID           id.ID     `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}
