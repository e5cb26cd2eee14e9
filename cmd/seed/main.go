// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"supplypro/internal/core/id"
	"supplypro/internal/core/types"
	"supplypro/internal/domain/stock"
	"supplypro/internal/infrastructure/storage/postgres"
	"supplypro/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	adminID, err := seedAdminUser(ctx, pool, log)
	if err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log, adminID); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) (id.ID, error) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@supplypro.io"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM users WHERE LOWER(email) = LOWER($1)`, adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail)
		return existingID, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return id.Nil(), fmt.Errorf("hash password: %w", err)
	}

	adminID := id.New()
	_, err = pool.Pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		adminID, adminEmail, "Administrator", string(hash), "ADMIN", time.Now().UTC(),
	)
	if err != nil {
		return id.Nil(), fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail)
	return adminID, nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger, createdBy id.ID) error {
	now := time.Now().UTC()

	supplierID := id.New()
	_, err := pool.Pool.Exec(ctx,
		`INSERT INTO suppliers (id, name, contact_name, phone, email, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT DO NOTHING`,
		supplierID, "Acme Industrial", "Jordan Lee", "+1-555-0101",
		"orders@acme-industrial.example", createdBy.String(), now,
	)
	if err != nil {
		return fmt.Errorf("insert demo supplier: %w", err)
	}

	items := []struct {
		name  string
		qty   int64
		price types.Money
	}{
		{"Steel Bracket M8", 120, types.MustMoney("2.4500")},
		{"Hex Bolt 40mm", 500, types.MustMoney("0.1800")},
		{"Bearing 6204-2RS", 40, types.MustMoney("5.9000")},
	}

	for _, it := range items {
		itemID := id.New()
		_, err := pool.Pool.Exec(ctx,
			`INSERT INTO inventory_items
			   (id, name, quantity, price, supplier_id, minimum_quantity, created_by, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			itemID, it.name, it.qty, it.price, supplierID, 10, createdBy.String(), now, now,
		)
		if err != nil {
			return fmt.Errorf("insert demo item %q: %w", it.name, err)
		}

		_, err = pool.Pool.Exec(ctx,
			`INSERT INTO stock_events
			   (id, item_id, supplier_id, quantity_change, reason, price_at_change, created_by, occurred_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			id.New(), itemID, supplierID.String(), it.qty,
			stock.ReasonInitialStock, it.price, createdBy.String(), now,
		)
		if err != nil {
			return fmt.Errorf("insert initial stock event for %q: %w", it.name, err)
		}
	}

	log.Infow("demo data seeded", "supplier_id", supplierID, "items", len(items))
	return nil
}
