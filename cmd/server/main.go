// Package main is the entry point for the SupplyPro API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supplypro/internal/domain/analytics"
	"supplypro/internal/domain/auth"
	"supplypro/internal/domain/inventory"
	"supplypro/internal/domain/stock"
	"supplypro/internal/domain/supplier"
	v1 "supplypro/internal/infrastructure/http/v1"
	"supplypro/internal/infrastructure/storage/postgres"
	"supplypro/internal/infrastructure/storage/postgres/analytics_repo"
	"supplypro/internal/infrastructure/storage/postgres/auth_repo"
	"supplypro/internal/infrastructure/storage/postgres/item_repo"
	"supplypro/internal/infrastructure/storage/postgres/stock_repo"
	"supplypro/internal/infrastructure/storage/postgres/supplier_repo"
	"supplypro/pkg/logger"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting supplypro server")

	// --- Database connection ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	// --- Repositories ---
	eventRepo := stock_repo.NewEventRepo(pool.Unwrap())
	itemRepo := item_repo.NewItemRepo(pool.Unwrap())
	supplierRepo := supplier_repo.NewSupplierRepo(pool.Unwrap())
	userRepo := auth_repo.NewUserRepo(pool.Unwrap())
	analyticsRepo := analytics_repo.NewAnalyticsRepo(pool.Unwrap())

	auditService, err := postgres.NewAuditService(pool.Unwrap())
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// --- JWT Service ---
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	// --- Domain services ---
	stockService := stock.NewService(eventRepo)
	inventoryService := inventory.NewService(itemRepo, stockService, auditService)
	supplierService := supplier.NewService(supplierRepo, itemRepo, auditService)
	authService := auth.NewService(userRepo, jwtService)
	financialService := analytics.NewFinancialService(eventRepo)
	analyticsService := analytics.NewStockService(analyticsRepo)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:             pool,
		Logger:           log,
		JWTValidator:     jwtService,
		AuthService:      authService,
		InventoryService: inventoryService,
		SupplierService:  supplierService,
		StockService:     stockService,
		FinancialService: financialService,
		AnalyticsService: analyticsService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
