// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"supplypro/internal/domain/analytics"
	"supplypro/internal/domain/auth"
	"supplypro/internal/domain/inventory"
	"supplypro/internal/domain/stock"
	"supplypro/internal/domain/supplier"
	"supplypro/internal/infrastructure/http/v1/handlers"
	"supplypro/internal/infrastructure/http/v1/middleware"
	"supplypro/internal/infrastructure/storage/postgres"
	"supplypro/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	AuthService      *auth.Service
	InventoryService *inventory.Service
	SupplierService  *supplier.Service
	StockService     *stock.Service
	FinancialService *analytics.FinancialService
	AnalyticsService *analytics.StockService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	baseHandler := handlers.NewBaseHandler()
	adminOnly := middleware.RequireRole(string(auth.RoleAdmin))

	// API v1
	api := router.Group("/api/v1")
	{
		// Auth: login is public, /me requires a token.
		publicAuth := api.Group("/auth")
		protectedAuth := api.Group("/auth")
		protectedAuth.Use(middleware.Auth(cfg.JWTValidator))
		handlers.NewAuthHandler(baseHandler, cfg.AuthService).
			RegisterRoutes(publicAuth, protectedAuth)

		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		handlers.NewInventoryHandler(baseHandler, cfg.InventoryService).
			RegisterRoutes(protected.Group("/items"), adminOnly)

		handlers.NewSupplierHandler(baseHandler, cfg.SupplierService).
			RegisterRoutes(protected.Group("/suppliers"), adminOnly)

		handlers.NewStockHandler(baseHandler, cfg.StockService).
			RegisterRoutes(protected.Group("/stock-events"))

		handlers.NewAnalyticsHandler(baseHandler, cfg.FinancialService, cfg.AnalyticsService).
			RegisterRoutes(protected.Group("/analytics"))
	}

	return router
}
