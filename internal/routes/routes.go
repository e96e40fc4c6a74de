// Package routes wires dependencies and defines the API routes.
package routes

import (
	"vigil/internal/config"
	"vigil/internal/handlers"
	"vigil/internal/metrics"
	"vigil/internal/middleware"
	"vigil/internal/repositories"
	"vigil/internal/services/auth"
	"vigil/internal/services/geo"
	"vigil/internal/services/risk"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRoutes constructs the repositories and services and registers
// every route on the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	txRepo := repositories.NewTransactionRepository(db)
	blacklistRepo := repositories.NewBlacklistRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Services
	geoClient := geo.NewClient(
		config.GetEnv("GEOCODER_BASE_URL", geo.DefaultBaseURL),
		config.GetEnv("GEOCODER_USER_AGENT", geo.DefaultUserAgent),
		repositories.CacheService,
	)
	riskService := risk.NewEngine(txRepo, blacklistRepo, geoClient, metrics.NewRiskCollector())
	authService := auth.NewService(userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	txHandler := handlers.NewTransactionHandler(riskService, txRepo, blacklistRepo)

	app.Get("/", handlers.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.RefreshToken)

	// Authenticated endpoints
	authed := api.Use(middleware.Auth())
	authed.Post("/check_fraud", txHandler.CheckFraud)
	authed.Get("/transactions", txHandler.GetTransactions)
	authed.Get("/flagged_transactions", txHandler.GetFlaggedTransactions)
	authed.Get("/blacklist", txHandler.GetBlacklist)
}
