package routes

import (
	"rentease/internal/adapters/http/handlers"
	"rentease/internal/adapters/http/middleware"
	"rentease/internal/adapters/persistence/repositories"
	"rentease/internal/config"
	"rentease/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	productRepo := repositories.NewProductRepository(db)
	requestRepo := repositories.NewRequestRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	productService := services.NewProductService(productRepo)
	requestService := services.NewRequestService(requestRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	productHandler := handlers.NewProductHandler(productService)
	requestHandler := handlers.NewRequestHandler(requestService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")
	api.Get("/health", healthHandler.HealthCheck)

	// Auth routes
	authRoutes := api.Group("/users")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Product catalog routes
	productRoutes := api.Group("/products")
	setupProductRoutes(productRoutes, productHandler, cfg)

	// Rental request routes
	requestRoutes := api.Group("/requests")
	setupRequestRoutes(requestRoutes, requestHandler, cfg)
}

// setupAuthRoutes configures account routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited — brute force protection)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupProductRoutes configures catalog routes
func setupProductRoutes(router fiber.Router, handler *handlers.ProductHandler, cfg *config.Config) {
	// Public routes
	router.Get("/categories", handler.Categories)
	router.Get("/", handler.List)

	// Admin routes
	router.Post("/", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.Create)
	router.Put("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.Update)
	router.Delete("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.Delete)
}

// setupRequestRoutes configures rental request routes
func setupRequestRoutes(router fiber.Router, handler *handlers.RequestHandler, cfg *config.Config) {
	// Public submit — a logged-in user gets attached to the request
	router.Post("/", middleware.OptionalAuth(cfg), handler.Create)

	// Admin routes
	router.Get("/", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.List)
	router.Put("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.UpdateStatus)

	// Owner or admin
	router.Delete("/:id", middleware.AuthMiddleware(cfg), handler.Delete)
}
