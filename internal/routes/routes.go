package routes

import (
	"time"

	"github.com/contractflow/contractflow/internal/config"
	"github.com/contractflow/contractflow/internal/handlers"
	"github.com/contractflow/contractflow/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	clientHandler *handlers.ClientHandler,
	productHandler *handlers.ProductHandler,
	contractHandler *handlers.ContractHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	rateCardHandler *handlers.RateCardHandler,
	tierHandler *handlers.TierHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// JWT middleware is attached per route so public routes stay public.
	jwt := middleware.JWTProtected(cfg)
	admin := middleware.AdminRequired(db)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", middleware.JWTOptional(cfg), authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", jwt, authHandler.Logout)

	// User management (admin for writes; creation reuses the register flow)
	api.Post("/users", jwt, admin, authHandler.Register)
	api.Get("/users", jwt, userHandler.List)
	api.Get("/users/:id", jwt, userHandler.Get)
	api.Get("/users/:id/contracts", jwt, userHandler.ListContracts)
	api.Put("/users/:id", jwt, admin, userHandler.Update)
	api.Patch("/users/:id", jwt, admin, userHandler.Update)
	api.Delete("/users/:id", jwt, admin, userHandler.Archive)

	// Clients
	api.Post("/clients", jwt, clientHandler.Create)
	api.Get("/clients", jwt, clientHandler.List)
	api.Get("/clients/:id", jwt, clientHandler.Get)
	api.Put("/clients/:id", jwt, clientHandler.Update)
	api.Patch("/clients/:id", jwt, clientHandler.Update)
	api.Delete("/clients/:id", jwt, clientHandler.Archive)

	// Products
	api.Post("/products", jwt, productHandler.Create)
	api.Get("/products", jwt, productHandler.List)
	api.Get("/products/:id", jwt, productHandler.Get)
	api.Put("/products/:id", jwt, productHandler.Update)
	api.Patch("/products/:id", jwt, productHandler.Update)
	api.Delete("/products/:id", jwt, productHandler.Archive)

	// Contracts
	api.Post("/contracts", jwt, contractHandler.Create)
	api.Get("/contracts", jwt, contractHandler.List)
	api.Get("/contracts/:id", jwt, contractHandler.Get)
	api.Get("/contracts/:id/subscriptions", jwt, contractHandler.ListSubscriptions)
	api.Put("/contracts/:id", jwt, contractHandler.Update)
	api.Patch("/contracts/:id", jwt, contractHandler.Update)
	api.Delete("/contracts/:id", jwt, contractHandler.Archive)

	// Subscriptions
	api.Post("/subscriptions", jwt, subscriptionHandler.Create)
	api.Get("/subscriptions", jwt, subscriptionHandler.List)
	api.Get("/subscriptions/:id", jwt, subscriptionHandler.Get)
	api.Put("/subscriptions/:id", jwt, subscriptionHandler.Update)
	api.Patch("/subscriptions/:id", jwt, subscriptionHandler.Update)
	api.Delete("/subscriptions/:id", jwt, subscriptionHandler.Archive)

	// Rate cards
	api.Post("/rate-cards", jwt, rateCardHandler.Create)
	api.Get("/rate-cards", jwt, rateCardHandler.List)
	api.Get("/rate-cards/:id", jwt, rateCardHandler.Get)
	api.Get("/rate-cards/:id/subscription-tiers", jwt, rateCardHandler.ListTiers)
	api.Put("/rate-cards/:id", jwt, rateCardHandler.Update)
	api.Patch("/rate-cards/:id", jwt, rateCardHandler.Update)
	api.Delete("/rate-cards/:id", jwt, rateCardHandler.Archive)

	// Subscription tiers
	api.Post("/subscription-tiers", jwt, tierHandler.Create)
	api.Get("/subscription-tiers", jwt, tierHandler.List)
	api.Get("/subscription-tiers/:id", jwt, tierHandler.Get)
	api.Put("/subscription-tiers/:id", jwt, tierHandler.Update)
	api.Patch("/subscription-tiers/:id", jwt, tierHandler.Update)
	api.Delete("/subscription-tiers/:id", jwt, tierHandler.Archive)
}
