package routes

import (
	"time"

	"github.com/AsrafulMasum/bistro-boos-server/internal/config"
	"github.com/AsrafulMasum/bistro-boos-server/internal/handlers"
	"github.com/AsrafulMasum/bistro-boos-server/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	tokenHandler *handlers.TokenHandler,
	userHandler *handlers.UserHandler,
	menuHandler *handlers.MenuHandler,
	cartHandler *handlers.CartHandler,
	paymentHandler *handlers.PaymentHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Liveness probe stays outside the rate limiter.
	app.Get("/", healthHandler.Live)
	app.Get("/health", healthHandler.Check)

	// General rate limit: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Public
	app.Post("/jwt", tokenHandler.Issue)
	app.Put("/users", userHandler.Upsert)
	app.Post("/menus", menuHandler.Create)
	app.Get("/menus", menuHandler.List)

	// Bearer-protected - apply middleware per route so public routes stay
	// unaffected
	app.Get("/cart/:email", middleware.JWTProtected(cfg), cartHandler.ListByOwner)
	app.Post("/cart", middleware.JWTProtected(cfg), cartHandler.Add)
	app.Delete("/cart/:id", middleware.JWTProtected(cfg), cartHandler.Delete)

	app.Post("/create-payment-intent", middleware.JWTProtected(cfg), paymentHandler.CreateIntent)
	app.Post("/payments", middleware.JWTProtected(cfg), paymentHandler.Record)
	app.Get("/payments/history/:email", middleware.JWTProtected(cfg), paymentHandler.History)
}
