package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/lostfound-service/internal/api/http/handlers"
	"github.com/campus-kit/lostfound-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Items          *handlers.ItemsHandler
	Stats          *handlers.StatsHandler
	Sweep          *handlers.SweepHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Listings and stats are public;
// every item write sits behind the teacher role guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/staff/login", cfg.Auth.Login)
	authGroup.Post("/staff/register", cfg.Auth.Register)

	app.Get("/staff", cfg.Auth.ListStaff)

	items := app.Group("/items")
	items.Get("/active", cfg.Items.ListActive)
	items.Get("/collected", cfg.Items.ListCollected)
	items.Get("/archived", cfg.Items.ListArchived)

	protected := items.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/mine", cfg.Items.ListMine)
	protected.Post("/", auth.RequireTeacher(), cfg.Items.Add)
	protected.Post("/:id/collect", auth.RequireTeacher(), cfg.Items.MarkCollected)

	app.Get("/stats/monthly", cfg.Stats.Monthly)

	app.Post("/internal/sweep", cfg.Sweep.Run)
}
