package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// SetupRoutes configures middleware and the application routes.
func SetupRoutes(app *fiber.App, handlers *Handlers) {
	app.Use(recover.New())
	app.Use(requestid.New(RequestIDConfig()))
	app.Use(RequestIDToContextMiddleware())
	app.Use(RequestLoggerMiddleware())

	app.Get("/healthz", handlers.Healthz)

	// Rendered-post API; the status route mirrors the site URL structure.
	// Example: /api/acgfbr/status/2006396789411172607
	app.Get("/api/timeline/:screenName", handlers.Timeline)
	app.Get("/api/search", handlers.Search)
	app.Get("/api/:screenName/status/:id", handlers.GetTweet)
	app.Post("/api/resolve", handlers.Resolve)
}
