package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kisanmitra/backend/internal/service"
)

// Dependencies are the services the HTTP layer serves
type Dependencies struct {
	Dashboard *service.DashboardService
	Schemes   *service.SchemeService
	Regions   *service.RegionService
	Chat      *service.ChatService
	Checks    map[string]CheckFunc // optional dependency probes for /health
	Logger    *zap.Logger
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, deps Dependencies) {
	handler := NewHandler(deps)

	// Health check and metrics
	app.Get("/health", handler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	{
		// Dashboard cards
		api.Get("/dashboard", handler.GetDashboard)
		api.Get("/farm-risk", handler.GetFarmRisk)
		api.Get("/irrigation", handler.GetIrrigation)
		api.Get("/market", handler.GetMarket)
		api.Get("/yield", handler.GetYield)
		api.Get("/weather", handler.GetWeather)

		// Scheme eligibility
		api.Get("/schemes", handler.GetSchemes)
		api.Get("/schemes/:id", handler.GetScheme)

		// Regional map
		api.Get("/states", handler.GetStates)
		api.Get("/states/nearest", handler.GetNearestState)
		api.Get("/states/:id", handler.GetState)

		// Assistant
		api.Post("/chat", handler.Chat)
	}
}
