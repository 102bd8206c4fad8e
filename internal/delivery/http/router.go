package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodtunes/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, recommendationSvc *service.RecommendationService) {
	handler := NewHandler(recommendationSvc)

	// Health check
	app.Get("/ping", handler.Ping)

	app.Post("/recommendation", handler.Recommend)
	app.Get("/moods", handler.ListMoods)
}
