package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/moodtunes/backend/internal/domain"
	"github.com/moodtunes/backend/internal/service"
)

const (
	msgInvalidInput       = "Mood and city must be provided."
	msgInvalidBody        = "Invalid request body"
	msgWeatherUnavailable = "Could not fetch weather for the specified city."
)

// Handler contains all HTTP handlers
type Handler struct {
	recommendationSvc *service.RecommendationService
}

// NewHandler creates a new handler
func NewHandler(recommendationSvc *service.RecommendationService) *Handler {
	return &Handler{recommendationSvc: recommendationSvc}
}

// Ping confirms the API is up without touching any provider
func (h *Handler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Recommend checks the mood against the city's weather and suggests a song
func (h *Handler) Recommend(c *fiber.Ctx) error {
	var req domain.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, msgInvalidBody)
	}

	resp, err := h.recommendationSvc.Recommend(c.UserContext(), req)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, msgInvalidInput)
	case errors.Is(err, domain.ErrWeatherUnavailable):
		return fiber.NewError(fiber.StatusNotFound, msgWeatherUnavailable)
	case err != nil:
		return err
	}

	return c.JSON(resp)
}

// ListMoods returns the mood table
func (h *Handler) ListMoods(c *fiber.Ctx) error {
	entries := h.recommendationSvc.Table().Entries()
	return c.JSON(fiber.Map{
		"moods": entries,
		"count": len(entries),
	})
}
