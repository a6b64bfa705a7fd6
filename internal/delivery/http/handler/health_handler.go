package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"resume-insights/internal/pkg/response"
)

// CachePinger reports whether the session cache is reachable.
type CachePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	cache CachePinger
}

func NewHealthHandler(cache CachePinger) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health always answers 200; a down cache degrades job matching but does not
// take the service out of rotation.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	cacheStatus := "down"
	if h.cache != nil && h.cache.Ping(c.Context()) == nil {
		cacheStatus = "up"
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"cache": cacheStatus})
}
