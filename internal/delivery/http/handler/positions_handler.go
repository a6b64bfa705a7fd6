package handler

import (
	"github.com/gofiber/fiber/v3"

	"resume-insights/internal/delivery/http/dto"
	"resume-insights/internal/domain/position"
	"resume-insights/internal/pkg/response"
)

type PositionsHandler struct{}

func NewPositionsHandler() *PositionsHandler {
	return &PositionsHandler{}
}

func (h *PositionsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/positions", h.List)
}

func (h *PositionsHandler) List(c fiber.Ctx) error {
	catalog := position.Catalog()
	res := make([]dto.PositionResponse, 0, len(catalog))
	for _, p := range catalog {
		res = append(res, dto.PositionResponse{Title: p.Title, Company: p.Company})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
