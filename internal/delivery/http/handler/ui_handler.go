package handler

import (
	"github.com/gofiber/fiber/v3"

	"resume-insights/web"
)

type UIHandler struct{}

func NewUIHandler() *UIHandler {
	return &UIHandler{}
}

func (h *UIHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Index)
}

func (h *UIHandler) Index(c fiber.Ctx) error {
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.Send(web.IndexHTML)
}
