package routes

import (
	"github.com/gofiber/fiber/v3"

	"resume-insights/internal/delivery/http/handler"
	v1 "resume-insights/internal/delivery/http/routes/v1"
)

type Registry struct {
	health *handler.HealthHandler
	ui     *handler.UIHandler
	deps   v1.Deps
}

func NewRegistry(deps v1.Deps, cache handler.CachePinger) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(cache),
		ui:     handler.NewUIHandler(),
		deps:   deps,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.ui.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)
}
