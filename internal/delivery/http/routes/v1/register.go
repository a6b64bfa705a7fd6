package v1

import (
	"github.com/gofiber/fiber/v3"

	"resume-insights/internal/delivery/http/handler"
	"resume-insights/internal/delivery/http/middleware"
	"resume-insights/internal/pkg/token"
	"resume-insights/internal/usecase"
)

type Deps struct {
	Insights       usecase.InsightsUsecase
	JobMatch       usecase.JobMatchUsecase
	Tokens         token.Service
	MaxUploadBytes int64
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	sessionMw := middleware.NewSessionMiddleware(deps.Tokens)

	insightsHandler := handler.NewInsightsHandler(deps.Insights, deps.MaxUploadBytes)
	positionsHandler := handler.NewPositionsHandler()
	matchHandler := handler.NewJobMatchHandler(deps.JobMatch)

	insightsHandler.RegisterRoutes(r)
	positionsHandler.RegisterRoutes(r)

	protected := r.Group("", sessionMw.Middleware())
	matchHandler.RegisterRoutes(protected)
}
