package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"resume-insights/internal/config"
	"resume-insights/internal/delivery/http/middleware"
	"resume-insights/internal/delivery/http/routes"
	v1 "resume-insights/internal/delivery/http/routes/v1"
	"resume-insights/internal/ws"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		BodyLimit: int(c.Config.App.MaxUploadBytes) + 1<<20,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run()

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	errMw := middleware.NewErrorMiddleware()
	app.Use(accessMw.Middleware())
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	registry := routes.NewRegistry(v1.Deps{
		Insights:       c.Insights,
		JobMatch:       c.JobMatch,
		Tokens:         c.Tokens,
		MaxUploadBytes: c.Config.App.MaxUploadBytes,
	}, c.Cache)
	registry.Register(app)

	wsHandler := ws.NewHandler(c.Hub, c.Logger)
	app.Get("/ws/progress", wsHandler.HandleProgressWS)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
