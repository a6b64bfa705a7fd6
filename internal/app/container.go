package app

import (
	"context"
	"log"
	"time"

	"resume-insights/internal/config"
	"resume-insights/internal/infrastructure/cache"
	"resume-insights/internal/llm"
	"resume-insights/internal/parsing"
	"resume-insights/internal/pkg/token"
	"resume-insights/internal/usecase"
	"resume-insights/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	Cache  *cache.Redis
	Tokens token.Service
	Hub    *ws.Hub

	Insights usecase.InsightsUsecase
	JobMatch usecase.JobMatchUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gemini, err := llm.NewGemini(ctx, cfg.Gemini, logger)
	if err != nil {
		return nil, err
	}

	var parser parsing.Parser = parsing.NewPDFText()
	if cloud := parsing.NewLlamaParse(cfg.Parsing.LlamaCloudAPIKey); cloud != nil {
		parser = parsing.NewFallback(cloud, parsing.NewPDFText(), logger)
	} else {
		logger.Printf("LLAMA_CLOUD_API_KEY not set, using local PDF text extraction only")
	}

	sessionCache := cache.NewRedis(cfg.Redis, logger)
	tokens := token.NewHMACService(cfg.Session.Secret, cfg.Session.ExpiresIn)

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)
	notify := usecase.ProgressFunc(ws.NotifyProgress)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Cache:    sessionCache,
		Tokens:   tokens,
		Hub:      hub,
		Insights: usecase.NewInsightsUsecase(parser, gemini, sessionCache, tokens, notify, logger),
		JobMatch: usecase.NewJobMatchUsecase(gemini, sessionCache, notify, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
