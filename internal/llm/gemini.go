package llm

import (
	"context"
	"fmt"
	"io"
	"log"

	"google.golang.org/genai"

	"resume-insights/internal/config"
)

const resumeMIMEType = "application/pdf"

// Gemini talks to the Gemini API through the official genai SDK.
type Gemini struct {
	client *genai.Client
	cfg    config.GeminiConfig
	logger *log.Logger
}

func NewGemini(ctx context.Context, cfg config.GeminiConfig, logger *log.Logger) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("empty Gemini API key")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{client: client, cfg: cfg, logger: logger}, nil
}

func (g *Gemini) UploadResume(ctx context.Context, r io.Reader, displayName string) (UploadedFile, error) {
	f, err := g.client.Files.Upload(ctx, r, &genai.UploadFileConfig{
		MIMEType:    resumeMIMEType,
		DisplayName: displayName,
	})
	if err != nil {
		return UploadedFile{}, fmt.Errorf("upload resume to file service: %w", err)
	}

	if g.logger != nil {
		g.logger.Printf("LLM file uploaded | display_name=%q uri=%s", displayName, f.URI)
	}

	return UploadedFile{
		URI:         f.URI,
		MIMEType:    f.MIMEType,
		DisplayName: displayName,
	}, nil
}

func (g *Gemini) GenerateJSON(ctx context.Context, doc Document, prompt string) (string, error) {
	parts := make([]*genai.Part, 0, 2)
	if doc.File != nil {
		parts = append(parts, genai.NewPartFromURI(doc.File.URI, doc.File.MIMEType))
	} else if doc.Text != "" {
		parts = append(parts, genai.NewPartFromText("Resume:\n"+doc.Text))
	}
	parts = append(parts, genai.NewPartFromText(prompt))

	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, contents, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(g.cfg.Temperature),
		TopP:             genai.Ptr(g.cfg.TopP),
		TopK:             genai.Ptr(g.cfg.TopK),
		MaxOutputTokens:  g.cfg.MaxOutputTokens,
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
