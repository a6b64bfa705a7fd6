package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"resume-insights/internal/delivery/http/middleware"
)

func TestPositionsHandler_List(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	NewPositionsHandler().RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/positions", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp)
	var data []struct {
		Title   string `json:"title"`
		Company string `json:"company"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data) != 4 {
		t.Fatalf("expected 4 positions, got %d", len(data))
	}
	for _, p := range data {
		if p.Company != "LlamaIndex" {
			t.Fatalf("unexpected company %q", p.Company)
		}
	}
}
