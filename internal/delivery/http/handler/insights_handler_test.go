package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resume-insights/internal/delivery/http/middleware"
	"resume-insights/internal/domain/candidate"
	"resume-insights/internal/usecase"
)

type fakeInsightsUC struct {
	res usecase.InsightsResult
	err error

	gotFilename string
	gotSize     int
}

func (f *fakeInsightsUC) ExtractCandidate(_ context.Context, data []byte, filename string) (usecase.InsightsResult, error) {
	f.gotFilename = filename
	f.gotSize = len(data)
	if f.err != nil {
		return usecase.InsightsResult{}, f.err
	}
	return f.res, nil
}

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newUploadApp(uc usecase.InsightsUsecase, maxBytes int64) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	NewInsightsHandler(uc, maxBytes).RegisterRoutes(app)
	return app
}

func multipartUpload(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/resumes/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) semanticResponse {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out semanticResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, body)
	}
	return out
}

func TestInsightsHandler_Upload_Success(t *testing.T) {
	sessionID := uuid.New()
	uc := &fakeInsightsUC{res: usecase.InsightsResult{
		SessionID: sessionID,
		Token:     "tok",
		Candidate: candidate.Candidate{Name: "Ada", Email: "ada@example.com", Skills: []string{"Go"}},
	}}
	app := newUploadApp(uc, 5<<20)

	resp, err := app.Test(multipartUpload(t, "resume", "resume.pdf", []byte("%PDF-1.4 body")))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp)
	var data struct {
		SessionID    string `json:"session_id"`
		SessionToken string `json:"session_token"`
		Candidate    struct {
			Name   string   `json:"name"`
			Skills []string `json:"skills"`
		} `json:"candidate"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.SessionID != sessionID.String() {
		t.Fatalf("unexpected session id %q", data.SessionID)
	}
	if data.SessionToken != "tok" {
		t.Fatalf("unexpected token %q", data.SessionToken)
	}
	if data.Candidate.Name != "Ada" || len(data.Candidate.Skills) != 1 {
		t.Fatalf("unexpected candidate %+v", data.Candidate)
	}
	if uc.gotFilename != "resume.pdf" {
		t.Fatalf("usecase got filename %q", uc.gotFilename)
	}
}

func TestInsightsHandler_Upload_MissingFile(t *testing.T) {
	app := newUploadApp(&fakeInsightsUC{}, 5<<20)

	req := httptest.NewRequest(http.MethodPost, "/resumes/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestInsightsHandler_Upload_WrongExtension(t *testing.T) {
	app := newUploadApp(&fakeInsightsUC{}, 5<<20)

	resp, err := app.Test(multipartUpload(t, "resume", "resume.docx", []byte("PK...")))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestInsightsHandler_Upload_TooLarge(t *testing.T) {
	app := newUploadApp(&fakeInsightsUC{}, 16)

	resp, err := app.Test(multipartUpload(t, "resume", "resume.pdf", bytes.Repeat([]byte("a"), 64)))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestInsightsHandler_Upload_UpstreamError(t *testing.T) {
	app := newUploadApp(&fakeInsightsUC{err: usecase.ErrUpstream}, 5<<20)

	resp, err := app.Test(multipartUpload(t, "resume", "resume.pdf", []byte("%PDF-1.4")))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
}
