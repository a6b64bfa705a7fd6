package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"

	"resume-insights/internal/llm"
	"resume-insights/internal/pkg/token"
)

var pdfBytes = []byte("%PDF-1.4 fake resume body")

type fakeParser struct {
	text string
	err  error
}

func (f *fakeParser) ParseText(context.Context, []byte) (string, error) {
	return f.text, f.err
}

type fakeLLM struct {
	uploadErr error
	output    string
	genErr    error

	genCalls   int
	lastPrompt string
}

func (f *fakeLLM) UploadResume(_ context.Context, _ io.Reader, displayName string) (llm.UploadedFile, error) {
	if f.uploadErr != nil {
		return llm.UploadedFile{}, f.uploadErr
	}
	return llm.UploadedFile{URI: "files/abc123", MIMEType: "application/pdf", DisplayName: displayName}, nil
}

func (f *fakeLLM) GenerateJSON(_ context.Context, _ llm.Document, prompt string) (string, error) {
	f.genCalls++
	f.lastPrompt = prompt
	if f.genErr != nil {
		return "", f.genErr
	}
	return f.output, nil
}

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

type fakeTokens struct {
	err error
}

func (f *fakeTokens) GenerateSessionToken(sessionID uuid.UUID) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "tok-" + sessionID.String(), nil
}

func (f *fakeTokens) ValidateToken(string) (token.Claims, error) {
	return token.Claims{}, token.ErrTokenInvalid
}

type stageRecorder struct {
	stages []string
}

func (r *stageRecorder) record(_ uuid.UUID, stage string) {
	r.stages = append(r.stages, stage)
}

func TestInsights_ExtractCandidate_Success(t *testing.T) {
	cache := newFakeCache()
	rec := &stageRecorder{}
	model := &fakeLLM{output: "```json\n{\"name\":\"Ada\",\"email\":\"ada@example.com\",\"age\":28,\"skills\":[\"Go\"]}\n```"}

	uc := NewInsightsUsecase(&fakeParser{text: "resume text"}, model, cache, &fakeTokens{}, rec.record, nil)

	res, err := uc.ExtractCandidate(context.Background(), pdfBytes, "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Candidate.Name != "Ada" {
		t.Fatalf("unexpected candidate name %q", res.Candidate.Name)
	}
	if res.Token == "" {
		t.Fatalf("expected session token")
	}

	var sess Session
	found, err := cache.GetJSON(context.Background(), sessionKey(res.SessionID), &sess)
	if err != nil || !found {
		t.Fatalf("session not stored: found=%v err=%v", found, err)
	}
	if sess.Document.File == nil || sess.Document.File.URI != "files/abc123" {
		t.Fatalf("session document missing uploaded file: %+v", sess.Document)
	}
	if sess.Document.Text != "resume text" {
		t.Fatalf("session document missing parsed text")
	}

	want := []string{StageParsing, StageExtracting, StageDone}
	if len(rec.stages) != len(want) {
		t.Fatalf("stages = %v, want %v", rec.stages, want)
	}
	for i := range want {
		if rec.stages[i] != want[i] {
			t.Fatalf("stages = %v, want %v", rec.stages, want)
		}
	}
}

func TestInsights_ExtractCandidate_NotPDF(t *testing.T) {
	uc := NewInsightsUsecase(&fakeParser{}, &fakeLLM{}, newFakeCache(), &fakeTokens{}, nil, nil)

	if _, err := uc.ExtractCandidate(context.Background(), []byte("<html>"), "resume.pdf"); !errors.Is(err, ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
	if _, err := uc.ExtractCandidate(context.Background(), nil, "resume.pdf"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestInsights_ExtractCandidate_ParserError(t *testing.T) {
	rec := &stageRecorder{}
	uc := NewInsightsUsecase(&fakeParser{err: errors.New("cloud down")}, &fakeLLM{}, newFakeCache(), &fakeTokens{}, rec.record, nil)

	if _, err := uc.ExtractCandidate(context.Background(), pdfBytes, "resume.pdf"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if len(rec.stages) == 0 || rec.stages[len(rec.stages)-1] != StageFailed {
		t.Fatalf("expected terminal failed stage, got %v", rec.stages)
	}
}

func TestInsights_ExtractCandidate_ModelReturnsGarbage(t *testing.T) {
	model := &fakeLLM{output: "I could not find any structured data, sorry!"}
	uc := NewInsightsUsecase(&fakeParser{text: "resume text"}, model, newFakeCache(), &fakeTokens{}, nil, nil)

	if _, err := uc.ExtractCandidate(context.Background(), pdfBytes, "resume.pdf"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestInsights_ExtractCandidate_TokenFailureDropsSession(t *testing.T) {
	cache := newFakeCache()
	rec := &stageRecorder{}
	model := &fakeLLM{output: `{"name":"Ada","skills":["Go"]}`}
	tokens := &fakeTokens{err: errors.New("signing key unavailable")}

	uc := NewInsightsUsecase(&fakeParser{text: "resume text"}, model, cache, tokens, rec.record, nil)

	if _, err := uc.ExtractCandidate(context.Background(), pdfBytes, "resume.pdf"); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	// The session was stored before signing failed; without a token nobody
	// can reach it, so it must be removed again.
	if len(cache.data) != 0 {
		t.Fatalf("expected empty cache, got %d entries", len(cache.data))
	}
	if len(rec.stages) == 0 || rec.stages[len(rec.stages)-1] != StageFailed {
		t.Fatalf("expected terminal failed stage, got %v", rec.stages)
	}
}

func TestInsights_ExtractCandidate_UploadFailureFallsBackToText(t *testing.T) {
	cache := newFakeCache()
	model := &fakeLLM{uploadErr: errors.New("file service down"), output: `{"name":"Ada","skills":["Go"]}`}
	uc := NewInsightsUsecase(&fakeParser{text: "resume text"}, model, cache, &fakeTokens{}, nil, nil)

	res, err := uc.ExtractCandidate(context.Background(), pdfBytes, "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var sess Session
	if found, _ := cache.GetJSON(context.Background(), sessionKey(res.SessionID), &sess); !found {
		t.Fatalf("session not stored")
	}
	if sess.Document.File != nil {
		t.Fatalf("expected no file reference after upload failure")
	}
	if sess.Document.Text != "resume text" {
		t.Fatalf("expected inline text fallback")
	}
}
