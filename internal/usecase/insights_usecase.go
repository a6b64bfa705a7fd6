package usecase

import (
	"bytes"
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"resume-insights/internal/domain/candidate"
	"resume-insights/internal/llm"
	"resume-insights/internal/parsing"
	"resume-insights/internal/pkg/token"
	"resume-insights/internal/schema"
)

type InsightsResult struct {
	SessionID uuid.UUID
	Token     string
	Candidate candidate.Candidate
}

type InsightsUsecase interface {
	ExtractCandidate(ctx context.Context, data []byte, filename string) (InsightsResult, error)
}

type Insights struct {
	parser parsing.Parser
	llm    llm.Client
	cache  SessionCache
	tokens token.Service
	notify ProgressFunc
	logger *log.Logger
}

func NewInsightsUsecase(parser parsing.Parser, llmClient llm.Client, cache SessionCache, tokens token.Service, notify ProgressFunc, logger *log.Logger) *Insights {
	return &Insights{
		parser: parser,
		llm:    llmClient,
		cache:  cache,
		tokens: tokens,
		notify: notify,
		logger: logger,
	}
}

// ExtractCandidate runs the whole pipeline for one upload: parse the PDF to
// text, hand the document to the model, validate the model's JSON against
// the candidate schema and stash the session for later job-match calls.
func (u *Insights) ExtractCandidate(ctx context.Context, data []byte, filename string) (InsightsResult, error) {
	if len(data) == 0 {
		return InsightsResult{}, ErrInvalidInput
	}
	if !parsing.IsPDF(data) {
		return InsightsResult{}, ErrNotPDF
	}

	sessionID := uuid.New()
	u.notify.notify(sessionID, StageParsing)

	text, err := u.parser.ParseText(ctx, data)
	if err != nil {
		u.notify.notify(sessionID, StageFailed)
		if u.logger != nil {
			u.logger.Printf("Resume parsing failed | session_id=%s err=%v", sessionID, err)
		}
		return InsightsResult{}, ErrUpstream
	}

	doc := llm.Document{Text: text}
	file, err := u.llm.UploadResume(ctx, bytes.NewReader(data), filename)
	if err != nil {
		// The inline text path still works; long-context file grounding
		// is lost for this session only.
		if u.logger != nil {
			u.logger.Printf("Resume file upload failed, using inline text | session_id=%s err=%v", sessionID, err)
		}
	} else {
		doc.File = &file
	}

	u.notify.notify(sessionID, StageExtracting)

	schemaJSON, err := schema.JSONFor[candidate.Candidate]()
	if err != nil {
		u.notify.notify(sessionID, StageFailed)
		return InsightsResult{}, ErrInternal
	}

	raw, err := u.llm.GenerateJSON(ctx, doc, llm.BuildExtractionPrompt(schemaJSON))
	if err != nil {
		u.notify.notify(sessionID, StageFailed)
		if u.logger != nil {
			u.logger.Printf("Candidate extraction failed | session_id=%s err=%v", sessionID, err)
		}
		return InsightsResult{}, ErrUpstream
	}

	cand, err := schema.Decode[candidate.Candidate](llm.CleanJSON(raw))
	if err != nil {
		u.notify.notify(sessionID, StageFailed)
		if u.logger != nil {
			u.logger.Printf("Candidate validation failed | session_id=%s err=%v", sessionID, err)
		}
		return InsightsResult{}, ErrUpstream
	}

	sess := Session{
		ID:        sessionID,
		Document:  doc,
		Candidate: cand,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.cache.SetJSON(ctx, sessionKey(sessionID), sess, 0); err != nil && u.logger != nil {
		u.logger.Printf("Session store failed | session_id=%s err=%v", sessionID, err)
	}

	tok, err := u.tokens.GenerateSessionToken(sessionID)
	if err != nil {
		// No token means no caller can ever reach the stored session.
		_ = u.cache.Delete(ctx, sessionKey(sessionID))
		u.notify.notify(sessionID, StageFailed)
		return InsightsResult{}, ErrInternal
	}

	u.notify.notify(sessionID, StageDone)
	return InsightsResult{SessionID: sessionID, Token: tok, Candidate: cand}, nil
}
