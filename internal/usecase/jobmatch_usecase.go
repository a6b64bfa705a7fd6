package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"resume-insights/internal/domain/candidate"
	"resume-insights/internal/domain/position"
	"resume-insights/internal/llm"
	"resume-insights/internal/schema"
)

type JobMatchUsecase interface {
	MatchSkills(ctx context.Context, sessionID uuid.UUID, jobPosition, company string) (candidate.JobMatch, error)
}

type JobMatch struct {
	llm    llm.Client
	cache  SessionCache
	notify ProgressFunc
	logger *log.Logger
}

func NewJobMatchUsecase(llmClient llm.Client, cache SessionCache, notify ProgressFunc, logger *log.Logger) *JobMatch {
	return &JobMatch{llm: llmClient, cache: cache, notify: notify, logger: logger}
}

// MatchSkills grades the session's extracted skills against a job position.
// Results are cached per (session, position), so re-selecting a position in
// the UI does not trigger another model call.
func (u *JobMatch) MatchSkills(ctx context.Context, sessionID uuid.UUID, jobPosition, company string) (candidate.JobMatch, error) {
	jobPosition = strings.TrimSpace(jobPosition)
	if jobPosition == "" {
		return candidate.JobMatch{}, ErrInvalidInput
	}
	company = strings.TrimSpace(company)
	if company == "" {
		company = position.DefaultCompany
	}

	var sess Session
	found, err := u.cache.GetJSON(ctx, sessionKey(sessionID), &sess)
	if err != nil || !found {
		return candidate.JobMatch{}, ErrSessionExpired
	}

	if !sess.Candidate.HasSkills() {
		return candidate.JobMatch{}, ErrNoSkills
	}

	var cached candidate.JobMatch
	if found, err := u.cache.GetJSON(ctx, matchKey(sessionID, jobPosition), &cached); err == nil && found {
		return cached, nil
	}

	u.notify.notify(sessionID, StageMatching)

	schemaJSON, err := schema.JSONFor[candidate.JobMatch]()
	if err != nil {
		u.notify.notify(sessionID, StageFailed)
		return candidate.JobMatch{}, ErrInternal
	}

	prompt := llm.BuildJobMatchPrompt(sess.Candidate.Skills, jobPosition, company, schemaJSON)
	raw, err := u.llm.GenerateJSON(ctx, sess.Document, prompt)
	if err != nil {
		u.notify.notify(sessionID, StageFailed)
		if u.logger != nil {
			u.logger.Printf("Job match failed | session_id=%s position=%q err=%v", sessionID, jobPosition, err)
		}
		return candidate.JobMatch{}, ErrUpstream
	}

	match, err := schema.Decode[candidate.JobMatch](llm.CleanJSON(raw))
	if err != nil {
		u.notify.notify(sessionID, StageFailed)
		if u.logger != nil {
			u.logger.Printf("Job match validation failed | session_id=%s err=%v", sessionID, err)
		}
		return candidate.JobMatch{}, ErrUpstream
	}

	if match.JobName == "" {
		match.JobName = jobPosition
	}

	if err := u.cache.SetJSON(ctx, matchKey(sessionID, jobPosition), match, 0); err != nil && u.logger != nil {
		u.logger.Printf("Match cache store failed | session_id=%s err=%v", sessionID, err)
	}

	u.notify.notify(sessionID, StageDone)
	return match, nil
}
