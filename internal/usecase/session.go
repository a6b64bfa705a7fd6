package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-insights/internal/domain/candidate"
	"resume-insights/internal/llm"
)

// Session is the per-upload state that survives between the extraction call
// and later job-match calls. It lives only in the cache, bounded by the TTL;
// nothing is written to durable storage.
type Session struct {
	ID        uuid.UUID           `json:"id"`
	Document  llm.Document        `json:"document"`
	Candidate candidate.Candidate `json:"candidate"`
	CreatedAt time.Time           `json:"created_at"`
}

// SessionCache is the port the usecases store session state behind.
// A cache that is down reports misses, never failures.
type SessionCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func sessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}

func matchKey(id uuid.UUID, jobPosition string) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(jobPosition), " ", "-"))
	return "session:" + id.String() + ":match:" + slug
}
