package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ProgressEvent tells the page which stage an extraction session is in.
type ProgressEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Stage     string `json:"stage"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyProgress broadcasts a stage change. It never blocks: with no hub or
// a full buffer the event is dropped.
func NotifyProgress(sessionID uuid.UUID, stage string) {
	h := defaultHub.Load()
	if h == nil || stage == "" {
		return
	}

	evt := ProgressEvent{
		Type:      "extraction_progress",
		SessionID: sessionID.String(),
		Stage:     stage,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
