package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNotifyProgress_EventShape(t *testing.T) {
	hub := NewHub(nil)
	SetDefaultHub(hub)
	t.Cleanup(func() { SetDefaultHub(nil) })

	sessionID := uuid.New()
	NotifyProgress(sessionID, "extracting")

	var raw []byte
	select {
	case raw = <-hub.broadcast:
	case <-time.After(2 * time.Second):
		t.Fatal("no event reached the hub")
	}

	var evt ProgressEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if evt.Type != "extraction_progress" {
		t.Fatalf("unexpected type %q", evt.Type)
	}
	if evt.SessionID != sessionID.String() {
		t.Fatalf("unexpected session id %q", evt.SessionID)
	}
	if evt.Stage != "extracting" {
		t.Fatalf("unexpected stage %q", evt.Stage)
	}
	if _, err := time.Parse(time.RFC3339, evt.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
}

func TestNotifyProgress_NeverBlocksOnUndrainedHub(t *testing.T) {
	// Run is intentionally not started, so the broadcast buffer fills up
	// and every further event must be dropped rather than queued.
	hub := NewHub(nil)
	SetDefaultHub(hub)
	t.Cleanup(func() { SetDefaultHub(nil) })

	sessionID := uuid.New()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 5000; i++ {
			NotifyProgress(sessionID, "parsing")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("NotifyProgress blocked on a full hub")
	}
}

func TestNotifyProgress_NoHubIsNoOp(t *testing.T) {
	SetDefaultHub(nil)
	NotifyProgress(uuid.New(), "parsing")
}

func TestNotifyProgress_EmptyStageIsDropped(t *testing.T) {
	hub := NewHub(nil)
	SetDefaultHub(hub)
	t.Cleanup(func() { SetDefaultHub(nil) })

	NotifyProgress(uuid.New(), "")

	select {
	case raw := <-hub.broadcast:
		t.Fatalf("unexpected event %s", raw)
	default:
	}
}
