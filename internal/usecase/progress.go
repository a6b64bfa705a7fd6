package usecase

import "github.com/google/uuid"

// Extraction stages surfaced to the UI over the websocket.
const (
	StageParsing    = "parsing"
	StageExtracting = "extracting"
	StageMatching   = "matching"
	StageDone       = "done"
	StageFailed     = "failed"
)

// ProgressFunc pushes a stage change for one session. Implementations must
// not block; a dropped event is acceptable, a stalled extraction is not.
type ProgressFunc func(sessionID uuid.UUID, stage string)

func (f ProgressFunc) notify(sessionID uuid.UUID, stage string) {
	if f != nil {
		f(sessionID, stage)
	}
}
