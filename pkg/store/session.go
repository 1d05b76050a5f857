package store

import (
	"sync"

	"ai-pdfchat-be/pkg/turnlog"
)

// Session represents the active document-chat session state in memory.
// One session per user; a new document requires a reset, which is a
// logically new session.
//
// The embedded mutex guards status, grounding and transcript. Handlers run
// on separate goroutines, so every guard check and status transition must
// happen under Lock.
type Session struct {
	sync.Mutex `json:"-"`

	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Status string `json:"status"` // IDLE | EXTRACTING | READY | AWAITING_REPLY | FAILED

	// THE GROUNDING (set once per session lifetime, cleared only on reset)
	DocumentRef string `json:"document_ref"` // human-readable label of the ingested file
	Context     string `json:"context"`      // extracted text all answers are grounded in

	// THE TRANSCRIPT (append-only, mutated only by the conversation service)
	Turns *turnlog.Log `json:"-"`
}

const (
	StatusIdle          = "IDLE"
	StatusExtracting    = "EXTRACTING"
	StatusReady         = "READY"
	StatusAwaitingReply = "AWAITING_REPLY"
	StatusFailed        = "FAILED"
)

// HasContext reports whether the grounding text has been set.
// Caller must hold the session lock.
func (s *Session) HasContext() bool {
	return s.Context != ""
}

// Busy reports whether an extraction or exchange is in flight. A busy
// session rejects new sends without side effects. Caller must hold the
// session lock.
func (s *Session) Busy() bool {
	return s.Status == StatusExtracting || s.Status == StatusAwaitingReply
}
