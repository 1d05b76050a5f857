package dto

import (
	"time"

	"github.com/google/uuid"
)

type TurnDTO struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Chat      string    `json:"chat"`
	Sequence  int       `json:"sequence"`
	CreatedAt time.Time `json:"created_at"`
}

type UploadDocumentResponse struct {
	Status      string   `json:"status"`
	DocumentRef string   `json:"document_ref"`
	Welcome     *TurnDTO `json:"welcome,omitempty"`
}

type SendChatRequest struct {
	Chat string `json:"chat" validate:"required,max=4000"`
}

// SendChatResponse mirrors the exchange: Sent is the recorded user turn,
// Reply the assistant (or apology) turn. Both are nil when the send was a
// guard no-op and no turns were recorded.
type SendChatResponse struct {
	Status   string   `json:"status"`
	Accepted bool     `json:"accepted"`
	Sent     *TurnDTO `json:"sent,omitempty"`
	Reply    *TurnDTO `json:"reply,omitempty"`
}

type SessionInfoResponse struct {
	Status      string `json:"status"`
	DocumentRef string `json:"document_ref,omitempty"`
	TurnCount   int    `json:"turn_count"`
}

type SessionStateResponse struct {
	Status      string    `json:"status"`
	DocumentRef string    `json:"document_ref,omitempty"`
	Turns       []TurnDTO `json:"turns"`
}
