package mapper

import (
	"ai-pdfchat-be/internal/dto"
	"ai-pdfchat-be/pkg/store"
	"ai-pdfchat-be/pkg/turnlog"
)

func ToTurnDTO(turn turnlog.Turn) *dto.TurnDTO {
	return &dto.TurnDTO{
		Id:        turn.Id,
		Role:      string(turn.Role),
		Chat:      turn.Content,
		Sequence:  turn.Sequence,
		CreatedAt: turn.CreatedAt,
	}
}

// ToSessionState snapshots the session. Caller must hold the session lock.
func ToSessionState(session *store.Session) *dto.SessionStateResponse {
	turns := session.Turns.All()
	turnDTOs := make([]dto.TurnDTO, 0, len(turns))
	for _, turn := range turns {
		turnDTOs = append(turnDTOs, *ToTurnDTO(turn))
	}

	return &dto.SessionStateResponse{
		Status:      session.Status,
		DocumentRef: session.DocumentRef,
		Turns:       turnDTOs,
	}
}
