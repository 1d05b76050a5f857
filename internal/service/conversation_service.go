package service

import (
	"context"

	"ai-pdfchat-be/internal/constant"
	"ai-pdfchat-be/internal/dto"
	"ai-pdfchat-be/internal/mapper"
	"ai-pdfchat-be/internal/pkg/logger"
	"ai-pdfchat-be/internal/repository/memory"
	"ai-pdfchat-be/pkg/answer"
	"ai-pdfchat-be/pkg/extract"
	"ai-pdfchat-be/pkg/store"
	"ai-pdfchat-be/pkg/turnlog"

	"github.com/google/uuid"
)

// IConversationService drives the document-chat session through its
// lifecycle: Idle -> Extracting -> Ready <-> AwaitingReply, with reset back
// to Idle. Only this service mutates session status and turns.
type IConversationService interface {
	UploadDocument(ctx context.Context, userId uuid.UUID, filename string, payload []byte) (*dto.UploadDocumentResponse, error)
	SendChat(ctx context.Context, userId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID) (*dto.SessionStateResponse, error)
	Reset(ctx context.Context, userId uuid.UUID) (*dto.SessionStateResponse, error)
}

type conversationService struct {
	sessionRepo *memory.SessionRepository
	gate        *extract.Gate
	transport   answer.Transport
	log         logger.ILogger
}

func NewConversationService(
	sessionRepo *memory.SessionRepository,
	gate *extract.Gate,
	transport answer.Transport,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		sessionRepo: sessionRepo,
		gate:        gate,
		transport:   transport,
		log:         log,
	}
}

// UploadDocument validates and extracts the document, then seeds the
// conversation. On rejection nothing is retained and the session returns
// to Idle.
func (cs *conversationService) UploadDocument(ctx context.Context, userId uuid.UUID, filename string, payload []byte) (*dto.UploadDocumentResponse, error) {
	session := cs.sessionRepo.GetOrCreate(userId.String())

	// Guard and transition are one atomic step: handlers run concurrently,
	// so the Busy check and the move to Extracting must not interleave.
	session.Lock()
	if session.Busy() || session.HasContext() {
		status, documentRef := session.Status, session.DocumentRef
		session.Unlock()
		cs.log.Warn("conversation", "Upload ignored: session not idle", map[string]interface{}{
			"user_id": userId.String(),
			"status":  status,
		})
		return &dto.UploadDocumentResponse{Status: status, DocumentRef: documentRef}, nil
	}
	session.Status = store.StatusExtracting
	session.Unlock()
	cs.sessionRepo.Save(session)

	// The lock is not held across the extraction call: concurrent requests
	// must be rejected by the guard, not queued behind it.
	extracted, err := cs.gate.Submit(ctx, filename, payload)
	if err != nil {
		// Roll back to Idle; no partial context, no document ref, no turns.
		session.Lock()
		session.Status = store.StatusIdle
		session.Unlock()
		cs.sessionRepo.Save(session)
		cs.log.Info("conversation", "Document rejected", map[string]interface{}{
			"user_id":  userId.String(),
			"document": filename,
			"error":    err.Error(),
		})
		return nil, err
	}

	session.Lock()
	session.Context = extracted.Text
	session.DocumentRef = extracted.Label
	welcome := session.Turns.Append(turnlog.RoleAssistant, constant.WelcomeMessage(extracted.Label))
	session.Status = store.StatusReady
	session.Unlock()
	cs.sessionRepo.Save(session)

	cs.log.Info("conversation", "Document ready for chat", map[string]interface{}{
		"user_id":     userId.String(),
		"document":    extracted.Label,
		"context_len": len(extracted.Text),
	})

	return &dto.UploadDocumentResponse{
		Status:      store.StatusReady,
		DocumentRef: extracted.Label,
		Welcome:     mapper.ToTurnDTO(welcome),
	}, nil
}

// SendChat runs one exchange. The transport receives the grounding context,
// the new message and the turns recorded before it; the reply (or a fixed
// apology when the transport fails) is appended and the session returns to
// Ready. A send while the session is busy or ungrounded records nothing.
func (cs *conversationService) SendChat(ctx context.Context, userId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	session, found := cs.sessionRepo.Get(userId.String())
	if !found {
		cs.log.Warn("conversation", "Send ignored: session not ready", map[string]interface{}{
			"user_id": userId.String(),
			"status":  store.StatusIdle,
		})
		return &dto.SendChatResponse{Status: store.StatusIdle, Accepted: false}, nil
	}

	// Atomic guard-and-acquire: of two concurrent sends, exactly one moves
	// the session to AwaitingReply; the other sees Busy and is rejected.
	session.Lock()
	if !session.HasContext() || session.Busy() {
		status := session.Status
		session.Unlock()
		cs.log.Warn("conversation", "Send ignored: session not ready", map[string]interface{}{
			"user_id": userId.String(),
			"status":  status,
		})
		return &dto.SendChatResponse{Status: status, Accepted: false}, nil
	}
	priorTurns := session.Turns.All()
	contextText := session.Context
	sent := session.Turns.Append(turnlog.RoleUser, request.Chat)
	session.Status = store.StatusAwaitingReply
	session.Unlock()
	cs.sessionRepo.Save(session)

	// The lock is released for the transport round trip; the AwaitingReply
	// status keeps other sends and resets out in the meantime.
	answerText, err := cs.transport.Ask(ctx, contextText, request.Chat, priorTurns)

	var reply turnlog.Turn
	session.Lock()
	if err != nil {
		// Every transport failure is recoverable: apologize and stay usable.
		cs.log.Warn("conversation", "Answer service failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		reply = session.Turns.Append(turnlog.RoleAssistant, constant.ApologyMessage)
	} else {
		reply = session.Turns.Append(turnlog.RoleAssistant, answerText)
	}
	session.Status = store.StatusReady
	session.Unlock()
	cs.sessionRepo.Save(session)

	return &dto.SendChatResponse{
		Status:   store.StatusReady,
		Accepted: true,
		Sent:     mapper.ToTurnDTO(sent),
		Reply:    mapper.ToTurnDTO(reply),
	}, nil
}

// GetHistory returns the ordered transcript and current status.
func (cs *conversationService) GetHistory(ctx context.Context, userId uuid.UUID) (*dto.SessionStateResponse, error) {
	session := cs.sessionRepo.GetOrCreate(userId.String())

	session.Lock()
	state := mapper.ToSessionState(session)
	session.Unlock()
	return state, nil
}

// Reset discards context and turns, yielding a logically new Idle session.
// A reset while an extraction or exchange is in flight is ignored.
func (cs *conversationService) Reset(ctx context.Context, userId uuid.UUID) (*dto.SessionStateResponse, error) {
	session := cs.sessionRepo.GetOrCreate(userId.String())

	session.Lock()
	if session.Busy() {
		state := mapper.ToSessionState(session)
		session.Unlock()
		cs.log.Warn("conversation", "Reset ignored: exchange in flight", map[string]interface{}{
			"user_id": userId.String(),
			"status":  state.Status,
		})
		return state, nil
	}

	session.ID = uuid.New().String()
	session.Status = store.StatusIdle
	session.DocumentRef = ""
	session.Context = ""
	session.Turns.Reset()
	state := mapper.ToSessionState(session)
	session.Unlock()
	cs.sessionRepo.Save(session)

	cs.log.Info("conversation", "Session reset", map[string]interface{}{
		"user_id": userId.String(),
	})

	return state, nil
}
