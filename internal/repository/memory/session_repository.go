package memory

import (
	"time"

	"ai-pdfchat-be/pkg/store"
	"ai-pdfchat-be/pkg/turnlog"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps one live document-chat session per user.
// Conversation state is deliberately ephemeral: idle sessions are purged
// after the TTL and nothing survives a restart.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// Purge expired sessions at a tenth of the TTL, minimum once a minute
	purge := ttl / 10
	if purge < time.Minute {
		purge = time.Minute
	}
	return &SessionRepository{
		cache: cache.New(ttl, purge),
	}
}

// GetOrCreate returns the user's active session, creating a fresh Idle one
// if none exists. Each Save refreshes the TTL, so a session lives for the
// duration of one interactive sitting.
func (r *SessionRepository) GetOrCreate(userID string) *store.Session {
	if x, found := r.cache.Get(userID); found {
		return x.(*store.Session)
	}
	session := &store.Session{
		ID:     uuid.New().String(),
		UserID: userID,
		Status: store.StatusIdle,
		Turns:  turnlog.New(),
	}
	r.cache.Set(userID, session, cache.DefaultExpiration)
	return session
}

func (r *SessionRepository) Get(userID string) (*store.Session, bool) {
	if x, found := r.cache.Get(userID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.UserID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(userID string) {
	r.cache.Delete(userID)
}
