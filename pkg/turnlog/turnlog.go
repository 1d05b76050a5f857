package turnlog

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role of a conversation turn. Closed set: a turn is either something the
// user said or something the assistant replied.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in the conversation. Turns are immutable once
// appended; Sequence increases strictly by one per append.
type Turn struct {
	Id        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Sequence  int       `json:"sequence"`
	CreatedAt time.Time `json:"created_at"`
}

// Log is the append-only record of conversation turns. The only mutation
// besides Append is Reset, which clears the log entirely. Safe for
// concurrent use.
type Log struct {
	mu    sync.Mutex
	turns []Turn
}

func New() *Log {
	return &Log{}
}

// Append records a new turn and returns it. Sequence numbers start at 1.
func (l *Log) Append(role Role, content string) Turn {
	l.mu.Lock()
	defer l.mu.Unlock()

	turn := Turn{
		Id:        uuid.New(),
		Role:      role,
		Content:   content,
		Sequence:  len(l.turns) + 1,
		CreatedAt: time.Now(),
	}
	l.turns = append(l.turns, turn)
	return turn
}

// All returns the turns in insertion order. The slice is a copy so callers
// cannot reorder or rewrite the log.
func (l *Log) All() []Turn {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.turns)
}

// Last returns the most recent turn, or false when the log is empty.
func (l *Log) Last() (Turn, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.turns) == 0 {
		return Turn{}, false
	}
	return l.turns[len(l.turns)-1], true
}

// Reset clears the log to empty.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.turns = nil
}
