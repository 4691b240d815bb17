package transcript

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Message is one recorded utterance.
type Message struct {
	ID        string    `json:"id"`
	Turn      int       `json:"turn"`
	Speaker   string    `json:"speaker"`
	Phase     string    `json:"phase"`
	Body      string    `json:"body"`
	Mentions  []string  `json:"mentions,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Log is an in-memory chronological message log. It is safe for concurrent
// use, though a session director is its usual single writer.
type Log struct {
	mu       sync.RWMutex
	messages []Message
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds a message to the log. A missing ID or timestamp is filled in.
func (l *Log) Append(msg Message) Message {
	if msg.ID == "" {
		msg.ID = generateID()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
	return msg
}

// Messages returns a chronological copy of the log.
func (l *Log) Messages() []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of recorded messages.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}

// ByAgent returns all messages spoken by the given agent, in order.
func (l *Log) ByAgent(agentID string) []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Message
	for _, m := range l.messages {
		if m.Speaker == agentID {
			out = append(out, m)
		}
	}
	return out
}

// idCounter provides per-process uniqueness for message IDs.
var idCounter atomic.Uint64

// generateID produces a unique message ID from timestamp, PID, and an
// atomic counter.
func generateID() string {
	return fmt.Sprintf("msg-%d-%d-%d", time.Now().UnixNano(), os.Getpid(), idCounter.Add(1))
}
