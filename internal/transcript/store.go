package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// transcriptDir is the directory name within a session directory that
	// holds the transcript.
	transcriptDir = "transcript"

	// logFile is the append-only JSONL file within the transcript directory.
	logFile = "log.jsonl"
)

// Store persists transcript messages as JSONL in an append-only log under a
// session directory. The directory structure is created lazily on first
// write.
type Store struct {
	sessionDir string
	mu         sync.Mutex
}

// NewStore creates a Store rooted at the given session directory.
func NewStore(sessionDir string) *Store {
	return &Store{sessionDir: sessionDir}
}

// Append persists a message. A missing ID or timestamp is filled in the
// same way Log.Append does, so a message can be routed through either (or
// both) with identical results.
func (s *Store) Append(msg Message) error {
	if msg.Speaker == "" {
		return fmt.Errorf("transcript: message Speaker field is required")
	}
	if msg.Turn < 1 {
		return fmt.Errorf("transcript: message Turn must be positive, got %d", msg.Turn)
	}

	if msg.ID == "" {
		msg.ID = generateID()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	dir := filepath.Join(s.sessionDir, transcriptDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("transcript: create directory: %w", err)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("transcript: marshal message: %w", err)
	}
	data = append(data, '\n')

	return s.atomicAppend(filepath.Join(dir, logFile), data)
}

// Load reads every persisted message in append order. A store that has
// never been written reads as empty, not as an error.
func (s *Store) Load() ([]Message, error) {
	path := filepath.Join(s.sessionDir, transcriptDir, logFile)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("transcript: open log: %w", err)
	}
	defer func() { _ = f.Close() }()

	var messages []Message
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var msg Message
		if err := json.Unmarshal(line, &msg); err != nil {
			// Skip malformed lines rather than failing the whole load.
			continue
		}
		messages = append(messages, msg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("transcript: scan log: %w", err)
	}
	return messages, nil
}

// atomicAppend appends data to a file under a mutex to serialize writes.
// JSONL lines are small enough that O_APPEND keeps concurrent appends from
// interleaving on POSIX systems.
func (s *Store) atomicAppend(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("transcript: open log for append: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("transcript: append to log: %w", err)
	}

	return f.Close()
}
