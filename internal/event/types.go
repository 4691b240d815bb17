package event

import "time"

// Event is the interface all boardroom events implement.
type Event interface {
	// EventType returns the "category.action" identifier for this event.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides the common fields. Embed it in concrete event types.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{eventType: eventType, timestamp: time.Now()}
}

// SessionStartedEvent is emitted once when a boardroom session begins.
type SessionStartedEvent struct {
	baseEvent
	SessionID  string
	Topic      string
	AgentIDs   []string
	TotalTurns int
}

// NewSessionStartedEvent creates a SessionStartedEvent.
func NewSessionStartedEvent(sessionID, topic string, agentIDs []string, totalTurns int) SessionStartedEvent {
	return SessionStartedEvent{
		baseEvent:  newBaseEvent("session.started"),
		SessionID:  sessionID,
		Topic:      topic,
		AgentIDs:   agentIDs,
		TotalTurns: totalTurns,
	}
}

// PhaseChangedEvent is emitted when a turn opens a new session phase.
type PhaseChangedEvent struct {
	baseEvent
	SessionID string
	Turn      int
	Phase     string
}

// NewPhaseChangedEvent creates a PhaseChangedEvent.
func NewPhaseChangedEvent(sessionID string, turn int, phase string) PhaseChangedEvent {
	return PhaseChangedEvent{
		baseEvent: newBaseEvent("phase.changed"),
		SessionID: sessionID,
		Turn:      turn,
		Phase:     phase,
	}
}

// SpeakerSelectedEvent is emitted when the director picks the next speaker.
type SpeakerSelectedEvent struct {
	baseEvent
	SessionID string
	Turn      int
	AgentID   string
	Score     float64
	Ranking   []string // candidate IDs, best first
}

// NewSpeakerSelectedEvent creates a SpeakerSelectedEvent.
func NewSpeakerSelectedEvent(sessionID string, turn int, agentID string, score float64, ranking []string) SpeakerSelectedEvent {
	return SpeakerSelectedEvent{
		baseEvent: newBaseEvent("speaker.selected"),
		SessionID: sessionID,
		Turn:      turn,
		AgentID:   agentID,
		Score:     score,
		Ranking:   ranking,
	}
}

// MessageRecordedEvent is emitted after a speaker's message lands in the
// transcript.
type MessageRecordedEvent struct {
	baseEvent
	SessionID string
	Turn      int
	AgentID   string
	Body      string
}

// NewMessageRecordedEvent creates a MessageRecordedEvent.
func NewMessageRecordedEvent(sessionID string, turn int, agentID, body string) MessageRecordedEvent {
	return MessageRecordedEvent{
		baseEvent: newBaseEvent("message.recorded"),
		SessionID: sessionID,
		Turn:      turn,
		AgentID:   agentID,
		Body:      body,
	}
}

// MentionDetectedEvent is emitted when a message references other agents by
// display name.
type MentionDetectedEvent struct {
	baseEvent
	SessionID string
	Turn      int
	SpeakerID string
	AgentIDs  []string
}

// NewMentionDetectedEvent creates a MentionDetectedEvent.
func NewMentionDetectedEvent(sessionID string, turn int, speakerID string, agentIDs []string) MentionDetectedEvent {
	return MentionDetectedEvent{
		baseEvent: newBaseEvent("mention.detected"),
		SessionID: sessionID,
		Turn:      turn,
		SpeakerID: speakerID,
		AgentIDs:  agentIDs,
	}
}

// SessionCompletedEvent is emitted when the final turn has been recorded.
type SessionCompletedEvent struct {
	baseEvent
	SessionID  string
	TurnsTaken int
}

// NewSessionCompletedEvent creates a SessionCompletedEvent.
func NewSessionCompletedEvent(sessionID string, turnsTaken int) SessionCompletedEvent {
	return SessionCompletedEvent{
		baseEvent:  newBaseEvent("session.completed"),
		SessionID:  sessionID,
		TurnsTaken: turnsTaken,
	}
}
