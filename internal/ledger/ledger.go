package ledger

import (
	"fmt"
	"strings"

	"github.com/quorumlabs/boardroom/internal/errors"
)

// Entry records one participant's turn-taking state.
type Entry struct {
	// AgentID identifies the participant.
	AgentID string `json:"agent_id"`

	// TurnCount is the number of turns this agent has spoken. It increases
	// by exactly 1 each time the agent is recorded as the speaker, and only
	// then.
	TurnCount int `json:"turn_count"`

	// LastMentionedTurn is the most recent 1-based turn on which this
	// agent's name appeared in a message. Zero means never mentioned.
	LastMentionedTurn int `json:"last_mentioned_turn,omitempty"`
}

// Mentioned reports whether the agent has ever been mentioned.
func (e Entry) Mentioned() bool {
	return e.LastMentionedTurn > 0
}

// Ledger is an immutable collection of entries, one per roster participant,
// in roster order. The zero value is empty and unusable; build one with New.
type Ledger struct {
	entries []Entry
	index   map[string]int // AgentID -> position in entries
}

// New creates a ledger for the given participants with all counts at zero
// and no recorded mentions. Input order is preserved. Empty or duplicate
// IDs fail with InvalidRoster.
func New(agentIDs []string) (Ledger, error) {
	if len(agentIDs) == 0 {
		return Ledger{}, errors.NewInvalidRosterError("participant list is empty")
	}

	entries := make([]Entry, len(agentIDs))
	index := make(map[string]int, len(agentIDs))
	for i, id := range agentIDs {
		if strings.TrimSpace(id) == "" {
			return Ledger{}, errors.NewInvalidRosterError("agent ID is empty")
		}
		if _, dup := index[id]; dup {
			return Ledger{}, errors.NewInvalidRosterError(fmt.Sprintf("duplicate agent ID %q", id))
		}
		entries[i] = Entry{AgentID: id}
		index[id] = i
	}
	return Ledger{entries: entries, index: index}, nil
}

// Len returns the number of tracked participants.
func (l Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of all entries in roster order.
func (l Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Entry returns the entry for the given agent.
func (l Ledger) Entry(agentID string) (Entry, error) {
	i, ok := l.index[agentID]
	if !ok {
		return Entry{}, errors.NewUnknownAgentError(agentID)
	}
	return l.entries[i], nil
}

// AgentIDs returns the tracked agent IDs in roster order.
func (l Ledger) AgentIDs() []string {
	ids := make([]string, len(l.entries))
	for i, e := range l.entries {
		ids[i] = e.AgentID
	}
	return ids
}

// TotalSpoken returns the sum of all turn counts. After k successful
// RecordSpeaker updates this is exactly k.
func (l Ledger) TotalSpoken() int {
	total := 0
	for _, e := range l.entries {
		total += e.TurnCount
	}
	return total
}

// RecordSpeaker returns a new ledger in which the speaking agent's turn
// count is incremented by exactly 1. All other entries are unchanged and
// the receiver is never mutated. The turn parameter is validated to be
// positive; it exists so callers pass the same value they will use for
// mention stamping, keeping the two update paths symmetric.
func (l Ledger) RecordSpeaker(agentID string, turn int) (Ledger, error) {
	if turn < 1 {
		return Ledger{}, errors.NewOutOfRangeTurnError(turn, 0)
	}
	i, ok := l.index[agentID]
	if !ok {
		return Ledger{}, errors.NewUnknownAgentError(agentID)
	}

	next := l.clone()
	next.entries[i].TurnCount++
	return next, nil
}

// RecordMentions returns a new ledger in which every listed agent's
// LastMentionedTurn is set to the given turn, overwriting any prior value —
// only the most recent mention matters. Unknown IDs fail with UnknownAgent
// and the receiver is never mutated. An empty list returns the ledger
// unchanged.
func (l Ledger) RecordMentions(agentIDs []string, turn int) (Ledger, error) {
	if len(agentIDs) == 0 {
		return l, nil
	}
	if turn < 1 {
		return Ledger{}, errors.NewOutOfRangeTurnError(turn, 0)
	}

	next := l.clone()
	for _, id := range agentIDs {
		i, ok := next.index[id]
		if !ok {
			return Ledger{}, errors.NewUnknownAgentError(id)
		}
		next.entries[i].LastMentionedTurn = turn
	}
	return next, nil
}

// clone copies the entry slice; the index is position-based and immutable
// after New, so it is shared.
func (l Ledger) clone() Ledger {
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return Ledger{entries: entries, index: l.index}
}
