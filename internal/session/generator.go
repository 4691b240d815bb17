package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/quorumlabs/boardroom/internal/phase"
	"github.com/quorumlabs/boardroom/internal/roster"
	"github.com/quorumlabs/boardroom/internal/transcript"
)

// Prompt carries everything a generator needs to produce one utterance.
type Prompt struct {
	SessionID  string
	Topic      string
	Turn       int
	TotalTurns int
	Phase      phase.Phase
	Speaker    roster.Profile
	History    []transcript.Message
}

// Generator produces an agent's utterance for a turn. Implementations
// typically call out to an LLM; the director awaits the result before
// recording the turn.
type Generator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, p Prompt) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, p Prompt) (string, error) {
	return f(ctx, p)
}

// ScriptedGenerator replays a fixed list of lines in order, wrapping around
// when exhausted. It is safe for concurrent use.
type ScriptedGenerator struct {
	mu    sync.Mutex
	lines []string
	next  int
}

// NewScriptedGenerator creates a generator over the given lines. An empty
// script produces a stock line naming the speaker.
func NewScriptedGenerator(lines ...string) *ScriptedGenerator {
	return &ScriptedGenerator{lines: lines}
}

// Generate returns the next scripted line.
func (g *ScriptedGenerator) Generate(_ context.Context, p Prompt) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.lines) == 0 {
		return fmt.Sprintf("%s has nothing further on %q.", p.Speaker.DisplayName, p.Topic), nil
	}
	line := g.lines[g.next%len(g.lines)]
	g.next++
	return line, nil
}
