package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/quorumlabs/boardroom/internal/errors"
	"github.com/quorumlabs/boardroom/internal/event"
	"github.com/quorumlabs/boardroom/internal/ledger"
	"github.com/quorumlabs/boardroom/internal/logging"
	"github.com/quorumlabs/boardroom/internal/mention"
	"github.com/quorumlabs/boardroom/internal/phase"
	"github.com/quorumlabs/boardroom/internal/roster"
	"github.com/quorumlabs/boardroom/internal/scorer"
	"github.com/quorumlabs/boardroom/internal/transcript"
)

// Director runs one boardroom session's turn loop. It is not safe for
// concurrent use; each session gets its own Director, and distinct
// directors share nothing.
type Director struct {
	id          string
	topic       string
	ros         roster.Roster
	led         ledger.Ledger
	totalTurns  int
	currentTurn int
	lastPhase   phase.Phase

	gen       Generator
	sel       Selector
	bus       *event.Bus
	log       *logging.Logger
	translog  *transcript.Log
	store     *transcript.Store
	scoreOpts []scorer.Option
}

// NewDirector creates a Director for one session over the given roster.
// The ledger is initialized from the roster with all counts at zero.
func NewDirector(ros roster.Roster, totalTurns int, gen Generator, opts ...Option) (*Director, error) {
	if totalTurns < 1 {
		return nil, errors.NewOutOfRangeTurnError(1, totalTurns)
	}
	if gen == nil {
		return nil, fmt.Errorf("session: generator is required")
	}

	led, err := ledger.New(ros.IDs())
	if err != nil {
		return nil, err
	}

	d := &Director{
		id:          uuid.NewString(),
		ros:         ros,
		led:         led,
		totalTurns:  totalTurns,
		currentTurn: 1,
		gen:         gen,
		sel:         TopRank{},
		log:         logging.NopLogger(),
		translog:    transcript.NewLog(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.WithSession(d.id)
	return d, nil
}

// ID returns the session identifier.
func (d *Director) ID() string { return d.id }

// Topic returns the session topic.
func (d *Director) Topic() string { return d.topic }

// CurrentTurn returns the next turn to be taken, 1-based.
func (d *Director) CurrentTurn() int { return d.currentTurn }

// TotalTurns returns the session length in turns.
func (d *Director) TotalTurns() int { return d.totalTurns }

// Done reports whether every turn has been recorded.
func (d *Director) Done() bool { return d.currentTurn > d.totalTurns }

// Ledger returns the current turn ledger value.
func (d *Director) Ledger() ledger.Ledger { return d.led }

// Transcript returns a chronological copy of the recorded messages.
func (d *Director) Transcript() []transcript.Message { return d.translog.Messages() }

// Run executes the remaining turns until the session completes, the context
// is canceled, or a turn fails. A SessionStartedEvent is published on entry
// and a SessionCompletedEvent after the final turn.
func (d *Director) Run(ctx context.Context) error {
	if d.bus != nil {
		d.bus.Publish(event.NewSessionStartedEvent(d.id, d.topic, d.ros.IDs(), d.totalTurns))
	}
	d.log.Info("session started", "topic", d.topic, "total_turns", d.totalTurns, "participants", d.ros.Len())

	for !d.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := d.NextTurn(ctx); err != nil {
			return err
		}
	}

	if d.bus != nil {
		d.bus.Publish(event.NewSessionCompletedEvent(d.id, d.totalTurns))
	}
	d.log.Info("session completed", "turns", d.totalTurns)
	return nil
}

// NextTurn executes a single turn: classify, score, select, generate,
// extract mentions, and record. On success the returned message has been
// appended to the transcript and the ledger advanced.
//
// If the generator fails, no state changes: the same turn can be replayed
// by calling NextTurn again.
func (d *Director) NextTurn(ctx context.Context) (transcript.Message, error) {
	if d.Done() {
		return transcript.Message{}, errors.NewOutOfRangeTurnError(d.currentTurn, d.totalTurns)
	}
	turn := d.currentTurn
	turnLog := d.log.WithTurn(turn)

	ph, err := phase.Classify(turn, d.totalTurns)
	if err != nil {
		return transcript.Message{}, err
	}
	if ph != d.lastPhase {
		if d.bus != nil {
			d.bus.Publish(event.NewPhaseChangedEvent(d.id, turn, string(ph)))
		}
		turnLog.Info("phase changed", "phase", string(ph))
		d.lastPhase = ph
	}

	scores, err := scorer.Score(d.ros.IDs(), d.led, turn, ph, d.scoreOpts...)
	if err != nil {
		return transcript.Message{}, errors.Wrapf(err, "turn %d", turn)
	}

	speakerID, err := d.sel.Select(scores)
	if err != nil {
		return transcript.Message{}, errors.Wrapf(err, "turn %d", turn)
	}
	speaker, err := d.ros.Profile(speakerID)
	if err != nil {
		return transcript.Message{}, errors.Wrapf(err, "turn %d", turn)
	}

	if d.bus != nil {
		d.bus.Publish(event.NewSpeakerSelectedEvent(d.id, turn, speakerID, topScore(scores, speakerID), ranking(scores)))
	}
	turnLog.Debug("speaker selected", "agent_id", speakerID, "phase", string(ph))

	body, err := d.gen.Generate(ctx, Prompt{
		SessionID:  d.id,
		Topic:      d.topic,
		Turn:       turn,
		TotalTurns: d.totalTurns,
		Phase:      ph,
		Speaker:    speaker,
		History:    d.translog.Messages(),
	})
	if err != nil {
		turnLog.Warn("generation failed", "agent_id", speakerID, "error", err.Error())
		return transcript.Message{}, errors.Wrapf(err, "session: generate turn %d for %s", turn, speakerID)
	}

	mentions := mention.Extract(body, d.ros.Profiles())

	led, err := d.led.RecordSpeaker(speakerID, turn)
	if err != nil {
		return transcript.Message{}, errors.Wrapf(err, "turn %d", turn)
	}
	led, err = led.RecordMentions(mentions, turn)
	if err != nil {
		return transcript.Message{}, errors.Wrapf(err, "turn %d", turn)
	}

	msg := d.translog.Append(transcript.Message{
		Turn:     turn,
		Speaker:  speakerID,
		Phase:    string(ph),
		Body:     body,
		Mentions: mentions,
	})
	if d.store != nil {
		// Persistence is best effort; a failed append must not desync the
		// in-memory session.
		if err := d.store.Append(msg); err != nil {
			turnLog.Warn("transcript persist failed", "error", err.Error())
		}
	}

	if d.bus != nil {
		d.bus.Publish(event.NewMessageRecordedEvent(d.id, turn, speakerID, body))
		if len(mentions) > 0 {
			d.bus.Publish(event.NewMentionDetectedEvent(d.id, turn, speakerID, mentions))
		}
	}

	d.led = led
	d.currentTurn++
	return msg, nil
}

// topScore returns the score recorded for the chosen agent.
func topScore(scores []scorer.AgentScore, agentID string) float64 {
	for _, s := range scores {
		if s.AgentID == agentID {
			return s.Score
		}
	}
	return 0
}

// ranking flattens a score list to candidate IDs, best first.
func ranking(scores []scorer.AgentScore) []string {
	ids := make([]string, len(scores))
	for i, s := range scores {
		ids[i] = s.AgentID
	}
	return ids
}
