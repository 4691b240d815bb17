package scorer

import (
	"math"
	"sort"

	"github.com/quorumlabs/boardroom/internal/errors"
	"github.com/quorumlabs/boardroom/internal/ledger"
	"github.com/quorumlabs/boardroom/internal/phase"
)

// mentionBase is the boost an agent receives when mentioned on the
// immediately preceding turn, before phase weighting. Each further turn of
// distance halves it, so a mention five turns back is worth ~6% of a fresh
// one.
const mentionBase = 8.0

// AgentScore is one candidate's ranking entry. Scores are transient: they
// are produced fresh each turn and never persisted.
type AgentScore struct {
	AgentID string
	Score   float64
}

// Weights are the phase-modulated coefficients of the three scoring
// signals.
type Weights struct {
	// UnspokenBoost is added to agents with a zero turn count.
	UnspokenBoost float64

	// FairnessPenalty is multiplied by an agent's turn count and
	// subtracted, so scores decrease monotonically with speaking frequency.
	FairnessPenalty float64

	// MentionWeight scales the decayed mention boost.
	MentionWeight float64
}

// DefaultWeights returns the standard weights for a phase.
//
// The opening favors breadth: a large unspoken boost dominates everything
// else. The discussion balances fairness against responsiveness. The
// wrap-up softens the fairness penalty and amplifies mentions so the agents
// the conversation is actually about get to conclude.
func DefaultWeights(ph phase.Phase) Weights {
	switch ph {
	case phase.Opening:
		return Weights{UnspokenBoost: 10, FairnessPenalty: 1.5, MentionWeight: 0.5}
	case phase.WrapUp:
		return Weights{UnspokenBoost: 1, FairnessPenalty: 0.5, MentionWeight: 1.5}
	default:
		return Weights{UnspokenBoost: 4, FairnessPenalty: 2.0, MentionWeight: 1.0}
	}
}

// Score ranks the given participants as candidates to speak on the given
// turn, highest score first. Ties preserve participant (roster) order, so
// the output is deterministic for identical inputs.
//
// The ledger is read-only to this function. Participants must be non-empty
// and every ID must exist in the ledger, otherwise Score fails with
// InvalidRoster; a non-positive turn fails with OutOfRangeTurn. Agents
// excluded via WithExclude are absent from the result.
func Score(participants []string, led ledger.Ledger, turn int, ph phase.Phase, opts ...Option) ([]AgentScore, error) {
	if len(participants) == 0 {
		return nil, errors.NewInvalidRosterError("participant list is empty")
	}
	if turn < 1 {
		return nil, errors.NewOutOfRangeTurnError(turn, 0)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	w := DefaultWeights(ph)
	if o.weights != nil {
		w = *o.weights
	}

	scores := make([]AgentScore, 0, len(participants))
	for _, id := range participants {
		entry, err := led.Entry(id)
		if err != nil {
			return nil, errors.NewInvalidRosterError("participant " + id + " is not tracked in the ledger")
		}
		if o.excluded[id] {
			continue
		}

		s := 0.0
		if !o.noUnspoken && entry.TurnCount == 0 {
			s += w.UnspokenBoost
		}
		if !o.noFairness {
			s -= w.FairnessPenalty * float64(entry.TurnCount)
		}
		if !o.noMention && entry.Mentioned() && entry.LastMentionedTurn < turn {
			gap := turn - entry.LastMentionedTurn
			s += w.MentionWeight * mentionBase * math.Pow(0.5, float64(gap-1))
		}

		if m, ok := o.agentMultiplier[id]; ok {
			s *= m
		}

		scores = append(scores, AgentScore{AgentID: id, Score: s})
	}

	// Stable sort keeps roster order for equal scores.
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].Score > scores[b].Score
	})
	return scores, nil
}
