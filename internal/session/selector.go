package session

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/quorumlabs/boardroom/internal/scorer"
)

// ErrNoCandidates is returned when a selector is handed an empty ranking,
// e.g. after every participant was excluded from scoring.
var ErrNoCandidates = errors.New("session: no eligible candidates")

// Selector turns a ranking into a single chosen speaker. The scorer only
// ranks; which candidate actually speaks is policy, and policy lives here.
type Selector interface {
	Select(scores []scorer.AgentScore) (string, error)
}

// TopRank deterministically picks the highest-scored candidate.
type TopRank struct{}

// Select returns the first entry of the ranking.
func (TopRank) Select(scores []scorer.AgentScore) (string, error) {
	if len(scores) == 0 {
		return "", ErrNoCandidates
	}
	return scores[0].AgentID, nil
}

// WeightedRandom samples a speaker with probability proportional to score,
// shifted so the lowest-ranked candidate still has a small chance. A fixed
// seed makes runs reproducible.
type WeightedRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewWeightedRandom creates a WeightedRandom selector with the given seed.
func NewWeightedRandom(seed int64) *WeightedRandom {
	return &WeightedRandom{rng: rand.New(rand.NewSource(seed))}
}

// Select samples one candidate from the ranking.
func (w *WeightedRandom) Select(scores []scorer.AgentScore) (string, error) {
	if len(scores) == 0 {
		return "", ErrNoCandidates
	}

	// Shift scores to positive weights. The +1 floor keeps every candidate
	// selectable even when all scores are equal or negative.
	min := scores[0].Score
	for _, s := range scores[1:] {
		if s.Score < min {
			min = s.Score
		}
	}

	total := 0.0
	weights := make([]float64, len(scores))
	for i, s := range scores {
		weights[i] = s.Score - min + 1
		total += weights[i]
	}

	w.mu.Lock()
	r := w.rng.Float64() * total
	w.mu.Unlock()

	for i, wt := range weights {
		r -= wt
		if r < 0 {
			return scores[i].AgentID, nil
		}
	}
	return scores[len(scores)-1].AgentID, nil
}
