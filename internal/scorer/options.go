package scorer

// options collects the open configuration bag for a scoring call.
type options struct {
	weights         *Weights
	agentMultiplier map[string]float64
	excluded        map[string]bool
	noUnspoken      bool
	noFairness      bool
	noMention       bool
}

// Option configures a single Score call without changing the algorithm's
// shape.
type Option func(*options)

// WithWeights overrides the phase-derived weights entirely.
func WithWeights(w Weights) Option {
	return func(o *options) { o.weights = &w }
}

// WithAgentWeight multiplies the named agent's final score. Multipliers
// below 1 deprioritize an agent; above 1 they bias selection toward it.
func WithAgentWeight(agentID string, multiplier float64) Option {
	return func(o *options) {
		if o.agentMultiplier == nil {
			o.agentMultiplier = make(map[string]float64)
		}
		o.agentMultiplier[agentID] = multiplier
	}
}

// WithExclude removes the named agents from the candidate set, e.g. to put
// an agent on cooldown. Excluding every participant yields an empty ranking.
func WithExclude(agentIDs ...string) Option {
	return func(o *options) {
		if o.excluded == nil {
			o.excluded = make(map[string]bool)
		}
		for _, id := range agentIDs {
			o.excluded[id] = true
		}
	}
}

// WithoutUnspokenBoost disables the unspoken signal.
func WithoutUnspokenBoost() Option {
	return func(o *options) { o.noUnspoken = true }
}

// WithoutFairnessPenalty disables the fairness signal.
func WithoutFairnessPenalty() Option {
	return func(o *options) { o.noFairness = true }
}

// WithoutMentionBoost disables the recency-of-mention signal.
func WithoutMentionBoost() Option {
	return func(o *options) { o.noMention = true }
}
