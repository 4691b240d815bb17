package phase

import (
	"github.com/quorumlabs/boardroom/internal/errors"
)

// Phase identifies the etiquette band a turn falls into.
type Phase string

const (
	// Opening covers roughly the first 20% of turns. Breadth matters most:
	// every participant should be heard before positions harden.
	Opening Phase = "opening"

	// Discussion covers the middle 60% of turns, balancing fairness with
	// responsiveness to recent mentions.
	Discussion Phase = "discussion"

	// WrapUp covers roughly the final 20% of turns, when the most engaged
	// participants converge on a conclusion.
	WrapUp Phase = "wrap-up"
)

// Classify maps a 1-based turn number to its phase within a session of
// totalTurns turns.
//
// The bands are proportional: a turn is Opening when turn/totalTurns <= 0.2
// and WrapUp when turn/totalTurns >= 0.8, computed in integer arithmetic so
// boundaries are exact. Everything between is Discussion. For very short
// sessions ties resolve toward Discussion: a single-turn session classifies
// its only turn as Discussion, and a session too short to have a 20%
// opening band has none.
//
// Classify returns an OutOfRangeTurn error when turn or totalTurns is
// outside the domain. It never clamps: an out-of-range turn is a bug in the
// calling loop and should surface immediately.
func Classify(turn, totalTurns int) (Phase, error) {
	if totalTurns < 1 || turn < 1 || turn > totalTurns {
		return "", errors.NewOutOfRangeTurnError(turn, totalTurns)
	}

	// turn/totalTurns <= 1/5, without floating point.
	if 5*turn <= totalTurns {
		return Opening, nil
	}

	// turn/totalTurns >= 4/5. A single-turn session is excluded so its only
	// turn lands in Discussion rather than WrapUp.
	if 5*turn >= 4*totalTurns && totalTurns > 1 {
		return WrapUp, nil
	}

	return Discussion, nil
}

// Band describes a contiguous run of turns sharing a phase.
type Band struct {
	Phase Phase
	Start int // first turn in the band, 1-based
	End   int // last turn in the band, inclusive
}

// Bands returns the non-empty phase bands for a session of totalTurns
// turns, in turn order. Every turn in [1, totalTurns] belongs to exactly
// one band.
func Bands(totalTurns int) ([]Band, error) {
	if totalTurns < 1 {
		return nil, errors.NewOutOfRangeTurnError(1, totalTurns)
	}

	var bands []Band
	for turn := 1; turn <= totalTurns; turn++ {
		p, err := Classify(turn, totalTurns)
		if err != nil {
			return nil, err
		}
		if len(bands) > 0 && bands[len(bands)-1].Phase == p {
			bands[len(bands)-1].End = turn
			continue
		}
		bands = append(bands, Band{Phase: p, Start: turn, End: turn})
	}
	return bands, nil
}
