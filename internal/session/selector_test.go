package session

import (
	"testing"

	"github.com/quorumlabs/boardroom/internal/scorer"
)

func TestTopRankSelect(t *testing.T) {
	scores := []scorer.AgentScore{
		{AgentID: "bianca", Score: 14},
		{AgentID: "cyrus", Score: 10},
		{AgentID: "ada", Score: -1.5},
	}

	got, err := TopRank{}.Select(scores)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got != "bianca" {
		t.Errorf("Select() = %q, want %q", got, "bianca")
	}
}

func TestTopRankSelectEmpty(t *testing.T) {
	_, err := TopRank{}.Select(nil)
	if err != ErrNoCandidates {
		t.Errorf("Select(nil) error = %v, want ErrNoCandidates", err)
	}
}

func TestWeightedRandomSelectEmpty(t *testing.T) {
	w := NewWeightedRandom(1)
	_, err := w.Select(nil)
	if err != ErrNoCandidates {
		t.Errorf("Select(nil) error = %v, want ErrNoCandidates", err)
	}
}

func TestWeightedRandomSelectSingle(t *testing.T) {
	w := NewWeightedRandom(1)
	for i := 0; i < 10; i++ {
		got, err := w.Select([]scorer.AgentScore{{AgentID: "solo", Score: -3}})
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if got != "solo" {
			t.Errorf("Select() = %q, want %q", got, "solo")
		}
	}
}

func TestWeightedRandomSelectMembership(t *testing.T) {
	scores := []scorer.AgentScore{
		{AgentID: "ada", Score: 5},
		{AgentID: "bianca", Score: 0},
		{AgentID: "cyrus", Score: -2},
	}
	valid := map[string]bool{"ada": true, "bianca": true, "cyrus": true}

	w := NewWeightedRandom(42)
	for i := 0; i < 100; i++ {
		got, err := w.Select(scores)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if !valid[got] {
			t.Fatalf("Select() = %q, not a candidate", got)
		}
	}
}

func TestWeightedRandomFavorsHighScores(t *testing.T) {
	// Shifted weights are 101, 1, 1, so the front-runner should win the
	// overwhelming majority of draws.
	scores := []scorer.AgentScore{
		{AgentID: "ada", Score: 100},
		{AgentID: "bianca", Score: 0},
		{AgentID: "cyrus", Score: 0},
	}

	w := NewWeightedRandom(7)
	wins := 0
	const draws = 1000
	for i := 0; i < draws; i++ {
		got, err := w.Select(scores)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if got == "ada" {
			wins++
		}
	}
	if wins < draws*8/10 {
		t.Errorf("front-runner won %d/%d draws, expected the large majority", wins, draws)
	}
}

func TestWeightedRandomDeterministicPerSeed(t *testing.T) {
	scores := []scorer.AgentScore{
		{AgentID: "ada", Score: 3},
		{AgentID: "bianca", Score: 2},
		{AgentID: "cyrus", Score: 1},
	}

	draw := func(seed int64) []string {
		w := NewWeightedRandom(seed)
		out := make([]string, 20)
		for i := range out {
			got, err := w.Select(scores)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			out[i] = got
		}
		return out
	}

	a, b := draw(99), draw(99)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs across identically seeded selectors: %q vs %q", i, a[i], b[i])
		}
	}
}
