package mention

import (
	"sort"
	"strings"

	"github.com/quorumlabs/boardroom/internal/roster"
)

// Extract returns the IDs of every agent whose display name appears in
// content, case-insensitively. The result preserves the profiles' input
// order (roster order) and contains no duplicates. Empty content, an empty
// profile list, or blank display names yield an empty result.
//
// Overlap policy: profiles are matched longest display name first, and the
// characters covered by a match are claimed. A shorter name that only
// occurs inside an already-claimed span is not a mention. So for agents
// "Marcus" and "Marcus Aurelius":
//
//	"I defer to Marcus Aurelius."          -> [marcus-aurelius]
//	"Marcus, what does Marcus Aurelius say?" -> [marcus, marcus-aurelius]
//
// Between names of equal length, input order decides which claims first;
// since equal-length names can only collide when identical (forbidden by
// roster uniqueness in practice), the tie-break is cosmetic.
func Extract(content string, profiles []roster.Profile) []string {
	if content == "" || len(profiles) == 0 {
		return nil
	}

	haystack := strings.ToLower(content)
	claimed := make([]bool, len(haystack))

	// Longest name first so the more specific agent wins overlaps. The sort
	// is stable to keep equal-length ordering deterministic.
	order := make([]int, len(profiles))
	for i := range profiles {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(profiles[order[a]].DisplayName) > len(profiles[order[b]].DisplayName)
	})

	mentioned := make(map[string]bool, len(profiles))
	for _, idx := range order {
		p := profiles[idx]
		name := strings.ToLower(strings.TrimSpace(p.DisplayName))
		if name == "" {
			continue
		}
		if claimOccurrences(haystack, name, claimed) {
			mentioned[p.ID] = true
		}
	}

	// Emit in roster order.
	var out []string
	for _, p := range profiles {
		if mentioned[p.ID] {
			out = append(out, p.ID)
		}
	}
	return out
}

// claimOccurrences finds every occurrence of name in haystack that does not
// overlap an already-claimed span, marks those spans claimed, and reports
// whether at least one occurrence was found.
func claimOccurrences(haystack, name string, claimed []bool) bool {
	found := false
	for from := 0; ; {
		i := strings.Index(haystack[from:], name)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(name)
		if !overlapsClaimed(claimed, start, end) {
			for j := start; j < end; j++ {
				claimed[j] = true
			}
			found = true
		}
		from = start + 1
	}
	return found
}

// overlapsClaimed reports whether any byte in [start, end) is claimed.
func overlapsClaimed(claimed []bool, start, end int) bool {
	for j := start; j < end; j++ {
		if claimed[j] {
			return true
		}
	}
	return false
}
