package mention

import (
	"reflect"
	"testing"

	"github.com/quorumlabs/boardroom/internal/roster"
)

func stoicProfiles() []roster.Profile {
	return []roster.Profile{
		{ID: "marcus-aurelius", DisplayName: "Marcus Aurelius"},
		{ID: "seneca", DisplayName: "Seneca"},
		{ID: "epictetus", DisplayName: "Epictetus"},
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			"single mention",
			"I agree with Seneca on this point.",
			[]string{"seneca"},
		},
		{
			"multiple mentions",
			"Both Marcus Aurelius and Epictetus raised this earlier.",
			[]string{"marcus-aurelius", "epictetus"},
		},
		{
			"uppercase matches",
			"MARCUS AURELIUS made the key argument.",
			[]string{"marcus-aurelius"},
		},
		{
			"lowercase matches",
			"as marcus aurelius said...",
			[]string{"marcus-aurelius"},
		},
		{
			"mixed case matches",
			"sEnEcA has a counterpoint.",
			[]string{"seneca"},
		},
		{
			"no mentions",
			"Let us move to the next item on the agenda.",
			nil,
		},
		{
			"empty content",
			"",
			nil,
		},
		{
			"near-homophone does not match",
			"Epictetan ethics is adjacent but the name is not present.",
			nil,
		},
		{
			"repeated mention counted once",
			"Seneca, Seneca, and again Seneca.",
			[]string{"seneca"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.content, stoicProfiles())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

// Note: "Senecan" contains "Seneca" as a substring, and the author's intent
// for the scheduler is exact-phrase containment, so it does match. The
// near-homophone case the contract rules out is a name that is not
// textually present at all.
func TestExtract_ContainmentNotTokens(t *testing.T) {
	profiles := []roster.Profile{{ID: "alex", DisplayName: "Alexander"}}

	if got := Extract("Alexandria is a city.", profiles); got != nil {
		t.Errorf("Extract() = %v, want nil: 'Alexander' is not present as a full name", got)
	}
	if got := Extract("Ask Alexander directly.", profiles); !reflect.DeepEqual(got, []string{"alex"}) {
		t.Errorf("Extract() = %v, want [alex]", got)
	}
}

func TestExtract_OverlappingNames(t *testing.T) {
	profiles := []roster.Profile{
		{ID: "marcus", DisplayName: "Marcus"},
		{ID: "marcus-aurelius", DisplayName: "Marcus Aurelius"},
	}

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			"longer name wins the shared span",
			"I defer to Marcus Aurelius.",
			[]string{"marcus-aurelius"},
		},
		{
			"shorter name alone still matches",
			"Marcus should weigh in.",
			[]string{"marcus"},
		},
		{
			"separate occurrences match both",
			"Marcus, what would Marcus Aurelius say?",
			[]string{"marcus", "marcus-aurelius"},
		},
		{
			"case-insensitive overlap handling",
			"MARCUS AURELIUS spoke.",
			[]string{"marcus-aurelius"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.content, profiles)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestExtract_RosterOrderOutput(t *testing.T) {
	// Mentions appear in roster order regardless of text order.
	got := Extract("Epictetus disagrees with Seneca.", stoicProfiles())
	want := []string{"seneca", "epictetus"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want roster order %v", got, want)
	}
}

func TestExtract_NoProfiles(t *testing.T) {
	if got := Extract("Anyone there?", nil); got != nil {
		t.Errorf("Extract() = %v, want nil", got)
	}
}

func TestExtract_BlankDisplayName(t *testing.T) {
	profiles := []roster.Profile{
		{ID: "ghost", DisplayName: "   "},
		{ID: "seneca", DisplayName: "Seneca"},
	}
	got := Extract("Seneca speaks.", profiles)
	if !reflect.DeepEqual(got, []string{"seneca"}) {
		t.Errorf("Extract() = %v, want [seneca]: blank display names never match", got)
	}
}
