package roster

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quorumlabs/boardroom/internal/errors"
)

// Profile is the minimal view of an agent the scheduler consumes: a stable
// ID and the display name used for mention matching.
type Profile struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
}

// Roster is an ordered collection of agent profiles with unique IDs.
// The zero value is an empty roster; use New to build a validated one.
type Roster struct {
	profiles []Profile
	byID     map[string]Profile
}

// New builds a Roster from the given profiles, preserving input order.
// It fails with InvalidRoster when the list is empty, an ID or display name
// is blank, or an ID appears twice.
func New(profiles []Profile) (Roster, error) {
	if len(profiles) == 0 {
		return Roster{}, errors.NewInvalidRosterError("participant list is empty")
	}

	byID := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		if strings.TrimSpace(p.ID) == "" {
			return Roster{}, errors.NewInvalidRosterError("agent ID is empty")
		}
		if strings.TrimSpace(p.DisplayName) == "" {
			return Roster{}, errors.NewInvalidRosterError(fmt.Sprintf("agent %q has no display name", p.ID))
		}
		if _, dup := byID[p.ID]; dup {
			return Roster{}, errors.NewInvalidRosterError(fmt.Sprintf("duplicate agent ID %q", p.ID))
		}
		byID[p.ID] = p
	}

	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return Roster{profiles: out, byID: byID}, nil
}

// Len returns the number of participants.
func (r Roster) Len() int {
	return len(r.profiles)
}

// Profiles returns a copy of the profiles in roster order.
func (r Roster) Profiles() []Profile {
	out := make([]Profile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// IDs returns the agent IDs in roster order.
func (r Roster) IDs() []string {
	ids := make([]string, len(r.profiles))
	for i, p := range r.profiles {
		ids[i] = p.ID
	}
	return ids
}

// Profile looks up a participant by ID.
func (r Roster) Profile(agentID string) (Profile, error) {
	p, ok := r.byID[agentID]
	if !ok {
		return Profile{}, errors.NewUnknownAgentError(agentID)
	}
	return p, nil
}

// Contains reports whether the roster includes the given agent ID.
func (r Roster) Contains(agentID string) bool {
	_, ok := r.byID[agentID]
	return ok
}

// rosterFile is the on-disk YAML shape.
type rosterFile struct {
	Agents []Profile `yaml:"agents"`
}

// LoadFile reads a roster from a YAML file.
func LoadFile(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("roster: read %s: %w", path, err)
	}

	var rf rosterFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return Roster{}, fmt.Errorf("roster: parse %s: %w", path, err)
	}

	r, err := New(rf.Agents)
	if err != nil {
		return Roster{}, errors.Wrapf(err, "roster: %s", path)
	}
	return r, nil
}
