// Package config loads boardroom configuration via viper from a config
// file, environment variables (BOARDROOM_ prefix), and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete boardroom configuration.
type Config struct {
	Session SessionConfig `mapstructure:"session"`
	Scoring ScoringConfig `mapstructure:"scoring"`
	Logging LoggingConfig `mapstructure:"logging"`
	TUI     TUIConfig     `mapstructure:"tui"`
}

// SessionConfig controls session behavior.
type SessionConfig struct {
	// TotalTurns is the number of conversational turns to schedule.
	TotalTurns int `mapstructure:"total_turns"`
	// Selector picks the selection policy: "top" or "weighted".
	Selector string `mapstructure:"selector"`
	// Seed seeds the weighted selector for reproducible runs (0 = random).
	Seed int64 `mapstructure:"seed"`
	// Dir is the directory where session artifacts (transcript, log) are
	// written. Empty disables persistence.
	Dir string `mapstructure:"dir"`
}

// ScoringConfig optionally overrides the phase-derived scoring weights.
// When any field is set the triple replaces the phase defaults wholesale for
// every turn; leave all three zero to keep the per-phase defaults.
type ScoringConfig struct {
	// UnspokenBoost overrides the boost for agents who have not spoken.
	UnspokenBoost float64 `mapstructure:"unspoken_boost"`
	// FairnessPenalty overrides the per-turn-count penalty.
	FairnessPenalty float64 `mapstructure:"fairness_penalty"`
	// MentionWeight overrides the recency-of-mention weight.
	MentionWeight float64 `mapstructure:"mention_weight"`
}

// Override reports whether any weight is explicitly configured.
func (s ScoringConfig) Override() bool {
	return s.UnspokenBoost != 0 || s.FairnessPenalty != 0 || s.MentionWeight != 0
}

// LoggingConfig controls the session debug log.
type LoggingConfig struct {
	// Level is the minimum level to log: DEBUG, INFO, WARN, or ERROR.
	Level string `mapstructure:"level"`
}

// TUIConfig controls the terminal watcher.
type TUIConfig struct {
	// MaxTranscriptLines limits how many transcript lines the viewport keeps.
	MaxTranscriptLines int `mapstructure:"max_transcript_lines"`
}

// SetDefaults registers default values with viper. Call before reading the
// config file so defaults apply even without one.
func SetDefaults() {
	viper.SetDefault("session.total_turns", 12)
	viper.SetDefault("session.selector", "top")
	viper.SetDefault("session.seed", 0)
	viper.SetDefault("session.dir", "")
	viper.SetDefault("scoring.unspoken_boost", 0)
	viper.SetDefault("scoring.fairness_penalty", 0)
	viper.SetDefault("scoring.mention_weight", 0)
	viper.SetDefault("logging.level", "INFO")
	viper.SetDefault("tui.max_transcript_lines", 500)
}

// Load unmarshals the current viper state into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Session.TotalTurns < 1 {
		return fmt.Errorf("config: session.total_turns must be at least 1, got %d", c.Session.TotalTurns)
	}
	switch c.Session.Selector {
	case "top", "weighted":
	default:
		return fmt.Errorf("config: session.selector must be %q or %q, got %q", "top", "weighted", c.Session.Selector)
	}
	if c.TUI.MaxTranscriptLines < 1 {
		return fmt.Errorf("config: tui.max_transcript_lines must be positive, got %d", c.TUI.MaxTranscriptLines)
	}
	return nil
}

// ConfigDir returns the directory where the boardroom config file lives,
// honoring XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "boardroom")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "boardroom")
}
