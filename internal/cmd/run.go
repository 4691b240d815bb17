package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quorumlabs/boardroom/internal/config"
	"github.com/quorumlabs/boardroom/internal/event"
	"github.com/quorumlabs/boardroom/internal/logging"
	"github.com/quorumlabs/boardroom/internal/roster"
	"github.com/quorumlabs/boardroom/internal/scorer"
	"github.com/quorumlabs/boardroom/internal/session"
	"github.com/quorumlabs/boardroom/internal/transcript"
	"github.com/quorumlabs/boardroom/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a boardroom session",
	Long: `Run a scheduled boardroom session over a roster of agents.

The roster file lists the participants in YAML:

  agents:
    - id: ada
      display_name: Ada
    - id: bianca
      display_name: Bianca

Utterances come from a script file (one line per turn) when --script is
given, otherwise from a stock generator, so the command exercises the
scheduler without any model backend.

Examples:
  # Ten turns over a roster, transcript printed at the end
  boardroom run --roster agents.yaml --turns 10

  # Watch the session live in the terminal
  boardroom run --roster agents.yaml --turns 10 --watch

  # Weighted selection, reproducible via seed, persisted to a directory
  boardroom run --roster agents.yaml --selector weighted --seed 7 --session-dir ./out`,
	RunE: runRun,
}

var (
	runRoster     string
	runTurns      int
	runTopic      string
	runScript     string
	runWatch      bool
	runSelector   string
	runSeed       int64
	runSessionDir string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runRoster, "roster", "r", "", "Roster YAML file (required)")
	runCmd.Flags().IntVarP(&runTurns, "turns", "t", 0, "Session length in turns (default from config)")
	runCmd.Flags().StringVar(&runTopic, "topic", "", "Discussion topic")
	runCmd.Flags().StringVar(&runScript, "script", "", "Script file with one utterance per line")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "Watch the session live in the terminal")
	runCmd.Flags().StringVar(&runSelector, "selector", "", "Selection policy: top or weighted (default from config)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "Seed for the weighted selector (0 = time-based)")
	runCmd.Flags().StringVar(&runSessionDir, "session-dir", "", "Directory for the transcript and session log")

	_ = runCmd.MarkFlagRequired("roster")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ros, err := roster.LoadFile(runRoster)
	if err != nil {
		return err
	}

	turns := cfg.Session.TotalTurns
	if runTurns > 0 {
		turns = runTurns
	}

	gen, err := buildGenerator(runScript)
	if err != nil {
		return err
	}

	sel, err := buildSelector(cfg, runSelector, runSeed)
	if err != nil {
		return err
	}

	sessionDir := cfg.Session.Dir
	if runSessionDir != "" {
		sessionDir = runSessionDir
	}

	opts := []session.Option{
		session.WithTopic(runTopic),
		session.WithSelector(sel),
	}

	if sessionDir != "" {
		log, err := logging.NewLogger(sessionDir, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to open session log: %w", err)
		}
		defer func() { _ = log.Close() }()
		opts = append(opts,
			session.WithLogger(log),
			session.WithStore(transcript.NewStore(sessionDir)),
		)
	}

	if cfg.Scoring.Override() {
		opts = append(opts, session.WithScoreOptions(scorer.WithWeights(scorer.Weights{
			UnspokenBoost:   cfg.Scoring.UnspokenBoost,
			FairnessPenalty: cfg.Scoring.FairnessPenalty,
			MentionWeight:   cfg.Scoring.MentionWeight,
		})))
	}

	bus := event.NewBus()
	opts = append(opts, session.WithBus(bus))

	d, err := session.NewDirector(ros, turns, gen, opts...)
	if err != nil {
		return err
	}

	if runWatch {
		return tui.New(d, bus, cfg.TUI.MaxTranscriptLines).Run()
	}

	if err := d.Run(cmd.Context()); err != nil {
		return err
	}
	printTranscript(cmd, d)
	return nil
}

// buildGenerator reads the script file into a scripted generator, or falls
// back to the stock generator when no script is given.
func buildGenerator(scriptPath string) (session.Generator, error) {
	if scriptPath == "" {
		return session.NewScriptedGenerator(), nil
	}

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return session.NewScriptedGenerator(lines...), nil
}

// buildSelector resolves the selection policy from the flag or config.
func buildSelector(cfg *config.Config, flag string, seed int64) (session.Selector, error) {
	policy := cfg.Session.Selector
	if flag != "" {
		policy = flag
	}

	switch policy {
	case "top":
		return session.TopRank{}, nil
	case "weighted":
		if seed == 0 {
			seed = cfg.Session.Seed
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return session.NewWeightedRandom(seed), nil
	default:
		return nil, fmt.Errorf("unknown selector %q (want top or weighted)", policy)
	}
}

// printTranscript writes the completed session to the command's output.
func printTranscript(cmd *cobra.Command, d *session.Director) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Session %s", d.ID())
	if d.Topic() != "" {
		fmt.Fprintf(out, " (%s)", d.Topic())
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("─", 50))

	for _, msg := range d.Transcript() {
		fmt.Fprintf(out, "[%2d] (%s) %s: %s\n", msg.Turn, msg.Phase, msg.Speaker, msg.Body)
		if len(msg.Mentions) > 0 {
			fmt.Fprintf(out, "     mentions: %s\n", strings.Join(msg.Mentions, ", "))
		}
	}

	fmt.Fprintln(out, strings.Repeat("─", 50))
	for _, e := range d.Ledger().Entries() {
		fmt.Fprintf(out, "%s spoke %d times\n", e.AgentID, e.TurnCount)
	}
}
