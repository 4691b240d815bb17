package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quorumlabs/boardroom/internal/phase"
)

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Show the phase bands for a session length",
	Long: `Print which turns of a session fall into the opening, discussion, and
wrap-up phases. Useful for checking where the boundaries land before
scheduling a session of a given length.

Examples:
  # Bands for the default session length
  boardroom phases

  # Bands for a 25-turn session
  boardroom phases --turns 25`,
	RunE: runPhases,
}

var phasesTurns int

func init() {
	rootCmd.AddCommand(phasesCmd)

	phasesCmd.Flags().IntVarP(&phasesTurns, "turns", "t", 12, "Session length in turns")
}

func runPhases(cmd *cobra.Command, args []string) error {
	bands, err := phase.Bands(phasesTurns)
	if err != nil {
		return fmt.Errorf("invalid session length: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session of %d turns:\n", phasesTurns)
	for _, b := range bands {
		if b.Start == b.End {
			fmt.Fprintf(out, "  %-10s  turn  %d\n", b.Phase, b.Start)
			continue
		}
		fmt.Fprintf(out, "  %-10s  turns %d-%d\n", b.Phase, b.Start, b.End)
	}
	return nil
}
