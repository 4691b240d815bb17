package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

// resetRunFlags clears the run command's package-level flag state, which
// otherwise leaks between executions of the shared rootCmd.
func resetRunFlags(t *testing.T) {
	t.Helper()
	runRoster = ""
	runTurns = 0
	runTopic = ""
	runScript = ""
	runWatch = false
	runSelector = ""
	runSeed = 0
	runSessionDir = ""
}

// writeRoster writes a three-agent roster file and returns its path.
func writeRoster(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `agents:
  - id: ada
    display_name: Ada
  - id: bianca
    display_name: Bianca
  - id: cyrus
    display_name: Cyrus
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write roster: %v", err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "boardroom" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "boardroom")
	}

	expectedCmds := []string{"run", "phases"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestPhasesCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "phases", "--turns", "10")
	if err != nil {
		t.Fatalf("phases command failed: %v\nOutput: %s", err, output)
	}

	for _, want := range []string{"opening", "turns 1-2", "discussion", "turns 3-7", "wrap-up", "turns 8-10"} {
		if !strings.Contains(output, want) {
			t.Errorf("phases output missing %q:\n%s", want, output)
		}
	}
}

func TestPhasesCommand_InvalidTurns(t *testing.T) {
	_, err := executeCommand(rootCmd, "phases", "--turns", "0")
	if err == nil {
		t.Error("phases command should fail for zero turns")
	}
}

func TestRunCommand(t *testing.T) {
	resetRunFlags(t)
	rosterPath := writeRoster(t)

	output, err := executeCommand(rootCmd, "run",
		"--roster", rosterPath,
		"--turns", "3",
		"--topic", "quarterly review",
	)
	if err != nil {
		t.Fatalf("run command failed: %v\nOutput: %s", err, output)
	}

	for _, want := range []string{"quarterly review", "ada", "bianca", "cyrus", "spoke 1 times"} {
		if !strings.Contains(output, want) {
			t.Errorf("run output missing %q:\n%s", want, output)
		}
	}
}

func TestRunCommand_Script(t *testing.T) {
	resetRunFlags(t)
	rosterPath := writeRoster(t)
	scriptPath := filepath.Join(t.TempDir(), "script.txt")
	script := "I want to hear from Bianca on this.\nHappy to take it from here.\n"
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	output, err := executeCommand(rootCmd, "run",
		"--roster", rosterPath,
		"--turns", "2",
		"--script", scriptPath,
	)
	if err != nil {
		t.Fatalf("run command failed: %v\nOutput: %s", err, output)
	}

	// The first speaker names Bianca, so she gets the floor on turn two.
	if !strings.Contains(output, "mentions: bianca") {
		t.Errorf("run output missing mention annotation:\n%s", output)
	}
	if !strings.Contains(output, "[ 2] (wrap-up) bianca:") {
		t.Errorf("run output missing bianca's turn:\n%s", output)
	}
}

func TestRunCommand_PersistsSession(t *testing.T) {
	resetRunFlags(t)
	rosterPath := writeRoster(t)
	sessionDir := t.TempDir()

	output, err := executeCommand(rootCmd, "run",
		"--roster", rosterPath,
		"--turns", "2",
		"--session-dir", sessionDir,
	)
	if err != nil {
		t.Fatalf("run command failed: %v\nOutput: %s", err, output)
	}

	if _, err := os.Stat(filepath.Join(sessionDir, "transcript", "log.jsonl")); err != nil {
		t.Errorf("transcript log not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(sessionDir, "boardroom.log")); err != nil {
		t.Errorf("session log not written: %v", err)
	}
}

func TestRunCommand_MissingRoster(t *testing.T) {
	resetRunFlags(t)
	_, err := executeCommand(rootCmd, "run", "--roster", "/nonexistent/roster.yaml", "--turns", "2")
	if err == nil {
		t.Error("run command should fail for a missing roster file")
	}
}

func TestRunCommand_BadSelector(t *testing.T) {
	resetRunFlags(t)
	rosterPath := writeRoster(t)

	_, err := executeCommand(rootCmd, "run", "--roster", rosterPath, "--turns", "2", "--selector", "roulette")
	if err == nil {
		t.Error("run command should fail for an unknown selector")
	}
}
