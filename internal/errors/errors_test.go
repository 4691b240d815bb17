package errors

import (
	"fmt"
	"testing"
)

func TestOutOfRangeTurnError(t *testing.T) {
	err := NewOutOfRangeTurnError(12, 10)

	want := "turn 12 out of range [1, 10]"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !Is(err, ErrOutOfRangeTurn) {
		t.Error("expected error to match ErrOutOfRangeTurn")
	}
	if Is(err, ErrUnknownAgent) {
		t.Error("error should not match ErrUnknownAgent")
	}

	var oor *OutOfRangeTurnError
	if !As(err, &oor) {
		t.Fatal("expected As to extract OutOfRangeTurnError")
	}
	if oor.Turn != 12 || oor.TotalTurns != 10 {
		t.Errorf("extracted Turn=%d TotalTurns=%d, want 12 and 10", oor.Turn, oor.TotalTurns)
	}
}

func TestUnknownAgentError(t *testing.T) {
	err := NewUnknownAgentError("agent-x")

	want := `unknown agent "agent-x"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !Is(err, ErrUnknownAgent) {
		t.Error("expected error to match ErrUnknownAgent")
	}
	if Is(err, ErrInvalidRoster) {
		t.Error("error should not match ErrInvalidRoster")
	}
}

func TestInvalidRosterError(t *testing.T) {
	err := NewInvalidRosterError("participant list is empty")

	want := "invalid roster: participant list is empty"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !Is(err, ErrInvalidRoster) {
		t.Error("expected error to match ErrInvalidRoster")
	}
}

func TestMatching_ThroughWrapping(t *testing.T) {
	err := Wrapf(NewUnknownAgentError("agent-x"), "turn %d", 3)

	if !Is(err, ErrUnknownAgent) {
		t.Error("expected wrapped error to still match ErrUnknownAgent")
	}

	var ua *UnknownAgentError
	if !As(err, &ua) {
		t.Fatal("expected As to extract UnknownAgentError through wrapping")
	}
	if ua.AgentID != "agent-x" {
		t.Errorf("AgentID = %q, want %q", ua.AgentID, "agent-x")
	}
	if err.Error() != `turn 3: unknown agent "agent-x"` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIsSchedulerError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"out of range", NewOutOfRangeTurnError(0, 10), true},
		{"unknown agent", NewUnknownAgentError("x"), true},
		{"invalid roster", NewInvalidRosterError("empty"), true},
		{"wrapped", Wrap(ErrInvalidRoster, "scoring"), true},
		{"unrelated", New("disk full"), false},
		{"unrelated formatted", fmt.Errorf("read config: %w", New("eof")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSchedulerError(tt.err); got != tt.want {
				t.Errorf("IsSchedulerError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "turn %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}
