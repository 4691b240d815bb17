// Package errors provides centralized error definitions for the boardroom
// scheduler. It defines the scheduler's error taxonomy as sentinel errors,
// typed errors that carry context, and convenience re-exports so callers can
// import a single package for all error handling.
//
// The taxonomy has three entries, all synchronous caller errors:
//   - OutOfRangeTurn: a turn index outside [1, totalTurns]
//   - UnknownAgent: a ledger update referencing an agent absent from tracking
//   - InvalidRoster: an empty or inconsistent participant list
//
// None of these are retried or coerced internally. The scheduler never clamps
// an out-of-range value to the nearest valid one; masking an orchestration
// bug in the calling loop is worse than failing it fast.
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrUnknownAgent) { ... }
//
//	var oor *errors.OutOfRangeTurnError
//	if errors.As(err, &oor) {
//	    fmt.Println(oor.Turn, oor.TotalTurns)
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors for the scheduler's error taxonomy.
var (
	// ErrOutOfRangeTurn indicates a turn index outside [1, totalTurns].
	ErrOutOfRangeTurn = New("turn out of range")

	// ErrUnknownAgent indicates an agent ID absent from the turn ledger.
	ErrUnknownAgent = New("unknown agent")

	// ErrInvalidRoster indicates an empty or inconsistent participant list.
	ErrInvalidRoster = New("invalid roster")
)

// OutOfRangeTurnError reports a turn index outside the valid turn range.
//
// Example:
//
//	err := errors.NewOutOfRangeTurnError(12, 10)
//	fmt.Println(err) // "turn 12 out of range [1, 10]"
type OutOfRangeTurnError struct {
	Turn       int
	TotalTurns int
}

// NewOutOfRangeTurnError creates an OutOfRangeTurnError.
func NewOutOfRangeTurnError(turn, totalTurns int) *OutOfRangeTurnError {
	return &OutOfRangeTurnError{Turn: turn, TotalTurns: totalTurns}
}

// Error returns the formatted error message.
func (e *OutOfRangeTurnError) Error() string {
	return fmt.Sprintf("turn %d out of range [1, %d]", e.Turn, e.TotalTurns)
}

// Is reports whether this error matches the target. OutOfRangeTurnError
// matches ErrOutOfRangeTurn and other OutOfRangeTurnError values.
func (e *OutOfRangeTurnError) Is(target error) bool {
	if target == ErrOutOfRangeTurn {
		return true
	}
	_, ok := target.(*OutOfRangeTurnError)
	return ok
}

// UnknownAgentError reports an agent ID that is not present in the ledger
// or roster being operated on.
type UnknownAgentError struct {
	AgentID string
}

// NewUnknownAgentError creates an UnknownAgentError.
func NewUnknownAgentError(agentID string) *UnknownAgentError {
	return &UnknownAgentError{AgentID: agentID}
}

// Error returns the formatted error message.
func (e *UnknownAgentError) Error() string {
	return fmt.Sprintf("unknown agent %q", e.AgentID)
}

// Is reports whether this error matches the target. UnknownAgentError
// matches ErrUnknownAgent and other UnknownAgentError values.
func (e *UnknownAgentError) Is(target error) bool {
	if target == ErrUnknownAgent {
		return true
	}
	_, ok := target.(*UnknownAgentError)
	return ok
}

// InvalidRosterError reports an empty or inconsistent participant list.
type InvalidRosterError struct {
	Reason string
}

// NewInvalidRosterError creates an InvalidRosterError.
func NewInvalidRosterError(reason string) *InvalidRosterError {
	return &InvalidRosterError{Reason: reason}
}

// Error returns the formatted error message.
func (e *InvalidRosterError) Error() string {
	return fmt.Sprintf("invalid roster: %s", e.Reason)
}

// Is reports whether this error matches the target. InvalidRosterError
// matches ErrInvalidRoster and other InvalidRosterError values.
func (e *InvalidRosterError) Is(target error) bool {
	if target == ErrInvalidRoster {
		return true
	}
	_, ok := target.(*InvalidRosterError)
	return ok
}

// IsSchedulerError returns true if the error belongs to the scheduler's
// error taxonomy (OutOfRangeTurn, UnknownAgent, or InvalidRoster).
func IsSchedulerError(err error) bool {
	if err == nil {
		return false
	}
	return Is(err, ErrOutOfRangeTurn) || Is(err, ErrUnknownAgent) || Is(err, ErrInvalidRoster)
}

// Wrap wraps an error with an additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "record speaker")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "turn %d", turn)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
