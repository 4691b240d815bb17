// Package phase classifies a turn's position within a boardroom session
// into one of three discussion phases.
//
// A session of totalTurns turns is divided proportionally: roughly the first
// 20% of turns form the opening, the middle 60% the discussion, and the
// final 20% the wrap-up. Boundaries scale with session length, so a
// 10-turn session opens for 2 turns while a 50-turn session opens for 10.
//
// Classification is a pure function of (turn, totalTurns); the phase is
// derived, never stored.
package phase
