// Package roster holds the participant list for a boardroom session.
//
// A Roster is the fixed, ordered set of agents taking part in a session.
// It is built once at session start and never changes for the session's
// lifetime; the turn ledger and scorer both key off its agent IDs. The
// scheduler itself only reads profiles — ownership of agent identity stays
// with the caller's agent registry.
//
// Rosters can be constructed in code or loaded from a YAML file:
//
//	agents:
//	  - id: marcus
//	    display_name: Marcus Aurelius
//	  - id: seneca
//	    display_name: Seneca
package roster
