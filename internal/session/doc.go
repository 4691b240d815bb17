// Package session drives a boardroom conversation turn by turn.
//
// The Director owns one session's state — roster, turn ledger, transcript —
// and runs the per-turn sequence: classify the phase, score and select the
// next speaker, await the agent's message from a Generator, extract
// mentions, and fold both updates into the ledger. The scheduler core
// (phase, scorer, mention, ledger) stays pure; everything stateful or
// blocking lives here.
//
// Generating an agent's actual utterance is an external concern: Generator
// is an interface the caller implements, typically over an LLM call. A
// ScriptedGenerator ships for tests and demos.
//
// Each Director owns its ledger value outright, so any number of sessions
// can run concurrently without shared state. A generator failure leaves the
// turn unrecorded and the ledger untouched; calling NextTurn again replays
// the same turn.
package session
