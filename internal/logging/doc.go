// Package logging provides structured logging for boardroom sessions.
// It wraps Go's log/slog package to produce JSON-formatted logs with
// persistent attributes (session, agent, turn) for post-hoc analysis of a
// session's scheduling decisions.
package logging
