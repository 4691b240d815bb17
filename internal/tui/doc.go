// Package tui provides a terminal watcher for a running boardroom session.
//
// The watcher is read-only: it subscribes to the session's event bus and
// renders the transcript as turns land, with the current phase and speaker
// ranking. The session itself runs in a background goroutine; quitting the
// watcher cancels it.
package tui
