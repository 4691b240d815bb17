// Package event defines the boardroom's event types and a small synchronous
// pub-sub bus. Events let observers — the TUI watcher, loggers, tests —
// follow a running session without the director depending on any of them.
//
// Event type names follow the "category.action" convention, e.g.
// "session.started" or "speaker.selected". Handlers run synchronously on
// the publishing goroutine; a panicking handler is recovered and logged so
// it cannot block delivery to the rest.
package event
