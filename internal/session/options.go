package session

import (
	"github.com/quorumlabs/boardroom/internal/event"
	"github.com/quorumlabs/boardroom/internal/logging"
	"github.com/quorumlabs/boardroom/internal/scorer"
	"github.com/quorumlabs/boardroom/internal/transcript"
)

// Option configures a Director.
type Option func(*Director)

// WithTopic sets the discussion topic passed to generators.
func WithTopic(topic string) Option {
	return func(d *Director) { d.topic = topic }
}

// WithBus publishes session events to the given bus.
func WithBus(bus *event.Bus) Option {
	return func(d *Director) { d.bus = bus }
}

// WithLogger sets the session logger. Defaults to a nop logger.
func WithLogger(log *logging.Logger) Option {
	return func(d *Director) {
		if log != nil {
			d.log = log
		}
	}
}

// WithSelector sets the speaker selection policy. Defaults to TopRank.
func WithSelector(sel Selector) Option {
	return func(d *Director) {
		if sel != nil {
			d.sel = sel
		}
	}
}

// WithStore persists each recorded message to the given transcript store.
func WithStore(store *transcript.Store) Option {
	return func(d *Director) { d.store = store }
}

// WithScoreOptions passes extra options to every scoring call, e.g. weight
// overrides or per-agent bias.
func WithScoreOptions(opts ...scorer.Option) Option {
	return func(d *Director) { d.scoreOpts = opts }
}

// WithSessionID overrides the generated session ID. Intended for tests and
// for resuming an externally named session.
func WithSessionID(id string) Option {
	return func(d *Director) {
		if id != "" {
			d.id = id
		}
	}
}
