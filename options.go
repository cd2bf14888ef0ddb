package fixer

import "github.com/zoobzio/clockz"

// options holds instance configuration for a Tracker that is not part of
// the serialisable Config.
type options struct {
	scheduler    Scheduler
	clock        clockz.Clock
	metrics      MetricsProvider
	errorHistory int
}

// Option configures a Tracker.
type Option func(*options)

// WithScheduler sets the scheduler used for animation frames and the resize
// debounce. Default: a ClockScheduler posting through Host.Post.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithClock sets the clock backing the default ClockScheduler. It has no
// effect when WithScheduler is also given.
func WithClock(clock clockz.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithMetrics sets a metrics provider for observability integration.
func WithMetrics(provider MetricsProvider) Option {
	return func(o *options) {
		o.metrics = provider
	}
}

// WithErrorHistory sets the number of recent errors to retain.
// When set, ErrorHistory returns up to n recent errors. Use 0 (default) to
// only retain the most recent error via LastError.
func WithErrorHistory(n int) Option {
	return func(o *options) {
		o.errorHistory = n
	}
}

// Bound adjusts the start or end configuration during Update.
type Bound func(*Config)

// StartAt sets Config.Start.
func StartAt(v int) Bound {
	return func(c *Config) {
		c.Start = Int(v)
	}
}

// EndAt sets Config.End.
func EndAt(v int) Bound {
	return func(c *Config) {
		c.End = Int(v)
	}
}

// DerivedStart clears Config.Start so it is derived from geometry.
func DerivedStart() Bound {
	return func(c *Config) {
		c.Start = nil
	}
}

// DerivedEnd clears Config.End so it is derived from geometry.
func DerivedEnd() Bound {
	return func(c *Config) {
		c.End = nil
	}
}
