package chanwire

import (
	ilog "github.com/chanwire/chanwire/internal/log"
)

// Option configures an Engine.
type Option func(*config)

// config contains engine configuration.
type config struct {
	// queueSize is the size of the deferred-delivery queue.
	queueSize int

	// workerCount is the number of delivery worker goroutines.
	workerCount int

	// panicHandler is called when a listener panics.
	panicHandler PanicHandler
}

// defaultConfig returns sensible default configuration.
func defaultConfig() config {
	return config{
		queueSize:    10000,
		workerCount:  10,
		panicHandler: DefaultPanicHandler,
	}
}

// WithQueueSize sets the deferred-delivery queue size.
func WithQueueSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of delivery worker goroutines.
// A count of 1 gives strictly ordered delivery across the whole engine.
func WithWorkerCount(count int) Option {
	return func(c *config) {
		if count > 0 {
			c.workerCount = count
		}
	}
}

// PanicHandler is called when a listener panics during delivery.
type PanicHandler func(channel string, payload any, recovered any, stack []byte)

// WithPanicHandler sets the handler invoked when a listener panics.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) {
		if h != nil {
			c.panicHandler = h
		}
	}
}

var panicLog = ilog.New("chanwire")

// DefaultPanicHandler logs listener panics to stderr. A panicking listener is
// an unhandled failure, not a recoverable engine error; delivery to other
// listeners is unaffected.
func DefaultPanicHandler(channel string, payload any, recovered any, stack []byte) {
	panicLog.Error("listener panic on %q: %v\n%s", channel, recovered, stack)
}

// SubscribeOption configures a single registration.
type SubscribeOption func(*subscribeConfig)

type subscribeConfig struct {
	filter FilterFunc
}

func newSubscribeConfig(opts []SubscribeOption) subscribeConfig {
	var cfg subscribeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithFilter sets a predicate gating delivery to this registration. Payloads
// the filter rejects are skipped; for ListenOnce registrations a rejected
// payload does not consume the single delivery.
func WithFilter(f FilterFunc) SubscribeOption {
	return func(c *subscribeConfig) {
		c.filter = f
	}
}
