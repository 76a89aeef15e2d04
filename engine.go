package chanwire

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/chanwire/chanwire/channelpath"
	"github.com/chanwire/chanwire/internal/dispatch"
)

// Engine is a hierarchical in-process publish/subscribe tree.
//
// Channels are named by slash-delimited paths forming a tree; a message is
// routed only to listeners registered on the exact node its path resolves to.
// Broadcast delivers once to current listeners; Stream additionally caches
// the message on the node so late subscribers receive it on registration.
// Silence clears the cached state for an entire subtree.
//
// Every listener invocation is deferred to a worker pool: no handler ever
// runs before the call that triggered it has returned. The engine is safe
// for concurrent use.
type Engine struct {
	mu   sync.RWMutex
	root *node

	disp *dispatch.Dispatcher

	// Stats
	published atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64
}

// NewEngine creates an engine with its delivery workers running.
// Call Close to shut the workers down.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{root: newNode()}
	e.disp = dispatch.New(
		dispatch.WithQueueSize(cfg.queueSize),
		dispatch.WithWorkerCount(cfg.workerCount),
		dispatch.WithPanicHandler(dispatch.PanicHandler(cfg.panicHandler)),
	)
	// A freshly created dispatcher always starts.
	_ = e.disp.Start()
	return e
}

// Close stops the delivery workers, waiting for queued deliveries to finish
// or the context to be cancelled. Operations on a closed engine still mutate
// the tree, but deliveries are dropped.
func (e *Engine) Close(ctx context.Context) error {
	if err := e.disp.Stop(ctx); err != nil {
		if err == dispatch.ErrNotRunning {
			return ErrClosed
		}
		return err
	}
	return nil
}

// Broadcast delivers a message to every listener currently registered on the
// exact node the message's channel resolves to. Deliveries are deferred and
// fire-and-forget; the cached streamed value is not touched, so a later
// subscriber never sees a broadcast retroactively.
//
// The argument may be a Message or a bare payload; a bare payload is
// delivered on the root channel.
func (e *Engine) Broadcast(message any) {
	e.publish(normalizeMessage(message), false)
}

// Stream delivers like Broadcast but first caches the message as the node's
// current value, so subscribers that arrive later replay it. The cache is
// written before any delivery is scheduled.
func (e *Engine) Stream(message any) {
	e.publish(normalizeMessage(message), true)
}

func (e *Engine) publish(m Message, cache bool) {
	norm := string(channelpath.Path(m.Channel).Normalize())

	e.mu.Lock()
	n := e.resolve(norm)
	if cache {
		cached := m
		n.last = &cached
	}
	targets := make([]*listener, len(n.listeners))
	copy(targets, n.listeners)
	e.mu.Unlock()

	e.published.Add(1)

	for _, l := range targets {
		l := l
		err := e.disp.Enqueue(dispatch.Task{
			Channel: norm,
			Payload: m.Payload,
			Run:     func() { e.invoke(l, n, m.Payload) },
		})
		if err == dispatch.ErrNotRunning {
			// Queue-full drops are counted by the dispatcher itself.
			e.dropped.Add(1)
		}
	}
}

// Subscribe registers a handler on the node path resolves to. Registering
// the same handler twice on the same path is a no-op the second time;
// re-subscribing after an unsubscribe registers again.
//
// If the node has a streamed message cached, the handler receives it once,
// asynchronously - the replay is never synchronous with this call. The cache
// is checked when the replay task runs, so a Silence that lands first
// suppresses it.
func (e *Engine) Subscribe(path string, handler Handler, opts ...SubscribeOption) {
	if handler == nil {
		return
	}

	cfg := newSubscribeConfig(opts)
	key := handlerKey(handler)

	e.mu.Lock()
	n := e.resolve(path)
	for _, l := range n.listeners {
		if l.key == key {
			e.mu.Unlock()
			return
		}
	}
	l := newListener(key, handler, cfg, false)
	n.listeners = append(n.listeners, l)
	e.mu.Unlock()

	e.scheduleReplay(n, l, path)
}

// Unsubscribe removes the first registration of handler on the node path
// resolves to. Unsubscribing a handler that was never registered is a no-op.
// One-shot registrations made with ListenOnce are not matched.
func (e *Engine) Unsubscribe(path string, handler Handler) {
	if handler == nil {
		return
	}
	key := handlerKey(handler)

	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.resolve(path)
	for i, l := range n.listeners {
		if l.key == key {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return
		}
	}
}

// ListenOnce registers a handler for exactly one delivery, after which the
// registration is removed automatically. The single delivery may come from a
// live Broadcast or Stream, or from the cached-message replay if the node is
// already streaming.
//
// Each call registers independently: ListenOnce is never deduplicated, and
// its registration cannot be removed with Unsubscribe.
func (e *Engine) ListenOnce(path string, handler Handler, opts ...SubscribeOption) {
	if handler == nil {
		return
	}

	cfg := newSubscribeConfig(opts)

	e.mu.Lock()
	n := e.resolve(path)
	l := newListener(0, handler, cfg, true)
	n.listeners = append(n.listeners, l)
	e.mu.Unlock()

	e.scheduleReplay(n, l, path)
}

// IsStreaming reports whether the node path resolves to currently has a
// streamed message cached.
func (e *Engine) IsStreaming(path string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resolve(path).last != nil
}

// Silence clears the cached streamed message on the node path resolves to
// and on every descendant. Listener registrations are untouched: a later
// Stream to a silenced channel still reaches previously subscribed
// listeners. The empty path (or "/") silences the whole tree.
func (e *Engine) Silence(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	walk(e.resolve(path), func(n *node) {
		n.last = nil
	})
}

// scheduleReplay defers the cached-message check for a fresh registration.
// Scheduling is unconditional; whether anything is delivered depends on the
// node's cache at the time the task runs.
func (e *Engine) scheduleReplay(n *node, l *listener, path string) {
	norm := string(channelpath.Path(path).Normalize())
	err := e.disp.Enqueue(dispatch.Task{
		Channel: norm,
		Run: func() {
			e.mu.RLock()
			m := n.last
			e.mu.RUnlock()
			if m != nil {
				e.invoke(l, n, m.Payload)
			}
		},
	})
	if err == dispatch.ErrNotRunning {
		e.dropped.Add(1)
	}
}

// invoke runs a single delivery inside a dispatcher worker.
func (e *Engine) invoke(l *listener, n *node, payload any) {
	if l.filter != nil && !l.filter(payload) {
		return
	}
	if l.once {
		if !l.fired.CompareAndSwap(false, true) {
			return
		}
		defer e.removeListener(n, l.id)
	}
	l.fn(payload)
	e.delivered.Add(1)
}

func (e *Engine) removeListener(n *node, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, l := range n.listeners {
		if l.id == id {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of registrations on the node path
// resolves to.
func (e *Engine) ListenerCount(path string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.resolve(path).listeners)
}

// Channels returns the paths of all nodes that currently hold listener
// registrations or a cached streamed message, sorted lexicographically.
func (e *Engine) Channels() []channelpath.Path {
	e.mu.RLock()
	var paths []channelpath.Path
	walkPaths(e.root, nil, func(p channelpath.Path, n *node) {
		if len(n.listeners) > 0 || n.last != nil {
			paths = append(paths, p)
		}
	})
	e.mu.RUnlock()

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })
	return paths
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	ds := e.disp.Stats()

	e.mu.RLock()
	listeners := 0
	streaming := 0
	walk(e.root, func(n *node) {
		listeners += len(n.listeners)
		if n.last != nil {
			streaming++
		}
	})
	e.mu.RUnlock()

	return Stats{
		Published:         e.published.Load(),
		Delivered:         e.delivered.Load(),
		Dropped:           e.dropped.Load() + ds.Dropped,
		ListenerPanics:    ds.Panicked,
		QueueDepth:        ds.QueueDepth,
		Listeners:         listeners,
		StreamingChannels: streaming,
	}
}
