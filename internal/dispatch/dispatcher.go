package dispatch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Dispatcher executes delivery tasks asynchronously using a worker pool.
// It provides bounded queuing, graceful shutdown, and panic isolation.
//
// The essential contract it exists to enforce: a task enqueued by an engine
// operation never runs before that operation returns to its caller.
type Dispatcher struct {
	// Configuration
	queueSize   int
	workerCount int

	// State
	mu      sync.Mutex // protects queue creation/destruction
	queue   chan Task
	running atomic.Bool
	wg      sync.WaitGroup

	// Handlers
	panicHandler PanicHandler

	// Stats
	enqueued    atomic.Uint64
	processed   atomic.Uint64
	panicked    atomic.Uint64
	dropped     atomic.Uint64
	totalTimeNs atomic.Int64
}

// Task is a unit of deferred work: one listener invocation, carried with
// enough context for the panic handler to be useful.
type Task struct {
	// Channel is the normalized channel path the delivery is for.
	Channel string

	// Payload is the message payload being delivered.
	Payload any

	// Run performs the delivery.
	Run func()
}

// PanicHandler is called when a task panics.
// It receives the channel and payload of the delivery plus the recovered
// value and stack trace.
type PanicHandler func(channel string, payload any, recovered any, stack []byte)

// defaultPanicHandler swallows panics. Callers that want visibility install
// their own handler via WithPanicHandler.
func defaultPanicHandler(channel string, payload any, recovered any, stack []byte) {}

// New creates a new dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		queueSize:    10000,
		workerCount:  10,
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithQueueSize sets the task queue size.
func WithQueueSize(size int) Option {
	return func(d *Dispatcher) {
		if size > 0 {
			d.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(d *Dispatcher) {
		if count > 0 {
			d.workerCount = count
		}
	}
}

// WithPanicHandler sets the panic handler for task execution.
func WithPanicHandler(h PanicHandler) Option {
	return func(d *Dispatcher) {
		if h != nil {
			d.panicHandler = h
		}
	}
}

// Start starts the worker pool.
func (d *Dispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running.Load() {
		return ErrAlreadyRunning
	}

	d.queue = make(chan Task, d.queueSize)
	d.running.Store(true)

	for i := 0; i < d.workerCount; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return nil
}

// Stop stops the worker pool gracefully.
// It waits for all queued tasks to complete or until the context is cancelled.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.running.Load() {
		d.mu.Unlock()
		return ErrNotRunning
	}

	d.running.Store(false)
	// Close the queue to signal workers to stop
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Enqueue adds a task to the queue for asynchronous execution.
// Returns ErrQueueFull if the queue is at capacity and ErrNotRunning if the
// dispatcher has been stopped.
func (d *Dispatcher) Enqueue(task Task) error {
	if !d.running.Load() {
		return ErrNotRunning
	}

	select {
	case d.queue <- task:
		d.enqueued.Add(1)
		return nil
	default:
		d.dropped.Add(1)
		return ErrQueueFull
	}
}

// worker processes tasks from the queue.
func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for task := range d.queue {
		d.execute(task)
	}
}

// execute runs a single task with panic recovery and timing.
func (d *Dispatcher) execute(task Task) {
	d.processed.Add(1)
	start := time.Now()

	defer func() {
		d.totalTimeNs.Add(time.Since(start).Nanoseconds())
	}()

	result := run(task, d.panicHandler)
	if result.Panicked {
		d.panicked.Add(1)
	}
}

// QueueDepth returns the current number of tasks waiting in the queue.
// Returns 0 if the dispatcher is not running.
func (d *Dispatcher) QueueDepth() int {
	if !d.running.Load() {
		return 0
	}
	// Queue is guaranteed to exist when running is true
	return len(d.queue)
}

// IsRunning returns true if the dispatcher is running.
func (d *Dispatcher) IsRunning() bool {
	return d.running.Load()
}

// Stats returns dispatcher statistics.
func (d *Dispatcher) Stats() Stats {
	processed := d.processed.Load()
	totalNs := d.totalTimeNs.Load()

	var avgNs int64
	if processed > 0 {
		avgNs = totalNs / int64(processed)
	}

	return Stats{
		Enqueued:    d.enqueued.Load(),
		Processed:   processed,
		Panicked:    d.panicked.Load(),
		Dropped:     d.dropped.Load(),
		QueueDepth:  d.QueueDepth(),
		AvgDuration: time.Duration(avgNs),
	}
}

// Stats contains statistics for a dispatcher.
type Stats struct {
	// Enqueued is the total number of tasks added to the queue.
	Enqueued uint64

	// Processed is the number of tasks that have been executed.
	Processed uint64

	// Panicked is the number of tasks that panicked.
	Panicked uint64

	// Dropped is the number of tasks dropped due to the queue being full.
	Dropped uint64

	// QueueDepth is the current number of tasks waiting in the queue.
	QueueDepth int

	// AvgDuration is the average task execution time.
	AvgDuration time.Duration
}
