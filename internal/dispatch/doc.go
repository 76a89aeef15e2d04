// Package dispatch provides the deferred-execution backend for the channel
// tree engine.
//
// Every listener invocation in the engine - live deliveries and cached-replay
// on subscribe - is enqueued here rather than called in-line. A bounded queue
// feeds a fixed worker pool, which guarantees the engine's core asynchrony
// contract: a publisher never blocks on slow listeners, and a listener never
// runs before the call that scheduled it has returned.
//
// # Panic Isolation
//
// Tasks are executed with panic recovery. A panicking listener cannot crash a
// worker or the process; panics are reported via a configurable PanicHandler
// callback and counted in Stats.
//
// # Usage
//
//	d := dispatch.New(
//	    dispatch.WithQueueSize(1024),
//	    dispatch.WithWorkerCount(4),
//	    dispatch.WithPanicHandler(func(ch string, payload, recovered any, stack []byte) {
//	        log.Printf("listener panic on %s: %v\n%s", ch, recovered, stack)
//	    }),
//	)
//	if err := d.Start(); err != nil {
//	    // ...
//	}
//	defer d.Stop(context.Background())
//
//	_ = d.Enqueue(dispatch.Task{Channel: "a/b", Payload: v, Run: deliver})
//
// Enqueue never blocks: when the queue is at capacity the task is dropped,
// counted, and ErrQueueFull returned. The engine treats drops as part of its
// fire-and-forget delivery contract.
package dispatch
