package dispatch

import "runtime/debug"

// Result captures the outcome of a single task execution.
type Result struct {
	// Panicked is true if the task panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if any.
	PanicValue any
}

// run executes a task with panic recovery.
// A panicking task never crashes the worker; the panic is reported through
// the handler and recorded in the result.
func run(task Task, panicHandler PanicHandler) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()

			result.Panicked = true
			result.PanicValue = r

			if panicHandler != nil {
				// Protect the panic handler call - don't let it crash the worker
				func() {
					defer func() { _ = recover() }()
					panicHandler(task.Channel, task.Payload, r, stack)
				}()
			}
		}
	}()

	task.Run()
	return result
}
