package chanwire

import "errors"

// ErrClosed is returned by Close when the engine is already closed.
//
// The seven channel operations never return errors: malformed paths resolve
// deterministically, unknown channels are created on demand, and listener
// failures are routed to the panic handler rather than surfaced to callers.
var ErrClosed = errors.New("engine is closed")
