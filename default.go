package chanwire

import "sync"

// The process-wide engine. Packaged as a thin pass-through over the same
// Engine type so the shared and instantiable shapes behave identically.
var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the lazily-initialized process-wide engine. It lives for
// the life of the process and is never closed.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = NewEngine()
	})
	return defaultEngine
}

// Broadcast delivers on the process-wide engine. See Engine.Broadcast.
func Broadcast(message any) {
	Default().Broadcast(message)
}

// Stream delivers and caches on the process-wide engine. See Engine.Stream.
func Stream(message any) {
	Default().Stream(message)
}

// Subscribe registers on the process-wide engine. See Engine.Subscribe.
func Subscribe(path string, handler Handler, opts ...SubscribeOption) {
	Default().Subscribe(path, handler, opts...)
}

// Unsubscribe removes a registration from the process-wide engine. See
// Engine.Unsubscribe.
func Unsubscribe(path string, handler Handler) {
	Default().Unsubscribe(path, handler)
}

// ListenOnce registers a one-shot handler on the process-wide engine. See
// Engine.ListenOnce.
func ListenOnce(path string, handler Handler, opts ...SubscribeOption) {
	Default().ListenOnce(path, handler, opts...)
}

// IsStreaming queries the process-wide engine. See Engine.IsStreaming.
func IsStreaming(path string) bool {
	return Default().IsStreaming(path)
}

// Silence clears cached streamed state on the process-wide engine. See
// Engine.Silence.
func Silence(path string) {
	Default().Silence(path)
}
