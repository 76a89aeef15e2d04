// Package chanwire is a hierarchical, in-process publish/subscribe engine.
//
// Channels are named by slash-delimited paths forming a tree: "a/b/c" is a
// descendant of "a/b". A message published to a channel reaches only the
// listeners registered on that exact node - not ancestors, not descendants.
// Channel names are case-insensitive, and nodes are created lazily the first
// time a path is walked.
//
// # Delivery Semantics
//
// Two publish verbs with different persistence:
//
//   - Broadcast: fire-once delivery to the listeners registered right now.
//     Nothing is cached; a later subscriber never sees the message.
//
//   - Stream: delivery plus caching of the message as the node's current
//     value. A subscriber arriving later replays the cached value once,
//     asynchronously, at registration.
//
// Silence clears the cached streamed value for a node and its entire subtree
// without touching listener registrations. IsStreaming reports whether a
// node currently holds a cached value.
//
// Every handler invocation - live delivery and cached replay alike - is
// deferred to a worker pool. A caller of Broadcast, Stream, or Subscribe
// always resumes before any listener runs, and a slow or panicking listener
// never blocks a publisher.
//
// # Path Rules
//
// All strings are valid paths; nothing errors on malformed input. "" and "/"
// are the root, one leading "/" is ignored, and an empty segment terminates
// the walk - so "a/b/" equals "a/b" and, as a preserved compatibility quirk,
// "a//b" resolves to "a". See package channelpath.
//
// # Basic Usage
//
//	e := chanwire.NewEngine()
//	defer e.Close(context.Background())
//
//	e.Subscribe("app/users/updated", func(payload any) {
//	    fmt.Println("user updated:", payload)
//	})
//
//	e.Broadcast(chanwire.Message{Channel: "app/users/updated", Payload: u})
//
//	// Stream caches for late subscribers:
//	e.Stream(chanwire.Message{Channel: "app/config", Payload: cfg})
//	e.Subscribe("app/config", applyConfig) // replays cfg asynchronously
//
//	// Bare payloads address the root channel:
//	chanwire.Stream("hello")
//	chanwire.Subscribe("/", greet) // greet eventually receives "hello"
//
// # Two Packagings
//
// NewEngine returns an isolated tree. The package-level functions (Broadcast,
// Subscribe, ...) operate on a lazily-initialized process-wide engine with
// identical behavior; Default returns it directly.
//
// # Registration Identity
//
// Subscribe deduplicates by handler identity per node, and Unsubscribe
// removes by the same identity. Identity is the function's code pointer, so
// passing the same function value twice is a no-op the second time. Distinct
// closures built from the same function literal share a code pointer and
// therefore share identity. ListenOnce registrations are always distinct and
// are removed automatically after their single delivery.
//
// # Subpackages
//
//   - channelpath: path parsing and normalization rules
//   - fswire: bridges fsnotify filesystem events onto the channel tree
package chanwire
