package chanwire

// Stats contains engine statistics.
type Stats struct {
	// Published is the total number of Broadcast and Stream calls.
	Published uint64

	// Delivered is the total number of completed listener invocations.
	Delivered uint64

	// Dropped is the number of deliveries dropped (queue full or engine
	// closed).
	Dropped uint64

	// ListenerPanics is the number of listener invocations that panicked.
	ListenerPanics uint64

	// QueueDepth is the current number of pending deferred deliveries.
	QueueDepth int

	// Listeners is the current number of registrations across the tree.
	Listeners int

	// StreamingChannels is the number of nodes with a cached streamed
	// message.
	StreamingChannels int
}
