package chanwire

// Message is the unit of delivery: a payload addressed to a channel path.
type Message struct {
	// Channel is the slash-delimited channel path the message is addressed
	// to. Matching is case-insensitive; "" and "/" address the root.
	Channel string

	// Payload is the value delivered to listeners.
	Payload any
}

// normalizeMessage converts the value accepted by Broadcast and Stream into a
// Message. A bare payload (anything that is not a Message) is sugar for a
// message addressed to the root channel.
func normalizeMessage(v any) Message {
	switch m := v.(type) {
	case Message:
		return m
	case *Message:
		if m != nil {
			return *m
		}
		return Message{Channel: "/"}
	default:
		return Message{Channel: "/", Payload: v}
	}
}
