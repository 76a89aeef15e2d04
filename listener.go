package chanwire

import (
	"reflect"
	"sync/atomic"

	"github.com/google/uuid"
)

// Handler is a callback registered on a channel node. It receives the payload
// of each delivered message.
type Handler func(payload any)

// listener is one registration on a node.
type listener struct {
	// id uniquely identifies this registration.
	id string

	// key is the identity of the registered handler, used by Subscribe
	// for deduplication and by Unsubscribe for removal. Zero for
	// one-shot registrations, which are never matched by either.
	key uintptr

	// fn is the handler to invoke.
	fn Handler

	// filter, when set, gates delivery per payload.
	filter FilterFunc

	// once marks a one-shot registration: the first invocation wins the
	// fired guard and the registration is removed afterwards.
	once  bool
	fired atomic.Bool
}

func newListener(key uintptr, fn Handler, cfg subscribeConfig, once bool) *listener {
	return &listener{
		id:     uuid.NewString(),
		key:    key,
		fn:     fn,
		filter: cfg.filter,
		once:   once,
	}
}

// handlerKey returns the identity key for a handler.
//
// Go function values are not comparable, so identity is the function's code
// pointer. This matches reference equality for the common case of passing the
// same function value, with one caveat: distinct closures compiled from the
// same function literal share a code pointer and therefore share identity.
func handlerKey(h Handler) uintptr {
	return reflect.ValueOf(h).Pointer()
}
