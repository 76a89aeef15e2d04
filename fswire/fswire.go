package fswire

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/chanwire/chanwire"
	"github.com/chanwire/chanwire/channelpath"
)

// Publisher is the slice of the engine the bridge needs. Both
// *chanwire.Engine and adapters over the package-level functions satisfy it.
type Publisher interface {
	Broadcast(message any)
}

// Event is the payload broadcast for each filesystem event.
type Event struct {
	// Path is the affected file or directory.
	Path string

	// Op is the lower-cased operation name: "create", "write", "remove",
	// "rename", or "chmod".
	Op string
}

// Bridge forwards filesystem notifications onto a channel tree.
// Each event is broadcast on "<prefix>/<op>"; watcher errors are broadcast
// on "<prefix>/error" with the error string as payload.
type Bridge struct {
	pub     Publisher
	watcher *fsnotify.Watcher
	prefix  channelpath.Path
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithPrefix sets the channel subtree events are broadcast under.
// The default is "fs".
func WithPrefix(prefix string) Option {
	return func(b *Bridge) {
		b.prefix = channelpath.Path(prefix).Normalize()
	}
}

// New creates a bridge publishing to pub.
func New(pub Publisher, opts ...Option) (*Bridge, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating filesystem watcher: %w", err)
	}

	b := &Bridge{
		pub:     pub,
		watcher: watcher,
		prefix:  "fs",
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Watch adds a path to the set of watched files and directories.
func (b *Bridge) Watch(path string) error {
	if err := b.watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	return nil
}

// Run forwards events until the context is cancelled or the watcher closes.
func (b *Bridge) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-b.watcher.Events:
			if !ok {
				return nil
			}
			b.pub.Broadcast(messageFor(b.prefix, ev))
		case err, ok := <-b.watcher.Errors:
			if !ok {
				return nil
			}
			b.pub.Broadcast(chanwire.Message{
				Channel: string(b.prefix) + channelpath.Separator + "error",
				Payload: err.Error(),
			})
		}
	}
}

// Close stops the underlying watcher. Run returns after Close.
func (b *Bridge) Close() error {
	return b.watcher.Close()
}

// messageFor maps a filesystem event to its channel tree message.
func messageFor(prefix channelpath.Path, ev fsnotify.Event) chanwire.Message {
	op := opName(ev.Op)
	return chanwire.Message{
		Channel: string(prefix) + channelpath.Separator + op,
		Payload: Event{Path: ev.Name, Op: op},
	}
}

// opName returns the channel segment for an event's primary operation.
func opName(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	case op.Has(fsnotify.Chmod):
		return "chmod"
	default:
		return strings.ToLower(op.String())
	}
}
