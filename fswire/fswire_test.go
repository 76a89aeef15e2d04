package fswire

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chanwire/chanwire"
)

func TestOpName(t *testing.T) {
	tests := []struct {
		op       fsnotify.Op
		expected string
	}{
		{fsnotify.Create, "create"},
		{fsnotify.Write, "write"},
		{fsnotify.Remove, "remove"},
		{fsnotify.Rename, "rename"},
		{fsnotify.Chmod, "chmod"},
		{fsnotify.Create | fsnotify.Write, "create"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := opName(tt.op); got != tt.expected {
				t.Errorf("opName(%v) = %q, want %q", tt.op, got, tt.expected)
			}
		})
	}
}

func TestMessageFor(t *testing.T) {
	ev := fsnotify.Event{Name: "/tmp/x", Op: fsnotify.Write}
	m := messageFor("fs", ev)

	if m.Channel != "fs/write" {
		t.Errorf("message channel = %q, want %q", m.Channel, "fs/write")
	}
	payload, ok := m.Payload.(Event)
	if !ok {
		t.Fatalf("message payload is %T, want Event", m.Payload)
	}
	if payload.Path != "/tmp/x" || payload.Op != "write" {
		t.Errorf("payload = %+v, want {Path:/tmp/x Op:write}", payload)
	}
}

func TestMessageFor_CustomPrefix(t *testing.T) {
	ev := fsnotify.Event{Name: "/tmp/x", Op: fsnotify.Remove}
	m := messageFor("watchers/primary", ev)

	if m.Channel != "watchers/primary/remove" {
		t.Errorf("message channel = %q, want %q", m.Channel, "watchers/primary/remove")
	}
}

func TestBridge_Live(t *testing.T) {
	e := chanwire.NewEngine(chanwire.WithWorkerCount(1))
	t.Cleanup(func() { e.Close(context.Background()) })

	b, err := New(e)
	if err != nil {
		t.Skipf("filesystem watcher unavailable: %v", err)
	}
	t.Cleanup(func() { b.Close() })

	got := make(chan any, 8)
	e.Subscribe("fs/create", func(payload any) { got <- payload })

	dir := t.TempDir()
	if err := b.Watch(dir); err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go b.Run(ctx)

	target := filepath.Join(dir, "touched")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case payload := <-got:
		ev, ok := payload.(Event)
		if !ok {
			t.Fatalf("payload is %T, want Event", payload)
		}
		if ev.Path != target {
			t.Errorf("event path = %q, want %q", ev.Path, target)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("filesystem event never delivered")
	}
}
