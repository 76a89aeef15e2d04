// Package fswire bridges filesystem notifications onto a chanwire channel
// tree.
//
// Each fsnotify event is broadcast on a channel named after its operation
// under a configurable prefix: a write to /tmp/x lands on "fs/write" with an
// Event{Path: "/tmp/x", Op: "write"} payload. Listeners subscribe to exactly
// the operations they care about; watcher errors arrive on "fs/error".
//
//	e := chanwire.NewEngine()
//	b, err := fswire.New(e)
//	if err != nil {
//	    // ...
//	}
//	defer b.Close()
//
//	e.Subscribe("fs/write", func(payload any) {
//	    ev := payload.(fswire.Event)
//	    fmt.Println("written:", ev.Path)
//	})
//
//	b.Watch("/tmp")
//	go b.Run(ctx)
package fswire
