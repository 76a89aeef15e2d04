package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/chanwire/chanwire"
	"github.com/chanwire/chanwire/internal/log"
)

func newBenchCmd(logger *log.Logger, load engineLoader) *cobra.Command {
	var messages int
	var channels int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure publish throughput",
		Long:  "Registers one listener per bench channel, broadcasts a batch of messages across them, and reports delivery throughput and engine statistics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cfg, err := load()
			if err != nil {
				return err
			}

			logger.Info("bench: %d messages across %d channels, %d workers, queue %d",
				messages, channels, cfg.Workers, cfg.QueueSize)

			var received atomic.Uint64
			expected := uint64(messages)
			done := make(chan struct{})

			for i := 0; i < channels; i++ {
				e.Subscribe(fmt.Sprintf("bench/%d", i), func(any) {
					if received.Add(1) == expected {
						close(done)
					}
				})
			}

			start := time.Now()
			for i := 0; i < messages; i++ {
				e.Broadcast(chanwire.Message{
					Channel: fmt.Sprintf("bench/%d", i%channels),
					Payload: i,
				})
			}

			select {
			case <-done:
			case <-time.After(time.Minute):
				logger.Warn("bench timed out; %d of %d deliveries", received.Load(), expected)
			}
			elapsed := time.Since(start)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := e.Close(ctx); err != nil {
				return err
			}

			stats := e.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "published:  %d\n", stats.Published)
			fmt.Fprintf(out, "delivered:  %d\n", stats.Delivered)
			fmt.Fprintf(out, "dropped:    %d\n", stats.Dropped)
			fmt.Fprintf(out, "elapsed:    %s\n", elapsed)
			if elapsed > 0 {
				fmt.Fprintf(out, "throughput: %.0f deliveries/s\n",
					float64(received.Load())/elapsed.Seconds())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&messages, "messages", 100000, "number of messages to broadcast")
	cmd.Flags().IntVar(&channels, "channels", 4, "number of bench channels, one listener each")
	return cmd
}
