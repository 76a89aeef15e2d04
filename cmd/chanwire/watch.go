package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/chanwire/chanwire/channelpath"
	"github.com/chanwire/chanwire/fswire"
	"github.com/chanwire/chanwire/internal/log"
)

func newWatchCmd(logger *log.Logger, load engineLoader) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "watch <path>...",
		Short: "Broadcast filesystem events onto channels",
		Long:  "Watches the given paths and broadcasts each filesystem event on <prefix>/<op>; prints every delivery until interrupted.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := load()
			if err != nil {
				return err
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				e.Close(ctx)
			}()

			bridge, err := fswire.New(e, fswire.WithPrefix(prefix))
			if err != nil {
				return err
			}
			defer bridge.Close()

			// One subscription per operation channel; the engine routes
			// to exact nodes, so each op needs its own listener.
			for _, op := range []string{"create", "write", "remove", "rename", "chmod", "error"} {
				ch := string(channelpath.Path(prefix).Normalize()) + channelpath.Separator + op
				e.Subscribe(ch, func(payload any) {
					fmt.Fprintf(cmd.OutOrStdout(), "[%s] %v\n", ch, payload)
				})
			}

			for _, path := range args {
				if err := bridge.Watch(path); err != nil {
					return err
				}
				logger.Info("watching %s", path)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := bridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "fs", "channel subtree to broadcast events under")
	return cmd
}
