// Package main is the chanwire command line tool: scripted scenarios,
// filesystem watching, and engine benchmarks on top of the channel tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chanwire/chanwire"
	"github.com/chanwire/chanwire/internal/config"
	"github.com/chanwire/chanwire/internal/log"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string

	logger := log.New("chanwire")

	rootCmd := &cobra.Command{
		Use:     "chanwire",
		Short:   "Hierarchical in-process pub/sub tooling",
		Long:    "chanwire runs scripted pub/sub scenarios, bridges filesystem events onto channels, and benchmarks the channel tree engine.",
		Version: fmt.Sprintf("%s (%s)", version, commit),
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")

	// loadEngine builds an engine from config file + environment.
	loadEngine := func() (*chanwire.Engine, config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, cfg, err
		}
		logger.SetLevel(log.ParseLevel(cfg.LogLevel))
		e := chanwire.NewEngine(
			chanwire.WithQueueSize(cfg.QueueSize),
			chanwire.WithWorkerCount(cfg.Workers),
			chanwire.WithPanicHandler(func(channel string, payload, recovered any, stack []byte) {
				logger.Error("listener panic on %q: %v", channel, recovered)
			}),
		)
		return e, cfg, nil
	}

	rootCmd.AddCommand(newPlayCmd(logger, loadEngine))
	rootCmd.AddCommand(newWatchCmd(logger, loadEngine))
	rootCmd.AddCommand(newBenchCmd(logger, loadEngine))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// engineLoader builds a configured engine for a subcommand.
type engineLoader func() (*chanwire.Engine, config.Config, error)
