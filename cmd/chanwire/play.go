package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chanwire/chanwire"
	"github.com/chanwire/chanwire/internal/log"
)

// scenario is a scripted sequence of engine operations loaded from YAML.
type scenario struct {
	Steps []step `yaml:"steps"`
}

// step is one operation. Exactly one field should be set per step.
type step struct {
	// Subscribe registers a printing listener on the given path.
	Subscribe string `yaml:"subscribe,omitempty"`

	// ListenOnce registers a printing one-shot listener on the given path.
	ListenOnce string `yaml:"listen_once,omitempty"`

	// Broadcast publishes without caching.
	Broadcast *scenarioMessage `yaml:"broadcast,omitempty"`

	// Stream publishes and caches.
	Stream *scenarioMessage `yaml:"stream,omitempty"`

	// Silence clears cached state for a subtree. A pointer so the empty
	// string (the whole tree) is expressible.
	Silence *string `yaml:"silence,omitempty"`

	// Wait pauses the script, e.g. "50ms", letting deferred deliveries
	// land between steps.
	Wait string `yaml:"wait,omitempty"`
}

type scenarioMessage struct {
	Channel string `yaml:"channel"`
	Payload any    `yaml:"payload"`
}

func parseScenario(data []byte) (scenario, error) {
	var s scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return scenario{}, fmt.Errorf("parsing scenario: %w", err)
	}
	return s, nil
}

func newPlayCmd(logger *log.Logger, load engineLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "play <scenario.yaml>",
		Short: "Run a scripted pub/sub scenario",
		Long:  "Reads a YAML scenario of subscribe/broadcast/stream/silence steps and prints each delivery as it lands.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading scenario %s: %w", args[0], err)
			}
			s, err := parseScenario(data)
			if err != nil {
				return err
			}
			logger.Debug("loaded %d steps from %s", len(s.Steps), args[0])

			e, _, err := load()
			if err != nil {
				return err
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				e.Close(ctx)
			}()

			return playScenario(cmd, e, s)
		},
	}
}

func playScenario(cmd *cobra.Command, e *chanwire.Engine, s scenario) error {
	printer := func(path string) chanwire.Handler {
		return func(payload any) {
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %v\n", path, payload)
		}
	}

	for i, st := range s.Steps {
		switch {
		case st.Subscribe != "":
			e.Subscribe(st.Subscribe, printer(st.Subscribe))
		case st.ListenOnce != "":
			e.ListenOnce(st.ListenOnce, printer(st.ListenOnce))
		case st.Broadcast != nil:
			e.Broadcast(chanwire.Message{Channel: st.Broadcast.Channel, Payload: st.Broadcast.Payload})
		case st.Stream != nil:
			e.Stream(chanwire.Message{Channel: st.Stream.Channel, Payload: st.Stream.Payload})
		case st.Silence != nil:
			e.Silence(*st.Silence)
		case st.Wait != "":
			d, err := time.ParseDuration(st.Wait)
			if err != nil {
				return fmt.Errorf("step %d: parsing wait duration: %w", i+1, err)
			}
			time.Sleep(d)
		default:
			return fmt.Errorf("step %d: no operation set", i+1)
		}
	}

	// Let trailing deferred deliveries land before shutdown.
	time.Sleep(100 * time.Millisecond)
	return nil
}
