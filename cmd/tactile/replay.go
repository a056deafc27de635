package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/phanxgames/tactile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	replayConfig string
	replayKinds  []string
)

func init() {
	replayCmd.Flags().StringVarP(&replayConfig, "config", "c", "", "Gesture config file (.toml, .yaml or .yml)")
	replayCmd.Flags().StringSliceVarP(&replayKinds, "kind", "k", nil, "Only print these event kinds (default all)")
	rootCmd.AddCommand(replayCmd)
}

var replayCmd = &cobra.Command{
	Use:   "replay <script.json>",
	Short: "Replay a gesture script and print interaction events",
	Long: `Replay a JSON gesture script against its declared element layout on a
virtual clock and print every interaction event as one JSON object per line.

Examples:
  tactile replay press-hold.json
  tactile replay pinch.json --config tactile.toml --kind zoom,pan`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

// exitError carries a process exit code alongside the error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func runReplay(cmd *cobra.Command, args []string) error {
	cfg := tactile.DefaultConfig()
	if replayConfig != "" {
		c, err := tactile.LoadConfigFile(replayConfig)
		if err != nil {
			return &exitError{ExitConfigError, err}
		}
		cfg = c
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return &exitError{ExitScriptError, fmt.Errorf("read script: %w", err)}
	}
	script, err := tactile.ParseScript(data)
	if err != nil {
		return &exitError{ExitScriptError, err}
	}

	kinds := tactile.Kinds()
	if len(replayKinds) > 0 {
		kinds = kinds[:0]
		for _, name := range replayKinds {
			k, ok := tactile.ParseKind(name)
			if !ok {
				return fmt.Errorf("unknown event kind %q", name)
			}
			kinds = append(kinds, k)
		}
	}

	n, err := replay(cmd.OutOrStdout(), script, cfg, kinds)
	if err != nil {
		return err
	}
	zap.L().Debug("replay finished", zap.String("script", args[0]), zap.Int("events", n))
	return nil
}

// replay runs script on a fresh manager and writes one JSON line per event.
// It returns the number of events written.
func replay(w io.Writer, script *tactile.Script, cfg tactile.Config, kinds []tactile.Kind) (int, error) {
	start := time.Unix(0, 0).UTC()
	clock := tactile.NewManualClock(start)
	sched := tactile.NewScheduler(clock)
	cfg.Scheduler = sched
	cfg.Logger = zap.L()

	root := tactile.NewElement("root", "root", 0, 0, script.Window.Width, script.Window.Height)
	m := tactile.NewManager(root, cfg)
	defer m.Destroy()

	if _, err := script.Build(root, m); err != nil {
		return 0, &exitError{ExitScriptError, err}
	}

	var (
		count    int
		writeErr error
	)
	for _, k := range kinds {
		m.OnFunc(k, func(ev tactile.InteractionEvent) {
			if writeErr != nil {
				return
			}
			if err := writeJSONLine(w, newEventRecord(ev, start)); err != nil {
				writeErr = fmt.Errorf("write event: %w", err)
				return
			}
			count++
		})
	}

	script.Run(root, clock, sched)
	// Fire anything still pending (debounced wheel zoom, long press) at its
	// own due time.
	for {
		due, ok := sched.NextDue()
		if !ok {
			break
		}
		clock.Advance(due.Sub(clock.Now()))
		sched.Update()
	}
	return count, writeErr
}
