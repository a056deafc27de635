// Package main provides the tactile CLI entry point.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags
var Version = "dev"

var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		outputError(err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tactile",
	Short: "Replay and inspect gesture recognition",
	Long: `tactile replays scripted pointer, touch and wheel input through the
gesture manager and prints the resulting interaction events as JSON lines.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := zap.NewNop()
		if verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = l
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log gesture manager diagnostics to stderr")
	rootCmd.Version = Version
}
