// Package cli provides the command-line interface for wordfreq.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/wordfreq/internal/cli/config"
	"github.com/leapstack-labs/wordfreq/internal/count"
	"github.com/leapstack-labs/wordfreq/internal/stream"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordfreq [stream...]",
		Short: "wordfreq - concurrent word frequency counter",
		Long: `wordfreq maintains a single word-frequency table fed concurrently from
standard input and any number of additional streams (files or named
pipes), reporting a sorted snapshot on a fixed interval and once more
after all streams are exhausted.

Words are maximal runs of ASCII letters, folded to lowercase. Counts
are sorted by frequency descending, ties alphabetically.`,
		Example: `  # Count words from stdin only
  wordfreq < corpus.txt

  # Create named pipes and count from them alongside stdin
  mkfifo /tmp/pipe1 /tmp/pipe2
  wordfreq /tmp/pipe1 /tmp/pipe2

  # Report every 2 seconds and print a per-stream summary at exit
  wordfreq --interval 2s --summary corpus.txt`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return runCount(cmd, cfg, args, stream.FS{})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().Duration("interval", config.DefaultInterval, "Reporting period")
	rootCmd.Flags().Int("max-words", config.DefaultMaxWords, "Distinct word limit (0 = unlimited)")
	rootCmd.Flags().Bool("summary", false, "Print a per-stream summary table on exit")
	rootCmd.Flags().BoolP("verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(NewVersionCommand(Version))

	return rootCmd
}

// runCount opens the named streams, runs the counter to completion, and
// optionally renders the per-stream summary. Stdin is always stream 0.
func runCount(cmd *cobra.Command, cfg *config.Config, args []string, opener stream.Opener) error {
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	streams := []count.Stream{{Name: "stdin", R: io.NopCloser(cmd.InOrStdin())}}
	for _, name := range args {
		rc, err := opener.Open(name)
		if err != nil {
			return err
		}
		streams = append(streams, count.Stream{Name: name, R: rc})
	}

	counter := count.New(count.Config{
		Streams:  streams,
		Out:      cmd.OutOrStdout(),
		Interval: cfg.Interval,
		MaxWords: cfg.MaxWords,
		Logger:   logger,
	})
	if err := counter.Run(cmd.Context()); err != nil {
		return err
	}

	if cfg.Summary {
		renderSummary(cmd.ErrOrStderr(), counter.Stats())
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
