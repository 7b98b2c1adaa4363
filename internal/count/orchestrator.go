// Package count implements the concurrent word-frequency core: per-stream
// tokenization feeding a single mutex-guarded table, a periodic reporter,
// and the shutdown protocol that guarantees one final report.
package count

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultInterval is the reporting period when none is configured.
const DefaultInterval = 10 * time.Second

// Stream pairs a stream identifier with its open source. The counter's
// reader closes it on completion.
type Stream struct {
	Name string
	R    io.ReadCloser
}

// Config holds counter configuration.
type Config struct {
	// Streams are the already-opened input streams, one reader each.
	Streams []Stream
	// Out receives the rendered reports (default os.Stdout).
	Out io.Writer
	// Interval is the reporting period (default DefaultInterval).
	Interval time.Duration
	// MaxWords caps distinct words; 0 means unlimited.
	MaxWords int
	// Logger is the structured logger (uses discard if nil).
	Logger *slog.Logger
}

// Counter owns the frequency table and coordinates the reader goroutines
// and the reporter.
type Counter struct {
	cfg   Config
	agg   *Aggregator
	stats []StreamStats
}

// New creates a counter with an empty table.
func New(cfg Config) *Counter {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return &Counter{
		cfg: cfg,
		agg: NewAggregator(NewTable(cfg.MaxWords)),
	}
}

// Run executes the full protocol: spawn one reader goroutine per stream
// plus the reporter, wait for every reader to finish, stop the reporter
// and wait for it to actually stop, then emit exactly one final report.
//
// Per-stream failures are absorbed by their reader and recorded in Stats;
// they never abort the run. Readers are not cancellable: they run to
// stream exhaustion.
func (c *Counter) Run(ctx context.Context) error {
	reporter := NewReporter(c.agg, c.cfg.Out, c.cfg.Interval, c.cfg.Logger)

	repCtx, stopReporter := context.WithCancel(ctx)
	defer stopReporter()

	repDone := make(chan struct{})
	go func() {
		defer close(repDone)
		reporter.Run(repCtx)
	}()

	c.stats = make([]StreamStats, len(c.cfg.Streams))
	var eg errgroup.Group
	for i, s := range c.cfg.Streams {
		eg.Go(func() error {
			c.stats[i] = ReadStream(s.Name, s.R, c.agg, c.cfg.Logger)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	stopReporter()
	<-repDone

	reporter.Report()
	return nil
}

// Stats returns per-stream outcomes, in the order streams were supplied.
// Valid after Run returns.
func (c *Counter) Stats() []StreamStats {
	return c.stats
}
