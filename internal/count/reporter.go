package count

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Reporter periodically renders aggregator snapshots to a writer.
type Reporter struct {
	agg      *Aggregator
	out      io.Writer
	interval time.Duration
	logger   *slog.Logger
}

// NewReporter creates a reporter with a fixed period. The period cannot be
// changed after creation.
func NewReporter(agg *Aggregator, out io.Writer, interval time.Duration, logger *slog.Logger) *Reporter {
	return &Reporter{
		agg:      agg,
		out:      out,
		interval: interval,
		logger:   logger,
	}
}

// Run renders a report every interval until ctx is cancelled.
// Cancellation is only observed while waiting for the next tick, never
// mid-render, so a report in progress always completes.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("reporter stopped")
			return
		case <-ticker.C:
			r.Report()
		}
	}
}

// Report takes one snapshot and renders it. The snapshot is materialized
// before any byte is written, so rendering never holds the table lock.
func (r *Reporter) Report() {
	Render(r.out, r.agg.Snapshot())
}

// Render writes one report block.
func Render(w io.Writer, entries []Entry) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Current word frequency count:")
	for _, e := range entries {
		fmt.Fprintf(w, "%s - %d\n", e.Word, e.Count)
	}
	fmt.Fprintln(w, "-----------------------------")
}
