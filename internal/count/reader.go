package count

import (
	"errors"
	"io"
	"log/slog"
)

// StreamStats records the outcome of one reader task.
type StreamStats struct {
	Name  string
	Words uint64
	Err   error
}

// ReadStream drives the tokenizer over one stream, forwarding every word
// to the aggregator, and closes the stream when done. Read errors and a
// full table stop the stream but are absorbed here: the task completes
// normally so other streams keep going, and the failure is recorded in the
// returned stats.
func ReadStream(name string, r io.ReadCloser, agg *Aggregator, logger *slog.Logger) StreamStats {
	stats := StreamStats{Name: name}

	err := Tokenize(r, func(word string) error {
		if err := agg.Increment(word); err != nil {
			return err
		}
		stats.Words++
		return nil
	})
	if cerr := r.Close(); cerr != nil && err == nil {
		err = cerr
	}

	switch {
	case err == nil:
		logger.Debug("stream exhausted", "stream", name, "words", stats.Words)
	case errors.Is(err, ErrTableFull):
		stats.Err = err
		logger.Warn("stream stopped", "stream", name, "reason", err)
	default:
		stats.Err = err
		logger.Warn("stream read failed", "stream", name, "error", err)
	}
	return stats
}
