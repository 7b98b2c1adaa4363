package count

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/leapstack-labs/wordfreq/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// farFuture keeps the reporter from ever ticking so only the final report
// appears in the output.
const farFuture = time.Hour

func textStream(name, text string) Stream {
	return Stream{Name: name, R: io.NopCloser(strings.NewReader(text))}
}

// slowEOFReader delays the EOF so readers stay alive long enough for
// periodic reports to fire.
type slowEOFReader struct {
	r     io.Reader
	delay time.Duration
}

func (s *slowEOFReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err == io.EOF {
		time.Sleep(s.delay)
	}
	return n, err
}

func TestCounter_Run_TwoStreams(t *testing.T) {
	out := &lockedBuffer{}
	c := New(Config{
		Streams: []Stream{
			textStream("a", "the cat sat\n"),
			textStream("b", "the dog sat\n"),
		},
		Out:      out,
		Interval: farFuture,
		Logger:   testutil.NewTestLogger(t),
	})

	require.NoError(t, c.Run(context.Background()))

	// Exactly one (final) report, in the deterministic merged order.
	want := "\n" +
		"Current word frequency count:\n" +
		"sat - 2\n" +
		"the - 2\n" +
		"cat - 1\n" +
		"dog - 1\n" +
		"-----------------------------\n"
	assert.Equal(t, want, out.String())
}

func TestCounter_Run_FinalReportExactlyOnce(t *testing.T) {
	out := &lockedBuffer{}
	c := New(Config{
		Streams:  []Stream{textStream("a", "hello world\n")},
		Out:      out,
		Interval: farFuture,
		Logger:   testutil.NewTestLogger(t),
	})

	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, 1, strings.Count(out.String(), "Current word frequency count:"))

	// Nothing further after shutdown.
	settled := out.String()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, out.String())
}

func TestCounter_Run_PeriodicThenFinal(t *testing.T) {
	out := &lockedBuffer{}
	c := New(Config{
		Streams: []Stream{{
			Name: "slow",
			R:    io.NopCloser(&slowEOFReader{r: strings.NewReader("tick tock "), delay: 80 * time.Millisecond}),
		}},
		Out:      out,
		Interval: 15 * time.Millisecond,
		Logger:   testutil.NewTestLogger(t),
	})

	require.NoError(t, c.Run(context.Background()))

	reports := strings.Count(out.String(), "Current word frequency count:")
	assert.GreaterOrEqual(t, reports, 2, "expected at least one periodic report plus the final one")
}

func TestCounter_Run_StreamErrorAbsorbed(t *testing.T) {
	boom := errors.New("boom")
	out := &lockedBuffer{}
	c := New(Config{
		Streams: []Stream{
			{Name: "bad", R: io.NopCloser(io.MultiReader(strings.NewReader("early words "), iotest.ErrReader(boom)))},
			textStream("good", "late words \n"),
		},
		Out:      out,
		Interval: farFuture,
		Logger:   testutil.NewTestLogger(t),
	})

	// A failing stream is a normal completion, not a run failure.
	require.NoError(t, c.Run(context.Background()))

	stats := c.Stats()
	require.Len(t, stats, 2)
	assert.ErrorIs(t, stats[0].Err, boom)
	assert.NoError(t, stats[1].Err)

	// Words read before the failure still count: "words" from both
	// streams, "early" from the failed one.
	assert.Contains(t, out.String(), "words - 2\n")
	assert.Contains(t, out.String(), "early - 1\n")
}

func TestCounter_Run_MaxWordsStopsStream(t *testing.T) {
	out := &lockedBuffer{}
	c := New(Config{
		Streams:  []Stream{textStream("a", "one two three four\n")},
		Out:      out,
		Interval: farFuture,
		MaxWords: 2,
		Logger:   testutil.NewTestLogger(t),
	})

	require.NoError(t, c.Run(context.Background()))

	stats := c.Stats()
	require.Len(t, stats, 1)
	assert.ErrorIs(t, stats[0].Err, ErrTableFull)
	assert.Equal(t, uint64(2), stats[0].Words)
}

func TestCounter_Run_NoStreams(t *testing.T) {
	out := &lockedBuffer{}
	c := New(Config{
		Out:      out,
		Interval: farFuture,
		Logger:   testutil.NewTestLogger(t),
	})

	require.NoError(t, c.Run(context.Background()))

	want := "\n" +
		"Current word frequency count:\n" +
		"-----------------------------\n"
	assert.Equal(t, want, out.String())
}

func TestCounter_StatsOrder(t *testing.T) {
	c := New(Config{
		Streams: []Stream{
			textStream("first", "a b c "),
			textStream("second", "d "),
		},
		Interval: farFuture,
		Out:      io.Discard,
		Logger:   testutil.NewTestLogger(t),
	})

	require.NoError(t, c.Run(context.Background()))

	stats := c.Stats()
	require.Len(t, stats, 2)
	assert.Equal(t, "first", stats[0].Name)
	assert.Equal(t, uint64(3), stats[0].Words)
	assert.Equal(t, "second", stats[1].Name)
	assert.Equal(t, uint64(1), stats[1].Words)
}
