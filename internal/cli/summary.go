package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/wordfreq/internal/count"
)

// renderSummary writes the per-stream outcome table to w. It goes to
// stderr so stdout stays exactly the report blocks.
func renderSummary(w io.Writer, stats []count.StreamStats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Stream", "Words", "Status"})
	for _, s := range stats {
		status := "ok"
		if s.Err != nil {
			status = s.Err.Error()
		}
		t.AppendRow(table.Row{s.Name, s.Words, status})
	}
	t.Render()
}
