package perfband

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Report is the immutable result of ending a session: the recorded samples
// in recording order, plus the wall-clock span of the whole session.
type Report struct {
	Samples []Sample

	// Span is the time between Begin and End. Zero if the session was never
	// activated.
	Span time.Duration
}

// Summary returns a one-line description of the report.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d samples in %s", len(r.Samples), formatDuration(r.Span, TimeUnitAuto))
}

// Render writes the report as a table with one row per sample: label,
// elapsed time, throughput (blank when no byte count was attached or the
// elapsed time is zero) and the sample's share of the session span.
func (r *Report) Render(w io.Writer) {
	r.render(w, TimeUnitAuto)
}

func (r *Report) render(w io.Writer, unit TimeUnit) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Label", "Elapsed", "Throughput", "% of Total"})

	for _, sample := range r.Samples {
		t.AppendRow(table.Row{
			sample.Label,
			formatDuration(sample.Elapsed, unit),
			formatThroughput(sample.Bytes, sample.HasBytes, sample.Elapsed),
			formatPercent(sample.Elapsed, r.Span),
		})
	}

	t.AppendFooter(table.Row{"Total", formatDuration(r.Span, unit), "Samples", len(r.Samples)})
	t.Render()
}
