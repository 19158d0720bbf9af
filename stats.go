package perfband

import (
	"io"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/stat"
)

// LabelStats aggregates every sample sharing one label: repeat hits of the
// same instrumented region fold into hit counts, totals and distribution
// statistics.
type LabelStats struct {
	Label string
	Hits  int

	TotalElapsed  time.Duration
	MeanElapsed   time.Duration
	MedianElapsed time.Duration
	StddevElapsed time.Duration

	TotalBytes uint64
	HasBytes   bool
}

// Throughput returns the aggregate bytes/second over all hits, or zero when
// no byte count was recorded or no time elapsed.
func (ls *LabelStats) Throughput() float64 {
	if !ls.HasBytes || ls.TotalElapsed <= 0 {
		return 0
	}

	return float64(ls.TotalBytes) / ls.TotalElapsed.Seconds()
}

// Stats aggregates the report's samples per label, ordered by each label's
// first appearance in the recording order.
func (r *Report) Stats() []LabelStats {
	var order []string
	grouped := map[string][]Sample{}

	for _, sample := range r.Samples {
		if _, ok := grouped[sample.Label]; !ok {
			order = append(order, sample.Label)
		}
		grouped[sample.Label] = append(grouped[sample.Label], sample)
	}

	var all []LabelStats
	for _, label := range order {
		samples := grouped[label]

		ls := LabelStats{Label: label, Hits: len(samples)}

		seconds := make([]float64, 0, len(samples))
		for _, sample := range samples {
			ls.TotalElapsed += sample.Elapsed
			seconds = append(seconds, sample.Elapsed.Seconds())

			if sample.HasBytes {
				ls.HasBytes = true
				ls.TotalBytes += sample.Bytes
			}
		}

		ls.MeanElapsed = secondsToDuration(stat.Mean(seconds, nil))

		sorted := make([]float64, len(seconds))
		copy(sorted, seconds)
		sort.Float64s(sorted)
		ls.MedianElapsed = secondsToDuration(stat.Quantile(0.5, stat.Empirical, sorted, nil))

		// StdDev divides by n-1 and is undefined for a single hit
		if len(seconds) > 1 {
			ls.StddevElapsed = secondsToDuration(stat.StdDev(seconds, nil))
		}

		all = append(all, ls)
	}

	return all
}

// RenderStats writes the per-label aggregate table.
func (r *Report) RenderStats(w io.Writer) {
	all := r.Stats()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Label", "Hits", "Total", "Mean", "Median", "Stddev", "Bytes", "Throughput"})

	for _, ls := range all {
		bytesCell, throughputCell := "", ""
		if ls.HasBytes {
			bytesCell = formatBytes(ls.TotalBytes)
			throughputCell = formatThroughput(ls.TotalBytes, true, ls.TotalElapsed)
		}

		t.AppendRow(table.Row{
			ls.Label,
			ls.Hits,
			formatDuration(ls.TotalElapsed, TimeUnitAuto),
			formatDuration(ls.MeanElapsed, TimeUnitAuto),
			formatDuration(ls.MedianElapsed, TimeUnitAuto),
			formatDuration(ls.StddevElapsed, TimeUnitAuto),
			bytesCell,
			throughputCell,
		})
	}

	t.AppendFooter(table.Row{"Total", len(r.Samples), formatDuration(r.Span, TimeUnitAuto), "", "", "", "", ""})
	t.Render()
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
