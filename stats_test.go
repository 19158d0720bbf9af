package perfband

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReport_Stats(t *testing.T) {
	r := &Report{
		Samples: []Sample{
			{Label: "hash", Elapsed: 10 * time.Millisecond, Bytes: 100, HasBytes: true},
			{Label: "io", Elapsed: 5 * time.Millisecond},
			{Label: "hash", Elapsed: 20 * time.Millisecond, Bytes: 100, HasBytes: true},
			{Label: "hash", Elapsed: 30 * time.Millisecond, Bytes: 100, HasBytes: true},
		},
		Span: 100 * time.Millisecond,
	}

	all := r.Stats()
	assert.Len(t, all, 2)

	hash := all[0]
	assert.Equal(t, "hash", hash.Label)
	assert.Equal(t, 3, hash.Hits)
	assert.Equal(t, 60*time.Millisecond, hash.TotalElapsed)
	assert.InDelta(t, 0.020, hash.MeanElapsed.Seconds(), 1e-9)
	assert.InDelta(t, 0.020, hash.MedianElapsed.Seconds(), 1e-9)
	assert.InDelta(t, 0.010, hash.StddevElapsed.Seconds(), 1e-9)
	assert.True(t, hash.HasBytes)
	assert.Equal(t, uint64(300), hash.TotalBytes)
	assert.InDelta(t, 300.0/0.060, hash.Throughput(), 1e-6)

	io := all[1]
	assert.Equal(t, "io", io.Label)
	assert.Equal(t, 1, io.Hits)
	assert.Equal(t, time.Duration(0), io.StddevElapsed)
	assert.False(t, io.HasBytes)
	assert.Zero(t, io.Throughput())
}

func TestReport_StatsEmpty(t *testing.T) {
	r := &Report{}
	assert.Empty(t, r.Stats())
}

func TestReport_RenderStats(t *testing.T) {
	r := &Report{
		Samples: []Sample{
			{Label: "hash", Elapsed: time.Second, Bytes: 2048, HasBytes: true},
			{Label: "hash", Elapsed: time.Second, Bytes: 2048, HasBytes: true},
		},
		Span: 3 * time.Second,
	}

	var out bytes.Buffer
	r.RenderStats(&out)

	assert.Contains(t, out.String(), "hash")
	assert.Contains(t, out.String(), "2")
	assert.Contains(t, out.String(), "4.000 KiB")
	assert.Contains(t, out.String(), "2.00 KiB/s")
}
