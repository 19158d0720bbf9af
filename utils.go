package perfband

import (
	"fmt"
	"time"
)

// TimeUnit selects how elapsed-time columns are rendered.
type TimeUnit string

const (
	TimeUnitAuto         TimeUnit = "auto"
	TimeUnitMilliseconds TimeUnit = "ms"
	TimeUnitMicroseconds TimeUnit = "us"
)

const (
	kib = 1024.0
	mib = kib * 1024.0
	gib = mib * 1024.0
)

func formatDuration(d time.Duration, unit TimeUnit) string {
	switch unit {
	case TimeUnitMilliseconds:
		return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
	case TimeUnitMicroseconds:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	default:
		return d.String()
	}
}

// formatThroughput renders bytes/second for a sample. A sample with no byte
// count, or with a zero elapsed time, renders blank: a zero duration is a
// legitimate reading for a very fast region and must never turn into +Inf.
func formatThroughput(bytes uint64, hasBytes bool, elapsed time.Duration) string {
	if !hasBytes || elapsed <= 0 {
		return ""
	}

	bps := float64(bytes) / elapsed.Seconds()
	switch {
	case bps >= gib:
		return fmt.Sprintf("%.2f GiB/s", bps/gib)
	case bps >= mib:
		return fmt.Sprintf("%.2f MiB/s", bps/mib)
	case bps >= kib:
		return fmt.Sprintf("%.2f KiB/s", bps/kib)
	default:
		return fmt.Sprintf("%.0f B/s", bps)
	}
}

func formatBytes(n uint64) string {
	b := float64(n)
	switch {
	case b >= gib:
		return fmt.Sprintf("%.3f GiB", b/gib)
	case b >= mib:
		return fmt.Sprintf("%.3f MiB", b/mib)
	case b >= kib:
		return fmt.Sprintf("%.3f KiB", b/kib)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func formatPercent(elapsed, span time.Duration) string {
	if span <= 0 {
		return ""
	}

	return fmt.Sprintf("%.2f%%", 100.0*float64(elapsed)/float64(span))
}
