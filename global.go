package perfband

import "time"

// defaultSession is the process-wide session used by the package-level
// helpers. Applications that need isolated sessions, for example in tests,
// should construct their own with NewSession instead.
var defaultSession = NewSession()

// SetDefault replaces the process-wide session.
func SetDefault(s *Session) {
	defaultSession = s
}

// Begin starts the process-wide profiling session. Call this at the start of
// your main function or wherever you'd like the profiling span to begin.
func Begin() {
	defaultSession.Begin()
}

// Record appends a sample to the process-wide session.
func Record(label string, elapsed time.Duration) {
	defaultSession.Record(label, elapsed)
}

// RecordBytes appends a sample with a byte count to the process-wide session.
func RecordBytes(label string, elapsed time.Duration, bytes uint64) {
	defaultSession.RecordBytes(label, elapsed, bytes)
}

// StartRegion starts a scoped region on the process-wide session:
//
//	defer perfband.StartRegion("parse").Stop()
func StartRegion(label string) *Region {
	return defaultSession.StartRegion(label)
}

// Measure runs fn as an instrumented region on the process-wide session.
func Measure(label string, fn func() error) error {
	return defaultSession.Measure(label, fn)
}

// MeasureBytes is Measure with a byte count attached to the sample.
func MeasureBytes(label string, bytes uint64, fn func() error) error {
	return defaultSession.MeasureBytes(label, bytes, fn)
}

// End terminates the process-wide session and returns its report.
func End() *Report {
	return defaultSession.End()
}

// EndAndPrint terminates the process-wide session and prints its report.
func EndAndPrint() {
	defaultSession.EndAndPrint()
}
