package perfband

import "time"

// Region is a scoped timing handle returned by StartRegion. Stopping it
// records the wall-clock span between StartRegion and Stop as one sample,
// so a deferred Stop covers every exit path of the instrumented code,
// including early returns and panics.
type Region struct {
	session   *Session
	label     string
	startTime time.Time
	bytes     uint64
	hasBytes  bool
	stopped   bool
}

// StartRegion starts timing a region. The typical call site is a one-liner
// at the top of the function being instrumented:
//
//	defer session.StartRegion("loadIndex").Stop()
func (s *Session) StartRegion(label string) *Region {
	return &Region{
		session:   s,
		label:     label,
		startTime: time.Now(),
	}
}

// SetBytes attaches a byte count to the region, so the report can derive
// its throughput. It returns the region so it can be chained before a
// deferred Stop:
//
//	defer session.StartRegion("readChunk").SetBytes(n).Stop()
func (r *Region) SetBytes(n uint64) *Region {
	r.bytes = n
	r.hasBytes = true
	return r
}

// Stop records the region sample. Stop is idempotent, only the first call
// records.
func (r *Region) Stop() {
	if r.stopped {
		return
	}

	r.stopped = true

	elapsed := time.Since(r.startTime)
	if r.hasBytes {
		r.session.RecordBytes(r.label, elapsed, r.bytes)
	} else {
		r.session.Record(r.label, elapsed)
	}
}

// Measure runs fn as an instrumented region. The sample is recorded on
// every exit path: normal return, error return, and panic. The callback's
// error and panic both propagate unchanged.
func (s *Session) Measure(label string, fn func() error) error {
	r := s.StartRegion(label)
	defer r.Stop()
	return fn()
}

// MeasureBytes is Measure with a byte count attached to the sample.
func (s *Session) MeasureBytes(label string, bytes uint64, fn func() error) error {
	r := s.StartRegion(label).SetBytes(bytes)
	defer r.Stop()
	return fn()
}
